package keeper

import (
	"encoding/json"
	"fmt"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/knowscroll/contentgov/x/content/contract"
	contenttypes "github.com/knowscroll/contentgov/x/content/types"
	"github.com/knowscroll/contentgov/x/shares/types"
)

var _ contenttypes.SmartQuerier = Keeper{}

// Keeper is a minimal share registry. It answers the shares ledger smart queries for LedgerAddress
// so that the content module can run without a contract runtime.
type Keeper struct {
	storeKey sdk.StoreKey
}

// NewKeeper constructor
func NewKeeper(key sdk.StoreKey) Keeper {
	return Keeper{storeKey: key}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// SetBalance sets the share amount of an account in a channel and adjusts the channel total.
// A zero amount removes the entry.
func (k Keeper) SetBalance(ctx sdk.Context, channelID uint64, account sdk.AccAddress, amount sdk.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return sdkerrors.Wrapf(types.ErrNegativeShares, "amount %s", amount)
	}
	if err := sdk.VerifyAddressFormat(account); err != nil {
		return sdkerrors.Wrap(err, "account")
	}
	old := k.BalanceOf(ctx, channelID, account)
	store := ctx.KVStore(k.storeKey)
	if amount.IsZero() {
		store.Delete(types.GetBalanceKey(channelID, account))
	} else {
		store.Set(types.GetBalanceKey(channelID, account), mustMarshalInt(amount))
	}
	total := k.TotalShares(ctx, channelID).Sub(old).Add(amount)
	if total.IsZero() {
		store.Delete(types.GetTotalKey(channelID))
	} else {
		store.Set(types.GetTotalKey(channelID), mustMarshalInt(total))
	}
	k.Logger(ctx).Info("Shares set", "channel_id", channelID, "account", account.String(), "amount", amount.String())
	return nil
}

// BalanceOf returns the shares of the account in the channel, zero when unknown
func (k Keeper) BalanceOf(ctx sdk.Context, channelID uint64, account sdk.AccAddress) sdk.Int {
	return k.getInt(ctx, types.GetBalanceKey(channelID, account))
}

// TotalShares returns the sum of all balances of the channel
func (k Keeper) TotalShares(ctx sdk.Context, channelID uint64) sdk.Int {
	return k.getInt(ctx, types.GetTotalKey(channelID))
}

// IterateBalances iterates over all balances by channel id ASC
func (k Keeper) IterateBalances(ctx sdk.Context, cb func(b types.Balance) bool) {
	prefixStore := prefix.NewStore(ctx.KVStore(k.storeKey), types.BalancePrefix)
	iter := prefixStore.Iterator(nil, nil)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		key := iter.Key()
		channelID := sdk.BigEndianToUint64(key[:8])
		// skip length prefix byte
		account := sdk.AccAddress(key[8+1:])
		amount := mustUnmarshalInt(iter.Value())
		if cb(types.Balance{ChannelID: channelID, Address: account.String(), Amount: amount}) {
			return
		}
	}
}

// QuerySmart answers the shares ledger query protocol for LedgerAddress
func (k Keeper) QuerySmart(ctx sdk.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error) {
	if !types.LedgerAddress.Equals(contractAddr) {
		return nil, sdkerrors.Wrapf(wasmtypes.ErrNotFound, "contract %s", contractAddr)
	}
	var query contract.SharesQuery
	if err := json.Unmarshal(req, &query); err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidQuery, err.Error())
	}
	switch {
	case query.Balance != nil:
		account, err := sdk.AccAddressFromBech32(query.Balance.Address)
		if err != nil {
			return nil, sdkerrors.Wrap(types.ErrInvalidQuery, err.Error())
		}
		return json.Marshal(contract.BalanceResponse{Balance: k.BalanceOf(ctx, query.Balance.ChannelID, account)})
	case query.TotalShares != nil:
		return json.Marshal(contract.TotalSharesResponse{TotalShares: k.TotalShares(ctx, query.TotalShares.ChannelID)})
	default:
		return nil, sdkerrors.Wrap(types.ErrInvalidQuery, "unsupported query")
	}
}

func (k Keeper) getInt(ctx sdk.Context, key []byte) sdk.Int {
	bz := ctx.KVStore(k.storeKey).Get(key)
	if bz == nil {
		return sdk.ZeroInt()
	}
	return mustUnmarshalInt(bz)
}

func mustMarshalInt(v sdk.Int) []byte {
	bz, err := v.Marshal()
	if err != nil {
		panic(err)
	}
	return bz
}

func mustUnmarshalInt(bz []byte) sdk.Int {
	var v sdk.Int
	if err := v.Unmarshal(bz); err != nil {
		panic(err)
	}
	return v
}
