package contract

import (
	"encoding/json"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/knowscroll/contentgov/x/content/types"
)

// SharesQuery is the query API of a shares ledger contract
type SharesQuery struct {
	// Returns BalanceResponse
	Balance *BalanceQuery `json:"balance,omitempty"`
	// Returns TotalSharesResponse
	TotalShares *TotalSharesQuery `json:"total_shares,omitempty"`
}

type BalanceQuery struct {
	Address   string `json:"address"`
	ChannelID uint64 `json:"channel_id"`
}

type TotalSharesQuery struct {
	ChannelID uint64 `json:"channel_id"`
}

type BalanceResponse struct {
	Balance sdk.Int `json:"balance"`
}

type TotalSharesResponse struct {
	TotalShares sdk.Int `json:"total_shares"`
}

// QueryShareBalance returns the share balance of the account in the channel. No entry means zero.
func QueryShareBalance(ctx sdk.Context, k types.SmartQuerier, ledgerAddr sdk.AccAddress, channelID uint64, account sdk.AccAddress) (sdk.Int, error) {
	query := SharesQuery{Balance: &BalanceQuery{Address: account.String(), ChannelID: channelID}}
	var response BalanceResponse
	if err := doQuery(ctx, k, ledgerAddr, query, &response); err != nil {
		return sdk.Int{}, err
	}
	return nonNegative(response.Balance, "balance")
}

// QueryTotalShares returns the total supply of shares of the channel
func QueryTotalShares(ctx sdk.Context, k types.SmartQuerier, ledgerAddr sdk.AccAddress, channelID uint64) (sdk.Int, error) {
	query := SharesQuery{TotalShares: &TotalSharesQuery{ChannelID: channelID}}
	var response TotalSharesResponse
	if err := doQuery(ctx, k, ledgerAddr, query, &response); err != nil {
		return sdk.Int{}, err
	}
	return nonNegative(response.TotalShares, "total shares")
}

func nonNegative(v sdk.Int, name string) (sdk.Int, error) {
	switch {
	case v.IsNil():
		return sdk.ZeroInt(), nil
	case v.IsNegative():
		return sdk.Int{}, sdkerrors.Wrapf(wasmtypes.ErrInvalid, "negative %s: %s", name, v)
	default:
		return v, nil
	}
}

func doQuery(ctx sdk.Context, k types.SmartQuerier, contractAddr sdk.AccAddress, query interface{}, result interface{}) error {
	bz, err := json.Marshal(query)
	if err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	res, err := k.QuerySmart(ctx, contractAddr, bz)
	if err != nil {
		return sdkerrors.Wrap(wasmtypes.ErrQueryFailed, err.Error())
	}
	if err := json.Unmarshal(res, result); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	return nil
}

var _ types.SharesLedger = SharesContractAdapter{}

// SharesContractAdapter binds the ledger contract address to the share queries
type SharesContractAdapter struct {
	contractAddr     sdk.AccAddress
	contractQuerier  types.SmartQuerier
	addressLookupErr error
}

// NewSharesContractAdapter constructor
func NewSharesContractAdapter(contractAddr sdk.AccAddress, contractQuerier types.SmartQuerier, addressLookupErr error) SharesContractAdapter {
	return SharesContractAdapter{contractAddr: contractAddr, contractQuerier: contractQuerier, addressLookupErr: addressLookupErr}
}

// BalanceOf returns the share balance of the account in the channel
func (a SharesContractAdapter) BalanceOf(ctx sdk.Context, channelID uint64, account sdk.AccAddress) (sdk.Int, error) {
	if a.addressLookupErr != nil {
		return sdk.Int{}, a.addressLookupErr
	}
	return QueryShareBalance(ctx, a.contractQuerier, a.contractAddr, channelID, account)
}

// TotalShares returns the total shares issued for the channel
func (a SharesContractAdapter) TotalShares(ctx sdk.Context, channelID uint64) (sdk.Int, error) {
	if a.addressLookupErr != nil {
		return sdk.Int{}, a.addressLookupErr
	}
	return QueryTotalShares(ctx, a.contractQuerier, a.contractAddr, channelID)
}
