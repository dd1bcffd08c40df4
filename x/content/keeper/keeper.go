package keeper

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/knowscroll/contentgov/x/content/contract"
	"github.com/knowscroll/contentgov/x/content/types"
)

// Keeper owns the content draft store, the vote ledger and the module configuration
type Keeper struct {
	cdc           *codec.LegacyAmino
	storeKey      sdk.StoreKey
	sharesQuerier types.SmartQuerier
}

// NewKeeper constructor. The shares querier answers smart queries for the shares ledger contract
// that is configured at genesis.
func NewKeeper(cdc *codec.LegacyAmino, key sdk.StoreKey, sharesQuerier types.SmartQuerier) Keeper {
	return Keeper{cdc: cdc, storeKey: key, sharesQuerier: sharesQuerier}
}

// SharesLedger returns the read only share registry bound to the configured ledger address
func (k Keeper) SharesLedger(ctx sdk.Context) types.SharesLedger {
	addr, err := k.GetSharesLedgerAddress(ctx)
	return contract.NewSharesContractAdapter(addr, k.sharesQuerier, err)
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ModuleLogger(ctx)
}

func ModuleLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
