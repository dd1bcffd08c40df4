package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/knowscroll/contentgov/x/shares/types"
)

// InitGenesis imports all balances. Channel totals are derived.
func InitGenesis(ctx sdk.Context, k Keeper, data types.GenesisState) error {
	for i, b := range data.Balances {
		account, err := sdk.AccAddressFromBech32(b.Address)
		if err != nil {
			return sdkerrors.Wrapf(err, "balance %d", i)
		}
		if err := k.SetBalance(ctx, b.ChannelID, account, b.Amount); err != nil {
			return sdkerrors.Wrapf(err, "balance %d", i)
		}
	}
	return nil
}

// ExportGenesis returns all balances
func ExportGenesis(ctx sdk.Context, k Keeper) *types.GenesisState {
	genState := types.DefaultGenesisState()
	k.IterateBalances(ctx, func(b types.Balance) bool {
		genState.Balances = append(genState.Balances, b)
		return false
	})
	return genState
}
