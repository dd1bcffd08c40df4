package content

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/knowscroll/contentgov/x/content/keeper"
	"github.com/knowscroll/contentgov/x/content/types"
)

// ValidateGenesis performs basic validation of genesis data returning an
// error for any failed validation criteria.
func ValidateGenesis(data types.GenesisState) error {
	return data.Validate()
}

// InitGenesis initializes the content module state. It panics on invalid state as the chain can not start.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if err := keeper.InitGenesis(ctx, k, data); err != nil {
		panic(fmt.Sprintf("content genesis: %s", err))
	}
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	return keeper.ExportGenesis(ctx, k)
}
