package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/knowscroll/contentgov/x/content/types"
)

// InitGenesis sets the configuration and imports drafts and vote records.
//
// CONTRACT: the genesis state was validated before
func InitGenesis(ctx sdk.Context, k Keeper, data types.GenesisState) error {
	owner, err := sdk.AccAddressFromBech32(data.Owner)
	if err != nil {
		return sdkerrors.Wrap(err, "owner")
	}
	ledger, err := sdk.AccAddressFromBech32(data.SharesLedger)
	if err != nil {
		return sdkerrors.Wrap(err, "shares ledger")
	}
	if err := k.InitConfig(ctx, owner, ledger, data.Params); err != nil {
		return sdkerrors.Wrap(err, "config")
	}

	store := ctx.KVStore(k.storeKey)
	for _, d := range data.Drafts {
		k.setContentDraft(ctx, d)
		store.Set(types.GetChannelDraftKey(d.ChannelID, d.ID), []byte{1})
	}
	for i, v := range data.Votes {
		voter, err := sdk.AccAddressFromBech32(v.Voter)
		if err != nil {
			return sdkerrors.Wrapf(err, "vote %d", i)
		}
		k.setVote(ctx, voter, v)
	}
	k.setDraftSequence(ctx, data.DraftSequence)
	return nil
}

// ExportGenesis returns the full module state
func ExportGenesis(ctx sdk.Context, k Keeper) *types.GenesisState {
	ledger, _ := k.GetSharesLedgerAddress(ctx)
	genState := types.NewGenesisState(k.GetParams(ctx), k.GetOwner(ctx), ledger)
	genState.DraftSequence = k.draftSequence(ctx)
	genState.Drafts = make([]types.ContentDraft, 0)
	k.IterateContentDrafts(ctx, func(d types.ContentDraft) bool {
		genState.Drafts = append(genState.Drafts, d)
		return false
	})
	genState.Votes = make([]types.VoteRecord, 0)
	k.IterateAllVotes(ctx, func(v types.VoteRecord) bool {
		genState.Votes = append(genState.Votes, v)
		return false
	})
	return genState
}
