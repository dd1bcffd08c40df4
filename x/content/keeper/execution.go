package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/knowscroll/contentgov/x/content/types"
)

// ExecuteContentApproval resolves a draft after its voting window. Anyone can call it.
// The draft is approved on a strict for majority once the quorum of the channel's total shares
// has participated. A draft that fails quorum stays unexecuted and can be retried later.
func (k Keeper) ExecuteContentApproval(ctx sdk.Context, draftID uint64) (bool, error) {
	draft, err := k.GetContentDraft(ctx, draftID)
	if err != nil {
		return false, err
	}
	if now := ctx.BlockTime(); now.Before(draft.EndTime) {
		return false, sdkerrors.Wrapf(types.ErrVotingNotEnded, "ends at %s", draft.EndTime)
	}
	if draft.Executed {
		return false, types.ErrAlreadyExecuted
	}
	totalShares, err := k.SharesLedger(ctx).TotalShares(ctx, draft.ChannelID)
	if err != nil {
		return false, sdkerrors.Wrap(err, "total shares")
	}
	threshold := k.GetParams(ctx).QuorumThreshold
	if !QuorumReached(draft.TotalVotes(), totalShares, threshold) {
		return false, sdkerrors.Wrapf(types.ErrQuorumNotReached, "%s of %s shares voted, threshold %d bp", draft.TotalVotes(), totalShares, threshold)
	}

	draft.Executed = true
	draft.Approved = draft.ForVotes.GT(draft.AgainstVotes)
	k.setContentDraft(ctx, draft)

	k.Logger(ctx).Info("Content draft executed", "draft_id", draftID, "approved", draft.Approved,
		"for", draft.ForVotes.String(), "against", draft.AgainstVotes.String())
	if draft.Approved {
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeContentApproved,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyDraftID, strconv.FormatUint(draftID, 10)),
			sdk.NewAttribute(types.AttributeKeyChannelID, strconv.FormatUint(draft.ChannelID, 10)),
			sdk.NewAttribute(types.AttributeKeyContentURI, draft.ContentURI),
		))
	} else {
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeContentRejected,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyDraftID, strconv.FormatUint(draftID, 10)),
			sdk.NewAttribute(types.AttributeKeyChannelID, strconv.FormatUint(draft.ChannelID, 10)),
		))
	}
	return draft.Approved, nil
}

// QuorumReached returns true when totalVotes is at least threshold basis points of totalShares.
// Compared in integer space: totalVotes * 10000 >= totalShares * threshold
func QuorumReached(totalVotes, totalShares sdk.Int, threshold uint64) bool {
	required := totalShares.Mul(sdk.NewIntFromUint64(threshold))
	return totalVotes.Mul(sdk.NewIntFromUint64(types.BasisPoints)).GTE(required)
}
