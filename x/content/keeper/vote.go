package keeper

import (
	"strconv"

	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/knowscroll/contentgov/x/content/types"
)

// CastVote records a share weighted vote. The weight is the voter's share balance in the
// draft's channel at the time of the call. Returns the weight that was added to the tally.
func (k Keeper) CastVote(ctx sdk.Context, voter sdk.AccAddress, draftID uint64, support bool) (sdk.Int, error) {
	draft, err := k.GetContentDraft(ctx, draftID)
	if err != nil {
		return sdk.ZeroInt(), err
	}
	if !draft.IsVotingOpen(ctx.BlockTime()) {
		return sdk.ZeroInt(), sdkerrors.Wrapf(types.ErrVotingEnded, "ended at %s", draft.EndTime)
	}
	if k.HasVoted(ctx, draftID, voter) {
		return sdk.ZeroInt(), types.ErrAlreadyVoted
	}
	weight, err := k.SharesLedger(ctx).BalanceOf(ctx, draft.ChannelID, voter)
	if err != nil {
		return sdk.ZeroInt(), sdkerrors.Wrap(err, "share balance")
	}
	if !weight.IsPositive() {
		return sdk.ZeroInt(), types.ErrNoSharesOwned
	}

	if support {
		draft.ForVotes = draft.ForVotes.Add(weight)
	} else {
		draft.AgainstVotes = draft.AgainstVotes.Add(weight)
	}
	k.setContentDraft(ctx, draft)
	k.setVote(ctx, voter, types.NewVoteRecord(draftID, voter, support, weight))

	k.Logger(ctx).Debug("Vote cast", "draft_id", draftID, "voter", voter.String(), "support", support, "weight", weight.String())
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeVoteCast,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyDraftID, strconv.FormatUint(draftID, 10)),
		sdk.NewAttribute(types.AttributeKeyVoter, voter.String()),
		sdk.NewAttribute(types.AttributeKeySupport, strconv.FormatBool(support)),
		sdk.NewAttribute(types.AttributeKeyWeight, weight.String()),
	))
	return weight, nil
}

// HasVoted returns true when a vote record exists for the account on the draft
func (k Keeper) HasVoted(ctx sdk.Context, draftID uint64, voter sdk.AccAddress) bool {
	return ctx.KVStore(k.storeKey).Has(types.GetVoteKey(draftID, voter))
}

// GetVote returns the vote record or ErrNotFound
func (k Keeper) GetVote(ctx sdk.Context, draftID uint64, voter sdk.AccAddress) (types.VoteRecord, error) {
	bz := ctx.KVStore(k.storeKey).Get(types.GetVoteKey(draftID, voter))
	if bz == nil {
		return types.VoteRecord{}, sdkerrors.Wrapf(types.ErrNotFound, "vote of %s on %d", voter, draftID)
	}
	var vote types.VoteRecord
	k.cdc.MustUnmarshal(bz, &vote)
	return vote, nil
}

// GetVotes returns all vote records of a draft ordered by voter address
func (k Keeper) GetVotes(ctx sdk.Context, draftID uint64) []types.VoteRecord {
	votes := make([]types.VoteRecord, 0)
	k.IterateVotes(ctx, draftID, func(v types.VoteRecord) bool {
		votes = append(votes, v)
		return false
	})
	return votes
}

// IterateVotes iterates over the vote records of a draft
func (k Keeper) IterateVotes(ctx sdk.Context, draftID uint64, cb func(v types.VoteRecord) bool) {
	k.iterateVotesWithPrefix(ctx, types.GetVotesPrefix(draftID), cb)
}

// IterateAllVotes iterates over the vote records of all drafts by draft id ASC
func (k Keeper) IterateAllVotes(ctx sdk.Context, cb func(v types.VoteRecord) bool) {
	k.iterateVotesWithPrefix(ctx, types.VotePrefix, cb)
}

func (k Keeper) iterateVotesWithPrefix(ctx sdk.Context, keyPrefix []byte, cb func(v types.VoteRecord) bool) {
	prefixStore := prefix.NewStore(ctx.KVStore(k.storeKey), keyPrefix)
	iter := prefixStore.Iterator(nil, nil)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var vote types.VoteRecord
		k.cdc.MustUnmarshal(iter.Value(), &vote)
		if cb(vote) {
			return
		}
	}
}

func (k Keeper) setVote(ctx sdk.Context, voter sdk.AccAddress, vote types.VoteRecord) {
	ctx.KVStore(k.storeKey).Set(types.GetVoteKey(vote.DraftID, voter), k.cdc.MustMarshal(&vote))
}
