package keeper

import (
	"strconv"
	"time"

	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/knowscroll/contentgov/x/content/types"
)

// CreateContentDraft stores a new draft and opens its voting window at block time.
// Any account can create a draft. The proposal id is taken as given and not checked against
// a governance proposal registry.
func (k Keeper) CreateContentDraft(
	ctx sdk.Context,
	creator sdk.AccAddress,
	channelID uint64,
	title, contentURI, metadataURI string,
	proposalID uint64,
	votingPeriod uint64,
) (uint64, error) {
	if title == "" {
		return 0, types.ErrEmptyTitle
	}
	if contentURI == "" {
		return 0, types.ErrEmptyContentURI
	}
	if minPeriod := k.GetParams(ctx).MinVotingPeriod; votingPeriod < minPeriod {
		return 0, sdkerrors.Wrapf(types.ErrPeriodTooShort, "%d seconds is below min voting period of %d", votingPeriod, minPeriod)
	}
	if err := types.ValidateMaxVotingPeriod(votingPeriod); err != nil {
		return 0, err
	}

	id := k.nextDraftID(ctx)
	draft := types.NewContentDraft(
		id,
		channelID,
		title,
		contentURI,
		metadataURI,
		proposalID,
		ctx.BlockTime(),
		time.Duration(votingPeriod)*time.Second,
		creator,
	)
	k.setContentDraft(ctx, draft)
	ctx.KVStore(k.storeKey).Set(types.GetChannelDraftKey(channelID, id), []byte{1})

	k.Logger(ctx).Info("Content draft created", "draft_id", id, "channel_id", channelID, "creator", draft.Creator)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeContentDraftCreated,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyDraftID, strconv.FormatUint(id, 10)),
		sdk.NewAttribute(types.AttributeKeyChannelID, strconv.FormatUint(channelID, 10)),
		sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposalID, 10)),
		sdk.NewAttribute(types.AttributeKeyTitle, title),
		sdk.NewAttribute(types.AttributeKeyContentURI, contentURI),
		sdk.NewAttribute(types.AttributeKeyStartTime, draft.StartTime.Format(time.RFC3339)),
		sdk.NewAttribute(types.AttributeKeyEndTime, draft.EndTime.Format(time.RFC3339)),
	))
	return id, nil
}

// GetContentDraft returns the draft or ErrNotFound
func (k Keeper) GetContentDraft(ctx sdk.Context, draftID uint64) (types.ContentDraft, error) {
	bz := ctx.KVStore(k.storeKey).Get(types.GetDraftKey(draftID))
	if bz == nil {
		return types.ContentDraft{}, sdkerrors.Wrapf(types.ErrNotFound, "id %d", draftID)
	}
	var draft types.ContentDraft
	k.cdc.MustUnmarshal(bz, &draft)
	return draft, nil
}

// GetChannelContentDrafts returns the ids of all drafts of the channel in creation order
func (k Keeper) GetChannelContentDrafts(ctx sdk.Context, channelID uint64) []uint64 {
	prefixStore := prefix.NewStore(ctx.KVStore(k.storeKey), types.GetChannelDraftsPrefix(channelID))
	iter := prefixStore.Iterator(nil, nil)
	defer iter.Close()

	ids := make([]uint64, 0)
	for ; iter.Valid(); iter.Next() {
		ids = append(ids, sdk.BigEndianToUint64(iter.Key()))
	}
	return ids
}

// GetTotalContentDrafts returns the number of drafts ever created
func (k Keeper) GetTotalContentDrafts(ctx sdk.Context) uint64 {
	return k.draftSequence(ctx)
}

// IterateContentDrafts iterates over all drafts by id ASC
func (k Keeper) IterateContentDrafts(ctx sdk.Context, cb func(d types.ContentDraft) bool) {
	prefixStore := prefix.NewStore(ctx.KVStore(k.storeKey), types.DraftPrefix)
	iter := prefixStore.Iterator(nil, nil)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var draft types.ContentDraft
		k.cdc.MustUnmarshal(iter.Value(), &draft)
		// cb returns true to stop early
		if cb(draft) {
			return
		}
	}
}

func (k Keeper) setContentDraft(ctx sdk.Context, draft types.ContentDraft) {
	ctx.KVStore(k.storeKey).Set(types.GetDraftKey(draft.ID), k.cdc.MustMarshal(&draft))
}

// nextDraftID increments the sequence and returns the new value. Ids start at 1 and are never reused.
func (k Keeper) nextDraftID(ctx sdk.Context) uint64 {
	id := k.draftSequence(ctx) + 1
	k.setDraftSequence(ctx, id)
	return id
}

func (k Keeper) draftSequence(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.storeKey).Get(types.DraftSequenceKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) setDraftSequence(ctx sdk.Context, seq uint64) {
	ctx.KVStore(k.storeKey).Set(types.DraftSequenceKey, sdk.Uint64ToBigEndian(seq))
}
