package keeper

import (
	"context"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/knowscroll/contentgov/x/content/types"
)

// ContentKeeper is the subset of the keeper used by the msg server
type ContentKeeper interface {
	CreateContentDraft(ctx sdk.Context, creator sdk.AccAddress, channelID uint64, title, contentURI, metadataURI string, proposalID uint64, votingPeriod uint64) (uint64, error)
	CastVote(ctx sdk.Context, voter sdk.AccAddress, draftID uint64, support bool) (sdk.Int, error)
	ExecuteContentApproval(ctx sdk.Context, draftID uint64) (bool, error)
	SetQuorumThreshold(ctx sdk.Context, sender sdk.AccAddress, threshold uint64) error
	SetMinVotingPeriod(ctx sdk.Context, sender sdk.AccAddress, period uint64) error
	TransferOwnership(ctx sdk.Context, sender, newOwner sdk.AccAddress) error
}

var _ ContentKeeper = Keeper{}

type msgServer struct {
	keeper ContentKeeper
}

// NewMsgServerImpl returns an implementation of the content MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(k ContentKeeper) types.MsgServer {
	return &msgServer{keeper: k}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) CreateContentDraft(goCtx context.Context, msg *types.MsgCreateContentDraft) (*types.MsgCreateContentDraftResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "creator: %s", err)
	}
	id, err := m.keeper.CreateContentDraft(ctx, creator, msg.ChannelID, msg.Title, msg.ContentURI, msg.MetadataURI, msg.ProposalID, msg.VotingPeriod)
	if err != nil {
		return nil, err
	}
	defer telemetry.IncrCounter(1, types.ModuleName, "draft", "created")
	emitMessageEvent(ctx, msg.Creator)
	return &types.MsgCreateContentDraftResponse{DraftID: id}, nil
}

func (m msgServer) CastVote(goCtx context.Context, msg *types.MsgCastVote) (*types.MsgCastVoteResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	voter, err := sdk.AccAddressFromBech32(msg.Voter)
	if err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "voter: %s", err)
	}
	weight, err := m.keeper.CastVote(ctx, voter, msg.DraftID, msg.Support)
	if err != nil {
		return nil, err
	}
	defer telemetry.IncrCounter(1, types.ModuleName, "vote")
	emitMessageEvent(ctx, msg.Voter)
	return &types.MsgCastVoteResponse{Weight: weight}, nil
}

func (m msgServer) ExecuteContentApproval(goCtx context.Context, msg *types.MsgExecuteContentApproval) (*types.MsgExecuteContentApprovalResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	approved, err := m.keeper.ExecuteContentApproval(ctx, msg.DraftID)
	if err != nil {
		return nil, err
	}
	outcome := "rejected"
	if approved {
		outcome = "approved"
	}
	defer telemetry.IncrCounter(1, types.ModuleName, "draft", outcome)
	emitMessageEvent(ctx, msg.Sender)
	return &types.MsgExecuteContentApprovalResponse{Approved: approved}, nil
}

func (m msgServer) SetQuorumThreshold(goCtx context.Context, msg *types.MsgSetQuorumThreshold) (*types.MsgSetQuorumThresholdResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "sender: %s", err)
	}
	if err := m.keeper.SetQuorumThreshold(ctx, sender, msg.QuorumThreshold); err != nil {
		return nil, err
	}
	emitMessageEvent(ctx, msg.Sender)
	return &types.MsgSetQuorumThresholdResponse{}, nil
}

func (m msgServer) SetMinVotingPeriod(goCtx context.Context, msg *types.MsgSetMinVotingPeriod) (*types.MsgSetMinVotingPeriodResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "sender: %s", err)
	}
	if err := m.keeper.SetMinVotingPeriod(ctx, sender, msg.MinVotingPeriod); err != nil {
		return nil, err
	}
	emitMessageEvent(ctx, msg.Sender)
	return &types.MsgSetMinVotingPeriodResponse{}, nil
}

func (m msgServer) TransferOwnership(goCtx context.Context, msg *types.MsgTransferOwnership) (*types.MsgTransferOwnershipResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "sender: %s", err)
	}
	newOwner, err := sdk.AccAddressFromBech32(msg.NewOwner)
	if err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "new owner: %s", err)
	}
	if err := m.keeper.TransferOwnership(ctx, sender, newOwner); err != nil {
		return nil, err
	}
	emitMessageEvent(ctx, msg.Sender)
	return &types.MsgTransferOwnershipResponse{}, nil
}

func emitMessageEvent(ctx sdk.Context, sender string) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		sdk.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(sdk.AttributeKeySender, sender),
	))
}
