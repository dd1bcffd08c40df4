package content

import (
	"context"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abcitypes "github.com/tendermint/tendermint/abci/types"

	"github.com/knowscroll/contentgov/x/content/types"
)

func TestHandler(t *testing.T) {
	addr := types.RandomAccAddress()
	specs := map[string]struct {
		src       sdk.Msg
		mock      MsgServerMock
		expErr    *sdkerrors.Error
		expResult *sdk.Result
	}{
		"MsgCreateContentDraft": {
			src: types.MsgCreateContentDraftFixture(),
			mock: MsgServerMock{
				CreateContentDraftFn: func(ctx context.Context, msg *types.MsgCreateContentDraft) (*types.MsgCreateContentDraftResponse, error) {
					return &types.MsgCreateContentDraftResponse{DraftID: 1}, nil
				},
			},
			expResult: &sdk.Result{Data: []byte(`{"draft_id":"1"}`), Events: []abcitypes.Event{}},
		},
		"MsgCreateContentDraft with events": {
			src: types.MsgCreateContentDraftFixture(),
			mock: MsgServerMock{
				CreateContentDraftFn: func(ctx context.Context, msg *types.MsgCreateContentDraft) (*types.MsgCreateContentDraftResponse, error) {
					sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.Event{Type: "foo"})
					return &types.MsgCreateContentDraftResponse{DraftID: 2}, nil
				},
			},
			expResult: &sdk.Result{Data: []byte(`{"draft_id":"2"}`), Events: []abcitypes.Event{{Type: "foo"}}},
		},
		"MsgCreateContentDraft error returned": {
			src: types.MsgCreateContentDraftFixture(),
			mock: MsgServerMock{
				CreateContentDraftFn: func(ctx context.Context, msg *types.MsgCreateContentDraft) (*types.MsgCreateContentDraftResponse, error) {
					return nil, types.ErrEmptyTitle
				},
			},
			expErr: types.ErrEmptyTitle,
		},
		"MsgCastVote": {
			src: types.NewMsgCastVote(addr, 1, true),
			mock: MsgServerMock{
				CastVoteFn: func(ctx context.Context, msg *types.MsgCastVote) (*types.MsgCastVoteResponse, error) {
					return &types.MsgCastVoteResponse{Weight: sdk.NewInt(50)}, nil
				},
			},
			expResult: &sdk.Result{Data: []byte(`{"weight":"50"}`), Events: []abcitypes.Event{}},
		},
		"MsgExecuteContentApproval": {
			src: types.NewMsgExecuteContentApproval(addr, 1),
			mock: MsgServerMock{
				ExecuteContentApprovalFn: func(ctx context.Context, msg *types.MsgExecuteContentApproval) (*types.MsgExecuteContentApprovalResponse, error) {
					return &types.MsgExecuteContentApprovalResponse{Approved: true}, nil
				},
			},
			expResult: &sdk.Result{Data: []byte(`{"approved":true}`), Events: []abcitypes.Event{}},
		},
		"MsgSetQuorumThreshold": {
			src: types.NewMsgSetQuorumThreshold(addr, 1000),
			mock: MsgServerMock{
				SetQuorumThresholdFn: func(ctx context.Context, msg *types.MsgSetQuorumThreshold) (*types.MsgSetQuorumThresholdResponse, error) {
					return &types.MsgSetQuorumThresholdResponse{}, nil
				},
			},
			expResult: &sdk.Result{Data: []byte(`{}`), Events: []abcitypes.Event{}},
		},
		"MsgSetMinVotingPeriod": {
			src: types.NewMsgSetMinVotingPeriod(addr, 7200),
			mock: MsgServerMock{
				SetMinVotingPeriodFn: func(ctx context.Context, msg *types.MsgSetMinVotingPeriod) (*types.MsgSetMinVotingPeriodResponse, error) {
					return nil, sdkerrors.ErrUnauthorized
				},
			},
			expErr: sdkerrors.ErrUnauthorized,
		},
		"MsgTransferOwnership": {
			src: types.NewMsgTransferOwnership(addr, types.RandomAccAddress()),
			mock: MsgServerMock{
				TransferOwnershipFn: func(ctx context.Context, msg *types.MsgTransferOwnership) (*types.MsgTransferOwnershipResponse, error) {
					return &types.MsgTransferOwnershipResponse{}, nil
				},
			},
			expResult: &sdk.Result{Data: []byte(`{}`), Events: []abcitypes.Event{}},
		},
		"unknown message": {
			src:    &banktypes.MsgSend{},
			expErr: sdkerrors.ErrUnknownRequest,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			h := newHandler(spec.mock)
			ctx := sdk.Context{}.WithContext(context.Background())

			// when
			res, gotErr := h(ctx, spec.src)

			// then
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %#+v", gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expResult, res)
		})
	}
}

var _ types.MsgServer = MsgServerMock{}

type MsgServerMock struct {
	CreateContentDraftFn     func(ctx context.Context, msg *types.MsgCreateContentDraft) (*types.MsgCreateContentDraftResponse, error)
	CastVoteFn               func(ctx context.Context, msg *types.MsgCastVote) (*types.MsgCastVoteResponse, error)
	ExecuteContentApprovalFn func(ctx context.Context, msg *types.MsgExecuteContentApproval) (*types.MsgExecuteContentApprovalResponse, error)
	SetQuorumThresholdFn     func(ctx context.Context, msg *types.MsgSetQuorumThreshold) (*types.MsgSetQuorumThresholdResponse, error)
	SetMinVotingPeriodFn     func(ctx context.Context, msg *types.MsgSetMinVotingPeriod) (*types.MsgSetMinVotingPeriodResponse, error)
	TransferOwnershipFn      func(ctx context.Context, msg *types.MsgTransferOwnership) (*types.MsgTransferOwnershipResponse, error)
}

func (m MsgServerMock) CreateContentDraft(ctx context.Context, msg *types.MsgCreateContentDraft) (*types.MsgCreateContentDraftResponse, error) {
	if m.CreateContentDraftFn == nil {
		panic("not expected to be called")
	}
	return m.CreateContentDraftFn(ctx, msg)
}

func (m MsgServerMock) CastVote(ctx context.Context, msg *types.MsgCastVote) (*types.MsgCastVoteResponse, error) {
	if m.CastVoteFn == nil {
		panic("not expected to be called")
	}
	return m.CastVoteFn(ctx, msg)
}

func (m MsgServerMock) ExecuteContentApproval(ctx context.Context, msg *types.MsgExecuteContentApproval) (*types.MsgExecuteContentApprovalResponse, error) {
	if m.ExecuteContentApprovalFn == nil {
		panic("not expected to be called")
	}
	return m.ExecuteContentApprovalFn(ctx, msg)
}

func (m MsgServerMock) SetQuorumThreshold(ctx context.Context, msg *types.MsgSetQuorumThreshold) (*types.MsgSetQuorumThresholdResponse, error) {
	if m.SetQuorumThresholdFn == nil {
		panic("not expected to be called")
	}
	return m.SetQuorumThresholdFn(ctx, msg)
}

func (m MsgServerMock) SetMinVotingPeriod(ctx context.Context, msg *types.MsgSetMinVotingPeriod) (*types.MsgSetMinVotingPeriodResponse, error) {
	if m.SetMinVotingPeriodFn == nil {
		panic("not expected to be called")
	}
	return m.SetMinVotingPeriodFn(ctx, msg)
}

func (m MsgServerMock) TransferOwnership(ctx context.Context, msg *types.MsgTransferOwnership) (*types.MsgTransferOwnershipResponse, error) {
	if m.TransferOwnershipFn == nil {
		panic("not expected to be called")
	}
	return m.TransferOwnershipFn(ctx, msg)
}
