package keeper

import (
	"context"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowscroll/contentgov/x/content/types"
)

func TestMsgServerCreateContentDraft(t *testing.T) {
	creator := types.RandomAccAddress()
	specs := map[string]struct {
		src    *types.MsgCreateContentDraft
		mock   ContentKeeperMock
		expRsp *types.MsgCreateContentDraftResponse
		expErr *sdkerrors.Error
	}{
		"all good": {
			src: types.MsgCreateContentDraftFixture(func(m *types.MsgCreateContentDraft) {
				m.Creator = creator.String()
			}),
			mock: ContentKeeperMock{
				CreateContentDraftFn: func(ctx sdk.Context, gotCreator sdk.AccAddress, channelID uint64, title, contentURI, metadataURI string, proposalID uint64, votingPeriod uint64) (uint64, error) {
					assert.Equal(t, creator, gotCreator)
					assert.Equal(t, uint64(1), channelID)
					assert.Equal(t, "Episode 1", title)
					assert.Equal(t, "ipfs://episode-1", contentURI)
					assert.Equal(t, uint64(7), proposalID)
					assert.Equal(t, uint64(86400), votingPeriod)
					return 5, nil
				},
			},
			expRsp: &types.MsgCreateContentDraftResponse{DraftID: 5},
		},
		"invalid creator": {
			src: types.MsgCreateContentDraftFixture(func(m *types.MsgCreateContentDraft) {
				m.Creator = "invalid"
			}),
			expErr: sdkerrors.ErrInvalidAddress,
		},
		"keeper fails": {
			src: types.MsgCreateContentDraftFixture(),
			mock: ContentKeeperMock{
				CreateContentDraftFn: func(ctx sdk.Context, creator sdk.AccAddress, channelID uint64, title, contentURI, metadataURI string, proposalID uint64, votingPeriod uint64) (uint64, error) {
					return 0, types.ErrPeriodTooShort
				},
			},
			expErr: types.ErrPeriodTooShort,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			em := sdk.NewEventManager()
			ctx := sdk.Context{}.WithContext(context.Background()).WithEventManager(em)
			s := NewMsgServerImpl(spec.mock)

			gotRsp, gotErr := s.CreateContentDraft(sdk.WrapSDKContext(ctx), spec.src)
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %#+v", gotErr)
				assert.Empty(t, em.Events())
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expRsp, gotRsp)
			require.Len(t, em.Events(), 1)
			assert.Equal(t, sdk.EventTypeMessage, em.Events()[0].Type)
			assert.Equal(t, map[string]string{
				sdk.AttributeKeyModule: types.ModuleName,
				sdk.AttributeKeySender: creator.String(),
			}, attributesMap(em.Events()[0]))
		})
	}
}

func TestMsgServerCastVote(t *testing.T) {
	voter := types.RandomAccAddress()
	specs := map[string]struct {
		src    *types.MsgCastVote
		mock   ContentKeeperMock
		expRsp *types.MsgCastVoteResponse
		expErr *sdkerrors.Error
	}{
		"all good": {
			src: types.NewMsgCastVote(voter, 1, true),
			mock: ContentKeeperMock{
				CastVoteFn: func(ctx sdk.Context, gotVoter sdk.AccAddress, draftID uint64, support bool) (sdk.Int, error) {
					assert.Equal(t, voter, gotVoter)
					assert.Equal(t, uint64(1), draftID)
					assert.True(t, support)
					return sdk.NewInt(50), nil
				},
			},
			expRsp: &types.MsgCastVoteResponse{Weight: sdk.NewInt(50)},
		},
		"invalid voter": {
			src:    &types.MsgCastVote{Voter: "invalid", DraftID: 1},
			expErr: sdkerrors.ErrInvalidAddress,
		},
		"keeper fails": {
			src: types.NewMsgCastVote(voter, 1, false),
			mock: ContentKeeperMock{
				CastVoteFn: func(ctx sdk.Context, voter sdk.AccAddress, draftID uint64, support bool) (sdk.Int, error) {
					return sdk.ZeroInt(), types.ErrNoSharesOwned
				},
			},
			expErr: types.ErrNoSharesOwned,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx := sdk.Context{}.WithContext(context.Background()).WithEventManager(sdk.NewEventManager())
			gotRsp, gotErr := NewMsgServerImpl(spec.mock).CastVote(sdk.WrapSDKContext(ctx), spec.src)
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %#+v", gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expRsp, gotRsp)
		})
	}
}

func TestMsgServerExecuteContentApproval(t *testing.T) {
	sender := types.RandomAccAddress()
	specs := map[string]struct {
		mock   ContentKeeperMock
		expRsp *types.MsgExecuteContentApprovalResponse
		expErr *sdkerrors.Error
	}{
		"approved": {
			mock: ContentKeeperMock{
				ExecuteContentApprovalFn: func(ctx sdk.Context, draftID uint64) (bool, error) {
					return true, nil
				},
			},
			expRsp: &types.MsgExecuteContentApprovalResponse{Approved: true},
		},
		"rejected": {
			mock: ContentKeeperMock{
				ExecuteContentApprovalFn: func(ctx sdk.Context, draftID uint64) (bool, error) {
					return false, nil
				},
			},
			expRsp: &types.MsgExecuteContentApprovalResponse{Approved: false},
		},
		"keeper fails": {
			mock: ContentKeeperMock{
				ExecuteContentApprovalFn: func(ctx sdk.Context, draftID uint64) (bool, error) {
					return false, types.ErrQuorumNotReached
				},
			},
			expErr: types.ErrQuorumNotReached,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx := sdk.Context{}.WithContext(context.Background()).WithEventManager(sdk.NewEventManager())
			gotRsp, gotErr := NewMsgServerImpl(spec.mock).ExecuteContentApproval(sdk.WrapSDKContext(ctx), types.NewMsgExecuteContentApproval(sender, 1))
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %#+v", gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expRsp, gotRsp)
		})
	}
}

func TestMsgServerConfigUpdates(t *testing.T) {
	sender, newOwner := types.RandomAccAddress(), types.RandomAccAddress()
	var captured []interface{}
	mock := ContentKeeperMock{
		SetQuorumThresholdFn: func(ctx sdk.Context, gotSender sdk.AccAddress, threshold uint64) error {
			assert.Equal(t, sender, gotSender)
			captured = append(captured, threshold)
			return nil
		},
		SetMinVotingPeriodFn: func(ctx sdk.Context, gotSender sdk.AccAddress, period uint64) error {
			assert.Equal(t, sender, gotSender)
			captured = append(captured, period)
			return nil
		},
		TransferOwnershipFn: func(ctx sdk.Context, gotSender, gotNewOwner sdk.AccAddress) error {
			assert.Equal(t, sender, gotSender)
			captured = append(captured, gotNewOwner)
			return sdkerrors.ErrUnauthorized
		},
	}
	ctx := sdk.WrapSDKContext(sdk.Context{}.WithContext(context.Background()).WithEventManager(sdk.NewEventManager()))
	s := NewMsgServerImpl(mock)

	_, err := s.SetQuorumThreshold(ctx, types.NewMsgSetQuorumThreshold(sender, 3000))
	require.NoError(t, err)
	_, err = s.SetMinVotingPeriod(ctx, types.NewMsgSetMinVotingPeriod(sender, 7200))
	require.NoError(t, err)
	_, err = s.TransferOwnership(ctx, types.NewMsgTransferOwnership(sender, newOwner))
	assert.True(t, sdkerrors.ErrUnauthorized.Is(err))

	assert.Equal(t, []interface{}{uint64(3000), uint64(7200), newOwner}, captured)
}
