package content

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"

	"github.com/knowscroll/contentgov/x/content/keeper"
	"github.com/knowscroll/contentgov/x/content/types"
)

// NewHandler constructor
func NewHandler(k keeper.ContentKeeper) sdk.Handler {
	return newHandler(keeper.NewMsgServerImpl(k))
}

// internal constructor for testing
func newHandler(msgServer types.MsgServer) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())
		goCtx := sdk.WrapSDKContext(ctx)

		switch msg := msg.(type) {
		case *types.MsgCreateContentDraft:
			res, err := msgServer.CreateContentDraft(goCtx, msg)
			return wrapResult(ctx, res, err)
		case *types.MsgCastVote:
			res, err := msgServer.CastVote(goCtx, msg)
			return wrapResult(ctx, res, err)
		case *types.MsgExecuteContentApproval:
			res, err := msgServer.ExecuteContentApproval(goCtx, msg)
			return wrapResult(ctx, res, err)
		case *types.MsgSetQuorumThreshold:
			res, err := msgServer.SetQuorumThreshold(goCtx, msg)
			return wrapResult(ctx, res, err)
		case *types.MsgSetMinVotingPeriod:
			res, err := msgServer.SetMinVotingPeriod(goCtx, msg)
			return wrapResult(ctx, res, err)
		case *types.MsgTransferOwnership:
			res, err := msgServer.TransferOwnership(goCtx, msg)
			return wrapResult(ctx, res, err)
		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}

// wrapResult builds the result with the amino JSON encoded response as data.
// The response types are not generated protobuf messages so sdk.WrapServiceResult can not be used.
func wrapResult(ctx sdk.Context, res proto.Message, err error) (*sdk.Result, error) {
	if err != nil {
		return nil, err
	}
	var data []byte
	if res != nil {
		if data, err = types.ModuleCdc.MarshalJSON(res); err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
		}
	}
	return &sdk.Result{Data: data, Events: ctx.EventManager().ABCIEvents()}, nil
}
