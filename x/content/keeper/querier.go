package keeper

import (
	"strconv"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/knowscroll/contentgov/x/content/types"
)

// NewQuerier creates a new legacy querier for the content module. Responses are amino JSON.
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, _ abci.RequestQuery) ([]byte, error) {
		if len(path) == 0 {
			return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRequest, "empty query path")
		}
		var (
			rsp interface{}
			err error
		)
		switch path[0] {
		case types.QueryContentDraft:
			rsp, err = queryContentDraft(ctx, path[1:], k)
		case types.QueryChannelContentDrafts:
			rsp, err = queryChannelContentDrafts(ctx, path[1:], k)
		case types.QueryTotalContentDrafts:
			rsp = types.QueryTotalContentDraftsResponse{Total: k.GetTotalContentDrafts(ctx)}
		case types.QueryHasVoted:
			rsp, err = queryHasVoted(ctx, path[1:], k)
		case types.QueryVotes:
			rsp, err = queryVotes(ctx, path[1:], k)
		case types.QueryParams:
			rsp = k.GetParams(ctx)
		case types.QueryOwner:
			rsp = types.QueryAddressResponse{Address: k.GetOwner(ctx).String()}
		case types.QuerySharesLedger:
			addr, lerr := k.GetSharesLedgerAddress(ctx)
			rsp, err = types.QueryAddressResponse{Address: addr.String()}, lerr
		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}
		if err != nil {
			return nil, err
		}
		bz, err := codec.MarshalJSONIndent(legacyQuerierCdc, rsp)
		if err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
		}
		return bz, nil
	}
}

func queryContentDraft(ctx sdk.Context, args []string, k Keeper) (interface{}, error) {
	if len(args) != 1 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "draft id required")
	}
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	draft, err := k.GetContentDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	return types.QueryContentDraftResponse{Draft: draft, Status: draft.Status(ctx.BlockTime())}, nil
}

func queryChannelContentDrafts(ctx sdk.Context, args []string, k Keeper) (interface{}, error) {
	if len(args) != 1 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "channel id required")
	}
	channelID, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	return types.QueryChannelContentDraftsResponse{
		ChannelID: channelID,
		DraftIDs:  k.GetChannelContentDrafts(ctx, channelID),
	}, nil
}

func queryHasVoted(ctx sdk.Context, args []string, k Keeper) (interface{}, error) {
	if len(args) != 2 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "draft id and voter address required")
	}
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	voter, err := sdk.AccAddressFromBech32(args[1])
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	return types.QueryHasVotedResponse{DraftID: id, Voter: voter.String(), Voted: k.HasVoted(ctx, id, voter)}, nil
}

func queryVotes(ctx sdk.Context, args []string, k Keeper) (interface{}, error) {
	if len(args) != 1 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "draft id required")
	}
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	if _, err := k.GetContentDraft(ctx, id); err != nil {
		return nil, err
	}
	return types.QueryVotesResponse{Votes: k.GetVotes(ctx, id)}, nil
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "invalid id %q", s)
	}
	return id, nil
}
