package keeper

import (
	"strconv"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/knowscroll/contentgov/x/shares/types"
)

// legacy querier routes
const (
	QueryBalance     = "balance"
	QueryTotalShares = "total"
)

// NewQuerier answers balance/{channel}/{address} and total/{channel}
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, _ abci.RequestQuery) ([]byte, error) {
		if len(path) < 2 {
			return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRequest, "channel id required")
		}
		channelID, err := strconv.ParseUint(path[1], 10, 64)
		if err != nil {
			return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "invalid channel id %q", path[1])
		}
		var rsp types.Balance
		switch path[0] {
		case QueryBalance:
			if len(path) != 3 {
				return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "address required")
			}
			account, err := sdk.AccAddressFromBech32(path[2])
			if err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
			}
			rsp = types.Balance{ChannelID: channelID, Address: account.String(), Amount: k.BalanceOf(ctx, channelID, account)}
		case QueryTotalShares:
			rsp = types.Balance{ChannelID: channelID, Amount: k.TotalShares(ctx, channelID)}
		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}
		bz, err := codec.MarshalJSONIndent(legacyQuerierCdc, rsp)
		if err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
		}
		return bz, nil
	}
}
