package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SmartQuerier executes a smart query against a contract
type SmartQuerier interface {
	QuerySmart(ctx sdk.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error)
}

// SharesLedger is the read only view on the external per channel share registry
type SharesLedger interface {
	BalanceOf(ctx sdk.Context, channelID uint64, account sdk.AccAddress) (sdk.Int, error)
	TotalShares(ctx sdk.Context, channelID uint64) (sdk.Int, error)
}
