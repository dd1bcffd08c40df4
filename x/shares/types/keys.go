package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName is the name of the shares registry module
	ModuleName = "shares"

	// StoreKey is the string store representation
	StoreKey = ModuleName

	// QuerierRoute is the querier route for the shares module
	QuerierRoute = ModuleName
)

// nolint
var (
	BalancePrefix = []byte{0x01}
	TotalPrefix   = []byte{0x02}
)

// LedgerAddress is the address the registry answers smart queries for
var LedgerAddress = authtypes.NewModuleAddress(ModuleName)

// GetChannelBalancesPrefix returns the prefix of all balances of a channel
func GetChannelBalancesPrefix(channelID uint64) []byte {
	return append(BalancePrefix, sdk.Uint64ToBigEndian(channelID)...)
}

// GetBalanceKey returns the store key of an account balance in a channel
func GetBalanceKey(channelID uint64, account sdk.AccAddress) []byte {
	return append(GetChannelBalancesPrefix(channelID), address.MustLengthPrefix(account)...)
}

// GetTotalKey returns the store key of the total shares of a channel
func GetTotalKey(channelID uint64) []byte {
	return append(TotalPrefix, sdk.Uint64ToBigEndian(channelID)...)
}
