package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/tendermint/tendermint/libs/rand"
)

// RandomAccAddress returns a random account address
func RandomAccAddress() sdk.AccAddress {
	return rand.Bytes(address.Len)
}
