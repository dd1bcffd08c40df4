package types

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Balance is the share amount of an account in a channel
type Balance struct {
	ChannelID uint64  `json:"channel_id" yaml:"channel_id"`
	Address   string  `json:"address" yaml:"address"`
	Amount    sdk.Int `json:"amount" yaml:"amount"`
}

// ValidateBasic stateless checks
func (b Balance) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
		return sdkerrors.Wrap(err, "address")
	}
	if b.Amount.IsNil() || b.Amount.IsNegative() {
		return ErrNegativeShares
	}
	return nil
}

// GenesisState is the shares registry state
type GenesisState struct {
	Balances []Balance `json:"balances" yaml:"balances"`
}

// DefaultGenesisState returns an empty registry
func DefaultGenesisState() *GenesisState {
	return &GenesisState{Balances: []Balance{}}
}

// Validate performs basic genesis state validation
func (g GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(g.Balances))
	for i, b := range g.Balances {
		if err := b.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "balance %d", i)
		}
		k := fmt.Sprintf("%d/%s", b.ChannelID, b.Address)
		if _, exists := seen[k]; exists {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "duplicate balance for %s in channel %d", b.Address, b.ChannelID)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// ModuleCdc is the amino codec of the shares module
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	ModuleCdc.Seal()
}
