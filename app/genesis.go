package app

import (
	"encoding/json"

	"github.com/cosmos/cosmos-sdk/std"
	"github.com/cosmos/cosmos-sdk/x/auth/legacy/legacytx"

	appparams "github.com/knowscroll/contentgov/app/params"
)

// GenesisState is the app_state of the genesis file, raw module JSON keyed by module name.
// Both modules encode their section with amino JSON.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState returns the module defaults. The content section has no owner and
// no shares ledger yet and does not validate before both are set.
func NewDefaultGenesisState() GenesisState {
	return ModuleBasics.DefaultGenesis(MakeEncodingConfig().Marshaler)
}

// MakeEncodingConfig returns the codecs with the std types, StdTx and the module msgs registered.
// The amino codec is sealed.
func MakeEncodingConfig() appparams.EncodingConfig {
	encodingConfig := appparams.MakeEncodingConfig()
	std.RegisterLegacyAminoCodec(encodingConfig.Amino)
	legacytx.RegisterLegacyAminoCodec(encodingConfig.Amino)
	ModuleBasics.RegisterLegacyAminoCodec(encodingConfig.Amino)
	encodingConfig.Amino.Seal()

	std.RegisterInterfaces(encodingConfig.InterfaceRegistry)
	ModuleBasics.RegisterInterfaces(encodingConfig.InterfaceRegistry)
	return encodingConfig
}
