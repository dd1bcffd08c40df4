package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the content module messages on the given LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateContentDraft{}, "content/MsgCreateContentDraft", nil)
	cdc.RegisterConcrete(&MsgCastVote{}, "content/MsgCastVote", nil)
	cdc.RegisterConcrete(&MsgExecuteContentApproval{}, "content/MsgExecuteContentApproval", nil)
	cdc.RegisterConcrete(&MsgSetQuorumThreshold{}, "content/MsgSetQuorumThreshold", nil)
	cdc.RegisterConcrete(&MsgSetMinVotingPeriod{}, "content/MsgSetMinVotingPeriod", nil)
	cdc.RegisterConcrete(&MsgTransferOwnership{}, "content/MsgTransferOwnership", nil)
}

// ModuleCdc is the amino codec used for store values, sign bytes and JSON of the content module.
// There are no generated protobuf types for this module.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}
