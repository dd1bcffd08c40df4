package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName is the name of the content governance module
	ModuleName = "content"

	// StoreKey is the string store representation
	StoreKey = ModuleName

	// QuerierRoute is the querier route for the content module
	QuerierRoute = ModuleName

	// RouterKey is the msg router key for the content module
	RouterKey = ModuleName
)

// nolint
var (
	DraftPrefix        = []byte{0x01}
	ChannelDraftPrefix = []byte{0x02}
	VotePrefix         = []byte{0x03}
	DraftSequenceKey   = []byte{0x04}
	ParamsKey          = []byte{0x05}
	OwnerKey           = []byte{0x06}
	SharesLedgerKey    = []byte{0x07}
)

// GetDraftKey returns the store key of a draft by id
func GetDraftKey(draftID uint64) []byte {
	return append(DraftPrefix, sdk.Uint64ToBigEndian(draftID)...)
}

// GetChannelDraftsPrefix returns the prefix of the channel index. Keys below are ordered by draft id.
func GetChannelDraftsPrefix(channelID uint64) []byte {
	return append(ChannelDraftPrefix, sdk.Uint64ToBigEndian(channelID)...)
}

// GetChannelDraftKey returns the channel index key for a draft
func GetChannelDraftKey(channelID, draftID uint64) []byte {
	return append(GetChannelDraftsPrefix(channelID), sdk.Uint64ToBigEndian(draftID)...)
}

// GetVotesPrefix returns the prefix of all vote records of a draft
func GetVotesPrefix(draftID uint64) []byte {
	return append(VotePrefix, sdk.Uint64ToBigEndian(draftID)...)
}

// GetVoteKey returns the store key of the vote record of a voter on a draft
func GetVoteKey(draftID uint64, voter sdk.AccAddress) []byte {
	return append(GetVotesPrefix(draftID), address.MustLengthPrefix(voter)...)
}
