package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/auth/legacy/legacytx"
	yaml "gopkg.in/yaml.v2"
)

const (
	TypeMsgCreateContentDraft     = "create_content_draft"
	TypeMsgCastVote               = "cast_vote"
	TypeMsgExecuteContentApproval = "execute_content_approval"
	TypeMsgSetQuorumThreshold     = "set_quorum_threshold"
	TypeMsgSetMinVotingPeriod     = "set_min_voting_period"
	TypeMsgTransferOwnership      = "transfer_ownership"
)

var (
	_ sdk.Msg = &MsgCreateContentDraft{}
	_ sdk.Msg = &MsgCastVote{}
	_ sdk.Msg = &MsgExecuteContentApproval{}
	_ sdk.Msg = &MsgSetQuorumThreshold{}
	_ sdk.Msg = &MsgSetMinVotingPeriod{}
	_ sdk.Msg = &MsgTransferOwnership{}

	_ legacytx.LegacyMsg = &MsgCreateContentDraft{}
	_ legacytx.LegacyMsg = &MsgCastVote{}
	_ legacytx.LegacyMsg = &MsgExecuteContentApproval{}
	_ legacytx.LegacyMsg = &MsgSetQuorumThreshold{}
	_ legacytx.LegacyMsg = &MsgSetMinVotingPeriod{}
	_ legacytx.LegacyMsg = &MsgTransferOwnership{}
)

// MsgCreateContentDraft submits a new content draft for a channel vote.
// ProposalID is stored as given; it is not checked against a governance proposal registry.
type MsgCreateContentDraft struct {
	Creator      string `json:"creator" yaml:"creator"`
	ChannelID    uint64 `json:"channel_id" yaml:"channel_id"`
	Title        string `json:"title" yaml:"title"`
	ContentURI   string `json:"content_uri" yaml:"content_uri"`
	MetadataURI  string `json:"metadata_uri" yaml:"metadata_uri"`
	ProposalID   uint64 `json:"proposal_id" yaml:"proposal_id"`
	VotingPeriod uint64 `json:"voting_period" yaml:"voting_period"`
}

// NewMsgCreateContentDraft constructor
func NewMsgCreateContentDraft(
	creator sdk.AccAddress,
	channelID uint64,
	title, contentURI, metadataURI string,
	proposalID uint64,
	votingPeriod uint64,
) *MsgCreateContentDraft {
	return &MsgCreateContentDraft{
		Creator:      creator.String(),
		ChannelID:    channelID,
		Title:        title,
		ContentURI:   contentURI,
		MetadataURI:  metadataURI,
		ProposalID:   proposalID,
		VotingPeriod: votingPeriod,
	}
}

// Route implements the sdk.Msg interface.
func (msg MsgCreateContentDraft) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgCreateContentDraft) Type() string { return TypeMsgCreateContentDraft }

// GetSigners implements the sdk.Msg interface.
func (msg MsgCreateContentDraft) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Creator)
}

// GetSignBytes returns the message bytes to sign over.
func (msg MsgCreateContentDraft) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface.
// The voting period is checked against the min voting period param by the keeper.
func (msg MsgCreateContentDraft) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrap(err, "creator")
	}
	if msg.Title == "" {
		return ErrEmptyTitle
	}
	if msg.ContentURI == "" {
		return ErrEmptyContentURI
	}
	if msg.VotingPeriod == 0 {
		return sdkerrors.Wrap(ErrPeriodTooShort, "voting period must not be 0")
	}
	return ValidateMaxVotingPeriod(msg.VotingPeriod)
}

func (msg *MsgCreateContentDraft) Reset()        { *msg = MsgCreateContentDraft{} }
func (msg MsgCreateContentDraft) String() string { return yamlString(msg) }
func (*MsgCreateContentDraft) ProtoMessage()     {}

// MsgCastVote casts the voter's current channel share balance for or against a draft.
type MsgCastVote struct {
	Voter   string `json:"voter" yaml:"voter"`
	DraftID uint64 `json:"draft_id" yaml:"draft_id"`
	Support bool   `json:"support" yaml:"support"`
}

// NewMsgCastVote constructor
func NewMsgCastVote(voter sdk.AccAddress, draftID uint64, support bool) *MsgCastVote {
	return &MsgCastVote{Voter: voter.String(), DraftID: draftID, Support: support}
}

// Route implements the sdk.Msg interface.
func (msg MsgCastVote) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgCastVote) Type() string { return TypeMsgCastVote }

// GetSigners implements the sdk.Msg interface.
func (msg MsgCastVote) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Voter)
}

// GetSignBytes returns the message bytes to sign over.
func (msg MsgCastVote) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgCastVote) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Voter); err != nil {
		return sdkerrors.Wrap(err, "voter")
	}
	if msg.DraftID == 0 {
		return sdkerrors.Wrap(ErrNotFound, "draft id must not be 0")
	}
	return nil
}

func (msg *MsgCastVote) Reset()        { *msg = MsgCastVote{} }
func (msg MsgCastVote) String() string { return yamlString(msg) }
func (*MsgCastVote) ProtoMessage()     {}

// MsgExecuteContentApproval resolves a draft after its voting window closed. Anybody can send it.
type MsgExecuteContentApproval struct {
	Sender  string `json:"sender" yaml:"sender"`
	DraftID uint64 `json:"draft_id" yaml:"draft_id"`
}

// NewMsgExecuteContentApproval constructor
func NewMsgExecuteContentApproval(sender sdk.AccAddress, draftID uint64) *MsgExecuteContentApproval {
	return &MsgExecuteContentApproval{Sender: sender.String(), DraftID: draftID}
}

// Route implements the sdk.Msg interface.
func (msg MsgExecuteContentApproval) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgExecuteContentApproval) Type() string { return TypeMsgExecuteContentApproval }

// GetSigners implements the sdk.Msg interface.
func (msg MsgExecuteContentApproval) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Sender)
}

// GetSignBytes returns the message bytes to sign over.
func (msg MsgExecuteContentApproval) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgExecuteContentApproval) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "sender")
	}
	if msg.DraftID == 0 {
		return sdkerrors.Wrap(ErrNotFound, "draft id must not be 0")
	}
	return nil
}

func (msg *MsgExecuteContentApproval) Reset()        { *msg = MsgExecuteContentApproval{} }
func (msg MsgExecuteContentApproval) String() string { return yamlString(msg) }
func (*MsgExecuteContentApproval) ProtoMessage()     {}

// MsgSetQuorumThreshold updates the quorum threshold. Owner only.
type MsgSetQuorumThreshold struct {
	Sender          string `json:"sender" yaml:"sender"`
	QuorumThreshold uint64 `json:"quorum_threshold" yaml:"quorum_threshold"`
}

// NewMsgSetQuorumThreshold constructor
func NewMsgSetQuorumThreshold(sender sdk.AccAddress, threshold uint64) *MsgSetQuorumThreshold {
	return &MsgSetQuorumThreshold{Sender: sender.String(), QuorumThreshold: threshold}
}

// Route implements the sdk.Msg interface.
func (msg MsgSetQuorumThreshold) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgSetQuorumThreshold) Type() string { return TypeMsgSetQuorumThreshold }

// GetSigners implements the sdk.Msg interface.
func (msg MsgSetQuorumThreshold) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Sender)
}

// GetSignBytes returns the message bytes to sign over.
func (msg MsgSetQuorumThreshold) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgSetQuorumThreshold) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "sender")
	}
	return ValidateQuorumThreshold(msg.QuorumThreshold)
}

func (msg *MsgSetQuorumThreshold) Reset()        { *msg = MsgSetQuorumThreshold{} }
func (msg MsgSetQuorumThreshold) String() string { return yamlString(msg) }
func (*MsgSetQuorumThreshold) ProtoMessage()     {}

// MsgSetMinVotingPeriod updates the minimum voting period. Owner only.
type MsgSetMinVotingPeriod struct {
	Sender          string `json:"sender" yaml:"sender"`
	MinVotingPeriod uint64 `json:"min_voting_period" yaml:"min_voting_period"`
}

// NewMsgSetMinVotingPeriod constructor
func NewMsgSetMinVotingPeriod(sender sdk.AccAddress, period uint64) *MsgSetMinVotingPeriod {
	return &MsgSetMinVotingPeriod{Sender: sender.String(), MinVotingPeriod: period}
}

// Route implements the sdk.Msg interface.
func (msg MsgSetMinVotingPeriod) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgSetMinVotingPeriod) Type() string { return TypeMsgSetMinVotingPeriod }

// GetSigners implements the sdk.Msg interface.
func (msg MsgSetMinVotingPeriod) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Sender)
}

// GetSignBytes returns the message bytes to sign over.
func (msg MsgSetMinVotingPeriod) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgSetMinVotingPeriod) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "sender")
	}
	return ValidateMinVotingPeriod(msg.MinVotingPeriod)
}

func (msg *MsgSetMinVotingPeriod) Reset()        { *msg = MsgSetMinVotingPeriod{} }
func (msg MsgSetMinVotingPeriod) String() string { return yamlString(msg) }
func (*MsgSetMinVotingPeriod) ProtoMessage()     {}

// MsgTransferOwnership hands the configuration authority to a new owner. Owner only.
type MsgTransferOwnership struct {
	Sender   string `json:"sender" yaml:"sender"`
	NewOwner string `json:"new_owner" yaml:"new_owner"`
}

// NewMsgTransferOwnership constructor
func NewMsgTransferOwnership(sender, newOwner sdk.AccAddress) *MsgTransferOwnership {
	return &MsgTransferOwnership{Sender: sender.String(), NewOwner: newOwner.String()}
}

// Route implements the sdk.Msg interface.
func (msg MsgTransferOwnership) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgTransferOwnership) Type() string { return TypeMsgTransferOwnership }

// GetSigners implements the sdk.Msg interface.
func (msg MsgTransferOwnership) GetSigners() []sdk.AccAddress {
	return mustSigners(msg.Sender)
}

// GetSignBytes returns the message bytes to sign over.
func (msg MsgTransferOwnership) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgTransferOwnership) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "sender")
	}
	if msg.NewOwner == "" {
		return sdkerrors.Wrap(ErrZeroAddress, "new owner")
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewOwner); err != nil {
		return sdkerrors.Wrap(err, "new owner")
	}
	return nil
}

func (msg *MsgTransferOwnership) Reset()        { *msg = MsgTransferOwnership{} }
func (msg MsgTransferOwnership) String() string { return yamlString(msg) }
func (*MsgTransferOwnership) ProtoMessage()     {}

// mustSigners panics on an invalid address. ValidateBasic runs before signers are read.
func mustSigners(addr string) []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

func yamlString(o interface{}) string {
	out, _ := yaml.Marshal(o)
	return string(out)
}
