package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the server API for the content module messages
type MsgServer interface {
	// CreateContentDraft submits a draft and opens its voting window
	CreateContentDraft(context.Context, *MsgCreateContentDraft) (*MsgCreateContentDraftResponse, error)
	// CastVote records a weighted vote
	CastVote(context.Context, *MsgCastVote) (*MsgCastVoteResponse, error)
	// ExecuteContentApproval resolves a draft once
	ExecuteContentApproval(context.Context, *MsgExecuteContentApproval) (*MsgExecuteContentApprovalResponse, error)
	SetQuorumThreshold(context.Context, *MsgSetQuorumThreshold) (*MsgSetQuorumThresholdResponse, error)
	SetMinVotingPeriod(context.Context, *MsgSetMinVotingPeriod) (*MsgSetMinVotingPeriodResponse, error)
	TransferOwnership(context.Context, *MsgTransferOwnership) (*MsgTransferOwnershipResponse, error)
}

// MsgCreateContentDraftResponse returns the id of the new draft
type MsgCreateContentDraftResponse struct {
	DraftID uint64 `json:"draft_id" yaml:"draft_id"`
}

// MsgCastVoteResponse returns the weight that was counted
type MsgCastVoteResponse struct {
	Weight sdk.Int `json:"weight" yaml:"weight"`
}

// MsgExecuteContentApprovalResponse returns the outcome
type MsgExecuteContentApprovalResponse struct {
	Approved bool `json:"approved" yaml:"approved"`
}

type MsgSetQuorumThresholdResponse struct{}

type MsgSetMinVotingPeriodResponse struct{}

type MsgTransferOwnershipResponse struct{}

func (m *MsgCreateContentDraftResponse) Reset()            { *m = MsgCreateContentDraftResponse{} }
func (m MsgCreateContentDraftResponse) String() string     { return yamlString(m) }
func (*MsgCreateContentDraftResponse) ProtoMessage()       {}
func (m *MsgCastVoteResponse) Reset()                      { *m = MsgCastVoteResponse{} }
func (m MsgCastVoteResponse) String() string               { return yamlString(m) }
func (*MsgCastVoteResponse) ProtoMessage()                 {}
func (m *MsgExecuteContentApprovalResponse) Reset()        { *m = MsgExecuteContentApprovalResponse{} }
func (m MsgExecuteContentApprovalResponse) String() string { return yamlString(m) }
func (*MsgExecuteContentApprovalResponse) ProtoMessage()   {}
func (m *MsgSetQuorumThresholdResponse) Reset()            { *m = MsgSetQuorumThresholdResponse{} }
func (m MsgSetQuorumThresholdResponse) String() string     { return yamlString(m) }
func (*MsgSetQuorumThresholdResponse) ProtoMessage()       {}
func (m *MsgSetMinVotingPeriodResponse) Reset()            { *m = MsgSetMinVotingPeriodResponse{} }
func (m MsgSetMinVotingPeriodResponse) String() string     { return yamlString(m) }
func (*MsgSetMinVotingPeriodResponse) ProtoMessage()       {}
func (m *MsgTransferOwnershipResponse) Reset()             { *m = MsgTransferOwnershipResponse{} }
func (m MsgTransferOwnershipResponse) String() string      { return yamlString(m) }
func (*MsgTransferOwnershipResponse) ProtoMessage()        {}
