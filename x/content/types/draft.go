package types

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	yaml "gopkg.in/yaml.v2"
)

// DraftStatus is the derived position of a draft in its lifecycle
type DraftStatus string

const (
	// DraftStatusOpen votes are accepted
	DraftStatusOpen DraftStatus = "open"

	// DraftStatusResolvable voting window closed, waiting for execution
	DraftStatusResolvable DraftStatus = "resolvable"

	DraftStatusApproved DraftStatus = "approved"
	DraftStatusRejected DraftStatus = "rejected"
)

// ContentDraft is an agent proposed piece of content that channel shareholders vote on.
// Approved is only meaningful when Executed is set.
type ContentDraft struct {
	ID           uint64    `json:"id" yaml:"id"`
	ChannelID    uint64    `json:"channel_id" yaml:"channel_id"`
	Title        string    `json:"title" yaml:"title"`
	ContentURI   string    `json:"content_uri" yaml:"content_uri"`
	MetadataURI  string    `json:"metadata_uri" yaml:"metadata_uri"`
	ProposalID   uint64    `json:"proposal_id" yaml:"proposal_id"`
	StartTime    time.Time `json:"start_time" yaml:"start_time"`
	EndTime      time.Time `json:"end_time" yaml:"end_time"`
	Creator      string    `json:"creator" yaml:"creator"`
	ForVotes     sdk.Int   `json:"for_votes" yaml:"for_votes"`
	AgainstVotes sdk.Int   `json:"against_votes" yaml:"against_votes"`
	Executed     bool      `json:"executed" yaml:"executed"`
	Approved     bool      `json:"approved" yaml:"approved"`
}

// NewContentDraft constructor. The voting window opens at startTime.
func NewContentDraft(
	id uint64,
	channelID uint64,
	title, contentURI, metadataURI string,
	proposalID uint64,
	startTime time.Time,
	votingPeriod time.Duration,
	creator sdk.AccAddress,
) ContentDraft {
	return ContentDraft{
		ID:           id,
		ChannelID:    channelID,
		Title:        title,
		ContentURI:   contentURI,
		MetadataURI:  metadataURI,
		ProposalID:   proposalID,
		StartTime:    startTime,
		EndTime:      startTime.Add(votingPeriod),
		Creator:      creator.String(),
		ForVotes:     sdk.ZeroInt(),
		AgainstVotes: sdk.ZeroInt(),
	}
}

// IsVotingOpen returns true while now is before the end time
func (d ContentDraft) IsVotingOpen(now time.Time) bool {
	return now.Before(d.EndTime)
}

// TotalVotes sum of for and against weights
func (d ContentDraft) TotalVotes() sdk.Int {
	return d.ForVotes.Add(d.AgainstVotes)
}

// Status derives the lifecycle position at the given time
func (d ContentDraft) Status(now time.Time) DraftStatus {
	switch {
	case d.Executed && d.Approved:
		return DraftStatusApproved
	case d.Executed:
		return DraftStatusRejected
	case d.IsVotingOpen(now):
		return DraftStatusOpen
	default:
		return DraftStatusResolvable
	}
}

// ValidateBasic stateless checks for imported drafts
func (d ContentDraft) ValidateBasic() error {
	if d.ID == 0 {
		return sdkerrors.Wrap(ErrInvalidGenesis, "draft id must not be 0")
	}
	if d.Title == "" {
		return ErrEmptyTitle
	}
	if d.ContentURI == "" {
		return ErrEmptyContentURI
	}
	if !d.EndTime.After(d.StartTime) {
		return sdkerrors.Wrap(ErrPeriodTooShort, "end time must be after start time")
	}
	if _, err := sdk.AccAddressFromBech32(d.Creator); err != nil {
		return sdkerrors.Wrap(err, "creator")
	}
	if d.ForVotes.IsNil() || d.ForVotes.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidGenesis, "for votes")
	}
	if d.AgainstVotes.IsNil() || d.AgainstVotes.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidGenesis, "against votes")
	}
	if !d.Executed && d.Approved {
		return sdkerrors.Wrap(ErrInvalidGenesis, "approved before execution")
	}
	if d.Executed && d.Approved != d.ForVotes.GT(d.AgainstVotes) {
		return sdkerrors.Wrapf(ErrInvalidGenesis, "approved %t does not match tally %s for, %s against", d.Approved, d.ForVotes, d.AgainstVotes)
	}
	return nil
}

// String returns a human readable string representation of the draft.
func (d ContentDraft) String() string {
	out, _ := yaml.Marshal(d)
	return string(out)
}

// VoteRecord is the permanent record of a voter's participation on a draft.
type VoteRecord struct {
	DraftID uint64  `json:"draft_id" yaml:"draft_id"`
	Voter   string  `json:"voter" yaml:"voter"`
	Support bool    `json:"support" yaml:"support"`
	Weight  sdk.Int `json:"weight" yaml:"weight"`
}

// NewVoteRecord constructor
func NewVoteRecord(draftID uint64, voter sdk.AccAddress, support bool, weight sdk.Int) VoteRecord {
	return VoteRecord{DraftID: draftID, Voter: voter.String(), Support: support, Weight: weight}
}

// ValidateBasic stateless checks for imported vote records
func (v VoteRecord) ValidateBasic() error {
	if v.DraftID == 0 {
		return sdkerrors.Wrap(ErrInvalidGenesis, "draft id must not be 0")
	}
	if _, err := sdk.AccAddressFromBech32(v.Voter); err != nil {
		return sdkerrors.Wrap(err, "voter")
	}
	if v.Weight.IsNil() || !v.Weight.IsPositive() {
		return sdkerrors.Wrap(ErrNoSharesOwned, "weight must be positive")
	}
	return nil
}
