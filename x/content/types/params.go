package types

import (
	"math"
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	yaml "gopkg.in/yaml.v2"
)

// content params default values and bounds
const (
	// BasisPoints is the denominator of the quorum threshold
	BasisPoints uint64 = 10000

	// MaxQuorumThreshold is the highest accepted quorum threshold in basis points (50%).
	MaxQuorumThreshold uint64 = 5000

	// MinVotingPeriodFloor is the lowest accepted minimum voting period in seconds.
	MinVotingPeriodFloor uint64 = 3600

	// MaxVotingPeriod is the longest voting period in seconds that fits a time.Duration.
	MaxVotingPeriod = uint64(math.MaxInt64 / int64(time.Second))

	DefaultQuorumThreshold uint64 = 2000
	DefaultMinVotingPeriod uint64 = 3600
)

// Params is the global configuration of the content module. Version is bumped on every update.
type Params struct {
	QuorumThreshold uint64 `json:"quorum_threshold" yaml:"quorum_threshold"`
	MinVotingPeriod uint64 `json:"min_voting_period" yaml:"min_voting_period"`
	Version         uint64 `json:"version" yaml:"version"`
}

// NewParams creates a new Params instance
func NewParams(quorumThreshold, minVotingPeriod uint64) Params {
	return Params{
		QuorumThreshold: quorumThreshold,
		MinVotingPeriod: minVotingPeriod,
	}
}

// DefaultParams returns a default set of parameters.
func DefaultParams() Params {
	return NewParams(DefaultQuorumThreshold, DefaultMinVotingPeriod)
}

// String returns a human readable string representation of the parameters.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// MinVotingDuration returns the minimum voting period as duration
func (p Params) MinVotingDuration() time.Duration {
	return time.Duration(p.MinVotingPeriod) * time.Second
}

// Validate validate a set of params
func (p Params) Validate() error {
	if err := ValidateQuorumThreshold(p.QuorumThreshold); err != nil {
		return err
	}
	return ValidateMinVotingPeriod(p.MinVotingPeriod)
}

// ValidateQuorumThreshold returns ErrThresholdTooHigh when the value is above MaxQuorumThreshold
func ValidateQuorumThreshold(threshold uint64) error {
	if threshold > MaxQuorumThreshold {
		return sdkerrors.Wrapf(ErrThresholdTooHigh, "%d exceeds max %d basis points", threshold, MaxQuorumThreshold)
	}
	return nil
}

// ValidateMinVotingPeriod returns ErrPeriodTooShort when the value is below MinVotingPeriodFloor
func ValidateMinVotingPeriod(period uint64) error {
	if period < MinVotingPeriodFloor {
		return sdkerrors.Wrapf(ErrPeriodTooShort, "%d seconds is below floor of %d", period, MinVotingPeriodFloor)
	}
	return ValidateMaxVotingPeriod(period)
}

// ValidateMaxVotingPeriod returns ErrPeriodTooLong when the value is above MaxVotingPeriod
func ValidateMaxVotingPeriod(period uint64) error {
	if period > MaxVotingPeriod {
		return sdkerrors.Wrapf(ErrPeriodTooLong, "%d seconds exceeds max of %d", period, MaxVotingPeriod)
	}
	return nil
}
