package types

import sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

var (
	ErrNotFound         = sdkerrors.Register(ModuleName, 2, "content draft not found")
	ErrEmptyTitle       = sdkerrors.Register(ModuleName, 3, "empty title")
	ErrEmptyContentURI  = sdkerrors.Register(ModuleName, 4, "empty content uri")
	ErrPeriodTooShort   = sdkerrors.Register(ModuleName, 5, "voting period too short")
	ErrThresholdTooHigh = sdkerrors.Register(ModuleName, 6, "quorum threshold too high")
	ErrZeroAddress      = sdkerrors.Register(ModuleName, 7, "zero address")
	ErrVotingEnded      = sdkerrors.Register(ModuleName, 8, "voting ended")
	ErrAlreadyVoted     = sdkerrors.Register(ModuleName, 9, "already voted")
	ErrNoSharesOwned    = sdkerrors.Register(ModuleName, 10, "no shares owned")
	ErrVotingNotEnded   = sdkerrors.Register(ModuleName, 11, "voting not ended")
	ErrAlreadyExecuted  = sdkerrors.Register(ModuleName, 12, "already executed")
	ErrQuorumNotReached = sdkerrors.Register(ModuleName, 13, "quorum not reached")
	ErrInvalidGenesis   = sdkerrors.Register(ModuleName, 14, "invalid genesis")
	ErrPeriodTooLong    = sdkerrors.Register(ModuleName, 15, "voting period too long")
)
