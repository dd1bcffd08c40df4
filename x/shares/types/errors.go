package types

import sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

var (
	ErrNegativeShares = sdkerrors.Register(ModuleName, 2, "negative shares")
	ErrUnknownLedger  = sdkerrors.Register(ModuleName, 3, "unknown ledger address")
	ErrInvalidQuery   = sdkerrors.Register(ModuleName, 4, "invalid ledger query")
	ErrInvalidGenesis = sdkerrors.Register(ModuleName, 5, "invalid genesis")
)
