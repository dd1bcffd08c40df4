package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// GenesisState is the content module state at genesis and on export
type GenesisState struct {
	Params       Params `json:"params" yaml:"params"`
	Owner        string `json:"owner" yaml:"owner"`
	SharesLedger string `json:"shares_ledger" yaml:"shares_ledger"`
	// DraftSequence is the last assigned draft id
	DraftSequence uint64         `json:"draft_sequence" yaml:"draft_sequence"`
	Drafts        []ContentDraft `json:"drafts" yaml:"drafts"`
	Votes         []VoteRecord   `json:"votes" yaml:"votes"`
}

// NewGenesisState constructor
func NewGenesisState(params Params, owner, sharesLedger sdk.AccAddress) *GenesisState {
	return &GenesisState{
		Params:       params,
		Owner:        owner.String(),
		SharesLedger: sharesLedger.String(),
	}
}

// DefaultGenesisState default values. Owner and shares ledger have to be set before it passes validation.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation
func (g GenesisState) Validate() error {
	if g.SharesLedger == "" {
		return sdkerrors.Wrap(ErrZeroAddress, "shares ledger")
	}
	if _, err := sdk.AccAddressFromBech32(g.SharesLedger); err != nil {
		return sdkerrors.Wrap(err, "shares ledger")
	}
	if g.Owner == "" {
		return sdkerrors.Wrap(ErrZeroAddress, "owner")
	}
	if _, err := sdk.AccAddressFromBech32(g.Owner); err != nil {
		return sdkerrors.Wrap(err, "owner")
	}
	if err := g.Params.Validate(); err != nil {
		return sdkerrors.Wrap(err, "params")
	}

	drafts := make(map[uint64]ContentDraft, len(g.Drafts))
	for i, d := range g.Drafts {
		if err := d.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "draft %d", i)
		}
		if _, exists := drafts[d.ID]; exists {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "duplicate draft id: %d", d.ID)
		}
		if d.ID > g.DraftSequence {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "draft id %d above sequence %d", d.ID, g.DraftSequence)
		}
		drafts[d.ID] = d
	}

	type voteKey struct {
		draftID uint64
		voter   string
	}
	seen := make(map[voteKey]struct{}, len(g.Votes))
	tallies := make(map[uint64][2]sdk.Int, len(g.Drafts))
	for i, v := range g.Votes {
		if err := v.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "vote %d", i)
		}
		if _, exists := drafts[v.DraftID]; !exists {
			return sdkerrors.Wrapf(ErrNotFound, "vote %d references draft %d", i, v.DraftID)
		}
		k := voteKey{draftID: v.DraftID, voter: v.Voter}
		if _, exists := seen[k]; exists {
			return sdkerrors.Wrapf(ErrAlreadyVoted, "draft %d voter %s", v.DraftID, v.Voter)
		}
		seen[k] = struct{}{}
		t, ok := tallies[v.DraftID]
		if !ok {
			t = [2]sdk.Int{sdk.ZeroInt(), sdk.ZeroInt()}
		}
		if v.Support {
			t[0] = t[0].Add(v.Weight)
		} else {
			t[1] = t[1].Add(v.Weight)
		}
		tallies[v.DraftID] = t
	}
	for id, d := range drafts {
		t, ok := tallies[id]
		if !ok {
			t = [2]sdk.Int{sdk.ZeroInt(), sdk.ZeroInt()}
		}
		if !d.ForVotes.Equal(t[0]) || !d.AgainstVotes.Equal(t[1]) {
			return sdkerrors.Wrapf(ErrInvalidGenesis, "draft %d tallies do not match vote records", id)
		}
	}
	return nil
}
