package types

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGenesis(t *testing.T) {
	specs := map[string]struct {
		state  GenesisState
		expErr *sdkerrors.Error
	}{
		"fixture": {
			state: GenesisStateFixture(),
		},
		"empty drafts": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Drafts, m.Votes = nil, nil
				m.DraftSequence = 0
			}),
		},
		"sequence ahead of drafts": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.DraftSequence = 10
			}),
		},
		"default without addresses": {
			state:  *DefaultGenesisState(),
			expErr: ErrZeroAddress,
		},
		"empty owner": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Owner = ""
			}),
			expErr: ErrZeroAddress,
		},
		"empty shares ledger": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.SharesLedger = ""
			}),
			expErr: ErrZeroAddress,
		},
		"invalid params": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Params.QuorumThreshold = 5500
			}),
			expErr: ErrThresholdTooHigh,
		},
		"draft above sequence": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.DraftSequence = 0
			}),
			expErr: ErrInvalidGenesis,
		},
		"duplicate draft": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Drafts = append(m.Drafts, m.Drafts[0])
			}),
			expErr: ErrInvalidGenesis,
		},
		"draft with empty title": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Drafts[0].Title = ""
			}),
			expErr: ErrEmptyTitle,
		},
		"draft without window": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Drafts[0].EndTime = m.Drafts[0].StartTime
			}),
			expErr: ErrPeriodTooShort,
		},
		"approved but not executed": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Drafts[0].Approved = true
			}),
			expErr: ErrInvalidGenesis,
		},
		"executed and approved with majority": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Drafts[0].Executed, m.Drafts[0].Approved = true, true
			}),
		},
		"executed and rejected despite majority": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Drafts[0].Executed = true
			}),
			expErr: ErrInvalidGenesis,
		},
		"executed and approved on tie": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Drafts[0].Executed, m.Drafts[0].Approved = true, true
				m.Drafts[0].AgainstVotes = sdk.NewInt(50)
				m.Votes = append(m.Votes, NewVoteRecord(m.Drafts[0].ID, RandomAccAddress(), false, sdk.NewInt(50)))
			}),
			expErr: ErrInvalidGenesis,
		},
		"executed and rejected on tie": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Drafts[0].Executed = true
				m.Drafts[0].AgainstVotes = sdk.NewInt(50)
				m.Votes = append(m.Votes, NewVoteRecord(m.Drafts[0].ID, RandomAccAddress(), false, sdk.NewInt(50)))
			}),
		},
		"vote for unknown draft": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Votes[0].DraftID = 2
			}),
			expErr: ErrNotFound,
		},
		"duplicate vote": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Votes = append(m.Votes, m.Votes[0])
				m.Drafts[0].ForVotes = sdk.NewInt(100)
			}),
			expErr: ErrAlreadyVoted,
		},
		"zero weight vote": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Votes[0].Weight = sdk.ZeroInt()
				m.Drafts[0].ForVotes = sdk.ZeroInt()
			}),
			expErr: ErrNoSharesOwned,
		},
		"tally does not match votes": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Drafts[0].ForVotes = sdk.NewInt(51)
			}),
			expErr: ErrInvalidGenesis,
		},
		"vote counted on wrong side": {
			state: GenesisStateFixture(func(m *GenesisState) {
				m.Votes[0].Support = false
			}),
			expErr: ErrInvalidGenesis,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			gotErr := spec.state.Validate()
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %#+v", gotErr)
				return
			}
			require.NoError(t, gotErr)
		})
	}
}

func TestDraftStatus(t *testing.T) {
	d := ContentDraftFixture()
	specs := map[string]struct {
		draft ContentDraft
		now   time.Time
		exp   DraftStatus
	}{
		"open at start":        {draft: d, now: d.StartTime, exp: DraftStatusOpen},
		"resolvable at end":    {draft: d, now: d.EndTime, exp: DraftStatusResolvable},
		"resolvable after end": {draft: d, now: d.EndTime.Add(time.Hour), exp: DraftStatusResolvable},
		"approved": {
			draft: ContentDraftFixture(func(d *ContentDraft) { d.Executed, d.Approved = true, true }),
			now:   d.EndTime,
			exp:   DraftStatusApproved,
		},
		"rejected": {
			draft: ContentDraftFixture(func(d *ContentDraft) { d.Executed = true }),
			now:   d.EndTime,
			exp:   DraftStatusRejected,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, spec.exp, spec.draft.Status(spec.now))
		})
	}
}
