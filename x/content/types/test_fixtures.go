package types

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ContentDraftFixture returns a valid open draft
func ContentDraftFixture(mutators ...func(d *ContentDraft)) ContentDraft {
	start := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	r := NewContentDraft(1, 1, "Episode 1", "ipfs://episode-1", "ipfs://episode-1/meta", 7, start, 24*time.Hour, RandomAccAddress())
	for _, m := range mutators {
		m(&r)
	}
	return r
}

func MsgCreateContentDraftFixture(mutators ...func(m *MsgCreateContentDraft)) *MsgCreateContentDraft {
	r := NewMsgCreateContentDraft(RandomAccAddress(), 1, "Episode 1", "ipfs://episode-1", "", 7, 86400)
	for _, m := range mutators {
		m(r)
	}
	return r
}

// GenesisStateFixture returns a valid genesis with one voted draft
func GenesisStateFixture(mutators ...func(m *GenesisState)) GenesisState {
	voter := RandomAccAddress()
	draft := ContentDraftFixture(func(d *ContentDraft) {
		d.ForVotes = sdk.NewInt(50)
	})
	r := *NewGenesisState(DefaultParams(), RandomAccAddress(), RandomAccAddress())
	r.DraftSequence = 1
	r.Drafts = []ContentDraft{draft}
	r.Votes = []VoteRecord{NewVoteRecord(draft.ID, voter, true, sdk.NewInt(50))}
	for _, m := range mutators {
		m(&r)
	}
	return r
}
