package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/knowscroll/contentgov/x/content/types"
)

// RegisterInvariants registers all content module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "vote-sum", VoteSumInvariant(k))
	ir.RegisterRoute(types.ModuleName, "tally-bound", TallyBoundInvariant(k))
}

// AllInvariants runs all invariants of the module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := VoteSumInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return TallyBoundInvariant(k)(ctx)
	}
}

// VoteSumInvariant checks that the tallies of every draft equal the sum of its vote record weights
func VoteSumInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken int
		)
		k.IterateContentDrafts(ctx, func(d types.ContentDraft) bool {
			forSum, againstSum := sdk.ZeroInt(), sdk.ZeroInt()
			k.IterateVotes(ctx, d.ID, func(v types.VoteRecord) bool {
				if v.Support {
					forSum = forSum.Add(v.Weight)
				} else {
					againstSum = againstSum.Add(v.Weight)
				}
				return false
			})
			if !forSum.Equal(d.ForVotes) || !againstSum.Equal(d.AgainstVotes) {
				broken++
				msg += fmt.Sprintf("\tdraft %d tally for: %s against: %s, records for: %s against: %s\n",
					d.ID, d.ForVotes, d.AgainstVotes, forSum, againstSum)
			}
			return false
		})
		return sdk.FormatInvariant(
			types.ModuleName, "vote-sum",
			fmt.Sprintf("%d drafts with tallies not matching their vote records\n%s", broken, msg),
		), broken != 0
	}
}

// TallyBoundInvariant checks that no draft counts more votes than its channel has shares.
// Balances are read when a vote is cast, so this holds as long as shares do not move between
// voters of an open draft.
func TallyBoundInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken int
		)
		ledger := k.SharesLedger(ctx)
		k.IterateContentDrafts(ctx, func(d types.ContentDraft) bool {
			total, err := ledger.TotalShares(ctx, d.ChannelID)
			if err != nil {
				broken++
				msg += fmt.Sprintf("\tdraft %d: total shares of channel %d: %s\n", d.ID, d.ChannelID, err)
				return false
			}
			if d.TotalVotes().GT(total) {
				broken++
				msg += fmt.Sprintf("\tdraft %d: %s votes above %s total shares\n", d.ID, d.TotalVotes(), total)
			}
			return false
		})
		return sdk.FormatInvariant(
			types.ModuleName, "tally-bound",
			fmt.Sprintf("%d drafts with more votes than shares\n%s", broken, msg),
		), broken != 0
	}
}
