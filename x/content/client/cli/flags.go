package cli

import (
	flag "github.com/spf13/pflag"

	"github.com/knowscroll/contentgov/x/content/types"
)

const (
	FlagFrom         = "from"
	FlagMetadataURI  = "metadata-uri"
	FlagProposalID   = "proposal-id"
	FlagVotingPeriod = "voting-period"
)

// FlagSetSender returns the flagset for the message sender
func FlagSetSender() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.String(FlagFrom, "", "Bech32 address of the sender; its key must be in the keyring")
	return fs
}

func flagSetDraftCreate() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.String(FlagMetadataURI, "", "Optional metadata uri of the draft")
	fs.Uint64(FlagProposalID, 0, "Id of the agent proposal the draft is based on")
	fs.Uint64(FlagVotingPeriod, types.DefaultMinVotingPeriod*24, "Voting period in seconds")
	return fs
}
