package cli

import (
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/knowscroll/contentgov/x/content/types"
)

// Deliverer signs the message with the key of its sender and returns the JSON encoded result
type Deliverer func(cmd *cobra.Command, msg sdk.Msg) ([]byte, error)

// NewTxCmd returns the transaction commands of the content module
func NewTxCmd(d Deliverer) *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Content module subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	txCmd.AddCommand(
		NewCreateDraftCmd(d),
		NewVoteCmd(d),
		NewExecuteCmd(d),
		NewSetQuorumThresholdCmd(d),
		NewSetMinVotingPeriodCmd(d),
		NewTransferOwnershipCmd(d),
	)
	return txCmd
}

func NewCreateDraftCmd(d Deliverer) *cobra.Command {
	cmd := newTxCmd(d, &cobra.Command{
		Use:   "create-draft <channel_id> <title> <content_uri>",
		Short: "Submit a content draft for a channel vote",
		Args:  cobra.ExactArgs(3),
	}, func(cmd *cobra.Command, sender sdk.AccAddress, args []string) (sdk.Msg, error) {
		channelID, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		fs := cmd.Flags()
		metadataURI, err := fs.GetString(FlagMetadataURI)
		if err != nil {
			return nil, err
		}
		proposalID, err := fs.GetUint64(FlagProposalID)
		if err != nil {
			return nil, err
		}
		votingPeriod, err := fs.GetUint64(FlagVotingPeriod)
		if err != nil {
			return nil, err
		}
		return types.NewMsgCreateContentDraft(sender, channelID, args[1], args[2], metadataURI, proposalID, votingPeriod), nil
	})
	cmd.Flags().AddFlagSet(flagSetDraftCreate())
	return cmd
}

func NewVoteCmd(d Deliverer) *cobra.Command {
	return newTxCmd(d, &cobra.Command{
		Use:   "vote <draft_id> <yes|no>",
		Short: "Vote with the sender's channel shares",
		Args:  cobra.ExactArgs(2),
	}, func(_ *cobra.Command, sender sdk.AccAddress, args []string) (sdk.Msg, error) {
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		support, err := parseSupport(args[1])
		if err != nil {
			return nil, err
		}
		return types.NewMsgCastVote(sender, id, support), nil
	})
}

func NewExecuteCmd(d Deliverer) *cobra.Command {
	return newTxCmd(d, &cobra.Command{
		Use:   "execute <draft_id>",
		Short: "Resolve a draft after its voting period",
		Args:  cobra.ExactArgs(1),
	}, func(_ *cobra.Command, sender sdk.AccAddress, args []string) (sdk.Msg, error) {
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return types.NewMsgExecuteContentApproval(sender, id), nil
	})
}

func NewSetQuorumThresholdCmd(d Deliverer) *cobra.Command {
	return newTxCmd(d, &cobra.Command{
		Use:   "set-quorum <basis_points>",
		Short: "Set the quorum threshold, owner only",
		Args:  cobra.ExactArgs(1),
	}, func(_ *cobra.Command, sender sdk.AccAddress, args []string) (sdk.Msg, error) {
		v, err := cast.ToUint64E(args[0])
		if err != nil {
			return nil, fmt.Errorf("threshold: %w", err)
		}
		return types.NewMsgSetQuorumThreshold(sender, v), nil
	})
}

func NewSetMinVotingPeriodCmd(d Deliverer) *cobra.Command {
	return newTxCmd(d, &cobra.Command{
		Use:   "set-min-period <seconds>",
		Short: "Set the min voting period, owner only",
		Args:  cobra.ExactArgs(1),
	}, func(_ *cobra.Command, sender sdk.AccAddress, args []string) (sdk.Msg, error) {
		v, err := cast.ToUint64E(args[0])
		if err != nil {
			return nil, fmt.Errorf("period: %w", err)
		}
		return types.NewMsgSetMinVotingPeriod(sender, v), nil
	})
}

func NewTransferOwnershipCmd(d Deliverer) *cobra.Command {
	return newTxCmd(d, &cobra.Command{
		Use:   "transfer-ownership <new_owner>",
		Short: "Hand the configuration authority to a new owner",
		Args:  cobra.ExactArgs(1),
	}, func(_ *cobra.Command, sender sdk.AccAddress, args []string) (sdk.Msg, error) {
		newOwner, err := sdk.AccAddressFromBech32(args[0])
		if err != nil {
			return nil, fmt.Errorf("new owner: %w", err)
		}
		return types.NewMsgTransferOwnership(sender, newOwner), nil
	})
}

func newTxCmd(d Deliverer, cmd *cobra.Command, msgFn func(cmd *cobra.Command, sender sdk.AccAddress, args []string) (sdk.Msg, error)) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		from, err := cmd.Flags().GetString(FlagFrom)
		if err != nil {
			return err
		}
		sender, err := sdk.AccAddressFromBech32(from)
		if err != nil {
			return fmt.Errorf("--%s: %w", FlagFrom, err)
		}
		msg, err := msgFn(cmd, sender, args)
		if err != nil {
			return err
		}
		if err := msg.ValidateBasic(); err != nil {
			return err
		}
		bz, err := d(cmd, msg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
		return err
	}
	cmd.Flags().AddFlagSet(FlagSetSender())
	return cmd
}

func parseSupport(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "for":
		return true, nil
	case "no", "against":
		return false, nil
	}
	v, err := cast.ToBoolE(s)
	if err != nil {
		return false, fmt.Errorf("support must be yes or no: %q", s)
	}
	return v, nil
}
