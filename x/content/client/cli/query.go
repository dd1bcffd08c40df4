package cli

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/knowscroll/contentgov/x/content/types"
)

// Querier runs a legacy query path below the content querier route and returns the JSON response
type Querier func(cmd *cobra.Command, path string) ([]byte, error)

// ClientQuerier sends the query to a node via the client context
func ClientQuerier(cmd *cobra.Command, path string) ([]byte, error) {
	clientCtx, err := client.GetClientQueryContext(cmd)
	if err != nil {
		return nil, err
	}
	bz, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, path), nil)
	return bz, err
}

// NewQueryCmd returns the query commands of the content module
func NewQueryCmd(q Querier) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the content module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	queryCmd.AddCommand(
		GetCmdQueryDraft(q),
		GetCmdQueryChannelDrafts(q),
		GetCmdQueryTotal(q),
		GetCmdQueryHasVoted(q),
		GetCmdQueryVotes(q),
		GetCmdQueryParams(q),
		GetCmdQueryOwner(q),
		GetCmdQuerySharesLedger(q),
	)
	return queryCmd
}

func GetCmdQueryDraft(q Querier) *cobra.Command {
	return newQueryCmd(q, &cobra.Command{
		Use:     "draft <draft_id>",
		Short:   "Show a content draft with its current status",
		Aliases: []string{"d"},
		Args:    cobra.ExactArgs(1),
	}, func(args []string) (string, error) {
		id, err := parseID(args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s/%d", types.QueryContentDraft, id), nil
	})
}

func GetCmdQueryChannelDrafts(q Querier) *cobra.Command {
	return newQueryCmd(q, &cobra.Command{
		Use:   "channel-drafts <channel_id>",
		Short: "List the draft ids of a channel in creation order",
		Args:  cobra.ExactArgs(1),
	}, func(args []string) (string, error) {
		id, err := parseID(args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s/%d", types.QueryChannelContentDrafts, id), nil
	})
}

func GetCmdQueryTotal(q Querier) *cobra.Command {
	return newQueryCmd(q, &cobra.Command{
		Use:   "total",
		Short: "Show the number of drafts ever created",
		Args:  cobra.NoArgs,
	}, func(_ []string) (string, error) {
		return types.QueryTotalContentDrafts, nil
	})
}

func GetCmdQueryHasVoted(q Querier) *cobra.Command {
	return newQueryCmd(q, &cobra.Command{
		Use:   "has-voted <draft_id> <address>",
		Short: "Show whether an account voted on a draft",
		Args:  cobra.ExactArgs(2),
	}, func(args []string) (string, error) {
		id, err := parseID(args[0])
		if err != nil {
			return "", err
		}
		voter, err := sdk.AccAddressFromBech32(args[1])
		if err != nil {
			return "", fmt.Errorf("voter: %w", err)
		}
		return fmt.Sprintf("%s/%d/%s", types.QueryHasVoted, id, voter), nil
	})
}

func GetCmdQueryVotes(q Querier) *cobra.Command {
	return newQueryCmd(q, &cobra.Command{
		Use:   "votes <draft_id>",
		Short: "List the vote records of a draft",
		Args:  cobra.ExactArgs(1),
	}, func(args []string) (string, error) {
		id, err := parseID(args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s/%d", types.QueryVotes, id), nil
	})
}

func GetCmdQueryParams(q Querier) *cobra.Command {
	return newQueryCmd(q, &cobra.Command{
		Use:   "params",
		Short: "Show the quorum threshold and min voting period",
		Args:  cobra.NoArgs,
	}, func(_ []string) (string, error) {
		return types.QueryParams, nil
	})
}

func GetCmdQueryOwner(q Querier) *cobra.Command {
	return newQueryCmd(q, &cobra.Command{
		Use:   "owner",
		Short: "Show the configuration owner",
		Args:  cobra.NoArgs,
	}, func(_ []string) (string, error) {
		return types.QueryOwner, nil
	})
}

func GetCmdQuerySharesLedger(q Querier) *cobra.Command {
	return newQueryCmd(q, &cobra.Command{
		Use:   "shares-ledger",
		Short: "Show the shares ledger address",
		Args:  cobra.NoArgs,
	}, func(_ []string) (string, error) {
		return types.QuerySharesLedger, nil
	})
}

func newQueryCmd(q Querier, cmd *cobra.Command, pathFn func(args []string) (string, error)) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		path, err := pathFn(args)
		if err != nil {
			return err
		}
		bz, err := q(cmd, path)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
		return err
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func parseID(s string) (uint64, error) {
	id, err := cast.ToUint64E(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}
