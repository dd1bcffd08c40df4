package main

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/knowscroll/contentgov/app"
	shareskeeper "github.com/knowscroll/contentgov/x/shares/keeper"
	sharestypes "github.com/knowscroll/contentgov/x/shares/types"
)

func sharesTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   sharestypes.ModuleName,
		Short: "Local share registry subcommands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <channel_id> <address> <amount>",
		Short: "Set the share balance of an account in a channel",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			channelID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("channel id: %w", err)
			}
			account, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return fmt.Errorf("address: %w", err)
			}
			amount, ok := sdk.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %q", args[2])
			}
			blockTime, err := blockTimeFromFlags(cmd)
			if err != nil {
				return err
			}
			return withApp(cmd, func(a *app.ContentGovApp) error {
				return a.SetShares(blockTime, channelID, account, amount)
			})
		},
	})
	return cmd
}

func sharesQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   sharestypes.ModuleName,
		Short: "Query the local share registry",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "balance <channel_id> <address>",
			Short: "Show the share balance of an account in a channel",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printQuery(cmd, fmt.Sprintf("custom/%s/%s/%s/%s", sharestypes.QuerierRoute, shareskeeper.QueryBalance, args[0], args[1]))
			},
		},
		&cobra.Command{
			Use:   "total <channel_id>",
			Short: "Show the total shares of a channel",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printQuery(cmd, fmt.Sprintf("custom/%s/%s/%s", sharestypes.QuerierRoute, shareskeeper.QueryTotalShares, args[0]))
			},
		},
	)
	return cmd
}

func printQuery(cmd *cobra.Command, path string) error {
	return withApp(cmd, func(a *app.ContentGovApp) error {
		bz, err := a.Query(path)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
		return err
	})
}
