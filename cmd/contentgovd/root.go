package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/server"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"
	tmtypes "github.com/tendermint/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/knowscroll/contentgov/app"
	"github.com/knowscroll/contentgov/x/content/client/cli"
	contenttypes "github.com/knowscroll/contentgov/x/content/types"
)

const (
	flagHome      = "home"
	flagLogLevel  = "log-level"
	flagBlockTime = "block-time"
	flagSignOnly  = "sign-only"
)

// NewRootCmd creates a new root command for contentgovd.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "contentgovd",
		Short:        "Content approval governance node",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(flagHome, app.DefaultNodeHome, "Directory for config and data")
	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "The logging level (trace|debug|info|warn|error|fatal|panic)")
	rootCmd.PersistentFlags().String(flagBlockTime, "", "Block time of delivered messages in RFC3339, defaults to now")
	rootCmd.PersistentFlags().String(flags.FlagKeyringBackend, keyring.BackendOS, "Select keyring's backend (os|file|kwallet|pass|test|memory)")

	rootCmd.AddCommand(
		KeysCmd(),
		InitCmd(),
		AddGenesisSharesCmd(),
		ValidateGenesisCmd(),
		ExportCmd(),
		txCommand(),
		queryCommand(),
		ServeCmd(),
		CheckInvariantsCmd(),
	)
	return rootCmd
}

func txCommand() *cobra.Command {
	cmd := cli.NewTxCmd(func(cmd *cobra.Command, msg sdk.Msg) ([]byte, error) {
		var out []byte
		err := withApp(cmd, func(a *app.ContentGovApp) error {
			kr, err := keyringFromFlags(cmd)
			if err != nil {
				return err
			}
			tx, err := signTx(kr, a, msg)
			if err != nil {
				return err
			}
			if signOnly, _ := cmd.Flags().GetBool(flagSignOnly); signOnly {
				out, err = a.LegacyAmino().MarshalJSON(tx)
				return err
			}
			out, err = deliverTx(cmd, a, tx)
			return err
		})
		return out, err
	})
	txCmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "Deliver messages to the local node",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	txCmd.PersistentFlags().Bool(flagSignOnly, false, "Print the signed tx as JSON instead of delivering it")
	txCmd.AddCommand(cmd, BroadcastCmd(), sharesTxCmd())
	return txCmd
}

// BroadcastCmd delivers a signed tx from a JSON file
func BroadcastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "broadcast <file>",
		Short: "Deliver a signed tx, as printed with --sign-only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := ioutil.ReadFile(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(a *app.ContentGovApp) error {
				tx, err := a.DecodeTx(bz)
				if err != nil {
					return err
				}
				out, err := deliverTx(cmd, a, tx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return err
			})
		},
	}
}

func deliverTx(cmd *cobra.Command, a *app.ContentGovApp, tx sdk.Tx) ([]byte, error) {
	blockTime, err := blockTimeFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	res, err := a.DeliverTx(blockTime, tx)
	if err != nil {
		return nil, err
	}
	return resultJSON(res)
}

func queryCommand() *cobra.Command {
	cmd := cli.NewQueryCmd(func(cmd *cobra.Command, path string) ([]byte, error) {
		var out []byte
		err := withApp(cmd, func(a *app.ContentGovApp) error {
			var err error
			out, err = a.Query(fmt.Sprintf("custom/%s/%s", contenttypes.QuerierRoute, path))
			return err
		})
		return out, err
	})
	queryCmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Querying subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	queryCmd.AddCommand(cmd, sharesQueryCmd(), &cobra.Command{
		Use:   "signer <address>",
		Short: "Show the chain id and sequence an account signs over",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printQuery(cmd, "custom/signer/"+args[0])
		},
	})
	return queryCmd
}

// withApp opens the node db, imports the genesis file on first use and closes the db afterwards
func withApp(cmd *cobra.Command, fn func(a *app.ContentGovApp) error) error {
	home, err := cmd.Flags().GetString(flagHome)
	if err != nil {
		return err
	}
	logger, err := loggerFromFlags(cmd)
	if err != nil {
		return err
	}
	db, err := dbm.NewDB("application", dbm.GoLevelDBBackend, filepath.Join(home, "data"))
	if err != nil {
		return err
	}
	a, err := app.NewContentGovApp(logger, db)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer a.Close()

	if !a.Initialized() {
		genDoc, err := tmtypes.GenesisDocFromFile(genesisFile(home))
		if err != nil {
			return fmt.Errorf("load genesis, run init first: %w", err)
		}
		if err := a.InitChain(genDoc); err != nil {
			return err
		}
	}
	return fn(a)
}

func loggerFromFlags(cmd *cobra.Command) (log.Logger, error) {
	lvl, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, err
	}
	logLvl, err := zerolog.ParseLevel(lvl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", lvl, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(logLvl).With().Timestamp().Logger()
	return server.ZeroLogWrapper{Logger: logger}, nil
}

func blockTimeFromFlags(cmd *cobra.Command) (time.Time, error) {
	s, err := cmd.Flags().GetString(flagBlockTime)
	if err != nil {
		return time.Time{}, err
	}
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", flagBlockTime, err)
	}
	return t.UTC(), nil
}

func genesisFile(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
