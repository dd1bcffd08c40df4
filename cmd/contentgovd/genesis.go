package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	tmjson "github.com/tendermint/tendermint/libs/json"
	tmtypes "github.com/tendermint/tendermint/types"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/knowscroll/contentgov/app"
	contenttypes "github.com/knowscroll/contentgov/x/content/types"
	sharestypes "github.com/knowscroll/contentgov/x/shares/types"
)

const (
	flagOwner        = "owner"
	flagSharesLedger = "shares-ledger"
	flagOverwrite    = "overwrite"
)

// InitCmd writes a new genesis file with default params
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <chain_id>",
		Short: "Initialize the genesis file",
		Long: `Write config/genesis.json below the home directory. The owner is the configuration authority.
Without --shares-ledger the local share registry of the node serves as ledger.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, _ := cmd.Flags().GetString(flagHome)
			overwrite, _ := cmd.Flags().GetBool(flagOverwrite)
			path := genesisFile(home)
			if _, err := ioutil.ReadFile(path); err == nil && !overwrite {
				return fmt.Errorf("genesis file already exists: %s", path)
			}

			ownerStr, _ := cmd.Flags().GetString(flagOwner)
			owner, err := sdk.AccAddressFromBech32(ownerStr)
			if err != nil {
				return fmt.Errorf("--%s: %w", flagOwner, err)
			}
			ledger := sharestypes.LedgerAddress
			if s, _ := cmd.Flags().GetString(flagSharesLedger); s != "" {
				if ledger, err = sdk.AccAddressFromBech32(s); err != nil {
					return fmt.Errorf("--%s: %w", flagSharesLedger, err)
				}
			}
			genesisTime, err := blockTimeFromFlags(cmd)
			if err != nil {
				return err
			}

			appState, err := json.MarshalIndent(app.NewDefaultGenesisState(), "", " ")
			if err != nil {
				return err
			}
			if appState, err = sjson.SetBytes(appState, contenttypes.ModuleName+".owner", owner.String()); err != nil {
				return err
			}
			if appState, err = sjson.SetBytes(appState, contenttypes.ModuleName+".shares_ledger", ledger.String()); err != nil {
				return err
			}
			genDoc := &tmtypes.GenesisDoc{
				ChainID:     args[0],
				GenesisTime: genesisTime,
				AppState:    appState,
			}
			if err := genDoc.ValidateAndComplete(); err != nil {
				return err
			}
			if err := ensureDir(path); err != nil {
				return err
			}
			if err := genDoc.SaveAs(path); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "genesis written to %s\n", path)
			return err
		},
	}
	cmd.Flags().String(flagOwner, "", "Bech32 address of the configuration owner")
	cmd.Flags().String(flagSharesLedger, "", "Bech32 address of an external shares ledger contract")
	cmd.Flags().Bool(flagOverwrite, false, "Overwrite an existing genesis file")
	_ = cmd.MarkFlagRequired(flagOwner)
	return cmd
}

// AddGenesisSharesCmd appends a share balance to the genesis file
func AddGenesisSharesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-genesis-shares <channel_id> <address> <amount>",
		Short: "Add a share balance to the local registry in genesis",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			channelID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("channel id: %w", err)
			}
			addr, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return fmt.Errorf("address: %w", err)
			}
			amount, ok := sdk.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %q", args[2])
			}
			home, _ := cmd.Flags().GetString(flagHome)
			return updateGenesis(genesisFile(home), func(genesis []byte) ([]byte, error) {
				balance := sharestypes.Balance{ChannelID: channelID, Address: addr.String(), Amount: amount}
				if err := balance.ValidateBasic(); err != nil {
					return nil, err
				}
				val := sharestypes.ModuleCdc.MustMarshalJSON(balance)
				if !gjson.GetBytes(genesis, "app_state.shares.balances").IsArray() {
					return sjson.SetRawBytes(genesis, "app_state.shares.balances", []byte(fmt.Sprintf("[%s]", val)))
				}
				return sjson.SetRawBytes(genesis, "app_state.shares.balances.-1", val)
			})
		},
	}
}

// ValidateGenesisCmd validates the genesis file
func ValidateGenesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-genesis",
		Short: "Validate the genesis file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, _ := cmd.Flags().GetString(flagHome)
			genDoc, err := validatedGenesis(genesisFile(home))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "genesis for chain %q is valid: owner %s, shares ledger %s, %d drafts, %d share balances\n",
				genDoc.ChainID,
				gjson.GetBytes(genDoc.AppState, "content.owner").String(),
				gjson.GetBytes(genDoc.AppState, "content.shares_ledger").String(),
				len(gjson.GetBytes(genDoc.AppState, "content.drafts").Array()),
				len(gjson.GetBytes(genDoc.AppState, "shares.balances").Array()),
			)
			return err
		},
	}
}

// ExportCmd prints a genesis file with the state of the last commit
func ExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export state to a genesis file on stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, _ := cmd.Flags().GetString(flagHome)
			return withApp(cmd, func(a *app.ContentGovApp) error {
				exported, err := a.ExportAppState()
				if err != nil {
					return err
				}
				genDoc, err := tmtypes.GenesisDocFromFile(genesisFile(home))
				if err != nil {
					return err
				}
				genDoc.AppState = exported.AppState
				genDoc.GenesisTime = exported.LastBlockTime
				genDoc.InitialHeight = exported.Height + 1
				bz, err := tmjson.MarshalIndent(genDoc, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
				return err
			})
		},
	}
}

func validatedGenesis(path string) (*tmtypes.GenesisDoc, error) {
	genDoc, err := tmtypes.GenesisDocFromFile(path)
	if err != nil {
		return nil, err
	}
	var genState app.GenesisState
	if err := json.Unmarshal(genDoc.AppState, &genState); err != nil {
		return nil, fmt.Errorf("app state: %w", err)
	}
	if err := app.ModuleBasics.ValidateGenesis(nil, app.MakeEncodingConfig().TxConfig, genState); err != nil {
		return nil, err
	}
	return genDoc, nil
}

// updateGenesis applies the mutator to the genesis file and writes it back when the result is valid
func updateGenesis(path string, mutator func(genesis []byte) ([]byte, error)) error {
	current, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	updated, err := mutator(current)
	if err != nil {
		return err
	}
	genDoc, err := tmtypes.GenesisDocFromJSON(updated)
	if err != nil {
		return err
	}
	var genState app.GenesisState
	if err := json.Unmarshal(genDoc.AppState, &genState); err != nil {
		return err
	}
	if err := app.ModuleBasics.ValidateGenesis(nil, app.MakeEncodingConfig().TxConfig, genState); err != nil {
		return err
	}
	return genDoc.SaveAs(path)
}
