package main

import (
	"encoding/json"
	"fmt"

	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/auth/legacy/legacytx"
	"github.com/spf13/cobra"

	"github.com/knowscroll/contentgov/app"
)

const keyringServiceName = "contentgovd"

// KeysCmd manages the signing keys in the keyring below the home directory
func KeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the keys that sign transactions",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a new secp256k1 key and print its address and mnemonic",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				kr, err := keyringFromFlags(cmd)
				if err != nil {
					return err
				}
				info, mnemonic, err := kr.NewMnemonic(args[0], keyring.English, sdk.FullFundraiserPath, keyring.DefaultBIP39Passphrase, hd.Secp256k1)
				if err != nil {
					return err
				}
				return printKey(cmd, info, mnemonic)
			},
		},
		&cobra.Command{
			Use:   "show <name>",
			Short: "Print the address of a key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				kr, err := keyringFromFlags(cmd)
				if err != nil {
					return err
				}
				info, err := kr.Key(args[0])
				if err != nil {
					return err
				}
				return printKey(cmd, info, "")
			},
		},
	)
	return cmd
}

type keyOutput struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Mnemonic string `json:"mnemonic,omitempty"`
}

func printKey(cmd *cobra.Command, info keyring.Info, mnemonic string) error {
	bz, err := json.Marshal(keyOutput{Name: info.GetName(), Address: info.GetAddress().String(), Mnemonic: mnemonic})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}

func keyringFromFlags(cmd *cobra.Command) (keyring.Keyring, error) {
	home, err := cmd.Flags().GetString(flagHome)
	if err != nil {
		return nil, err
	}
	backend, err := cmd.Flags().GetString(flags.FlagKeyringBackend)
	if err != nil {
		return nil, err
	}
	return keyring.New(keyringServiceName, backend, home, cmd.InOrStdin())
}

// signTx signs the msg with the keyring key of its signer over the chain id and sequence of the last commit
func signTx(kr keyring.Keyring, a *app.ContentGovApp, msg sdk.Msg) (legacytx.StdTx, error) {
	signers := msg.GetSigners()
	if len(signers) != 1 {
		return legacytx.StdTx{}, sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "expected one signer, got %d", len(signers))
	}
	tx := legacytx.NewStdTx([]sdk.Msg{msg}, legacytx.StdFee{}, nil, "")
	sig, pubKey, err := kr.SignByAddress(signers[0], a.SignBytes(signers[0], tx))
	if err != nil {
		return legacytx.StdTx{}, sdkerrors.Wrapf(err, "sign with key of %s", signers[0])
	}
	tx.Signatures = []legacytx.StdSignature{{PubKey: pubKey, Signature: sig}}
	return tx, nil
}
