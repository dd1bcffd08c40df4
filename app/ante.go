package app

import (
	"bytes"
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/auth/ante"
	"github.com/cosmos/cosmos-sdk/x/auth/legacy/legacytx"
	abci "github.com/tendermint/tendermint/abci/types"
)

// signers have no account numbers without an auth module
const accountNumber uint64 = 0

var sequencePrefix = []byte{0x03}

// NewAnteHandler returns the checks a tx must pass before its messages are routed.
// Every signer of the messages must have signed the tx with the key of its address
// over the chain id and the signer's current sequence.
func NewAnteHandler(metaKey sdk.StoreKey) sdk.AnteHandler {
	return sdk.ChainAnteDecorators(
		ante.NewValidateBasicDecorator(),
		ante.NewTxTimeoutHeightDecorator(),
		NewSigVerificationDecorator(metaKey),
	)
}

// SigVerificationDecorator verifies the amino signatures of a legacytx.StdTx and increments
// the sequence of all signers.
type SigVerificationDecorator struct {
	metaKey sdk.StoreKey
}

func NewSigVerificationDecorator(metaKey sdk.StoreKey) SigVerificationDecorator {
	return SigVerificationDecorator{metaKey: metaKey}
}

func (d SigVerificationDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	stdTx, ok := tx.(legacytx.StdTx)
	if !ok {
		return ctx, sdkerrors.Wrapf(sdkerrors.ErrTxDecode, "unsupported tx type: %T", tx)
	}
	signers := stdTx.GetSigners()
	if len(stdTx.Signatures) != len(signers) {
		return ctx, sdkerrors.Wrapf(sdkerrors.ErrUnauthorized, "wrong number of signers; expected %d, got %d", len(signers), len(stdTx.Signatures))
	}
	store := ctx.KVStore(d.metaKey)
	for i, sig := range stdTx.Signatures {
		pubKey := sig.GetPubKey()
		if pubKey == nil {
			return ctx, sdkerrors.Wrapf(sdkerrors.ErrInvalidPubKey, "no pubkey for signer %s", signers[i])
		}
		if !bytes.Equal(pubKey.Address(), signers[i]) {
			return ctx, sdkerrors.Wrapf(sdkerrors.ErrInvalidPubKey, "pubkey does not match signer address %s", signers[i])
		}
		seq := sequence(store, signers[i])
		signBytes := legacytx.StdSignBytes(ctx.ChainID(), accountNumber, seq, stdTx.TimeoutHeight, stdTx.Fee, stdTx.Msgs, stdTx.Memo)
		if !pubKey.VerifySignature(signBytes, sig.Signature) {
			return ctx, sdkerrors.Wrapf(
				sdkerrors.ErrUnauthorized,
				"signature verification failed for %s; verify correct chain-id (%s) and sequence (%d)",
				signers[i], ctx.ChainID(), seq,
			)
		}
	}
	for _, signer := range signers {
		setSequence(store, signer, sequence(store, signer)+1)
	}
	return next(ctx, tx, simulate)
}

// SignBytes returns the bytes the signer has to sign for the tx at the last committed state.
func (app *ContentGovApp) SignBytes(signer sdk.AccAddress, tx legacytx.StdTx) []byte {
	ctx := app.newContext(app.cms.CacheMultiStore(), time.Time{})
	meta := ctx.KVStore(app.keys[metaStoreKey])
	return legacytx.StdSignBytes(string(meta.Get(chainIDKey)), accountNumber, sequence(meta, signer), tx.TimeoutHeight, tx.Fee, tx.Msgs, tx.Memo)
}

// Sequence returns the number of txs the account has signed that were committed
func (app *ContentGovApp) Sequence(signer sdk.AccAddress) uint64 {
	ctx := app.newContext(app.cms.CacheMultiStore(), time.Time{})
	return sequence(ctx.KVStore(app.keys[metaStoreKey]), signer)
}

func sequence(store sdk.KVStore, addr sdk.AccAddress) uint64 {
	bz := store.Get(append(sequencePrefix, addr...))
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

func setSequence(store sdk.KVStore, addr sdk.AccAddress, seq uint64) {
	store.Set(append(sequencePrefix, addr...), sdk.Uint64ToBigEndian(seq))
}

const signerQueryRoute = "signer"

// SignerInfo is the chain id and sequence a client signs over
type SignerInfo struct {
	Address  string `json:"address" yaml:"address"`
	ChainID  string `json:"chain_id" yaml:"chain_id"`
	Sequence uint64 `json:"sequence" yaml:"sequence"`
}

// signerQuerier answers signer/{address}
func (app *ContentGovApp) signerQuerier(ctx sdk.Context, path []string, _ abci.RequestQuery) ([]byte, error) {
	if len(path) != 1 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRequest, "address required")
	}
	addr, err := sdk.AccAddressFromBech32(path[0])
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	meta := ctx.KVStore(app.keys[metaStoreKey])
	bz, err := codec.MarshalJSONIndent(app.legacyAmino, SignerInfo{
		Address:  addr.String(),
		ChainID:  string(meta.Get(chainIDKey)),
		Sequence: sequence(meta, addr),
	})
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return bz, nil
}
