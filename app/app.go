package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/cosmos/cosmos-sdk/x/auth/legacy/legacytx"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmtypes "github.com/tendermint/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/knowscroll/contentgov/x/content"
	contentkeeper "github.com/knowscroll/contentgov/x/content/keeper"
	contenttypes "github.com/knowscroll/contentgov/x/content/types"
	"github.com/knowscroll/contentgov/x/shares"
	shareskeeper "github.com/knowscroll/contentgov/x/shares/keeper"
	sharestypes "github.com/knowscroll/contentgov/x/shares/types"
)

const (
	appName = "contentgov"

	// Bech32Prefix is the human readable part of account addresses
	Bech32Prefix = "content"

	metaStoreKey = "meta"
)

var (
	// DefaultNodeHome default home directories for the application daemon
	DefaultNodeHome string

	// ModuleBasics defines the module BasicManager is in charge of setting up basic,
	// non-dependant module elements, such as codec registration
	// and genesis verification.
	ModuleBasics = module.NewBasicManager(
		shares.AppModuleBasic{},
		content.AppModuleBasic{},
	)

	lastBlockTimeKey = []byte{0x01}
	chainIDKey       = []byte{0x02}
)

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	DefaultNodeHome = filepath.Join(userHomeDir, "."+appName)
}

// SetAddressPrefixes sets the bech32 prefixes and seals the sdk config
func SetAddressPrefixes() {
	config := sdk.GetConfig()
	config.SetBech32PrefixForAccount(Bech32Prefix, Bech32Prefix+sdk.PrefixPublic)
	config.Seal()
}

// ContentGovApp is a single node application. Every message is executed on a cache of the
// committed state and written with a new commit only when it succeeds.
type ContentGovApp struct {
	mu sync.Mutex

	logger      log.Logger
	db          dbm.DB
	cms         sdk.CommitMultiStore
	keys        map[string]*sdk.KVStoreKey
	legacyAmino *codec.LegacyAmino
	appCodec    codec.Codec

	contentKeeper contentkeeper.Keeper
	sharesKeeper  shareskeeper.Keeper

	mm          *module.Manager
	router      sdk.Router
	queryRouter sdk.QueryRouter
	anteHandler sdk.AnteHandler
	invariants  *invariantRegistry
}

// NewContentGovApp returns a reference to an initialized app over the given db.
// The latest committed version is loaded.
func NewContentGovApp(logger log.Logger, db dbm.DB) (*ContentGovApp, error) {
	encodingConfig := MakeEncodingConfig()
	keys := sdk.NewKVStoreKeys(contenttypes.StoreKey, sharestypes.StoreKey, metaStoreKey)

	app := &ContentGovApp{
		logger:      logger,
		db:          db,
		cms:         store.NewCommitMultiStore(db),
		keys:        keys,
		legacyAmino: encodingConfig.Amino,
		appCodec:    encodingConfig.Marshaler,
		router:      baseapp.NewRouter(),
		queryRouter: baseapp.NewQueryRouter(),
		invariants:  &invariantRegistry{},
		anteHandler: NewAnteHandler(keys[metaStoreKey]),
	}
	app.sharesKeeper = shareskeeper.NewKeeper(keys[sharestypes.StoreKey])
	app.contentKeeper = contentkeeper.NewKeeper(app.legacyAmino, keys[contenttypes.StoreKey], app.sharesKeeper)

	app.mm = module.NewManager(
		shares.NewAppModule(app.sharesKeeper),
		content.NewAppModule(app.contentKeeper),
	)
	// shares first so that imported drafts can be checked against balances
	app.mm.SetOrderInitGenesis(sharestypes.ModuleName, contenttypes.ModuleName)
	app.mm.SetOrderExportGenesis(sharestypes.ModuleName, contenttypes.ModuleName)
	app.mm.RegisterInvariants(app.invariants)
	app.mm.RegisterRoutes(app.router, app.queryRouter, app.legacyAmino)
	app.queryRouter.AddRoute(signerQueryRoute, app.signerQuerier)

	for _, key := range keys {
		app.cms.MountStoreWithDB(key, sdk.StoreTypeIAVL, nil)
	}
	if err := app.cms.LoadLatestVersion(); err != nil {
		return nil, sdkerrors.Wrap(err, "load latest version")
	}
	return app, nil
}

// Name returns the name of the App
func (app *ContentGovApp) Name() string { return appName }

// LegacyAmino returns the app's amino codec.
func (app *ContentGovApp) LegacyAmino() *codec.LegacyAmino { return app.legacyAmino }

// AppCodec returns the app's proto codec.
func (app *ContentGovApp) AppCodec() codec.Codec { return app.appCodec }

// LastBlockHeight returns the height of the last commit. Zero before InitChain.
func (app *ContentGovApp) LastBlockHeight() int64 {
	return app.cms.LastCommitID().Version
}

// Initialized returns true once the genesis was imported
func (app *ContentGovApp) Initialized() bool {
	return app.LastBlockHeight() > 0
}

// LastBlockTime returns the block time of the last commit
func (app *ContentGovApp) LastBlockTime() time.Time {
	ctx := app.newContext(app.cms.CacheMultiStore(), time.Time{})
	return app.lastBlockTime(ctx)
}

// InitChain imports the genesis app state and commits the first block.
func (app *ContentGovApp) InitChain(genDoc *tmtypes.GenesisDoc) (err error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.Initialized() {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "already initialized at height %d", app.LastBlockHeight())
	}
	var genesisState GenesisState
	if err := json.Unmarshal(genDoc.AppState, &genesisState); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	if err := ModuleBasics.ValidateGenesis(app.appCodec, MakeEncodingConfig().TxConfig, genesisState); err != nil {
		return sdkerrors.Wrap(err, "validate genesis")
	}

	cache := app.cms.CacheMultiStore()
	ctx := app.newContext(cache, genDoc.GenesisTime).WithChainID(genDoc.ChainID)
	defer func() {
		if r := recover(); r != nil {
			err = sdkerrors.Wrapf(sdkerrors.ErrPanic, "init genesis: %v", r)
		}
	}()
	app.mm.InitGenesis(ctx, app.appCodec, genesisState)

	meta := ctx.KVStore(app.keys[metaStoreKey])
	meta.Set(chainIDKey, []byte(genDoc.ChainID))
	meta.Set(lastBlockTimeKey, sdk.FormatTimeBytes(genDoc.GenesisTime.UTC()))
	cache.Write()
	commitID := app.cms.Commit()
	app.logger.Info("Genesis imported", "chain_id", genDoc.ChainID, "height", commitID.Version)
	return nil
}

// DecodeTx decodes an amino JSON encoded legacytx.StdTx
func (app *ContentGovApp) DecodeTx(bz []byte) (legacytx.StdTx, error) {
	var tx legacytx.StdTx
	if err := app.legacyAmino.UnmarshalJSON(bz, &tx); err != nil {
		return legacytx.StdTx{}, sdkerrors.Wrap(sdkerrors.ErrTxDecode, err.Error())
	}
	return tx, nil
}

// DeliverTx authenticates the tx and executes its messages at the given block time. State,
// including the signer sequences, is only committed when all messages succeed. The block time
// must not be before the time of the last commit.
func (app *ContentGovApp) DeliverTx(blockTime time.Time, tx sdk.Tx) (*sdk.Result, error) {
	msgs := tx.GetMsgs()
	if len(msgs) == 0 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "must contain at least one message")
	}
	for _, msg := range msgs {
		if err := msg.ValidateBasic(); err != nil {
			return nil, err
		}
	}
	return app.runMsg(blockTime, func(ctx sdk.Context) (*sdk.Result, error) {
		ctx, err := app.anteHandler(ctx, tx, false)
		if err != nil {
			return nil, err
		}
		return app.routeMsgs(ctx, msgs)
	})
}

// routeMsgs runs all msgs. Events are collected, data is the single msg's data or a JSON array.
func (app *ContentGovApp) routeMsgs(ctx sdk.Context, msgs []sdk.Msg) (*sdk.Result, error) {
	var (
		events []abci.Event
		data   = make([]json.RawMessage, 0, len(msgs))
	)
	for i, msg := range msgs {
		legacyMsg, ok := msg.(legacytx.LegacyMsg)
		if !ok {
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "no route for message type: %T", msg)
		}
		handler := app.router.Route(ctx, legacyMsg.Route())
		if handler == nil {
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized message route: %s", legacyMsg.Route())
		}
		res, err := handler(ctx, msg)
		if err != nil {
			return nil, sdkerrors.Wrapf(err, "message index: %d", i)
		}
		events = append(events, res.Events...)
		data = append(data, res.Data)
	}
	if len(data) == 1 {
		return &sdk.Result{Data: data[0], Events: events}, nil
	}
	bz, err := json.Marshal(data)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return &sdk.Result{Data: bz, Events: events}, nil
}

// SetShares sets the share balance of an account in the local share registry
func (app *ContentGovApp) SetShares(blockTime time.Time, channelID uint64, account sdk.AccAddress, amount sdk.Int) error {
	_, err := app.runMsg(blockTime, func(ctx sdk.Context) (*sdk.Result, error) {
		return &sdk.Result{}, app.sharesKeeper.SetBalance(ctx, channelID, account, amount)
	})
	return err
}

func (app *ContentGovApp) runMsg(blockTime time.Time, fn func(ctx sdk.Context) (*sdk.Result, error)) (res *sdk.Result, err error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	if !app.Initialized() {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "genesis not imported")
	}
	cache := app.cms.CacheMultiStore()
	ctx := app.newContext(cache, blockTime)
	if last := app.lastBlockTime(ctx); blockTime.Before(last) {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "block time %s before last block time %s", blockTime.UTC(), last)
	}
	ctx = ctx.WithChainID(string(ctx.KVStore(app.keys[metaStoreKey]).Get(chainIDKey)))

	defer func() {
		if r := recover(); r != nil {
			app.logger.Error("Panic recovered", "panic", r)
			res, err = nil, sdkerrors.Wrapf(sdkerrors.ErrPanic, "%v", r)
		}
	}()
	if res, err = fn(ctx); err != nil {
		return nil, err
	}
	ctx.KVStore(app.keys[metaStoreKey]).Set(lastBlockTimeKey, sdk.FormatTimeBytes(blockTime.UTC()))
	cache.Write()
	commitID := app.cms.Commit()
	app.logger.Debug("Committed", "height", commitID.Version, "hash", fmt.Sprintf("%X", commitID.Hash))
	return res, nil
}

// Query runs a legacy query path like custom/content/draft/1 against the last commit.
func (app *ContentGovApp) Query(path string) ([]byte, error) {
	parts := strings.Split(strings.TrimPrefix(strings.Trim(path, "/"), "custom/"), "/")
	querier := app.queryRouter.Route(parts[0])
	if querier == nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "no custom querier found for route %s", parts[0])
	}
	ctx := app.newContext(app.cms.CacheMultiStore(), time.Time{})
	ctx = ctx.WithBlockTime(app.lastBlockTime(ctx))
	return querier(ctx, parts[1:], abci.RequestQuery{Path: path, Height: app.LastBlockHeight()})
}

// CheckInvariants runs all registered invariants against the last commit
func (app *ContentGovApp) CheckInvariants() error {
	ctx := app.newContext(app.cms.CacheMultiStore(), time.Time{})
	ctx = ctx.WithBlockTime(app.lastBlockTime(ctx))
	return app.invariants.assertAll(ctx)
}

// Close releases the db
func (app *ContentGovApp) Close() error {
	return app.db.Close()
}

func (app *ContentGovApp) newContext(ms sdk.MultiStore, blockTime time.Time) sdk.Context {
	header := tmproto.Header{Height: app.LastBlockHeight() + 1, Time: blockTime}
	return sdk.NewContext(ms, header, false, app.logger)
}

func (app *ContentGovApp) lastBlockTime(ctx sdk.Context) time.Time {
	bz := ctx.KVStore(app.keys[metaStoreKey]).Get(lastBlockTimeKey)
	if bz == nil {
		return time.Time{}
	}
	t, err := sdk.ParseTimeBytes(bz)
	if err != nil {
		panic(err)
	}
	return t
}
