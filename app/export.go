package app

import (
	"encoding/json"
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ExportedApp is the app state of the last commit
type ExportedApp struct {
	AppState      json.RawMessage
	Height        int64
	LastBlockTime time.Time
}

// ExportAppState exports the state of the application for a genesis file.
func (app *ContentGovApp) ExportAppState() (ExportedApp, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	if !app.Initialized() {
		return ExportedApp{}, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "genesis not imported")
	}
	ctx := app.newContext(app.cms.CacheMultiStore(), time.Time{})
	ctx = ctx.WithBlockTime(app.lastBlockTime(ctx))

	genState := app.mm.ExportGenesis(ctx, app.appCodec)
	appState, err := json.MarshalIndent(genState, "", "  ")
	if err != nil {
		return ExportedApp{}, err
	}
	return ExportedApp{
		AppState:      appState,
		Height:        app.LastBlockHeight(),
		LastBlockTime: ctx.BlockTime(),
	}, nil
}
