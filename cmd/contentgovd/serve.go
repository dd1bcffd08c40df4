package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkrest "github.com/cosmos/cosmos-sdk/types/rest"
	"github.com/cosmos/cosmos-sdk/x/auth/legacy/legacytx"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/knowscroll/contentgov/app"
	"github.com/knowscroll/contentgov/x/content/client/rest"
	contenttypes "github.com/knowscroll/contentgov/x/content/types"
)

const (
	flagListen = "listen"

	shutdownTimeout = 5 * time.Second
)

// ServeCmd serves the content REST routes on the local node. Messages are delivered with the wall clock as block time.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API of the local node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listen, err := cmd.Flags().GetString(flagListen)
			if err != nil {
				return err
			}
			return withApp(cmd, func(a *app.ContentGovApp) error {
				srv := &http.Server{Addr: listen, Handler: NewRouter(a, func() time.Time { return time.Now().UTC() })}

				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				errCh := make(chan error, 1)
				go func() {
					errCh <- srv.ListenAndServe()
				}()
				fmt.Fprintf(cmd.OutOrStdout(), "serving on %s\n", listen)

				select {
				case err := <-errCh:
					return err
				case <-ctx.Done():
				}
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
		},
	}
	cmd.Flags().String(flagListen, "localhost:1317", "Listen address of the REST server")
	return cmd
}

// NewRouter registers the content query routes, the unsigned tx routes and the broadcast route
// for signed txs against the app. GET /signers/{address} returns what a client signs over.
func NewRouter(a *app.ContentGovApp, clock func() time.Time) *mux.Router {
	r := mux.NewRouter()
	rest.RegisterQueryRoutes(r, func(path string) ([]byte, error) {
		return a.Query(fmt.Sprintf("custom/%s/%s", contenttypes.QuerierRoute, path))
	})
	rest.RegisterTxRoutes(r, func(msg sdk.Msg) ([]byte, error) {
		return a.LegacyAmino().MarshalJSON(legacytx.NewStdTx([]sdk.Msg{msg}, legacytx.StdFee{}, nil, ""))
	})
	rest.RegisterBroadcastRoute(r, func(txBytes []byte) ([]byte, error) {
		tx, err := a.DecodeTx(txBytes)
		if err != nil {
			return nil, err
		}
		res, err := a.DeliverTx(clock(), tx)
		if err != nil {
			return nil, err
		}
		return resultJSON(res)
	})
	r.HandleFunc("/signers/{address}", func(w http.ResponseWriter, r *http.Request) {
		bz, err := a.Query("custom/signer/" + mux.Vars(r)["address"])
		if err != nil {
			sdkrest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(bz)
	}).Methods("GET")
	return r
}

// CheckInvariantsCmd runs the module invariants against the last commit
func CheckInvariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-invariants",
		Short: "Assert the content module invariants on the local state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.ContentGovApp) error {
				if err := a.CheckInvariants(); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "all invariants hold")
				return err
			})
		},
	}
}

type deliverResult struct {
	Data   json.RawMessage  `json:"data,omitempty"`
	Events sdk.StringEvents `json:"events"`
}

func resultJSON(res *sdk.Result) ([]byte, error) {
	return json.Marshal(deliverResult{Data: res.Data, Events: sdk.StringifyEvents(res.Events)})
}
