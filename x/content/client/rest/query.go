package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cosmos/cosmos-sdk/client"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/rest"
	"github.com/gorilla/mux"

	"github.com/knowscroll/contentgov/x/content/types"
)

// Querier runs a legacy query path below the content querier route
type Querier func(path string) ([]byte, error)

// ClientQuerier sends queries to a node via the client context
func ClientQuerier(clientCtx client.Context) Querier {
	return func(path string) ([]byte, error) {
		bz, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, path), nil)
		return bz, err
	}
}

// RegisterQueryRoutes registers the content read routes
func RegisterQueryRoutes(r *mux.Router, q Querier) {
	r.HandleFunc("/content/drafts", queryHandler(q, func(_ map[string]string) string {
		return types.QueryTotalContentDrafts
	})).Methods("GET")
	r.HandleFunc("/content/drafts/{id}", queryHandler(q, func(vars map[string]string) string {
		return fmt.Sprintf("%s/%s", types.QueryContentDraft, vars["id"])
	})).Methods("GET")
	r.HandleFunc("/content/drafts/{id}/votes", queryHandler(q, func(vars map[string]string) string {
		return fmt.Sprintf("%s/%s", types.QueryVotes, vars["id"])
	})).Methods("GET")
	r.HandleFunc("/content/drafts/{id}/votes/{voter}", queryHandler(q, func(vars map[string]string) string {
		return fmt.Sprintf("%s/%s/%s", types.QueryHasVoted, vars["id"], vars["voter"])
	})).Methods("GET")
	r.HandleFunc("/content/channels/{channel}/drafts", queryHandler(q, func(vars map[string]string) string {
		return fmt.Sprintf("%s/%s", types.QueryChannelContentDrafts, vars["channel"])
	})).Methods("GET")
	r.HandleFunc("/content/params", queryHandler(q, staticPath(types.QueryParams))).Methods("GET")
	r.HandleFunc("/content/owner", queryHandler(q, staticPath(types.QueryOwner))).Methods("GET")
	r.HandleFunc("/content/shares-ledger", queryHandler(q, staticPath(types.QuerySharesLedger))).Methods("GET")
}

func staticPath(p string) func(map[string]string) string {
	return func(_ map[string]string) string { return p }
}

func queryHandler(q Querier, pathFn func(vars map[string]string) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bz, err := q(pathFn(mux.Vars(r)))
		if err != nil {
			rest.WriteErrorResponse(w, httpStatus(err), err.Error())
			return
		}
		writeJSON(w, bz)
	}
}

const internalABCICode uint32 = 1

// httpStatus maps module errors to status codes
func httpStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, sdkerrors.ErrInvalidPubKey), errors.Is(err, sdkerrors.ErrNoSignatures):
		return http.StatusUnauthorized
	case errors.Is(err, sdkerrors.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, sdkerrors.ErrUnknownRequest):
		return http.StatusNotImplemented
	}
	// unregistered errors are reported with the internal abci code
	if _, code, _ := sdkerrors.ABCIInfo(err, false); code == internalABCICode {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, bz []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(bz)
}
