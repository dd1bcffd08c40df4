package rest

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/rest"
	"github.com/gorilla/mux"

	"github.com/knowscroll/contentgov/x/content/types"
)

// TxGenerator returns the JSON encoded unsigned tx for a message
type TxGenerator func(msg sdk.Msg) ([]byte, error)

// Broadcaster decodes, authenticates and delivers a JSON encoded signed tx
type Broadcaster func(txBytes []byte) ([]byte, error)

// RegisterTxRoutes registers the content write routes. Request bodies are the JSON encoded messages.
// The draft id is taken from the path. The response is the unsigned tx that the sender has to sign
// and post to the broadcast route. Nothing is delivered.
func RegisterTxRoutes(r *mux.Router, d TxGenerator) {
	r.HandleFunc("/content/drafts", txHandler(d, func(r *http.Request) (sdk.Msg, error) {
		var msg types.MsgCreateContentDraft
		return &msg, decodeBody(r, &msg)
	})).Methods("POST")
	r.HandleFunc("/content/drafts/{id}/votes", txHandler(d, func(r *http.Request) (sdk.Msg, error) {
		var msg types.MsgCastVote
		if err := decodeBody(r, &msg); err != nil {
			return nil, err
		}
		id, err := draftID(r)
		msg.DraftID = id
		return &msg, err
	})).Methods("POST")
	r.HandleFunc("/content/drafts/{id}/execute", txHandler(d, func(r *http.Request) (sdk.Msg, error) {
		var msg types.MsgExecuteContentApproval
		if err := decodeBody(r, &msg); err != nil {
			return nil, err
		}
		id, err := draftID(r)
		msg.DraftID = id
		return &msg, err
	})).Methods("POST")
	r.HandleFunc("/content/params/quorum-threshold", txHandler(d, func(r *http.Request) (sdk.Msg, error) {
		var msg types.MsgSetQuorumThreshold
		return &msg, decodeBody(r, &msg)
	})).Methods("PUT")
	r.HandleFunc("/content/params/min-voting-period", txHandler(d, func(r *http.Request) (sdk.Msg, error) {
		var msg types.MsgSetMinVotingPeriod
		return &msg, decodeBody(r, &msg)
	})).Methods("PUT")
	r.HandleFunc("/content/owner", txHandler(d, func(r *http.Request) (sdk.Msg, error) {
		var msg types.MsgTransferOwnership
		return &msg, decodeBody(r, &msg)
	})).Methods("PUT")
}

// RegisterBroadcastRoute registers POST /txs for signed txs
func RegisterBroadcastRoute(r *mux.Router, b Broadcaster) {
	r.HandleFunc("/txs", func(w http.ResponseWriter, r *http.Request) {
		bz, err := ioutil.ReadAll(r.Body)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		res, err := b(bz)
		if err != nil {
			rest.WriteErrorResponse(w, httpStatus(err), err.Error())
			return
		}
		writeJSON(w, res)
	}).Methods("POST")
}

func txHandler(d TxGenerator, msgFn func(r *http.Request) (sdk.Msg, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, err := msgFn(r)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, httpStatus(err), err.Error())
			return
		}
		bz, err := d(msg)
		if err != nil {
			rest.WriteErrorResponse(w, httpStatus(err), err.Error())
			return
		}
		writeJSON(w, bz)
	}
}

func decodeBody(r *http.Request, msg sdk.Msg) error {
	if err := json.NewDecoder(r.Body).Decode(msg); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	return nil
}

func draftID(r *http.Request) (uint64, error) {
	s := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "invalid draft id %q", s)
	}
	return id, nil
}
