package app

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.InvariantRegistry = &invariantRegistry{}

type invariantRoute struct {
	moduleName string
	route      string
	invar      sdk.Invariant
}

// invariantRegistry collects module invariants without a crisis module
type invariantRegistry struct {
	routes []invariantRoute
}

func (r *invariantRegistry) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	r.routes = append(r.routes, invariantRoute{moduleName: moduleName, route: route, invar: invar})
}

func (r *invariantRegistry) assertAll(ctx sdk.Context) error {
	var broken []string
	for _, ir := range r.routes {
		if msg, stop := ir.invar(ctx); stop {
			broken = append(broken, msg)
		}
	}
	if len(broken) != 0 {
		return sdkerrors.Wrap(sdkerrors.ErrLogic, strings.Join(broken, "\n"))
	}
	return nil
}
