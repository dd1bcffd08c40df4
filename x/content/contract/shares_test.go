package contract

import (
	"encoding/json"
	"errors"
	"testing"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowscroll/contentgov/x/content/types"
)

type smartQuerierFn func(ctx sdk.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error)

func (f smartQuerierFn) QuerySmart(ctx sdk.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error) {
	return f(ctx, contractAddr, req)
}

func TestQueryShareBalance(t *testing.T) {
	ledger, account := types.RandomAccAddress(), types.RandomAccAddress()
	specs := map[string]struct {
		rsp        string
		queryErr   error
		expBalance sdk.Int
		expErr     *sdkerrors.Error
	}{
		"balance":        {rsp: `{"balance":"50"}`, expBalance: sdk.NewInt(50)},
		"zero balance":   {rsp: `{"balance":"0"}`, expBalance: sdk.ZeroInt()},
		"no entry":       {rsp: `{}`, expBalance: sdk.ZeroInt()},
		"negative":       {rsp: `{"balance":"-1"}`, expErr: wasmtypes.ErrInvalid},
		"query failed":   {queryErr: errors.New("testing"), expErr: wasmtypes.ErrQueryFailed},
		"invalid json":   {rsp: `not json`, expErr: sdkerrors.ErrJSONUnmarshal},
		"invalid number": {rsp: `{"balance":"one"}`, expErr: sdkerrors.ErrJSONUnmarshal},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			var capturedReq []byte
			q := smartQuerierFn(func(ctx sdk.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error) {
				assert.Equal(t, ledger, contractAddr)
				capturedReq = req
				return []byte(spec.rsp), spec.queryErr
			})

			// when
			gotBalance, gotErr := NewSharesContractAdapter(ledger, q, nil).BalanceOf(sdk.Context{}, 3, account)

			// then
			var gotQuery SharesQuery
			require.NoError(t, json.Unmarshal(capturedReq, &gotQuery))
			assert.Equal(t, SharesQuery{Balance: &BalanceQuery{Address: account.String(), ChannelID: 3}}, gotQuery)
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %#+v", gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expBalance.String(), gotBalance.String())
		})
	}
}

func TestQueryTotalShares(t *testing.T) {
	ledger := types.RandomAccAddress()
	specs := map[string]struct {
		rsp      string
		queryErr error
		expTotal sdk.Int
		expErr   *sdkerrors.Error
	}{
		"total":        {rsp: `{"total_shares":"100"}`, expTotal: sdk.NewInt(100)},
		"no shares":    {rsp: `{}`, expTotal: sdk.ZeroInt()},
		"negative":     {rsp: `{"total_shares":"-100"}`, expErr: wasmtypes.ErrInvalid},
		"query failed": {queryErr: errors.New("testing"), expErr: wasmtypes.ErrQueryFailed},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			q := smartQuerierFn(func(ctx sdk.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error) {
				assert.JSONEq(t, `{"total_shares":{"channel_id":7}}`, string(req))
				return []byte(spec.rsp), spec.queryErr
			})
			gotTotal, gotErr := NewSharesContractAdapter(ledger, q, nil).TotalShares(sdk.Context{}, 7)
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %#+v", gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expTotal.String(), gotTotal.String())
		})
	}
}

func TestSharesContractAdapterWithoutAddress(t *testing.T) {
	q := smartQuerierFn(func(ctx sdk.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error) {
		t.Fatal("not expected to be called")
		return nil, nil
	})
	a := NewSharesContractAdapter(nil, q, types.ErrZeroAddress)

	_, err := a.BalanceOf(sdk.Context{}, 1, types.RandomAccAddress())
	assert.True(t, types.ErrZeroAddress.Is(err))
	_, err = a.TotalShares(sdk.Context{}, 1)
	assert.True(t, types.ErrZeroAddress.Is(err))
}
