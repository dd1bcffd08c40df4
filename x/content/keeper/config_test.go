package keeper

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowscroll/contentgov/x/content/types"
)

func TestInitConfig(t *testing.T) {
	owner, ledger := types.RandomAccAddress(), types.RandomAccAddress()
	specs := map[string]struct {
		owner, ledger sdk.AccAddress
		params        types.Params
		expErr        *sdkerrors.Error
	}{
		"defaults": {
			owner:  owner,
			ledger: ledger,
			params: types.DefaultParams(),
		},
		"max quorum threshold": {
			owner:  owner,
			ledger: ledger,
			params: types.NewParams(types.MaxQuorumThreshold, types.MinVotingPeriodFloor),
		},
		"zero quorum threshold": {
			owner:  owner,
			ledger: ledger,
			params: types.NewParams(0, types.MinVotingPeriodFloor),
		},
		"quorum threshold too high": {
			owner:  owner,
			ledger: ledger,
			params: types.NewParams(5500, 3600),
			expErr: types.ErrThresholdTooHigh,
		},
		"min voting period too short": {
			owner:  owner,
			ledger: ledger,
			params: types.NewParams(2000, 1800),
			expErr: types.ErrPeriodTooShort,
		},
		"min voting period too long": {
			owner:  owner,
			ledger: ledger,
			params: types.NewParams(2000, types.MaxVotingPeriod+1),
			expErr: types.ErrPeriodTooLong,
		},
		"no shares ledger": {
			owner:  owner,
			params: types.DefaultParams(),
			expErr: types.ErrZeroAddress,
		},
		"no owner": {
			ledger: ledger,
			params: types.DefaultParams(),
			expErr: types.ErrZeroAddress,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, keepers := createMinTestInput(t)
			k := keepers.ContentKeeper
			prevLedger, err := k.GetSharesLedgerAddress(ctx)
			require.NoError(t, err)

			// when
			gotErr := k.InitConfig(ctx, spec.owner, spec.ledger, spec.params)

			// then
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %#+v", gotErr)
				assert.Equal(t, keepers.Owner, k.GetOwner(ctx))
				assert.Equal(t, types.DefaultParams(), k.GetParams(ctx))
				gotLedger, err := k.GetSharesLedgerAddress(ctx)
				require.NoError(t, err)
				assert.Equal(t, prevLedger, gotLedger)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.owner, k.GetOwner(ctx))
			assert.Equal(t, spec.params, k.GetParams(ctx))
			gotLedger, err := k.GetSharesLedgerAddress(ctx)
			require.NoError(t, err)
			assert.Equal(t, spec.ledger, gotLedger)
		})
	}
}

func TestSetQuorumThreshold(t *testing.T) {
	specs := map[string]struct {
		sender    func(owner sdk.AccAddress) sdk.AccAddress
		threshold uint64
		expErr    *sdkerrors.Error
	}{
		"owner": {
			threshold: 3000,
		},
		"owner sets max": {
			threshold: types.MaxQuorumThreshold,
		},
		"owner sets zero": {
			threshold: 0,
		},
		"above max": {
			threshold: types.MaxQuorumThreshold + 1,
			expErr:    types.ErrThresholdTooHigh,
		},
		"not owner": {
			sender:    func(sdk.AccAddress) sdk.AccAddress { return types.RandomAccAddress() },
			threshold: 3000,
			expErr:    sdkerrors.ErrUnauthorized,
		},
		"not owner and above max": {
			sender:    func(sdk.AccAddress) sdk.AccAddress { return types.RandomAccAddress() },
			threshold: 9000,
			expErr:    sdkerrors.ErrUnauthorized,
		},
		"empty sender": {
			sender:    func(sdk.AccAddress) sdk.AccAddress { return nil },
			threshold: 3000,
			expErr:    sdkerrors.ErrUnauthorized,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, keepers := createMinTestInput(t)
			k := keepers.ContentKeeper
			sender := keepers.Owner
			if spec.sender != nil {
				sender = spec.sender(keepers.Owner)
			}
			em := sdk.NewEventManager()
			ctx = ctx.WithEventManager(em)

			// when
			gotErr := k.SetQuorumThreshold(ctx, sender, spec.threshold)

			// then
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %#+v", gotErr)
				assert.Equal(t, types.DefaultParams(), k.GetParams(ctx))
				assert.Empty(t, em.Events())
				return
			}
			require.NoError(t, gotErr)
			exp := types.DefaultParams()
			exp.QuorumThreshold = spec.threshold
			exp.Version = 1
			assert.Equal(t, exp, k.GetParams(ctx))

			require.Len(t, em.Events(), 1)
			assert.Equal(t, types.EventTypeQuorumThresholdUpdated, em.Events()[0].Type)
			assert.Equal(t, map[string]string{
				sdk.AttributeKeyModule:     types.ModuleName,
				types.AttributeKeyOldValue: "2000",
				types.AttributeKeyNewValue: sdk.NewIntFromUint64(spec.threshold).String(),
			}, attributesMap(em.Events()[0]))
		})
	}
}

func TestSetMinVotingPeriod(t *testing.T) {
	specs := map[string]struct {
		sender func(owner sdk.AccAddress) sdk.AccAddress
		period uint64
		expErr *sdkerrors.Error
	}{
		"owner": {
			period: 7200,
		},
		"owner sets floor": {
			period: types.MinVotingPeriodFloor,
		},
		"below floor": {
			period: 1800,
			expErr: types.ErrPeriodTooShort,
		},
		"above max": {
			period: types.MaxVotingPeriod + 1,
			expErr: types.ErrPeriodTooLong,
		},
		"not owner": {
			sender: func(sdk.AccAddress) sdk.AccAddress { return types.RandomAccAddress() },
			period: 7200,
			expErr: sdkerrors.ErrUnauthorized,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, keepers := createMinTestInput(t)
			k := keepers.ContentKeeper
			sender := keepers.Owner
			if spec.sender != nil {
				sender = spec.sender(keepers.Owner)
			}
			em := sdk.NewEventManager()
			ctx = ctx.WithEventManager(em)

			// when
			gotErr := k.SetMinVotingPeriod(ctx, sender, spec.period)

			// then
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %#+v", gotErr)
				assert.Equal(t, types.DefaultParams(), k.GetParams(ctx))
				assert.Empty(t, em.Events())
				return
			}
			require.NoError(t, gotErr)
			exp := types.DefaultParams()
			exp.MinVotingPeriod = spec.period
			exp.Version = 1
			assert.Equal(t, exp, k.GetParams(ctx))

			require.Len(t, em.Events(), 1)
			assert.Equal(t, types.EventTypeMinVotingPeriodUpdated, em.Events()[0].Type)
			assert.Equal(t, map[string]string{
				sdk.AttributeKeyModule:     types.ModuleName,
				types.AttributeKeyOldValue: "3600",
				types.AttributeKeyNewValue: sdk.NewIntFromUint64(spec.period).String(),
			}, attributesMap(em.Events()[0]))
		})
	}
}

func TestConfigVersionIncrements(t *testing.T) {
	ctx, keepers := createMinTestInput(t)
	k := keepers.ContentKeeper

	require.NoError(t, k.SetQuorumThreshold(ctx, keepers.Owner, 1000))
	require.NoError(t, k.SetMinVotingPeriod(ctx, keepers.Owner, 7200))
	require.Error(t, k.SetMinVotingPeriod(ctx, keepers.Owner, 60))
	require.NoError(t, k.SetQuorumThreshold(ctx, keepers.Owner, 1500))

	assert.Equal(t, types.Params{QuorumThreshold: 1500, MinVotingPeriod: 7200, Version: 3}, k.GetParams(ctx))
}

func TestConfigUpdatesKeepDraftWindows(t *testing.T) {
	ctx, keepers := createMinTestInput(t)
	k := keepers.ContentKeeper
	draftID := createDraft(t, ctx, k, 1, 3600)
	before, err := k.GetContentDraft(ctx, draftID)
	require.NoError(t, err)

	// when
	require.NoError(t, k.SetMinVotingPeriod(ctx, keepers.Owner, 86400))
	require.NoError(t, k.SetQuorumThreshold(ctx, keepers.Owner, 5000))

	// then
	after, err := k.GetContentDraft(ctx, draftID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, genesisTime.Add(time.Hour), after.EndTime)
}

func TestTransferOwnership(t *testing.T) {
	newOwner := types.RandomAccAddress()
	specs := map[string]struct {
		sender   func(owner sdk.AccAddress) sdk.AccAddress
		newOwner sdk.AccAddress
		expErr   *sdkerrors.Error
	}{
		"owner": {
			newOwner: newOwner,
		},
		"not owner": {
			sender:   func(sdk.AccAddress) sdk.AccAddress { return types.RandomAccAddress() },
			newOwner: newOwner,
			expErr:   sdkerrors.ErrUnauthorized,
		},
		"empty new owner": {
			expErr: types.ErrZeroAddress,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, keepers := createMinTestInput(t)
			k := keepers.ContentKeeper
			sender := keepers.Owner
			if spec.sender != nil {
				sender = spec.sender(keepers.Owner)
			}
			em := sdk.NewEventManager()
			ctx = ctx.WithEventManager(em)

			// when
			gotErr := k.TransferOwnership(ctx, sender, spec.newOwner)

			// then
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %#+v", gotErr)
				assert.Equal(t, keepers.Owner, k.GetOwner(ctx))
				assert.Empty(t, em.Events())
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.newOwner, k.GetOwner(ctx))
			require.Len(t, em.Events(), 1)
			assert.Equal(t, types.EventTypeOwnershipTransferred, em.Events()[0].Type)

			// previous owner lost its rights
			err := k.SetQuorumThreshold(ctx, keepers.Owner, 1000)
			assert.True(t, sdkerrors.ErrUnauthorized.Is(err))
			assert.NoError(t, k.SetQuorumThreshold(ctx, spec.newOwner, 1000))
		})
	}
}
