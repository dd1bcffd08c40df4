package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/knowscroll/contentgov/x/content/types"
)

// InitConfig sets the owner, the shares ledger reference and the initial params.
// Each input is checked on its own so that any single invalid value fails initialization.
func (k Keeper) InitConfig(ctx sdk.Context, owner, sharesLedger sdk.AccAddress, params types.Params) error {
	if sharesLedger.Empty() {
		return sdkerrors.Wrap(types.ErrZeroAddress, "shares ledger")
	}
	if err := types.ValidateQuorumThreshold(params.QuorumThreshold); err != nil {
		return err
	}
	if err := types.ValidateMinVotingPeriod(params.MinVotingPeriod); err != nil {
		return err
	}
	if owner.Empty() {
		return sdkerrors.Wrap(types.ErrZeroAddress, "owner")
	}
	store := ctx.KVStore(k.storeKey)
	store.Set(types.SharesLedgerKey, sharesLedger.Bytes())
	store.Set(types.OwnerKey, owner.Bytes())
	k.setParams(ctx, params)
	return nil
}

// GetParams returns the current configuration
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	var params types.Params
	bz := ctx.KVStore(k.storeKey).Get(types.ParamsKey)
	if bz == nil {
		return params
	}
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

func (k Keeper) setParams(ctx sdk.Context, params types.Params) {
	ctx.KVStore(k.storeKey).Set(types.ParamsKey, k.cdc.MustMarshal(&params))
}

// GetOwner returns the configuration authority. Nil before genesis.
func (k Keeper) GetOwner(ctx sdk.Context) sdk.AccAddress {
	return ctx.KVStore(k.storeKey).Get(types.OwnerKey)
}

// GetSharesLedgerAddress returns the address of the shares ledger contract
func (k Keeper) GetSharesLedgerAddress(ctx sdk.Context) (sdk.AccAddress, error) {
	addr := ctx.KVStore(k.storeKey).Get(types.SharesLedgerKey)
	if len(addr) == 0 {
		return nil, sdkerrors.Wrap(types.ErrZeroAddress, "shares ledger not set")
	}
	return addr, nil
}

// SetQuorumThreshold updates the quorum threshold in basis points. Existing drafts are resolved
// with the threshold that is current at execution time.
func (k Keeper) SetQuorumThreshold(ctx sdk.Context, sender sdk.AccAddress, threshold uint64) error {
	if err := k.requireOwner(ctx, sender); err != nil {
		return err
	}
	if err := types.ValidateQuorumThreshold(threshold); err != nil {
		return err
	}
	params := k.GetParams(ctx)
	old := params.QuorumThreshold
	params.QuorumThreshold = threshold
	params.Version++
	k.setParams(ctx, params)

	k.Logger(ctx).Info("Quorum threshold updated", "old", old, "new", threshold, "version", params.Version)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeQuorumThresholdUpdated,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyOldValue, strconv.FormatUint(old, 10)),
		sdk.NewAttribute(types.AttributeKeyNewValue, strconv.FormatUint(threshold, 10)),
	))
	return nil
}

// SetMinVotingPeriod updates the floor for voting periods of new drafts. End times of existing
// drafts are not touched.
func (k Keeper) SetMinVotingPeriod(ctx sdk.Context, sender sdk.AccAddress, period uint64) error {
	if err := k.requireOwner(ctx, sender); err != nil {
		return err
	}
	if err := types.ValidateMinVotingPeriod(period); err != nil {
		return err
	}
	params := k.GetParams(ctx)
	old := params.MinVotingPeriod
	params.MinVotingPeriod = period
	params.Version++
	k.setParams(ctx, params)

	k.Logger(ctx).Info("Min voting period updated", "old", old, "new", period, "version", params.Version)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeMinVotingPeriodUpdated,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyOldValue, strconv.FormatUint(old, 10)),
		sdk.NewAttribute(types.AttributeKeyNewValue, strconv.FormatUint(period, 10)),
	))
	return nil
}

// TransferOwnership hands the configuration authority over
func (k Keeper) TransferOwnership(ctx sdk.Context, sender, newOwner sdk.AccAddress) error {
	if err := k.requireOwner(ctx, sender); err != nil {
		return err
	}
	if newOwner.Empty() {
		return sdkerrors.Wrap(types.ErrZeroAddress, "new owner")
	}
	ctx.KVStore(k.storeKey).Set(types.OwnerKey, newOwner.Bytes())

	k.Logger(ctx).Info("Ownership transferred", "previous", sender.String(), "new", newOwner.String())
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeOwnershipTransferred,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyPreviousOwner, sender.String()),
		sdk.NewAttribute(types.AttributeKeyNewOwner, newOwner.String()),
	))
	return nil
}

func (k Keeper) requireOwner(ctx sdk.Context, sender sdk.AccAddress) error {
	owner := k.GetOwner(ctx)
	if owner.Empty() || !owner.Equals(sender) {
		return sdkerrors.Wrapf(sdkerrors.ErrUnauthorized, "caller %s is not the owner", sender)
	}
	return nil
}
