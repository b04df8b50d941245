package keeper

import (
	"strconv"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// WindowElapsed reports whether the open window may be promoted.
func (k Keeper) WindowElapsed(ctx sdk.Context) bool {
	window := k.GetWindow(ctx)
	return !ctx.BlockTime().Before(window.ClosesAt(k.GetParams(ctx).WindowDuration))
}

// promoteWindow closes the open window. Held derivative tokens are burned, the owed value
// leaves the pool and whatever the liquid balance cannot cover is undelegated.
func (k Keeper) promoteWindow(ctx sdk.Context) (types.Window, error) {
	params := k.GetParams(ctx)
	window := k.GetWindow(ctx)
	next := types.Window{Index: window.Index + 1, StartTime: ctx.BlockTime()}

	batch, err := k.settleOpenWindow(ctx, window.Index)
	if err != nil {
		return window, err
	}
	if batch.TotalDerivative.IsZero() {
		k.SetWindow(ctx, next)
		return next, nil
	}

	pool := k.GetPool(ctx)
	fromReserve := math.MinInt(pool.NativeReserved, batch.TotalNative)
	need := batch.TotalNative.Sub(fromReserve)
	fromLiquid := math.MinInt(pool.NativeInContract, need)
	toUndelegate := need.Sub(fromLiquid)

	pool.NativeReserved = pool.NativeReserved.Sub(fromReserve)
	pool.NativeInContract = pool.NativeInContract.Sub(fromLiquid)
	pool.DerivativeInContract = pool.DerivativeInContract.Sub(batch.TotalDerivative)
	pool.TotalStaked = pool.TotalStaked.Sub(batch.TotalNative)
	k.SetPool(ctx, pool)

	completion, err := k.undelegateProportionally(ctx, toUndelegate)
	if err != nil {
		return window, err
	}

	batch.UnlockTime = ctx.BlockTime().Add(params.UnbondingDuration)
	if completion.After(batch.UnlockTime) {
		batch.UnlockTime = completion
	}
	for _, claim := range k.GetClaimsByWindow(ctx, window.Index) {
		claim.Status = types.ClaimUnbonding
		claim.UnlockTime = batch.UnlockTime
		k.SetPendingClaim(ctx, claim)
	}
	k.SetUnbondingBatch(ctx, batch)
	k.SetWindow(ctx, next)

	k.Logger().Info("window promoted",
		"window", window.Index,
		"total_derivative", batch.TotalDerivative.String(),
		"total_native", batch.TotalNative.String(),
		"undelegated", toUndelegate.String(),
		"unlock_time", batch.UnlockTime,
	)
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeWindowPromoted,
			sdk.NewAttribute(types.AttributeKeyWindow, strconv.FormatUint(window.Index, 10)),
			sdk.NewAttribute(types.AttributeKeyAmount, batch.TotalDerivative.String()),
			sdk.NewAttribute(types.AttributeKeyNativeValue, batch.TotalNative.String()),
			sdk.NewAttribute(types.AttributeKeyUnlockTime, batch.UnlockTime.Format(time.RFC3339)),
		),
	})
	return next, nil
}
