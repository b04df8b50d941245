package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (k msgServer) KillSwitchUnbond(goCtx context.Context, msg *types.MsgKillSwitchUnbond) (*types.MsgKillSwitchUnbondResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireAdmin(ctx, msg.Admin, "kill switch unbond"); err != nil {
		return nil, err
	}
	ks := k.GetKillSwitch(ctx)
	if ks.Status != types.KillSwitchNormal {
		return nil, types.ErrInvalidKillSwitch.Wrapf("kill switch already in %s state", ks.Status)
	}

	total := k.TotalDelegated(ctx)
	completion, err := k.undelegateProportionally(ctx, total)
	if err != nil {
		return nil, err
	}

	ks = types.KillSwitch{
		Status:          types.KillSwitchUnbonding,
		UnlockTime:      ctx.BlockTime().Add(k.GetParams(ctx).UnbondingDuration),
		UnbondingAmount: total,
	}
	if completion.After(ks.UnlockTime) {
		ks.UnlockTime = completion
	}
	k.SetKillSwitch(ctx, ks)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeKillSwitchUnbond,
			sdk.NewAttribute(types.AttributeKeyAmount, total.String()),
			sdk.NewAttribute(types.AttributeKeyUnlockTime, ks.UnlockTime.Format(time.RFC3339)),
		),
	})
	k.Logger().Warn("kill switch engaged",
		"undelegated", total.String(),
		"unlock_time", ks.UnlockTime,
	)

	return &types.MsgKillSwitchUnbondResponse{Unbonding: total, UnlockTime: ks.UnlockTime.Format(time.RFC3339)}, nil
}

func (k msgServer) KillSwitchOpenWithdraws(goCtx context.Context, msg *types.MsgKillSwitchOpenWithdraws) (*types.MsgKillSwitchOpenWithdrawsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireAdmin(ctx, msg.Admin, "kill switch open withdraws"); err != nil {
		return nil, err
	}
	ks := k.GetKillSwitch(ctx)
	if ks.Status != types.KillSwitchUnbonding {
		return nil, types.ErrInvalidKillSwitch.Wrapf("kill switch is in %s state", ks.Status)
	}
	if ctx.BlockTime().Before(ks.UnlockTime) {
		return nil, types.ErrKillSwitchLocked.Wrapf("withdrawals open at %s", ks.UnlockTime.Format(time.RFC3339))
	}

	// Batches promoted before the kill switch unlock no later than the forced unbonding
	for _, batch := range k.GetAllUnbondingBatches(ctx) {
		k.matureBatch(ctx, batch)
	}

	// The forced unbonding has landed; rewards withdrawn by it join the pool without a fee
	pool := k.GetPool(ctx)
	pool.NativeInContract = pool.NativeInContract.Add(ks.UnbondingAmount).Add(pool.RewardsPending)
	pool.TotalStaked = pool.TotalStaked.Add(pool.RewardsPending)
	pool.RewardsPending = math.ZeroInt()
	k.SetPool(ctx, pool)

	if err := k.settleRequestsImmediately(ctx); err != nil {
		return nil, err
	}

	ks.Status = types.KillSwitchWithdrawalsOpen
	ks.UnbondingAmount = math.ZeroInt()
	k.SetKillSwitch(ctx, ks)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(types.EventTypeKillSwitchOpen),
	})
	k.Logger().Warn("kill switch withdrawals opened", "total_staked", k.GetPool(ctx).TotalStaked.String())

	return &types.MsgKillSwitchOpenWithdrawsResponse{}, nil
}

// settleRequestsImmediately credits the open window's requests at their recorded value.
func (k Keeper) settleRequestsImmediately(ctx sdk.Context) error {
	window := k.GetWindow(ctx)
	batch, err := k.settleOpenWindow(ctx, window.Index)
	if err != nil {
		return err
	}
	if batch.TotalDerivative.IsZero() {
		return nil
	}
	for _, claim := range k.GetClaimsByWindow(ctx, window.Index) {
		k.addClaimable(ctx, claim.Address, claim.NativeAmount)
	}
	k.RemoveClaimsByWindow(ctx, window.Index)

	pool := k.GetPool(ctx)
	fromReserve := math.MinInt(pool.NativeReserved, batch.TotalNative)
	fromLiquid := math.MinInt(pool.NativeInContract, batch.TotalNative.Sub(fromReserve))
	pool.NativeReserved = pool.NativeReserved.Sub(fromReserve)
	pool.NativeInContract = pool.NativeInContract.Sub(fromLiquid)
	pool.DerivativeInContract = pool.DerivativeInContract.Sub(batch.TotalDerivative)
	pool.TotalStaked = pool.TotalStaked.Sub(batch.TotalNative)
	pool.NativeUnderWithdraw = pool.NativeUnderWithdraw.Add(batch.TotalNative)
	k.SetPool(ctx, pool)

	k.SetWindow(ctx, types.Window{Index: window.Index + 1, StartTime: ctx.BlockTime()})
	return nil
}
