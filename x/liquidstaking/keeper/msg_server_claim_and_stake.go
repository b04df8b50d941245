package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (k msgServer) ClaimAndStake(goCtx context.Context, msg *types.MsgClaimAndStake) (*types.MsgClaimAndStakeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireAdmin(ctx, msg.Admin, "claim and stake"); err != nil {
		return nil, err
	}
	if err := k.requireNormal(ctx); err != nil {
		return nil, err
	}

	validators, err := k.loadValidatorSet(ctx)
	if err != nil {
		return nil, err
	}

	rewards, fee, err := k.compoundRewards(ctx)
	if err != nil {
		return nil, err
	}

	params := k.GetParams(ctx)
	pending := k.GetPool(ctx).NativeInContract
	delegated := math.ZeroInt()
	if pending.IsPositive() && pending.GTE(params.DelegationThreshold) {
		if err := k.delegateEvenly(ctx, pending); err != nil {
			return nil, err
		}
		pool := k.GetPool(ctx)
		pool.NativeInContract = pool.NativeInContract.Sub(pending)
		k.SetPool(ctx, pool)
		delegated = pending
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeClaimAndStake,
			sdk.NewAttribute(types.AttributeKeyRewards, rewards.String()),
			sdk.NewAttribute(types.AttributeKeyDevFee, fee.String()),
			sdk.NewAttribute(types.AttributeKeyDelegated, delegated.String()),
			sdk.NewAttribute(types.AttributeKeyRate, k.CurrentRate(ctx).String()),
		),
	})
	k.Logger().Info("claim and stake",
		"rewards", rewards.String(),
		"dev_fee", fee.String(),
		"delegated", delegated.String(),
		"validators", len(validators),
	)

	return &types.MsgClaimAndStakeResponse{Rewards: rewards, DevFee: fee, Delegated: delegated}, nil
}

// compoundRewards harvests every validator, pays the dev fee and adds the rest to the pool.
// It returns the gross rewards and the fee.
func (k Keeper) compoundRewards(ctx sdk.Context) (math.Int, math.Int, error) {
	harvested := math.ZeroInt()
	for _, d := range k.GetAllDelegations(ctx) {
		val, err := sdk.ValAddressFromBech32(d.Address)
		if err != nil {
			return math.ZeroInt(), math.ZeroInt(), err
		}
		amount, err := k.withdrawRewards(ctx, val)
		if err != nil {
			return math.ZeroInt(), math.ZeroInt(), err
		}
		harvested = harvested.Add(amount)
	}

	params := k.GetParams(ctx)
	pool := k.GetPool(ctx)
	rewards := harvested.Add(pool.RewardsPending)
	if rewards.IsZero() {
		return rewards, math.ZeroInt(), nil
	}

	fee := math.ZeroInt()
	if params.DevAddress != "" {
		fee = devFee(rewards, params.DevFeeBps)
	}
	if fee.IsPositive() {
		devAddr, err := sdk.AccAddressFromBech32(params.DevAddress)
		if err != nil {
			return math.ZeroInt(), math.ZeroInt(), err
		}
		coins := sdk.NewCoins(sdk.NewCoin(params.NativeDenom, fee))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, devAddr, coins); err != nil {
			return math.ZeroInt(), math.ZeroInt(), err
		}
	}

	net := rewards.Sub(fee)
	pool.RewardsPending = math.ZeroInt()
	pool.NativeInContract = pool.NativeInContract.Add(net)
	pool.TotalStaked = pool.TotalStaked.Add(net)
	k.SetPool(ctx, pool)
	return rewards, fee, nil
}
