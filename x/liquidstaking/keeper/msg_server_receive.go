package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (k msgServer) Receive(goCtx context.Context, msg *types.MsgReceive) (*types.MsgReceiveResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}

	params := k.GetParams(ctx)
	switch {
	case msg.Token == params.DerivativeDenom:
		value, err := k.requestWithdraw(ctx, sender, msg.Amount)
		if err != nil {
			return nil, err
		}
		return &types.MsgReceiveResponse{NativeValue: value, Minted: math.ZeroInt()}, nil
	case params.WrappedTokenContract != "" && msg.Token == params.WrappedTokenContract:
		minted, err := k.depositWrapped(ctx, sender, msg.Amount)
		if err != nil {
			return nil, err
		}
		return &types.MsgReceiveResponse{NativeValue: math.ZeroInt(), Minted: minted}, nil
	default:
		return nil, types.ErrUnknownToken.Wrapf("cannot receive %s", msg.Token)
	}
}

// requestWithdraw takes derivative tokens from the sender. In normal operation they are
// held until the open window is promoted; once kill switch withdrawals are open they are
// redeemed immediately.
func (k Keeper) requestWithdraw(ctx sdk.Context, sender sdk.AccAddress, amount math.Int) (math.Int, error) {
	params := k.GetParams(ctx)
	ks := k.GetKillSwitch(ctx)
	if ks.Status == types.KillSwitchUnbonding {
		return math.ZeroInt(), types.ErrKillSwitchActive.Wrap("withdrawals are closed until the forced unbonding completes")
	}
	if amount.LT(params.MinWithdraw) {
		return math.ZeroInt(), types.ErrBelowMinimumWithdraw.Wrapf("Amount withdrawn below minimum of %s %s", params.MinWithdraw, params.DerivativeDenom)
	}

	pool := k.GetPool(ctx)
	value := nativeForDerivative(amount, pool.TotalStaked, k.DerivativeSupply(ctx))

	coins := sdk.NewCoins(sdk.NewCoin(params.DerivativeDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, coins); err != nil {
		return math.ZeroInt(), err
	}

	if ks.Status == types.KillSwitchWithdrawalsOpen {
		if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
			return math.ZeroInt(), err
		}
		pool.TotalStaked = pool.TotalStaked.Sub(value)
		pool.NativeInContract = pool.NativeInContract.Sub(math.MinInt(pool.NativeInContract, value))
		pool.NativeUnderWithdraw = pool.NativeUnderWithdraw.Add(value)
		k.SetPool(ctx, pool)
		k.addClaimable(ctx, sender.String(), value)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeImmediateWithdraw,
				sdk.NewAttribute(types.AttributeKeySender, sender.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyNativeValue, value.String()),
			),
		})
		k.Logger().Info("derivative redeemed after kill switch",
			"sender", sender.String(),
			"amount", amount.String(),
			"native_value", value.String(),
		)
		return value, nil
	}

	reserve := math.MinInt(pool.NativeInContract, value)
	pool.NativeInContract = pool.NativeInContract.Sub(reserve)
	pool.NativeReserved = pool.NativeReserved.Add(reserve)
	pool.DerivativeInContract = pool.DerivativeInContract.Add(amount)
	k.SetPool(ctx, pool)

	window := k.GetWindow(ctx)
	claim := k.AddPendingClaim(ctx, sender, window.Index, amount, value)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeWithdrawRequest,
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyNativeValue, value.String()),
			sdk.NewAttribute(types.AttributeKeyWindow, strconv.FormatUint(window.Index, 10)),
		),
	})
	k.Logger().Info("withdrawal requested",
		"sender", sender.String(),
		"amount", amount.String(),
		"native_value", value.String(),
		"window", window.Index,
		"claim_total", claim.DerivativeAmount.String(),
	)
	return value, nil
}

// depositWrapped redeems wrapped tokens into native tokens held by the module and stakes them.
func (k Keeper) depositWrapped(ctx sdk.Context, sender sdk.AccAddress, amount math.Int) (math.Int, error) {
	if err := k.checkDeposit(ctx, sender, amount); err != nil {
		return math.ZeroInt(), err
	}
	if k.wrappedToken == nil {
		return math.ZeroInt(), types.ErrWrappedTokenDisabled
	}
	if err := k.wrappedToken.Unwrap(ctx, sender, types.ModuleAddress(), amount); err != nil {
		return math.ZeroInt(), err
	}
	return k.deposit(ctx, sender, amount)
}
