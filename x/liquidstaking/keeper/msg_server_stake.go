package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (k msgServer) Stake(goCtx context.Context, msg *types.MsgStake) (*types.MsgStakeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}

	if err := k.checkDepositOpen(ctx, sender); err != nil {
		return nil, err
	}
	params := k.GetParams(ctx)
	if msg.Amount.Denom != params.NativeDenom {
		return nil, types.ErrInvalidDenom.Wrapf("only %s can be staked, got %s", params.NativeDenom, msg.Amount.Denom)
	}
	if err := k.checkDepositAmount(ctx, msg.Amount.Amount); err != nil {
		return nil, err
	}

	// Transfer tokens from the depositor to the module account
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, sdk.NewCoins(msg.Amount)); err != nil {
		return nil, err
	}

	minted, err := k.deposit(ctx, sender, msg.Amount.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgStakeResponse{Minted: minted}, nil
}

// checkDeposit validates a deposit before any funds move.
func (k Keeper) checkDeposit(ctx sdk.Context, depositor sdk.AccAddress, amount math.Int) error {
	if err := k.checkDepositOpen(ctx, depositor); err != nil {
		return err
	}
	return k.checkDepositAmount(ctx, amount)
}

// checkDepositOpen rejects deposits after the kill switch and from senders outside the whitelist.
func (k Keeper) checkDepositOpen(ctx sdk.Context, depositor sdk.AccAddress) error {
	if err := k.requireNormal(ctx); err != nil {
		return err
	}
	return k.checkDepositor(ctx, depositor)
}

func (k Keeper) checkDepositAmount(ctx sdk.Context, amount math.Int) error {
	params := k.GetParams(ctx)
	if amount.LT(params.MinDeposit) {
		return types.ErrBelowMinimumDeposit.Wrapf("Can only deposit a minimum of %s %s", params.MinDeposit, params.NativeDenom)
	}
	pool := k.GetPool(ctx)
	if derivativeForDeposit(amount, pool.TotalStaked, k.DerivativeSupply(ctx)).IsZero() {
		return types.ErrZeroMint
	}
	return nil
}

// deposit mints derivative tokens for native tokens already held by the module.
func (k Keeper) deposit(ctx sdk.Context, depositor sdk.AccAddress, amount math.Int) (math.Int, error) {
	params := k.GetParams(ctx)
	pool := k.GetPool(ctx)
	minted := derivativeForDeposit(amount, pool.TotalStaked, k.DerivativeSupply(ctx))

	coins := sdk.NewCoins(sdk.NewCoin(params.DerivativeDenom, minted))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return math.ZeroInt(), err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, depositor, coins); err != nil {
		return math.ZeroInt(), err
	}

	pool.NativeInContract = pool.NativeInContract.Add(amount)
	pool.TotalStaked = pool.TotalStaked.Add(amount)
	k.SetPool(ctx, pool)
	k.trackDepositor(ctx, depositor)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeStake,
			sdk.NewAttribute(types.AttributeKeySender, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyMinted, minted.String()),
		),
	})

	k.Logger().Info("native tokens staked",
		"depositor", depositor.String(),
		"amount", amount.String(),
		"minted", minted.String(),
		"total_staked", pool.TotalStaked.String(),
	)
	return minted, nil
}
