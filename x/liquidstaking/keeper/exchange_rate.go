package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// DerivativeSupply is the circulating derivative supply, including tokens held by the engine.
func (k Keeper) DerivativeSupply(ctx context.Context) math.Int {
	return k.bankKeeper.GetSupply(ctx, k.GetParams(ctx).DerivativeDenom).Amount
}

// CurrentRate is the native value of one derivative unit. It is one for an empty pool.
func (k Keeper) CurrentRate(ctx context.Context) math.LegacyDec {
	totalStaked := k.GetPool(ctx).TotalStaked
	supply := k.DerivativeSupply(ctx)
	if supply.IsZero() || totalStaked.IsZero() {
		return math.LegacyOneDec()
	}
	return math.LegacyNewDecFromInt(totalStaked).QuoInt(supply)
}

// derivativeForDeposit is the number of derivative units minted for a native deposit.
func derivativeForDeposit(amount, totalStaked, supply math.Int) math.Int {
	if supply.IsZero() || totalStaked.IsZero() {
		return amount
	}
	return amount.Mul(supply).Quo(totalStaked)
}

// nativeForDerivative is the native value of derivative units, rounded down.
func nativeForDerivative(amount, totalStaked, supply math.Int) math.Int {
	if supply.IsZero() {
		return math.ZeroInt()
	}
	return amount.Mul(totalStaked).Quo(supply)
}

// devFee is the share of harvested rewards routed to the dev address.
func devFee(rewards math.Int, bps uint32) math.Int {
	return rewards.MulRaw(int64(bps)).QuoRaw(types.BasisPoints)
}
