package keeper

import (
	"context"
	"fmt"
	"strconv"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// AddPendingClaim records a withdrawal request in a window, merging with an existing
// request of the same user.
func (k Keeper) AddPendingClaim(ctx context.Context, user sdk.AccAddress, window uint64, derivative, native math.Int) types.PendingClaim {
	pk := collections.Join(window, user)
	claim, err := k.PendingClaims.Get(ctx, pk)
	if err == nil {
		derivative = derivative.Add(claim.DerivativeAmount)
		native = native.Add(claim.NativeAmount)
	}

	claim = types.PendingClaim{
		Address:          user.String(),
		Window:           window,
		DerivativeAmount: derivative,
		NativeAmount:     native,
		Status:           types.ClaimRequested,
	}
	k.SetPendingClaim(ctx, claim)
	return claim
}

func (k Keeper) SetPendingClaim(ctx context.Context, claim types.PendingClaim) {
	user, err := sdk.AccAddressFromBech32(claim.Address)
	if err != nil {
		panic(err)
	}
	if err := k.PendingClaims.Set(ctx, collections.Join(claim.Window, user), claim); err != nil {
		panic(err)
	}
}

// GetClaimsByWindow returns all claims of a window.
func (k Keeper) GetClaimsByWindow(ctx context.Context, window uint64) []types.PendingClaim {
	iter, err := k.PendingClaims.Iterate(ctx, collections.NewPrefixedPairRange[uint64, sdk.AccAddress](window))
	if err != nil {
		panic(err)
	}
	defer iter.Close()
	var list []types.PendingClaim
	for ; iter.Valid(); iter.Next() {
		v, err := iter.Value()
		if err != nil {
			panic(err)
		}
		list = append(list, v)
	}
	return list
}

// RemoveClaimsByWindow removes all claims of a window.
func (k Keeper) RemoveClaimsByWindow(ctx context.Context, window uint64) {
	for _, claim := range k.GetClaimsByWindow(ctx, window) {
		user, err := sdk.AccAddressFromBech32(claim.Address)
		if err != nil {
			panic(err)
		}
		if err := k.PendingClaims.Remove(ctx, collections.Join(window, user)); err != nil {
			panic(err)
		}
	}
}

// GetClaimsByUser returns a user's requested and unbonding claims.
func (k Keeper) GetClaimsByUser(ctx context.Context, user sdk.AccAddress) []types.PendingClaim {
	idxIter, err := k.PendingClaims.Indexes.ByUser.MatchExact(ctx, user)
	if err != nil {
		panic(err)
	}
	defer idxIter.Close()
	var list []types.PendingClaim
	for ; idxIter.Valid(); idxIter.Next() {
		pk, err := idxIter.PrimaryKey()
		if err != nil {
			panic(err)
		}
		v, err := k.PendingClaims.Get(ctx, pk)
		if err != nil {
			panic(err)
		}
		list = append(list, v)
	}
	return list
}

// GetAllPendingClaims returns all claims (for genesis export)
func (k Keeper) GetAllPendingClaims(ctx context.Context) []types.PendingClaim {
	iter, err := k.PendingClaims.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	defer iter.Close()
	var list []types.PendingClaim
	for ; iter.Valid(); iter.Next() {
		v, err := iter.Value()
		if err != nil {
			panic(err)
		}
		list = append(list, v)
	}
	return list
}

func (k Keeper) SetUnbondingBatch(ctx context.Context, batch types.UnbondingBatch) {
	if err := k.UnbondingBatches.Set(ctx, batch.Window, batch); err != nil {
		panic(err)
	}
}

// GetAllUnbondingBatches returns the promoted windows in window order.
func (k Keeper) GetAllUnbondingBatches(ctx context.Context) []types.UnbondingBatch {
	var list []types.UnbondingBatch
	err := k.UnbondingBatches.Walk(ctx, nil, func(_ uint64, batch types.UnbondingBatch) (bool, error) {
		list = append(list, batch)
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return list
}

// GetClaimable returns a user's matured, unclaimed native amount.
func (k Keeper) GetClaimable(ctx context.Context, user sdk.AccAddress) math.Int {
	amount, err := k.Claimable.Get(ctx, user)
	if err != nil {
		return math.ZeroInt()
	}
	return amount
}

func (k Keeper) SetClaimable(ctx context.Context, user sdk.AccAddress, amount math.Int) {
	if amount.IsZero() {
		if err := k.Claimable.Remove(ctx, user); err != nil {
			panic(err)
		}
		return
	}
	if err := k.Claimable.Set(ctx, user, amount); err != nil {
		panic(err)
	}
}

func (k Keeper) addClaimable(ctx context.Context, address string, amount math.Int) {
	user, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		panic(err)
	}
	k.SetClaimable(ctx, user, k.GetClaimable(ctx, user).Add(amount))
}

// GetAllClaimable returns every claimable balance (for genesis export)
func (k Keeper) GetAllClaimable(ctx context.Context) []types.ClaimableBalance {
	var list []types.ClaimableBalance
	err := k.Claimable.Walk(ctx, nil, func(user sdk.AccAddress, amount math.Int) (bool, error) {
		list = append(list, types.ClaimableBalance{Address: user.String(), Amount: amount})
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return list
}

// matureBatch credits a promoted window's claims as claimable and drops the batch.
func (k Keeper) matureBatch(ctx sdk.Context, batch types.UnbondingBatch) {
	for _, claim := range k.GetClaimsByWindow(ctx, batch.Window) {
		k.addClaimable(ctx, claim.Address, claim.NativeAmount)
	}
	k.RemoveClaimsByWindow(ctx, batch.Window)
	if err := k.UnbondingBatches.Remove(ctx, batch.Window); err != nil {
		panic(err)
	}

	pool := k.GetPool(ctx)
	pool.NativeUnderWithdraw = pool.NativeUnderWithdraw.Add(batch.TotalNative)
	k.SetPool(ctx, pool)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeBatchMatured,
			sdk.NewAttribute(types.AttributeKeyWindow, strconv.FormatUint(batch.Window, 10)),
			sdk.NewAttribute(types.AttributeKeyAmount, batch.TotalNative.String()),
		),
	})
	k.Logger().Info("unbonding batch matured",
		"window", batch.Window,
		"total_native", batch.TotalNative.String(),
	)
}

// MatureBatches releases every unbonding batch whose unlock time has passed.
func (k Keeper) MatureBatches(ctx sdk.Context) uint32 {
	var matured uint32
	for _, batch := range k.GetAllUnbondingBatches(ctx) {
		if !batch.Matured(ctx.BlockTime()) {
			continue
		}
		k.matureBatch(ctx, batch)
		matured++
	}
	return matured
}

// settleOpenWindow burns the derivative tokens held for a window's requests and returns
// the totals. The claims are left in place for the caller to promote or credit.
func (k Keeper) settleOpenWindow(ctx context.Context, window uint64) (types.UnbondingBatch, error) {
	batch := types.UnbondingBatch{
		Window:          window,
		TotalDerivative: math.ZeroInt(),
		TotalNative:     math.ZeroInt(),
	}
	for _, claim := range k.GetClaimsByWindow(ctx, window) {
		batch.TotalDerivative = batch.TotalDerivative.Add(claim.DerivativeAmount)
		batch.TotalNative = batch.TotalNative.Add(claim.NativeAmount)
	}
	if batch.TotalDerivative.IsPositive() {
		burn := sdk.NewCoins(sdk.NewCoin(k.GetParams(ctx).DerivativeDenom, batch.TotalDerivative))
		if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, burn); err != nil {
			return batch, fmt.Errorf("failed to burn held derivative tokens: %w", err)
		}
	}
	return batch, nil
}
