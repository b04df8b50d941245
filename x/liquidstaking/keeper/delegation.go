package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// GetValidatorSet returns the current validator set ordered by address.
func (k Keeper) GetValidatorSet(ctx context.Context) []sdk.ValAddress {
	iter, err := k.ValidatorSet.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	result, err := iter.Keys()
	if err != nil {
		panic(err)
	}
	return result
}

// SetValidatorSet replaces the validator set. Delegation records are kept until they reach zero.
func (k Keeper) SetValidatorSet(ctx context.Context, validators []sdk.ValAddress) {
	for _, val := range k.GetValidatorSet(ctx) {
		if err := k.ValidatorSet.Remove(ctx, val); err != nil {
			panic(err)
		}
	}
	for _, val := range validators {
		if err := k.ValidatorSet.Set(ctx, val); err != nil {
			panic(err)
		}
	}
}

// DropFromValidatorSet removes a single validator from the set, reporting whether it was a member.
func (k Keeper) DropFromValidatorSet(ctx context.Context, val sdk.ValAddress) bool {
	has, err := k.ValidatorSet.Has(ctx, val)
	if err != nil {
		panic(err)
	}
	if !has {
		return false
	}
	if err := k.ValidatorSet.Remove(ctx, val); err != nil {
		panic(err)
	}
	return true
}

// GetDelegation returns the amount delegated to a validator.
func (k Keeper) GetDelegation(ctx context.Context, val sdk.ValAddress) math.Int {
	amount, err := k.Delegations.Get(ctx, val)
	if err != nil {
		return math.ZeroInt()
	}
	return amount
}

// SetDelegation stores a delegated amount, dropping the record when it reaches zero.
func (k Keeper) SetDelegation(ctx context.Context, val sdk.ValAddress, amount math.Int) {
	if amount.IsZero() {
		if err := k.Delegations.Remove(ctx, val); err != nil {
			panic(err)
		}
		return
	}
	if err := k.Delegations.Set(ctx, val, amount); err != nil {
		panic(err)
	}
}

// GetAllDelegations returns every validator the engine has stake with, ordered by address.
func (k Keeper) GetAllDelegations(ctx context.Context) []types.ValidatorDelegation {
	var list []types.ValidatorDelegation
	err := k.Delegations.Walk(ctx, nil, func(val sdk.ValAddress, amount math.Int) (bool, error) {
		list = append(list, types.ValidatorDelegation{Address: val.String(), Staked: amount})
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return list
}

// TotalDelegated sums the stake across all validators.
func (k Keeper) TotalDelegated(ctx context.Context) math.Int {
	total := math.ZeroInt()
	for _, d := range k.GetAllDelegations(ctx) {
		total = total.Add(d.Staked)
	}
	return total
}

// withdrawRewards collects the native rewards accrued on a validator. Validators
// without stake are skipped since distribution has no record of them.
func (k Keeper) withdrawRewards(ctx context.Context, val sdk.ValAddress) (math.Int, error) {
	if !k.GetDelegation(ctx, val).IsPositive() {
		return math.ZeroInt(), nil
	}
	coins, err := k.distributionKeeper.WithdrawDelegationRewards(ctx, types.ModuleAddress(), val)
	if err != nil {
		return math.ZeroInt(), err
	}
	return coins.AmountOf(k.GetParams(ctx).NativeDenom), nil
}

// harvestBeforeChange withdraws rewards ahead of a delegation change and parks them
// in RewardsPending, so they are compounded by the next claim_and_stake.
func (k Keeper) harvestBeforeChange(ctx context.Context, validators ...sdk.ValAddress) error {
	harvested := math.ZeroInt()
	for _, val := range validators {
		amount, err := k.withdrawRewards(ctx, val)
		if err != nil {
			return err
		}
		harvested = harvested.Add(amount)
	}
	if harvested.IsPositive() {
		pool := k.GetPool(ctx)
		pool.RewardsPending = pool.RewardsPending.Add(harvested)
		k.SetPool(ctx, pool)
	}
	return nil
}

// splitEvenly divides amount into n shares, the remainder going to the first share.
func splitEvenly(amount math.Int, n int) []math.Int {
	shares := make([]math.Int, n)
	if n == 0 {
		return shares
	}
	share := amount.QuoRaw(int64(n))
	remainder := amount.Sub(share.MulRaw(int64(n)))
	for i := range shares {
		shares[i] = share
	}
	shares[0] = shares[0].Add(remainder)
	return shares
}

// delegateEvenly spreads amount across the validator set.
func (k Keeper) delegateEvenly(ctx context.Context, amount math.Int) error {
	validators := k.GetValidatorSet(ctx)
	if len(validators) == 0 {
		return types.ErrNoValidators
	}
	if err := k.harvestBeforeChange(ctx, validators...); err != nil {
		return err
	}
	for i, share := range splitEvenly(amount, len(validators)) {
		if !share.IsPositive() {
			continue
		}
		val := validators[i]
		if err := k.stakingKeeper.Delegate(ctx, types.ModuleAddress(), val, share); err != nil {
			return err
		}
		k.SetDelegation(ctx, val, k.GetDelegation(ctx, val).Add(share))
		k.Logger().Info("delegated", "validator", val.String(), "amount", share.String())
	}
	return nil
}

// undelegateProportionally withdraws amount from the validators in proportion to their
// stake and returns the latest completion time.
func (k Keeper) undelegateProportionally(ctx context.Context, amount math.Int) (time.Time, error) {
	var latest time.Time
	if !amount.IsPositive() {
		return latest, nil
	}
	delegations := k.GetAllDelegations(ctx)
	total := math.ZeroInt()
	for _, d := range delegations {
		total = total.Add(d.Staked)
	}
	if total.LT(amount) {
		return latest, types.ErrNoValidators.Wrapf("cannot undelegate %s, only %s delegated", amount, total)
	}

	parts := make([]math.Int, len(delegations))
	assigned := math.ZeroInt()
	for i, d := range delegations {
		parts[i] = amount.Mul(d.Staked).Quo(total)
		assigned = assigned.Add(parts[i])
	}
	// rounding leftovers go to the first validators with headroom
	remainder := amount.Sub(assigned)
	for i := 0; remainder.IsPositive() && i < len(delegations); i++ {
		room := delegations[i].Staked.Sub(parts[i])
		extra := math.MinInt(room, remainder)
		parts[i] = parts[i].Add(extra)
		remainder = remainder.Sub(extra)
	}

	for i, d := range delegations {
		if !parts[i].IsPositive() {
			continue
		}
		val, err := sdk.ValAddressFromBech32(d.Address)
		if err != nil {
			return latest, err
		}
		if err := k.harvestBeforeChange(ctx, val); err != nil {
			return latest, err
		}
		completion, err := k.stakingKeeper.Undelegate(ctx, types.ModuleAddress(), val, parts[i])
		if err != nil {
			return latest, err
		}
		if completion.After(latest) {
			latest = completion
		}
		k.SetDelegation(ctx, val, d.Staked.Sub(parts[i]))
		k.Logger().Info("undelegated", "validator", d.Address, "amount", parts[i].String(), "completion", completion)
	}
	return latest, nil
}

// moveDelegation redelegates amount from src to dst.
func (k Keeper) moveDelegation(ctx sdk.Context, src, dst sdk.ValAddress, amount math.Int) error {
	if err := k.harvestBeforeChange(ctx, src, dst); err != nil {
		return err
	}
	if _, err := k.stakingKeeper.Redelegate(ctx, types.ModuleAddress(), src, dst, amount); err != nil {
		return err
	}
	k.SetDelegation(ctx, src, k.GetDelegation(ctx, src).Sub(amount))
	k.SetDelegation(ctx, dst, k.GetDelegation(ctx, dst).Add(amount))

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeReDelegate,
			sdk.NewAttribute(types.AttributeKeySource, src.String()),
			sdk.NewAttribute(types.AttributeKeyDestination, dst.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	})
	return nil
}

// loadValidatorSet fills an empty validator set from the ranking collaborator.
func (k Keeper) loadValidatorSet(ctx context.Context) ([]sdk.ValAddress, error) {
	validators := k.GetValidatorSet(ctx)
	if len(validators) > 0 {
		return validators, nil
	}
	top, err := k.ranking.TopValidators(ctx, k.GetParams(ctx).TopValidators)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, types.ErrNoValidators.Wrap("validator ranking returned no validators")
	}
	k.SetValidatorSet(ctx, top)
	k.Logger().Info("validator set loaded", "count", len(top))
	return k.GetValidatorSet(ctx), nil
}
