package adapters

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// SDKStakingKeeper is the subset of the x/staking keeper the adapter drives.
type SDKStakingKeeper interface {
	GetValidator(ctx context.Context, addr sdk.ValAddress) (stakingtypes.Validator, error)
	Delegate(ctx context.Context, delAddr sdk.AccAddress, bondAmt math.Int, tokenSrc stakingtypes.BondStatus, validator stakingtypes.Validator, subtractAccount bool) (math.LegacyDec, error)
	ValidateUnbondAmount(ctx context.Context, delAddr sdk.AccAddress, valAddr sdk.ValAddress, amt math.Int) (math.LegacyDec, error)
	Undelegate(ctx context.Context, delAddr sdk.AccAddress, valAddr sdk.ValAddress, sharesAmount math.LegacyDec) (time.Time, math.Int, error)
	BeginRedelegation(ctx context.Context, delAddr sdk.AccAddress, valSrcAddr, valDstAddr sdk.ValAddress, sharesAmount math.LegacyDec) (time.Time, error)
	HasReceivingRedelegation(ctx context.Context, delAddr sdk.AccAddress, valDstAddr sdk.ValAddress) (bool, error)
}

// StakingAdapter converts token amounts into validator shares for the x/staking keeper.
type StakingAdapter struct {
	keeper SDKStakingKeeper
}

var _ types.StakingKeeper = StakingAdapter{}

func NewStakingAdapter(keeper SDKStakingKeeper) StakingAdapter {
	return StakingAdapter{keeper: keeper}
}

func (a StakingAdapter) Delegate(ctx context.Context, delegator sdk.AccAddress, validator sdk.ValAddress, amount math.Int) error {
	val, err := a.keeper.GetValidator(ctx, validator)
	if err != nil {
		return err
	}
	// tokens come from the module account balance
	_, err = a.keeper.Delegate(ctx, delegator, amount, stakingtypes.Unbonded, val, true)
	return err
}

func (a StakingAdapter) Undelegate(ctx context.Context, delegator sdk.AccAddress, validator sdk.ValAddress, amount math.Int) (time.Time, error) {
	shares, err := a.keeper.ValidateUnbondAmount(ctx, delegator, validator, amount)
	if err != nil {
		return time.Time{}, err
	}
	completion, _, err := a.keeper.Undelegate(ctx, delegator, validator, shares)
	return completion, err
}

func (a StakingAdapter) Redelegate(ctx context.Context, delegator sdk.AccAddress, src, dst sdk.ValAddress, amount math.Int) (time.Time, error) {
	shares, err := a.keeper.ValidateUnbondAmount(ctx, delegator, src, amount)
	if err != nil {
		return time.Time{}, err
	}
	return a.keeper.BeginRedelegation(ctx, delegator, src, dst, shares)
}

func (a StakingAdapter) HasReceivingRedelegation(ctx context.Context, delegator sdk.AccAddress, validator sdk.ValAddress) (bool, error) {
	return a.keeper.HasReceivingRedelegation(ctx, delegator, validator)
}
