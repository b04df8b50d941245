package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
)

// PoolState holds the pooled value counters of the engine.
type PoolState struct {
	// TotalStaked is the value backing the derivative supply: delegated stake,
	// undelegated deposits and value reserved for the open window.
	TotalStaked math.Int `json:"total_staked"`
	// NativeInContract is deposited principal not yet delegated.
	NativeInContract math.Int `json:"scrt_in_contract"`
	// DerivativeInContract is derivative tokens held until their window is promoted.
	DerivativeInContract math.Int `json:"sescrt_in_contract"`
	// NativeUnderWithdraw is matured value owed to users and not yet claimed.
	NativeUnderWithdraw math.Int `json:"scrt_under_withdraw"`
	// NativeReserved is liquid value set aside for the open window's withdrawals.
	NativeReserved math.Int `json:"native_reserved"`
	// RewardsPending is rewards withdrawn by delegation changes, compounded by the next claim_and_stake.
	RewardsPending math.Int `json:"rewards_pending"`
}

func NewPoolState() PoolState {
	return PoolState{
		TotalStaked:          math.ZeroInt(),
		NativeInContract:     math.ZeroInt(),
		DerivativeInContract: math.ZeroInt(),
		NativeUnderWithdraw:  math.ZeroInt(),
		NativeReserved:       math.ZeroInt(),
		RewardsPending:       math.ZeroInt(),
	}
}

func (p PoolState) Validate() error {
	counters := []struct {
		name  string
		value math.Int
	}{
		{"total staked", p.TotalStaked},
		{"native in contract", p.NativeInContract},
		{"derivative in contract", p.DerivativeInContract},
		{"native under withdraw", p.NativeUnderWithdraw},
		{"native reserved", p.NativeReserved},
		{"rewards pending", p.RewardsPending},
	}
	for _, c := range counters {
		if c.value.IsNil() || c.value.IsNegative() {
			return fmt.Errorf("pool %s must not be negative", c.name)
		}
	}
	return nil
}

// Window is the withdrawal window currently accepting requests.
type Window struct {
	Index     uint64    `json:"index"`
	StartTime time.Time `json:"start_time"`
}

// ClosesAt is the earliest time advance_window promotes this window.
func (w Window) ClosesAt(duration time.Duration) time.Time {
	return w.StartTime.Add(duration)
}

type KillSwitchStatus string

const (
	KillSwitchNormal          KillSwitchStatus = "normal"
	KillSwitchUnbonding       KillSwitchStatus = "unbonding"
	KillSwitchWithdrawalsOpen KillSwitchStatus = "withdrawals_open"
)

// KillSwitch tracks the one-way emergency unwind.
type KillSwitch struct {
	Status KillSwitchStatus `json:"status"`
	// UnlockTime is when the forced undelegation completes.
	UnlockTime time.Time `json:"unlock_time"`
	// UnbondingAmount is the stake undelegated by kill_switch_unbond.
	UnbondingAmount math.Int `json:"unbonding_amount"`
}

func NewKillSwitch() KillSwitch {
	return KillSwitch{Status: KillSwitchNormal, UnbondingAmount: math.ZeroInt()}
}

func (k KillSwitch) Active() bool {
	return k.Status != KillSwitchNormal
}

func (k KillSwitch) Validate() error {
	switch k.Status {
	case KillSwitchNormal, KillSwitchUnbonding, KillSwitchWithdrawalsOpen:
	default:
		return fmt.Errorf("unknown kill switch status %q", k.Status)
	}
	if k.UnbondingAmount.IsNil() || k.UnbondingAmount.IsNegative() {
		return fmt.Errorf("kill switch unbonding amount must not be negative")
	}
	return nil
}

// WhitelistSettings controls deposit gating.
type WhitelistSettings struct {
	// White enforces the allow-set on deposits.
	White bool `json:"white"`
	// Track records every successful depositor in the allow-set.
	Track bool `json:"track"`
}

func DefaultWhitelistSettings() WhitelistSettings {
	return WhitelistSettings{White: true, Track: false}
}

type ClaimStatus string

const (
	// ClaimRequested claims sit in the open window.
	ClaimRequested ClaimStatus = "requested"
	// ClaimUnbonding claims belong to a promoted window waiting for its unlock time.
	ClaimUnbonding ClaimStatus = "unbonding"
)

// PendingClaim is a user's withdrawal request within one window.
type PendingClaim struct {
	Address          string      `json:"address"`
	Window           uint64      `json:"window"`
	DerivativeAmount math.Int    `json:"derivative_amount"`
	NativeAmount     math.Int    `json:"native_amount"`
	UnlockTime       time.Time   `json:"unlock_time"`
	Status           ClaimStatus `json:"status"`
}

// UnbondingBatch aggregates the claims of a promoted window.
type UnbondingBatch struct {
	Window          uint64    `json:"window"`
	TotalDerivative math.Int  `json:"total_derivative"`
	TotalNative     math.Int  `json:"total_native"`
	UnlockTime      time.Time `json:"unlock_time"`
}

func (b UnbondingBatch) Matured(now time.Time) bool {
	return !now.Before(b.UnlockTime)
}
