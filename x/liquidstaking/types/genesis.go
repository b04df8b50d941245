package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the liquidstaking module's genesis state.
type GenesisState struct {
	Params            Params                `json:"params"`
	Pool              PoolState             `json:"pool"`
	Window            Window                `json:"window"`
	KillSwitch        KillSwitch            `json:"kill_switch"`
	WhitelistSettings WhitelistSettings     `json:"whitelist_settings"`
	Whitelist         []string              `json:"whitelist"`
	Validators        []string              `json:"validators"`
	Delegations       []ValidatorDelegation `json:"delegations"`
	PendingClaims     []PendingClaim        `json:"pending_claims"`
	UnbondingBatches  []UnbondingBatch      `json:"unbonding_batches"`
	Claimable         []ClaimableBalance    `json:"claimable"`
}

// ClaimableBalance is a user's matured, unclaimed native amount.
type ClaimableBalance struct {
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:            DefaultParams(),
		Pool:              NewPoolState(),
		Window:            Window{},
		KillSwitch:        NewKillSwitch(),
		WhitelistSettings: DefaultWhitelistSettings(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if err := gs.Pool.Validate(); err != nil {
		return err
	}
	if err := gs.KillSwitch.Validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{})
	for _, addr := range gs.Whitelist {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return fmt.Errorf("invalid whitelist address %s: %w", addr, err)
		}
		if _, ok := seen[addr]; ok {
			return fmt.Errorf("duplicate whitelist address %s", addr)
		}
		seen[addr] = struct{}{}
	}

	seen = make(map[string]struct{})
	for _, val := range gs.Validators {
		if _, err := sdk.ValAddressFromBech32(val); err != nil {
			return fmt.Errorf("invalid validator address %s: %w", val, err)
		}
		if _, ok := seen[val]; ok {
			return fmt.Errorf("duplicate validator %s", val)
		}
		seen[val] = struct{}{}
	}

	seen = make(map[string]struct{})
	for _, d := range gs.Delegations {
		if _, err := sdk.ValAddressFromBech32(d.Address); err != nil {
			return fmt.Errorf("invalid validator address %s: %w", d.Address, err)
		}
		if d.Staked.IsNil() || d.Staked.IsNegative() {
			return fmt.Errorf("negative delegation to %s", d.Address)
		}
		if _, ok := seen[d.Address]; ok {
			return fmt.Errorf("duplicate validator %s", d.Address)
		}
		seen[d.Address] = struct{}{}
	}

	seen = make(map[string]struct{})
	for _, c := range gs.PendingClaims {
		if _, err := sdk.AccAddressFromBech32(c.Address); err != nil {
			return fmt.Errorf("invalid pending claim address %s: %w", c.Address, err)
		}
		if c.DerivativeAmount.IsNil() || !c.DerivativeAmount.IsPositive() {
			return fmt.Errorf("pending claim of %s in window %d must have a positive amount", c.Address, c.Window)
		}
		key := fmt.Sprintf("%d/%s", c.Window, c.Address)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate pending claim %s", key)
		}
		seen[key] = struct{}{}
	}

	for _, b := range gs.UnbondingBatches {
		if b.TotalNative.IsNil() || b.TotalNative.IsNegative() {
			return fmt.Errorf("unbonding batch %d has a negative total", b.Window)
		}
	}

	for _, c := range gs.Claimable {
		if _, err := sdk.AccAddressFromBech32(c.Address); err != nil {
			return fmt.Errorf("invalid claimable address %s: %w", c.Address, err)
		}
		if c.Amount.IsNil() || c.Amount.IsNegative() {
			return fmt.Errorf("negative claimable amount for %s", c.Address)
		}
	}
	return nil
}
