package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BasisPoints is the denominator of DevFeeBps.
const BasisPoints = 10_000

// Default parameter values
var (
	DefaultNativeDenom         = "uscrt"
	DefaultDerivativeDenom     = "usescrt"
	DefaultDevFeeBps           = uint32(300)
	DefaultMinDeposit          = math.NewInt(1_000_000)
	DefaultMinWithdraw         = math.NewInt(10_000)
	DefaultDelegationThreshold = math.NewInt(100_000)
	DefaultWindowDuration      = 72 * time.Hour
	DefaultUnbondingDuration   = 21 * 24 * time.Hour
	DefaultTopValidators       = uint32(3)
)

// Params is the engine configuration. Admin-only operations are gated on Admin;
// the whole struct can be replaced by the module authority.
type Params struct {
	Admin                string        `json:"admin"`
	DevAddress           string        `json:"dev_address"`
	DevFeeBps            uint32        `json:"dev_fee_bps"`
	NativeDenom          string        `json:"native_denom"`
	DerivativeDenom      string        `json:"derivative_denom"`
	MinDeposit           math.Int      `json:"min_deposit"`
	MinWithdraw          math.Int      `json:"min_withdraw"`
	DelegationThreshold  math.Int      `json:"delegation_threshold"`
	WindowDuration       time.Duration `json:"window_duration"`
	UnbondingDuration    time.Duration `json:"unbonding_duration"`
	TopValidators        uint32        `json:"top_validators"`
	WrappedTokenContract string        `json:"wrapped_token_contract,omitempty"`
	RankingContract      string        `json:"ranking_contract,omitempty"`
}

// NewParams creates a new Params instance
func NewParams(admin, devAddress string) Params {
	return Params{
		Admin:               admin,
		DevAddress:          devAddress,
		DevFeeBps:           DefaultDevFeeBps,
		NativeDenom:         DefaultNativeDenom,
		DerivativeDenom:     DefaultDerivativeDenom,
		MinDeposit:          DefaultMinDeposit,
		MinWithdraw:         DefaultMinWithdraw,
		DelegationThreshold: DefaultDelegationThreshold,
		WindowDuration:      DefaultWindowDuration,
		UnbondingDuration:   DefaultUnbondingDuration,
		TopValidators:       DefaultTopValidators,
	}
}

// DefaultParams returns a default set of parameters. Admin and dev address are
// left empty: admin operations are refused and no dev fee is taken until they are set.
func DefaultParams() Params {
	return NewParams("", "")
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateAddress("admin", p.Admin); err != nil {
		return err
	}
	if err := validateAddress("dev address", p.DevAddress); err != nil {
		return err
	}
	if p.DevFeeBps > BasisPoints {
		return fmt.Errorf("dev fee must not exceed %d basis points, got %d", BasisPoints, p.DevFeeBps)
	}
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return fmt.Errorf("invalid native denom: %w", err)
	}
	if err := sdk.ValidateDenom(p.DerivativeDenom); err != nil {
		return fmt.Errorf("invalid derivative denom: %w", err)
	}
	if p.NativeDenom == p.DerivativeDenom {
		return fmt.Errorf("native and derivative denoms must differ")
	}
	if err := validatePositive("min deposit", p.MinDeposit); err != nil {
		return err
	}
	if err := validatePositive("min withdraw", p.MinWithdraw); err != nil {
		return err
	}
	if p.DelegationThreshold.IsNil() || p.DelegationThreshold.IsNegative() {
		return fmt.Errorf("delegation threshold must not be negative")
	}
	if p.WindowDuration <= 0 {
		return fmt.Errorf("window duration must be positive")
	}
	if p.UnbondingDuration <= 0 {
		return fmt.Errorf("unbonding duration must be positive")
	}
	if p.TopValidators == 0 {
		return fmt.Errorf("top validators must be positive")
	}
	if err := validateAddress("wrapped token contract", p.WrappedTokenContract); err != nil {
		return err
	}
	if err := validateAddress("ranking contract", p.RankingContract); err != nil {
		return err
	}
	return nil
}

// validateAddress accepts an empty address, which leaves the role unassigned.
func validateAddress(name, address string) error {
	if address == "" {
		return nil
	}
	if _, err := sdk.AccAddressFromBech32(address); err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	return nil
}

func validatePositive(name string, v math.Int) error {
	if v.IsNil() || !v.IsPositive() {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}
