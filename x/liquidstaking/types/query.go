package types

import (
	"context"
	"time"

	"cosmossdk.io/math"
)

// QueryServer is the server API for the module's queries.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Info(context.Context, *QueryInfoRequest) (*QueryInfoResponse, error)
	ExchangeRate(context.Context, *QueryExchangeRateRequest) (*QueryExchangeRateResponse, error)
	Window(context.Context, *QueryWindowRequest) (*QueryWindowResponse, error)
	UserClaimable(context.Context, *QueryUserClaimableRequest) (*QueryUserClaimableResponse, error)
	Undelegations(context.Context, *QueryUndelegationsRequest) (*QueryUndelegationsResponse, error)
	ValidatorList(context.Context, *QueryValidatorListRequest) (*QueryValidatorListResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryInfoRequest struct{}

type QueryInfoResponse struct {
	Admin                string           `json:"admin"`
	TotalStaked          math.Int         `json:"total_staked"`
	NativeInContract     math.Int         `json:"scrt_in_contract"`
	DerivativeInContract math.Int         `json:"sescrt_in_contract"`
	NativeUnderWithdraw  math.Int         `json:"scrt_under_withdraw"`
	TokenAddress         string           `json:"token_address"`
	Validators           []string         `json:"validators"`
	KillSwitch           KillSwitchStatus `json:"kill_switch"`
}

type QueryExchangeRateRequest struct{}

type QueryExchangeRateResponse struct {
	Rate  math.LegacyDec `json:"rate"`
	Denom string         `json:"denom"`
}

type QueryWindowRequest struct{}

type QueryWindowResponse struct {
	Index             uint64        `json:"index"`
	StartTime         time.Time     `json:"start_time"`
	NextAdvanceTime   time.Time     `json:"next_advance_time"`
	WindowDuration    time.Duration `json:"window_duration"`
	UnbondingDuration time.Duration `json:"unbonding_duration"`
}

type QueryUserClaimableRequest struct {
	Address string `json:"address"`
}

type QueryUserClaimableResponse struct {
	Claimable math.Int `json:"claimable"`
}

type QueryUndelegationsRequest struct {
	Address string `json:"address"`
}

type QueryUndelegationsResponse struct {
	Undelegations []PendingClaim `json:"undelegations"`
}

type QueryValidatorListRequest struct{}

// ValidatorDelegation is a validator in the current set with the stake delegated to it.
type ValidatorDelegation struct {
	Address string   `json:"address"`
	Staked  math.Int `json:"staked"`
}

type QueryValidatorListResponse struct {
	Validators []ValidatorDelegation `json:"validators"`
}
