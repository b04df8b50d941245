package keeper

import (
	"context"
	"slices"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Params(c context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

func (k Keeper) Info(c context.Context, req *types.QueryInfoRequest) (*types.QueryInfoResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	params := k.GetParams(ctx)
	pool := k.GetPool(ctx)
	validators := make([]string, 0)
	for _, val := range k.GetValidatorSet(ctx) {
		validators = append(validators, val.String())
	}

	return &types.QueryInfoResponse{
		Admin:                params.Admin,
		TotalStaked:          pool.TotalStaked,
		NativeInContract:     pool.NativeInContract,
		DerivativeInContract: pool.DerivativeInContract,
		NativeUnderWithdraw:  pool.NativeUnderWithdraw,
		TokenAddress:         params.DerivativeDenom,
		Validators:           validators,
		KillSwitch:           k.GetKillSwitch(ctx).Status,
	}, nil
}

func (k Keeper) ExchangeRate(c context.Context, req *types.QueryExchangeRateRequest) (*types.QueryExchangeRateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	return &types.QueryExchangeRateResponse{
		Rate:  k.CurrentRate(ctx),
		Denom: k.GetParams(ctx).NativeDenom,
	}, nil
}

func (k Keeper) Window(c context.Context, req *types.QueryWindowRequest) (*types.QueryWindowResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	params := k.GetParams(ctx)
	window := k.GetWindow(ctx)
	return &types.QueryWindowResponse{
		Index:             window.Index,
		StartTime:         window.StartTime,
		NextAdvanceTime:   window.ClosesAt(params.WindowDuration),
		WindowDuration:    params.WindowDuration,
		UnbondingDuration: params.UnbondingDuration,
	}, nil
}

func (k Keeper) UserClaimable(c context.Context, req *types.QueryUserClaimableRequest) (*types.QueryUserClaimableResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	user, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address: %v", err)
	}

	return &types.QueryUserClaimableResponse{Claimable: k.GetClaimable(ctx, user)}, nil
}

func (k Keeper) Undelegations(c context.Context, req *types.QueryUndelegationsRequest) (*types.QueryUndelegationsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	user, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address: %v", err)
	}

	return &types.QueryUndelegationsResponse{Undelegations: k.GetClaimsByUser(ctx, user)}, nil
}

func (k Keeper) ValidatorList(c context.Context, req *types.QueryValidatorListRequest) (*types.QueryValidatorListResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	validators := make([]types.ValidatorDelegation, 0)
	for _, val := range k.GetValidatorSet(ctx) {
		validators = append(validators, types.ValidatorDelegation{
			Address: val.String(),
			Staked:  k.GetDelegation(ctx, val),
		})
	}
	// stake still parked on validators that left the set
	for _, d := range k.GetAllDelegations(ctx) {
		listed := slices.ContainsFunc(validators, func(v types.ValidatorDelegation) bool {
			return v.Address == d.Address
		})
		if !listed {
			validators = append(validators, d)
		}
	}

	return &types.QueryValidatorListResponse{Validators: validators}, nil
}

