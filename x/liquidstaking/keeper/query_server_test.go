package keeper_test

import (
	"cosmossdk.io/math"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (s *KeeperTestSuite) TestQueryParams() {
	resp, err := s.k.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Require().Equal(s.fakes.Admin.String(), resp.Params.Admin)

	_, err = s.k.Params(s.ctx, nil)
	s.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *KeeperTestSuite) TestQueryInfo() {
	user := s.newUser(1_000_000)
	s.stake(user, 1_000_000)
	s.claimAndStake()
	s.withdraw(user, math.NewInt(100_000))

	resp, err := s.k.Info(s.ctx, &types.QueryInfoRequest{})
	s.Require().NoError(err)
	s.Require().Equal(s.fakes.Admin.String(), resp.Admin)
	s.Require().Equal(math.NewInt(1_000_000), resp.TotalStaked)
	s.Require().True(resp.NativeInContract.IsZero())
	s.Require().Equal(math.NewInt(100_000), resp.DerivativeInContract)
	s.Require().True(resp.NativeUnderWithdraw.IsZero())
	s.Require().Equal(derivative, resp.TokenAddress)
	s.Require().Len(resp.Validators, 3)
	s.Require().Equal(types.KillSwitchNormal, resp.KillSwitch)
}

func (s *KeeperTestSuite) TestQueryExchangeRate() {
	resp, err := s.k.ExchangeRate(s.ctx, &types.QueryExchangeRateRequest{})
	s.Require().NoError(err)
	s.Require().True(resp.Rate.Equal(math.LegacyOneDec()))
	s.Require().Equal(native, resp.Denom)

	user := s.newUser(1_000_000)
	s.stakeWithRewards(user)

	resp, err = s.k.ExchangeRate(s.ctx, &types.QueryExchangeRateRequest{})
	s.Require().NoError(err)
	s.Require().True(resp.Rate.Equal(math.LegacyMustNewDecFromStr("1.0291")))
}

func (s *KeeperTestSuite) TestQueryWindow() {
	resp, err := s.k.Window(s.ctx, &types.QueryWindowRequest{})
	s.Require().NoError(err)
	s.Require().Equal(uint64(0), resp.Index)
	s.Require().Equal(s.ctx.BlockTime(), resp.StartTime)
	s.Require().Equal(s.ctx.BlockTime().Add(types.DefaultWindowDuration), resp.NextAdvanceTime)
	s.Require().Equal(types.DefaultWindowDuration, resp.WindowDuration)
	s.Require().Equal(types.DefaultUnbondingDuration, resp.UnbondingDuration)

	s.passTime(types.DefaultWindowDuration)
	s.advanceWindow()

	resp, err = s.k.Window(s.ctx, &types.QueryWindowRequest{})
	s.Require().NoError(err)
	s.Require().Equal(uint64(1), resp.Index)
	s.Require().Equal(s.ctx.BlockTime().Add(types.DefaultWindowDuration), resp.NextAdvanceTime)
}

func (s *KeeperTestSuite) TestQueryUserClaimableAndUndelegations() {
	user := s.newUser(1_000_000)
	s.stake(user, 1_000_000)
	s.withdraw(user, math.NewInt(250_000))

	undelegations, err := s.k.Undelegations(s.ctx, &types.QueryUndelegationsRequest{Address: user.String()})
	s.Require().NoError(err)
	s.Require().Len(undelegations.Undelegations, 1)
	s.Require().Equal(math.NewInt(250_000), undelegations.Undelegations[0].NativeAmount)

	claimable, err := s.k.UserClaimable(s.ctx, &types.QueryUserClaimableRequest{Address: user.String()})
	s.Require().NoError(err)
	s.Require().True(claimable.Claimable.IsZero())

	s.passTime(types.DefaultWindowDuration)
	s.advanceWindow()
	s.passTime(types.DefaultUnbondingDuration)
	s.advanceWindow()

	claimable, err = s.k.UserClaimable(s.ctx, &types.QueryUserClaimableRequest{Address: user.String()})
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(250_000), claimable.Claimable)

	undelegations, err = s.k.Undelegations(s.ctx, &types.QueryUndelegationsRequest{Address: user.String()})
	s.Require().NoError(err)
	s.Require().Empty(undelegations.Undelegations)

	_, err = s.k.UserClaimable(s.ctx, &types.QueryUserClaimableRequest{Address: "not-an-address"})
	s.Require().Equal(codes.InvalidArgument, status.Code(err))
	_, err = s.k.Undelegations(s.ctx, &types.QueryUndelegationsRequest{Address: "not-an-address"})
	s.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *KeeperTestSuite) TestQueryValidatorList() {
	user := s.newUser(3_000_000)
	s.stake(user, 3_000_000)
	s.claimAndStake()

	resp, err := s.k.ValidatorList(s.ctx, &types.QueryValidatorListRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.Validators, 3)
	for _, v := range resp.Validators {
		s.Require().Equal(math.NewInt(1_000_000), v.Staked)
	}

	// A dropped validator stays listed while it still holds stake
	s.Require().True(s.k.DropFromValidatorSet(s.ctx, s.fakes.Validators[0]))
	resp, err = s.k.ValidatorList(s.ctx, &types.QueryValidatorListRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.Validators, 3)
}
