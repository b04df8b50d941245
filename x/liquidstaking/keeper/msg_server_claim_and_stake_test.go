package keeper_test

import (
	"errors"

	"cosmossdk.io/math"

	"github.com/productscience/liquidstake/testutil/sample"
	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (s *KeeperTestSuite) TestClaimAndStake_DelegatesEvenly() {
	user := s.newUser(1_000_000)
	s.stake(user, 1_000_000)

	resp := s.claimAndStake()
	s.Require().Equal(math.NewInt(1_000_000), resp.Delegated)
	s.Require().True(resp.Rewards.IsZero())

	s.Require().ElementsMatch(s.fakes.Validators, s.k.GetValidatorSet(s.ctx))
	for _, val := range s.fakes.Validators {
		staked := s.k.GetDelegation(s.ctx, val)
		s.Require().True(staked.Equal(math.NewInt(333_333)) || staked.Equal(math.NewInt(333_334)), staked.String())
		s.Require().Equal(staked, s.fakes.Staking.Delegation(types.ModuleAddress(), val))
	}
	s.Require().Equal(math.NewInt(1_000_000), s.k.TotalDelegated(s.ctx))
	s.Require().True(s.k.GetPool(s.ctx).NativeInContract.IsZero())
	s.Require().True(s.nativeBalance(types.ModuleAddress()).IsZero())
	s.requireBacked()
}

func (s *KeeperTestSuite) TestClaimAndStake_DevFee() {
	user := s.newUser(1_000_000)
	s.stake(user, 1_000_000)
	s.claimAndStake()

	s.fakes.Distribution.AccrueRewards(s.fakes.Validators[0], math.NewInt(30_000))
	resp := s.claimAndStake()

	s.Require().Equal(math.NewInt(30_000), resp.Rewards)
	s.Require().Equal(math.NewInt(900), resp.DevFee)
	// below the delegation threshold, the net rewards stay liquid
	s.Require().True(resp.Delegated.IsZero())
	s.Require().Equal(math.NewInt(900), s.nativeBalance(s.fakes.Dev))

	pool := s.k.GetPool(s.ctx)
	s.Require().Equal(math.NewInt(1_029_100), pool.TotalStaked)
	s.Require().Equal(math.NewInt(29_100), pool.NativeInContract)
	s.requireRate("1.0291")
	s.requireBacked()
}

func (s *KeeperTestSuite) TestClaimAndStake_NoFeeWithoutDevAddress() {
	params := s.k.GetParams(s.ctx)
	params.DevAddress = ""
	s.Require().NoError(s.k.SetParams(s.ctx, params))

	user := s.newUser(1_000_000)
	s.stake(user, 1_000_000)
	s.claimAndStake()

	s.fakes.Distribution.AccrueRewards(s.fakes.Validators[1], math.NewInt(30_000))
	resp := s.claimAndStake()
	s.Require().True(resp.DevFee.IsZero())
	s.requireRate("1.03")
}

func (s *KeeperTestSuite) TestClaimAndStake_RateIsMonotonic() {
	user := s.newUser(5_000_000)
	s.stake(user, 1_000_000)
	s.claimAndStake()

	previous := s.k.CurrentRate(s.ctx)
	for i, reward := range []int64{1, 17, 5_000, 0, 250_000, 3} {
		s.fakes.Distribution.AccrueRewards(s.fakes.Validators[i%3], math.NewInt(reward))
		s.claimAndStake()
		if i == 2 {
			s.stake(user, 1_000_000)
		}
		rate := s.k.CurrentRate(s.ctx)
		s.Require().True(rate.GTE(previous), "rate dropped from %s to %s", previous, rate)
		previous = rate
	}
	s.requireBacked()
}

func (s *KeeperTestSuite) TestClaimAndStake_RequiresAdmin() {
	_, err := s.msgServer.ClaimAndStake(s.ctx, &types.MsgClaimAndStake{Admin: sample.AccAddress()})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	s.Require().Contains(err.Error(), "Only admin can call claim and stake")
}

func (s *KeeperTestSuite) TestClaimAndStake_NoValidators() {
	s.fakes.Ranking.SetValidators()
	user := s.newUser(1_000_000)
	s.stake(user, 1_000_000)

	_, err := s.msgServer.ClaimAndStake(s.ctx, &types.MsgClaimAndStake{Admin: s.fakes.Admin.String()})
	s.Require().ErrorIs(err, types.ErrNoValidators)
}

func (s *KeeperTestSuite) TestClaimAndStake_RankingFailure() {
	s.fakes.Ranking.Err = errors.New("ranking unavailable")

	_, err := s.msgServer.ClaimAndStake(s.ctx, &types.MsgClaimAndStake{Admin: s.fakes.Admin.String()})
	s.Require().ErrorContains(err, "ranking unavailable")
}
