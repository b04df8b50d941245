package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/productscience/liquidstake/testutil/sample"
	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (s *KeeperTestSuite) reDelegate() *types.MsgReDelegateResponse {
	resp, err := s.msgServer.ReDelegate(s.ctx, &types.MsgReDelegate{Admin: s.fakes.Admin.String()})
	s.Require().NoError(err)
	return resp
}

func (s *KeeperTestSuite) TestReDelegate_MovesStakeOffDroppedValidator() {
	user := s.newUser(3_000_000)
	s.stake(user, 3_000_000)
	s.claimAndStake()

	v0, v1, dropped := s.fakes.Validators[0], s.fakes.Validators[1], s.fakes.Validators[2]
	added := sample.ValAddress()
	s.fakes.Ranking.SetValidators(v0, v1, added)

	resp := s.reDelegate()
	s.Require().Equal(math.NewInt(1_000_000), resp.Moved)
	s.Require().Len(resp.Validators, 3)

	s.Require().True(s.k.GetDelegation(s.ctx, dropped).IsZero())
	s.Require().Equal(math.NewInt(1_000_000), s.k.GetDelegation(s.ctx, added))
	s.Require().Equal(math.NewInt(1_000_000), s.fakes.Staking.Delegation(types.ModuleAddress(), added))
	s.Require().Equal(math.NewInt(3_000_000), s.k.TotalDelegated(s.ctx))
	s.Require().ElementsMatch([]string{v0.String(), v1.String(), added.String()}, resp.Validators)
	s.requireRate("1")
	s.requireBacked()
}

func (s *KeeperTestSuite) TestReDelegate_UnchangedSetMovesNothing() {
	user := s.newUser(3_000_000)
	s.stake(user, 3_000_000)
	s.claimAndStake()

	resp := s.reDelegate()
	s.Require().True(resp.Moved.IsZero())
	s.Require().ElementsMatch(s.fakes.Validators, s.k.GetValidatorSet(s.ctx))
}

func (s *KeeperTestSuite) TestReDelegate_DefersStakeStillArriving() {
	user := s.newUser(3_000_000)
	s.stake(user, 3_000_000)
	s.claimAndStake()

	v0, v1 := s.fakes.Validators[0], s.fakes.Validators[1]
	added := sample.ValAddress()
	s.fakes.Ranking.SetValidators(v0, v1, added)
	s.reDelegate()

	// The newcomer is jailed before its incoming redelegation completes
	s.Require().True(s.k.DropFromValidatorSet(s.ctx, added))
	replacement := sample.ValAddress()
	s.fakes.Ranking.SetValidators(v0, v1, replacement)
	s.passTime(types.DefaultWindowDuration)

	resp := s.reDelegate()
	s.Require().True(resp.Moved.IsZero())
	s.Require().Equal([]string{added.String()}, resp.Deferred)
	s.Require().ElementsMatch([]string{v0.String(), v1.String(), replacement.String()}, resp.Validators)
	s.Require().Equal(math.NewInt(1_000_000), s.k.GetDelegation(s.ctx, added))
	s.Require().Equal(math.NewInt(1_000_000), s.fakes.Staking.Delegation(types.ModuleAddress(), added))
	s.Require().Equal(math.NewInt(3_000_000), s.k.TotalDelegated(s.ctx))
	s.requireBacked()

	// Once the incoming redelegation completes the stake moves
	s.passTime(types.DefaultUnbondingDuration)
	resp = s.reDelegate()
	s.Require().Equal(math.NewInt(1_000_000), resp.Moved)
	s.Require().Empty(resp.Deferred)
	s.Require().True(s.k.GetDelegation(s.ctx, added).IsZero())
	s.Require().True(s.fakes.Staking.Delegation(types.ModuleAddress(), added).IsZero())
	s.Require().Equal(math.NewInt(3_000_000), s.k.TotalDelegated(s.ctx))
	s.requireRate("1")
	s.requireBacked()
}

func (s *KeeperTestSuite) TestReDelegate_ReplacesWholeSet() {
	user := s.newUser(3_000_000)
	s.stake(user, 3_000_000)
	s.claimAndStake()

	a, b := sample.ValAddress(), sample.ValAddress()
	s.fakes.Ranking.SetValidators(a, b)

	resp := s.reDelegate()
	s.Require().Equal(math.NewInt(3_000_000), resp.Moved)
	s.Require().Equal(math.NewInt(1_500_000), s.k.GetDelegation(s.ctx, a))
	s.Require().Equal(math.NewInt(1_500_000), s.k.GetDelegation(s.ctx, b))
	for _, val := range s.fakes.Validators {
		s.Require().True(s.k.GetDelegation(s.ctx, val).IsZero())
	}
	s.Require().Equal(math.NewInt(3_000_000), s.k.TotalDelegated(s.ctx))
}

func (s *KeeperTestSuite) TestReDelegate_HarvestedRewardsAreCompoundedLater() {
	user := s.newUser(3_000_000)
	s.stake(user, 3_000_000)
	s.claimAndStake()

	dropped := s.fakes.Validators[2]
	s.fakes.Distribution.AccrueRewards(dropped, math.NewInt(1_000))
	s.fakes.Ranking.SetValidators(s.fakes.Validators[0], s.fakes.Validators[1], sample.ValAddress())
	s.reDelegate()

	// The harvest is parked, not yet part of the rate
	s.Require().Equal(math.NewInt(1_000), s.k.GetPool(s.ctx).RewardsPending)
	s.requireRate("1")

	resp := s.claimAndStake()
	s.Require().Equal(math.NewInt(1_000), resp.Rewards)
	s.Require().Equal(math.NewInt(30), resp.DevFee)
	s.Require().True(s.k.GetPool(s.ctx).RewardsPending.IsZero())
	s.requireRate("1.000323333333333333")
}

func (s *KeeperTestSuite) TestReDelegate_RequiresAdmin() {
	_, err := s.msgServer.ReDelegate(s.ctx, &types.MsgReDelegate{Admin: sample.AccAddress()})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	s.Require().Contains(err.Error(), "Only admin can call re delegate")
}
