package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (s *KeeperTestSuite) TestKillSwitch_Sequence() {
	user := s.newUser(2_000_000)
	s.stake(user, 1_000_000)
	s.claimAndStake()
	s.withdraw(user, math.NewInt(100_000))

	resp, err := s.msgServer.KillSwitchUnbond(s.ctx, &types.MsgKillSwitchUnbond{Admin: s.fakes.Admin.String()})
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_000_000), resp.Unbonding)

	ks := s.k.GetKillSwitch(s.ctx)
	s.Require().Equal(types.KillSwitchUnbonding, ks.Status)
	s.Require().Equal(s.ctx.BlockTime().Add(types.DefaultUnbondingDuration), ks.UnlockTime)
	s.Require().True(s.k.TotalDelegated(s.ctx).IsZero())

	// Deposits, withdrawals and delegation are closed while unbonding
	_, err = s.msgServer.Stake(s.ctx, &types.MsgStake{Sender: user.String(), Amount: sdk.NewInt64Coin(native, 1_000_000)})
	s.Require().ErrorIs(err, types.ErrKillSwitchActive)
	_, err = s.msgServer.Receive(s.ctx, &types.MsgReceive{Sender: user.String(), Token: derivative, Amount: math.NewInt(100_000)})
	s.Require().ErrorIs(err, types.ErrKillSwitchActive)
	_, err = s.msgServer.ClaimAndStake(s.ctx, &types.MsgClaimAndStake{Admin: s.fakes.Admin.String()})
	s.Require().ErrorIs(err, types.ErrKillSwitchActive)
	_, err = s.msgServer.ReDelegate(s.ctx, &types.MsgReDelegate{Admin: s.fakes.Admin.String()})
	s.Require().ErrorIs(err, types.ErrKillSwitchActive)

	// Windows no longer promote
	s.passTime(types.DefaultWindowDuration)
	s.Require().False(s.advanceWindow().Promoted)

	_, err = s.msgServer.KillSwitchOpenWithdraws(s.ctx, &types.MsgKillSwitchOpenWithdraws{Admin: s.fakes.Admin.String()})
	s.Require().ErrorIs(err, types.ErrKillSwitchLocked)

	s.passTime(types.DefaultUnbondingDuration)
	_, err = s.msgServer.KillSwitchOpenWithdraws(s.ctx, &types.MsgKillSwitchOpenWithdraws{Admin: s.fakes.Admin.String()})
	s.Require().NoError(err)
	s.Require().Equal(types.KillSwitchWithdrawalsOpen, s.k.GetKillSwitch(s.ctx).Status)

	// The request made before the kill switch is settled at its recorded value
	s.Require().Equal(math.NewInt(100_000), s.k.GetClaimable(s.ctx, user))
	s.Require().Empty(s.k.GetClaimsByUser(s.ctx, user))

	// Remaining holders redeem immediately
	value := s.withdraw(user, math.NewInt(900_000))
	s.Require().Equal(math.NewInt(900_000), value)
	s.Require().Equal(math.NewInt(1_000_000), s.k.GetClaimable(s.ctx, user))
	s.Require().True(s.k.DerivativeSupply(s.ctx).IsZero())

	s.Require().Equal(math.NewInt(1_000_000), s.claim(user))
	s.Require().Equal(math.NewInt(2_000_000), s.nativeBalance(user))

	pool := s.k.GetPool(s.ctx)
	s.Require().True(pool.TotalStaked.IsZero())
	s.Require().True(pool.NativeInContract.IsZero())
	s.Require().True(pool.NativeUnderWithdraw.IsZero())
}

func (s *KeeperTestSuite) TestKillSwitch_MaturesPromotedBatches() {
	user := s.newUser(1_000_000)
	s.stake(user, 1_000_000)
	s.claimAndStake()
	s.withdraw(user, math.NewInt(300_000))
	s.passTime(types.DefaultWindowDuration)
	s.Require().True(s.advanceWindow().Promoted)

	_, err := s.msgServer.KillSwitchUnbond(s.ctx, &types.MsgKillSwitchUnbond{Admin: s.fakes.Admin.String()})
	s.Require().NoError(err)
	s.passTime(types.DefaultUnbondingDuration)
	_, err = s.msgServer.KillSwitchOpenWithdraws(s.ctx, &types.MsgKillSwitchOpenWithdraws{Admin: s.fakes.Admin.String()})
	s.Require().NoError(err)

	s.Require().Empty(s.k.GetAllUnbondingBatches(s.ctx))
	s.Require().Equal(math.NewInt(300_000), s.k.GetClaimable(s.ctx, user))
	s.Require().Equal(math.NewInt(700_000), s.k.GetPool(s.ctx).TotalStaked)
	s.Require().Equal(math.NewInt(700_000), s.k.GetPool(s.ctx).NativeInContract)
}

func (s *KeeperTestSuite) TestKillSwitch_InvalidTransitions() {
	_, err := s.msgServer.KillSwitchOpenWithdraws(s.ctx, &types.MsgKillSwitchOpenWithdraws{Admin: s.fakes.Admin.String()})
	s.Require().ErrorIs(err, types.ErrInvalidKillSwitch)

	_, err = s.msgServer.KillSwitchUnbond(s.ctx, &types.MsgKillSwitchUnbond{Admin: s.fakes.Admin.String()})
	s.Require().NoError(err)
	_, err = s.msgServer.KillSwitchUnbond(s.ctx, &types.MsgKillSwitchUnbond{Admin: s.fakes.Admin.String()})
	s.Require().ErrorIs(err, types.ErrInvalidKillSwitch)
}

func (s *KeeperTestSuite) TestKillSwitch_RequiresAdmin() {
	user := s.newUser(0)

	_, err := s.msgServer.KillSwitchUnbond(s.ctx, &types.MsgKillSwitchUnbond{Admin: user.String()})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	_, err = s.msgServer.KillSwitchOpenWithdraws(s.ctx, &types.MsgKillSwitchOpenWithdraws{Admin: user.String()})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	s.Require().Equal(types.KillSwitchNormal, s.k.GetKillSwitch(s.ctx).Status)
}
