package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	testkeeper "github.com/productscience/liquidstake/testutil/keeper"
	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// stakeWithRewards leaves user with 1,000,000 derivative units worth 1,029,100 native.
func (s *KeeperTestSuite) stakeWithRewards(user sdk.AccAddress) {
	s.stake(user, 1_000_000)
	s.claimAndStake()
	s.fakes.Distribution.AccrueRewards(s.fakes.Validators[0], math.NewInt(30_000))
	s.claimAndStake()
}

func (s *KeeperTestSuite) TestWithdraw_Timeline() {
	user := s.newUser(1_000_000)
	s.stakeWithRewards(user)

	value := s.withdraw(user, math.NewInt(500_000))
	s.Require().Equal(math.NewInt(514_550), value)
	s.Require().Equal(math.NewInt(500_000), s.derivativeBalance(user))

	pool := s.k.GetPool(s.ctx)
	s.Require().True(pool.NativeInContract.IsZero())
	s.Require().Equal(math.NewInt(29_100), pool.NativeReserved)
	s.Require().Equal(math.NewInt(500_000), pool.DerivativeInContract)

	claims := s.k.GetClaimsByUser(s.ctx, user)
	s.Require().Len(claims, 1)
	s.Require().Equal(types.ClaimRequested, claims[0].Status)
	s.Require().Equal(uint64(0), claims[0].Window)

	// The window has not elapsed yet
	resp := s.advanceWindow()
	s.Require().False(resp.Promoted)
	s.Require().Equal(types.ClaimRequested, s.k.GetClaimsByUser(s.ctx, user)[0].Status)

	s.passTime(types.DefaultWindowDuration)
	resp = s.advanceWindow()
	s.Require().True(resp.Promoted)
	s.Require().Equal(uint64(1), resp.Window.Index)

	claims = s.k.GetClaimsByUser(s.ctx, user)
	s.Require().Len(claims, 1)
	s.Require().Equal(types.ClaimUnbonding, claims[0].Status)
	s.Require().Equal(s.ctx.BlockTime().Add(types.DefaultUnbondingDuration), claims[0].UnlockTime)

	pool = s.k.GetPool(s.ctx)
	s.Require().Equal(math.NewInt(514_550), pool.TotalStaked)
	s.Require().True(pool.DerivativeInContract.IsZero())
	s.Require().True(pool.NativeReserved.IsZero())
	s.Require().Equal(math.NewInt(500_000), s.k.DerivativeSupply(s.ctx))
	s.requireRate("1.0291")
	s.requireBacked()

	// Nothing is claimable until the unbonding completes
	s.Require().True(s.claim(user).IsZero())

	s.passTime(types.DefaultUnbondingDuration)
	resp = s.advanceWindow()
	s.Require().Equal(uint32(1), resp.MaturedBatches)
	s.Require().Equal(math.NewInt(514_550), s.k.GetClaimable(s.ctx, user))
	s.Require().Equal(math.NewInt(514_550), s.k.GetPool(s.ctx).NativeUnderWithdraw)
	s.Require().Empty(s.k.GetClaimsByUser(s.ctx, user))

	s.Require().Equal(math.NewInt(514_550), s.claim(user))
	s.Require().Equal(math.NewInt(514_550), s.nativeBalance(user))
	s.Require().True(s.k.GetPool(s.ctx).NativeUnderWithdraw.IsZero())
	s.Require().True(s.k.GetClaimable(s.ctx, user).IsZero())
	s.Require().True(s.nativeBalance(types.ModuleAddress()).IsZero())
}

func (s *KeeperTestSuite) TestWithdraw_BelowMinimum() {
	user := s.newUser(1_000_000)
	s.stake(user, 1_000_000)

	_, err := s.msgServer.Receive(s.ctx, &types.MsgReceive{Sender: user.String(), Token: derivative, Amount: math.NewInt(9_999)})
	s.Require().ErrorIs(err, types.ErrBelowMinimumWithdraw)
	s.Require().Contains(err.Error(), "Amount withdrawn below minimum of 10000 usescrt")
	s.Require().Equal(math.NewInt(1_000_000), s.derivativeBalance(user))
}

func (s *KeeperTestSuite) TestWithdraw_ExactMinimum() {
	user := s.newUser(1_000_000)
	s.stake(user, 1_000_000)

	minimum := s.k.GetParams(s.ctx).MinWithdraw
	value := s.withdraw(user, minimum)
	s.Require().Equal(minimum, value)

	claims := s.k.GetClaimsByUser(s.ctx, user)
	s.Require().Len(claims, 1)
	s.Require().Equal(types.ClaimRequested, claims[0].Status)
	s.Require().Equal(minimum, claims[0].DerivativeAmount)
	s.Require().Equal(minimum, claims[0].NativeAmount)
	s.Require().Equal(math.NewInt(990_000), s.derivativeBalance(user))
}

func (s *KeeperTestSuite) TestWithdraw_SingleUserFullExit() {
	user := s.newUser(4_000_000)
	minted := s.stake(user, 4_000_000)
	s.claimAndStake()
	s.fakes.Distribution.AccrueRewards(s.fakes.Validators[1], math.NewInt(100_000))
	s.claimAndStake()
	s.requireRate("1.02425")

	expected := s.k.CurrentRate(s.ctx).MulInt(minted).TruncateInt()
	value := s.withdraw(user, minted)
	s.Require().InDelta(expected.Int64(), value.Int64(), 600)
	s.Require().True(s.derivativeBalance(user).IsZero())

	s.passTime(types.DefaultWindowDuration)
	s.Require().True(s.advanceWindow().Promoted)
	s.passTime(types.DefaultUnbondingDuration)
	s.advanceWindow()

	paid := s.claim(user)
	s.Require().InDelta(expected.Int64(), paid.Int64(), 600)
	s.Require().Equal(paid, s.nativeBalance(user))
	s.Require().True(s.k.DerivativeSupply(s.ctx).IsZero())
	s.Require().True(s.k.TotalDelegated(s.ctx).IsZero())
	s.requireBacked()
}

func (s *KeeperTestSuite) TestWithdraw_MoreThanHeld() {
	user := s.newUser(1_000_000)
	s.stake(user, 1_000_000)

	_, err := s.msgServer.Receive(s.ctx, &types.MsgReceive{Sender: user.String(), Token: derivative, Amount: math.NewInt(1_000_001)})
	s.Require().ErrorIs(err, sdkerrors.ErrInsufficientFunds)
	s.Require().Empty(s.k.GetClaimsByUser(s.ctx, user))
	s.Require().True(s.k.GetPool(s.ctx).DerivativeInContract.IsZero())
}

func (s *KeeperTestSuite) TestReceive_UnknownToken() {
	user := s.newUser(1_000_000)

	_, err := s.msgServer.Receive(s.ctx, &types.MsgReceive{Sender: user.String(), Token: "ufoo", Amount: math.NewInt(1_000_000)})
	s.Require().ErrorIs(err, types.ErrUnknownToken)
}

func (s *KeeperTestSuite) TestWithdraw_MergesRequestsInWindow() {
	user := s.newUser(1_000_000)
	s.stake(user, 1_000_000)

	s.withdraw(user, math.NewInt(100_000))
	s.withdraw(user, math.NewInt(50_000))

	claims := s.k.GetClaimsByUser(s.ctx, user)
	s.Require().Len(claims, 1)
	s.Require().Equal(math.NewInt(150_000), claims[0].DerivativeAmount)
	s.Require().Equal(math.NewInt(150_000), claims[0].NativeAmount)
}

func (s *KeeperTestSuite) TestAdvanceWindow_EmptyWindowRollsForward() {
	s.passTime(types.DefaultWindowDuration)

	resp := s.advanceWindow()
	s.Require().True(resp.Promoted)
	s.Require().Equal(uint64(1), resp.Window.Index)
	s.Require().Equal(s.ctx.BlockTime(), resp.Window.StartTime)
	s.Require().Empty(s.k.GetAllUnbondingBatches(s.ctx))
}

func (s *KeeperTestSuite) TestAdvanceWindow_RequiresAdmin() {
	user := s.newUser(0)

	_, err := s.msgServer.AdvanceWindow(s.ctx, &types.MsgAdvanceWindow{Admin: user.String()})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	s.Require().Contains(err.Error(), "Only admin can call advance window")
}

func (s *KeeperTestSuite) TestWithdraw_TwoUsersWithinTolerance() {
	alice := s.newUser(1_000_000)
	bob := s.newUser(2_000_000)

	s.stake(alice, 1_000_000)
	s.claimAndStake()
	s.fakes.Distribution.AccrueRewards(s.fakes.Validators[1], math.NewInt(10_007))
	s.claimAndStake()

	s.stake(bob, 2_000_000)
	s.claimAndStake()
	s.fakes.Distribution.AccrueRewards(s.fakes.Validators[2], math.NewInt(20_011))
	s.claimAndStake()

	// Alice earns the first rewards alone and shares the second pro rata
	firstNet := 10_007.0 - 300
	secondNet := 20_011.0 - 600
	aliceShares := 1_000_000.0
	bobShares := s.derivativeBalance(bob)
	totalShares := aliceShares + float64(bobShares.Int64())
	aliceExpected := 1_000_000 + firstNet + secondNet*aliceShares/totalShares
	bobExpected := 2_000_000 + secondNet*float64(bobShares.Int64())/totalShares

	s.withdraw(alice, math.NewInt(1_000_000))
	s.withdraw(bob, bobShares)

	s.passTime(types.DefaultWindowDuration)
	s.advanceWindow()
	s.passTime(types.DefaultUnbondingDuration)
	s.advanceWindow()

	alicePaid := s.claim(alice)
	bobPaid := s.claim(bob)
	s.Require().InDelta(aliceExpected, float64(alicePaid.Int64()), 600)
	s.Require().InDelta(bobExpected, float64(bobPaid.Int64()), 600)

	s.Require().True(s.k.DerivativeSupply(s.ctx).IsZero())
	s.Require().True(s.k.GetPool(s.ctx).NativeUnderWithdraw.IsZero())
}

func (s *KeeperTestSuite) TestWithdraw_StakeDuringUnbonding() {
	first := s.newUser(2_000_000)
	second := s.newUser(1_000_000)

	s.stake(first, 2_000_000)
	s.claimAndStake()
	s.withdraw(first, math.NewInt(1_000_000))

	s.passTime(types.DefaultWindowDuration)
	s.Require().True(s.advanceWindow().Promoted)

	// A deposit while the batch is unbonding is minted at the unchanged rate
	s.Require().Equal(math.NewInt(1_000_000), s.stake(second, 1_000_000))
	s.claimAndStake()
	s.requireRate("1")

	s.passTime(types.DefaultUnbondingDuration)
	s.Require().Equal(uint32(1), s.advanceWindow().MaturedBatches)
	s.Require().Equal(math.NewInt(1_000_000), s.claim(first))

	pool := s.k.GetPool(s.ctx)
	s.Require().Equal(math.NewInt(2_000_000), pool.TotalStaked)
	s.Require().Equal(math.NewInt(2_000_000), s.k.DerivativeSupply(s.ctx))
	s.Require().Equal(math.NewInt(2_000_000), s.k.TotalDelegated(s.ctx))
	s.requireBacked()
}

func (s *KeeperTestSuite) TestClaim_NothingClaimable() {
	user := s.newUser(0)
	s.Require().True(s.claim(user).IsZero())
}

func (s *KeeperTestSuite) TestClaim_Secret() {
	user := s.newUser(1_000_000)
	s.stake(user, 1_000_000)
	s.withdraw(user, math.NewInt(200_000))

	s.passTime(types.DefaultWindowDuration)
	s.advanceWindow()
	s.passTime(types.DefaultUnbondingDuration)
	s.advanceWindow()

	resp, err := s.msgServer.Claim(s.ctx, &types.MsgClaim{Sender: user.String(), Secret: true})
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(200_000), resp.Amount)
	s.Require().Equal(math.NewInt(200_000), s.fakes.WrappedToken.BalanceOf(user))
	s.Require().True(s.nativeBalance(user).IsZero())
	s.Require().Equal(math.NewInt(200_000), s.nativeBalance(testkeeper.WrappedEscrowAddress))
}

func (s *KeeperTestSuite) TestReceive_WrappedDeposit() {
	params := s.k.GetParams(s.ctx)
	params.WrappedTokenContract = "wrapped"
	s.Require().NoError(s.k.SetParams(s.ctx, params))

	user := s.newUser(1_000_000)
	s.Require().NoError(s.fakes.WrappedToken.Wrap(s.ctx, user, user, math.NewInt(1_000_000)))

	resp, err := s.msgServer.Receive(s.ctx, &types.MsgReceive{Sender: user.String(), Token: "wrapped", Amount: math.NewInt(1_000_000)})
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_000_000), resp.Minted)
	s.Require().True(s.fakes.WrappedToken.BalanceOf(user).IsZero())
	s.Require().Equal(math.NewInt(1_000_000), s.derivativeBalance(user))
	s.Require().Equal(math.NewInt(1_000_000), s.nativeBalance(types.ModuleAddress()))
	s.requireBacked()
}
