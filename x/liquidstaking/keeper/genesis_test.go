package keeper_test

import (
	"time"

	"cosmossdk.io/math"

	testkeeper "github.com/productscience/liquidstake/testutil/keeper"
	"github.com/productscience/liquidstake/testutil/sample"
	liquidstakingmodule "github.com/productscience/liquidstake/x/liquidstaking/module"
	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (s *KeeperTestSuite) TestGenesis() {
	user1 := sample.AccAddress()
	user2 := sample.AccAddress()
	validators := sample.ValAddresses(2)
	unlock := testkeeper.GenesisTime.Add(10 * 24 * time.Hour)

	genesisState := types.GenesisState{
		Params: types.NewParams(s.fakes.Admin.String(), s.fakes.Dev.String()),
		Pool: types.PoolState{
			TotalStaked:          math.NewInt(3_000_000),
			NativeInContract:     math.NewInt(500_000),
			DerivativeInContract: math.NewInt(100_000),
			NativeUnderWithdraw:  math.NewInt(40_000),
			NativeReserved:       math.NewInt(100_000),
			RewardsPending:       math.NewInt(7),
		},
		Window:            types.Window{Index: 4, StartTime: testkeeper.GenesisTime},
		KillSwitch:        types.NewKillSwitch(),
		WhitelistSettings: types.WhitelistSettings{White: true, Track: true},
		Whitelist:         []string{user1, user2},
		Validators:        []string{validators[0].String(), validators[1].String()},
		Delegations: []types.ValidatorDelegation{
			{Address: validators[0].String(), Staked: math.NewInt(1_200_000)},
			{Address: validators[1].String(), Staked: math.NewInt(1_200_000)},
		},
		PendingClaims: []types.PendingClaim{
			{Address: user1, Window: 4, DerivativeAmount: math.NewInt(100_000), NativeAmount: math.NewInt(100_000), Status: types.ClaimRequested},
			{Address: user2, Window: 3, DerivativeAmount: math.NewInt(60_000), NativeAmount: math.NewInt(60_000), UnlockTime: unlock, Status: types.ClaimUnbonding},
		},
		UnbondingBatches: []types.UnbondingBatch{
			{Window: 3, TotalDerivative: math.NewInt(60_000), TotalNative: math.NewInt(60_000), UnlockTime: unlock},
		},
		Claimable: []types.ClaimableBalance{
			{Address: user1, Amount: math.NewInt(40_000)},
		},
	}
	s.Require().NoError(genesisState.Validate())

	liquidstakingmodule.InitGenesis(s.ctx, s.k, genesisState)

	exported := liquidstakingmodule.ExportGenesis(s.ctx, s.k)
	s.Require().NotNil(exported)

	s.Require().Equal(genesisState.Params, exported.Params)
	s.Require().Equal(genesisState.Pool, exported.Pool)
	s.Require().Equal(genesisState.Window, exported.Window)
	s.Require().Equal(genesisState.KillSwitch.Status, exported.KillSwitch.Status)
	s.Require().Equal(genesisState.WhitelistSettings, exported.WhitelistSettings)
	s.Require().ElementsMatch(genesisState.Whitelist, exported.Whitelist)
	s.Require().ElementsMatch(genesisState.Validators, exported.Validators)
	s.Require().ElementsMatch(genesisState.Delegations, exported.Delegations)
	s.Require().ElementsMatch(genesisState.PendingClaims, exported.PendingClaims)
	s.Require().ElementsMatch(genesisState.UnbondingBatches, exported.UnbondingBatches)
	s.Require().ElementsMatch(genesisState.Claimable, exported.Claimable)
}

func (s *KeeperTestSuite) TestGenesis_ZeroWindowStartsAtBlockTime() {
	genesisState := *types.DefaultGenesis()
	genesisState.Params = types.NewParams(s.fakes.Admin.String(), "")
	s.Require().NoError(genesisState.Validate())

	liquidstakingmodule.InitGenesis(s.ctx, s.k, genesisState)

	window := s.k.GetWindow(s.ctx)
	s.Require().Equal(uint64(0), window.Index)
	s.Require().Equal(s.ctx.BlockTime(), window.StartTime)
	s.Require().Empty(s.k.GetValidatorSet(s.ctx))
	s.Require().True(s.k.GetPool(s.ctx).TotalStaked.IsZero())
}
