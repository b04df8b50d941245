package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/productscience/liquidstake/testutil/sample"
	"github.com/productscience/liquidstake/x/liquidstaking/keeper"
	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// GenesisTime is the block time of the harness context.
var GenesisTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// LiquidStakingFakes holds the in-memory collaborators backing a test keeper.
type LiquidStakingFakes struct {
	Bank         *InMemoryBankKeeper
	Staking      *InMemoryStakingKeeper
	Distribution *InMemoryDistributionKeeper
	Ranking      *StaticRanking
	WrappedToken *InMemoryWrappedToken

	Admin      sdk.AccAddress
	Dev        sdk.AccAddress
	Validators []sdk.ValAddress
}

// LiquidStakingMocks holds the gomock collaborators of a test keeper.
type LiquidStakingMocks struct {
	BankKeeper         *MockBankKeeper
	StakingKeeper      *MockStakingKeeper
	DistributionKeeper *MockDistributionKeeper
	Ranking            *MockValidatorRanking
	WrappedToken       *MockWrappedToken
}

// LiquidStakingKeeper builds a keeper over in-memory fakes, with an admin, a dev
// address and three ranked validators.
func LiquidStakingKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *LiquidStakingFakes) {
	bank := NewInMemoryBankKeeper()
	fakes := &LiquidStakingFakes{
		Bank:         bank,
		Staking:      NewInMemoryStakingKeeper(bank, types.DefaultNativeDenom, types.DefaultUnbondingDuration),
		Distribution: NewInMemoryDistributionKeeper(bank, types.DefaultNativeDenom),
		WrappedToken: NewInMemoryWrappedToken(bank, types.DefaultNativeDenom),
		Admin:        sdk.MustAccAddressFromBech32(sample.AccAddress()),
		Dev:          sdk.MustAccAddressFromBech32(sample.AccAddress()),
		Validators:   sample.ValAddresses(3),
	}
	fakes.Ranking = NewStaticRanking(fakes.Validators...)

	k, ctx := LiquidStakingKeeperWith(t, bank, fakes.Staking, fakes.Distribution, fakes.Ranking, fakes.WrappedToken)
	if err := k.SetParams(ctx, types.NewParams(fakes.Admin.String(), fakes.Dev.String())); err != nil {
		panic(err)
	}
	return k, ctx, fakes
}

// LiquidStakingKeeperReturningMocks builds a keeper over gomock collaborators.
func LiquidStakingKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, LiquidStakingMocks) {
	ctrl := gomock.NewController(t)
	mocks := LiquidStakingMocks{
		BankKeeper:         NewMockBankKeeper(ctrl),
		StakingKeeper:      NewMockStakingKeeper(ctrl),
		DistributionKeeper: NewMockDistributionKeeper(ctrl),
		Ranking:            NewMockValidatorRanking(ctrl),
		WrappedToken:       NewMockWrappedToken(ctrl),
	}
	k, ctx := LiquidStakingKeeperWith(t, mocks.BankKeeper, mocks.StakingKeeper, mocks.DistributionKeeper, mocks.Ranking, mocks.WrappedToken)
	return k, ctx, mocks
}

func LiquidStakingKeeperWith(
	t testing.TB,
	bankKeeper types.BankKeeper,
	stakingKeeper types.StakingKeeper,
	distributionKeeper types.DistributionKeeper,
	ranking types.ValidatorRanking,
	wrappedToken types.WrappedToken,
) (keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		bankKeeper,
		stakingKeeper,
		distributionKeeper,
		ranking,
		wrappedToken,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}
	k.SetWindow(ctx, types.Window{StartTime: ctx.BlockTime()})

	return k, ctx
}
