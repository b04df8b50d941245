package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/collections/indexes"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

type (
	// ClaimIndexes groups the secondary indexes for the PendingClaims map
	ClaimIndexes struct {
		// ByUser indexes primary keys by user address, to allow queries by user
		ByUser *indexes.ReversePair[uint64, sdk.AccAddress, types.PendingClaim]
	}

	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing a MsgUpdateParams message. Typically, this
		// should be the x/gov module account.
		authority string

		bankKeeper         types.BankKeeper
		stakingKeeper      types.StakingKeeper
		distributionKeeper types.DistributionKeeper
		ranking            types.ValidatorRanking
		wrappedToken       types.WrappedToken
		payouts            map[types.PayoutKind]Payout

		Schema            collections.Schema
		params            collections.Item[types.Params]
		Pool              collections.Item[types.PoolState]
		CurrentWindow     collections.Item[types.Window]
		KillSwitch        collections.Item[types.KillSwitch]
		WhitelistSettings collections.Item[types.WhitelistSettings]
		Whitelist         collections.KeySet[sdk.AccAddress]
		ValidatorSet      collections.KeySet[sdk.ValAddress]
		Delegations       collections.Map[sdk.ValAddress, math.Int]
		UnbondingBatches  collections.Map[uint64, types.UnbondingBatch]
		Claimable         collections.Map[sdk.AccAddress, math.Int]

		// PendingClaims is an IndexedMap with primary key Pair[window, user]
		PendingClaims collections.IndexedMap[collections.Pair[uint64, sdk.AccAddress], types.PendingClaim, ClaimIndexes]
	}
)

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	bankKeeper types.BankKeeper,
	stakingKeeper types.StakingKeeper,
	distributionKeeper types.DistributionKeeper,
	ranking types.ValidatorRanking,
	wrappedToken types.WrappedToken,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)
	claimIdx := ClaimIndexes{
		ByUser: indexes.NewReversePair[types.PendingClaim](
			sb,
			types.PendingClaimByUserIndexPrefix,
			"pending_claims_by_user",
			collections.PairKeyCodec(collections.Uint64Key, sdk.AccAddressKey),
		),
	}

	k := Keeper{
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		bankKeeper:         bankKeeper,
		stakingKeeper:      stakingKeeper,
		distributionKeeper: distributionKeeper,
		ranking:            ranking,
		wrappedToken:       wrappedToken,

		params:            collections.NewItem(sb, types.ParamsKey, "params", types.JSONValue[types.Params]()),
		Pool:              collections.NewItem(sb, types.PoolKey, "pool", types.JSONValue[types.PoolState]()),
		CurrentWindow:     collections.NewItem(sb, types.WindowKey, "window", types.JSONValue[types.Window]()),
		KillSwitch:        collections.NewItem(sb, types.KillSwitchKey, "kill_switch", types.JSONValue[types.KillSwitch]()),
		WhitelistSettings: collections.NewItem(sb, types.WhitelistSettingsKey, "whitelist_settings", types.JSONValue[types.WhitelistSettings]()),
		Whitelist:         collections.NewKeySet(sb, types.WhitelistKey, "whitelist", sdk.AccAddressKey),
		ValidatorSet:      collections.NewKeySet(sb, types.ValidatorSetKey, "validator_set", sdk.ValAddressKey),
		Delegations:       collections.NewMap(sb, types.DelegationKey, "delegations", sdk.ValAddressKey, sdk.IntValue),
		UnbondingBatches:  collections.NewMap(sb, types.UnbondingBatchKey, "unbonding_batches", collections.Uint64Key, types.JSONValue[types.UnbondingBatch]()),
		Claimable:         collections.NewMap(sb, types.ClaimableKey, "claimable", sdk.AccAddressKey, sdk.IntValue),
		PendingClaims: *collections.NewIndexedMap(
			sb,
			types.PendingClaimPrefix,
			"pending_claims",
			collections.PairKeyCodec(collections.Uint64Key, sdk.AccAddressKey),
			types.JSONValue[types.PendingClaim](),
			claimIdx,
		),
	}
	k.payouts = newPayouts(bankKeeper, wrappedToken)

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetPool returns the pooled value counters, zeroed when unset.
func (k Keeper) GetPool(ctx context.Context) types.PoolState {
	pool, err := k.Pool.Get(ctx)
	if err != nil {
		return types.NewPoolState()
	}
	return pool
}

func (k Keeper) SetPool(ctx context.Context, pool types.PoolState) {
	if err := k.Pool.Set(ctx, pool); err != nil {
		panic(err)
	}
}

// GetWindow returns the open withdrawal window. An unset window starts at the current block time.
func (k Keeper) GetWindow(ctx context.Context) types.Window {
	window, err := k.CurrentWindow.Get(ctx)
	if err != nil {
		return types.Window{StartTime: sdk.UnwrapSDKContext(ctx).BlockTime()}
	}
	return window
}

func (k Keeper) SetWindow(ctx context.Context, window types.Window) {
	if err := k.CurrentWindow.Set(ctx, window); err != nil {
		panic(err)
	}
}

func (k Keeper) GetKillSwitch(ctx context.Context) types.KillSwitch {
	ks, err := k.KillSwitch.Get(ctx)
	if err != nil {
		return types.NewKillSwitch()
	}
	return ks
}

func (k Keeper) SetKillSwitch(ctx context.Context, ks types.KillSwitch) {
	if err := k.KillSwitch.Set(ctx, ks); err != nil {
		panic(err)
	}
}

// requireAdmin rejects senders other than the configured admin.
func (k Keeper) requireAdmin(ctx context.Context, sender string, operation string) error {
	params := k.GetParams(ctx)
	if params.Admin == "" || sender != params.Admin {
		return types.ErrUnauthorized.Wrapf("Only admin can call %s", operation)
	}
	return nil
}

// requireNormal rejects operations that are disabled once the kill switch fires.
func (k Keeper) requireNormal(ctx context.Context) error {
	ks := k.GetKillSwitch(ctx)
	if ks.Active() {
		return types.ErrKillSwitchActive.Wrapf("engine is in %s state", ks.Status)
	}
	return nil
}
