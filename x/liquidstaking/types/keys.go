package types

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "liquidstaking"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	ParamsKey = collections.NewPrefix(0)

	// PoolKey holds the pooled value counters
	PoolKey = collections.NewPrefix(1)

	// WindowKey holds the current withdrawal window
	WindowKey = collections.NewPrefix(2)

	KillSwitchKey        = collections.NewPrefix(3)
	WhitelistSettingsKey = collections.NewPrefix(4)
	WhitelistKey         = collections.NewPrefix(5)

	// ValidatorSetKey is the prefix for the current top-validator set
	ValidatorSetKey = collections.NewPrefix(6)

	// DelegationKey is the prefix for amounts delegated per validator
	DelegationKey = collections.NewPrefix(7)

	// PendingClaimPrefix and PendingClaimByUserIndexPrefix back the PendingClaim IndexedMap
	// keyed by Pair[window, user] and its secondary index.
	PendingClaimPrefix            = collections.NewPrefix(8)
	PendingClaimByUserIndexPrefix = collections.NewPrefix(9)

	// UnbondingBatchKey is the prefix for promoted withdrawal windows awaiting maturity
	UnbondingBatchKey = collections.NewPrefix(10)

	// ClaimableKey is the prefix for matured native amounts per user
	ClaimableKey = collections.NewPrefix(11)
)

// ModuleAddress is the account holding pooled funds, held derivative tokens and delegations.
func ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(ModuleName)
}
