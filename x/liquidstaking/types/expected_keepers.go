package types

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	GetSupply(ctx context.Context, denom string) sdk.Coin
}

// StakingKeeper delegates the module account's tokens. Amounts are in the bond denom;
// share conversion is left to the implementation.
type StakingKeeper interface {
	Delegate(ctx context.Context, delegator sdk.AccAddress, validator sdk.ValAddress, amount math.Int) error
	// Undelegate returns the time at which the tokens are released to the delegator.
	Undelegate(ctx context.Context, delegator sdk.AccAddress, validator sdk.ValAddress, amount math.Int) (time.Time, error)
	Redelegate(ctx context.Context, delegator sdk.AccAddress, src, dst sdk.ValAddress, amount math.Int) (time.Time, error)
	// HasReceivingRedelegation reports whether validator still has an incomplete redelegation
	// into it from delegator. Such stake cannot be redelegated again until it completes.
	HasReceivingRedelegation(ctx context.Context, delegator sdk.AccAddress, validator sdk.ValAddress) (bool, error)
}

// DistributionKeeper defines the expected interface for the Distribution module.
type DistributionKeeper interface {
	WithdrawDelegationRewards(ctx context.Context, delAddr sdk.AccAddress, valAddr sdk.ValAddress) (sdk.Coins, error)
}

// ValidatorRanking is the external source of the top validator set.
type ValidatorRanking interface {
	TopValidators(ctx context.Context, n uint32) ([]sdk.ValAddress, error)
}

// WrappedToken is the native-equivalent wrapped token collaborator.
type WrappedToken interface {
	// Wrap converts amount native tokens held by from into wrapped tokens credited to recipient.
	Wrap(ctx context.Context, from, recipient sdk.AccAddress, amount math.Int) error
	// Unwrap moves amount wrapped tokens from owner and redeems them into native tokens held by recipient.
	Unwrap(ctx context.Context, owner, recipient sdk.AccAddress, amount math.Int) error
}
