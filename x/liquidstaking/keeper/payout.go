package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// Payout transfers native value held by the module to a user.
type Payout interface {
	Pay(ctx context.Context, recipient sdk.AccAddress, amount sdk.Coin) error
}

type nativePayout struct {
	bank types.BankKeeper
}

func (p nativePayout) Pay(ctx context.Context, recipient sdk.AccAddress, amount sdk.Coin) error {
	return p.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, sdk.NewCoins(amount))
}

// wrappedPayout converts the native amount into the wrapped token on the way out.
type wrappedPayout struct {
	token types.WrappedToken
}

func (p wrappedPayout) Pay(ctx context.Context, recipient sdk.AccAddress, amount sdk.Coin) error {
	if p.token == nil {
		return types.ErrWrappedTokenDisabled
	}
	return p.token.Wrap(ctx, types.ModuleAddress(), recipient, amount.Amount)
}

func newPayouts(bank types.BankKeeper, wrapped types.WrappedToken) map[types.PayoutKind]Payout {
	return map[types.PayoutKind]Payout{
		types.PayoutNative:  nativePayout{bank: bank},
		types.PayoutWrapped: wrappedPayout{token: wrapped},
	}
}

// payout dispatches to the variant selected by kind.
func (k Keeper) payout(ctx context.Context, kind types.PayoutKind, recipient sdk.AccAddress, amount sdk.Coin) error {
	p, ok := k.payouts[kind]
	if !ok {
		return types.ErrUnknownToken.Wrapf("unknown payout kind %s", kind)
	}
	return p.Pay(ctx, recipient, amount)
}
