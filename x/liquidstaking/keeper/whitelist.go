package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (k Keeper) GetWhitelistSettings(ctx context.Context) types.WhitelistSettings {
	settings, err := k.WhitelistSettings.Get(ctx)
	if err != nil {
		return types.DefaultWhitelistSettings()
	}
	return settings
}

func (k Keeper) SetWhitelistSettings(ctx context.Context, settings types.WhitelistSettings) {
	if err := k.WhitelistSettings.Set(ctx, settings); err != nil {
		panic(err)
	}
}

func (k Keeper) AddToWhitelist(ctx context.Context, address sdk.AccAddress) {
	if err := k.Whitelist.Set(ctx, address); err != nil {
		panic(err)
	}
}

func (k Keeper) RemoveFromWhitelist(ctx context.Context, address sdk.AccAddress) {
	if err := k.Whitelist.Remove(ctx, address); err != nil {
		panic(err)
	}
}

func (k Keeper) IsWhitelisted(ctx context.Context, address sdk.AccAddress) bool {
	found, err := k.Whitelist.Has(ctx, address)
	if err != nil {
		panic(err)
	}
	return found
}

// GetAllWhitelisted returns all whitelisted addresses.
func (k Keeper) GetAllWhitelisted(ctx context.Context) []sdk.AccAddress {
	iter, err := k.Whitelist.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	result, err := iter.Keys()
	if err != nil {
		panic(err)
	}
	return result
}

// checkDepositor enforces the allow-set when whitelisting is on.
func (k Keeper) checkDepositor(ctx context.Context, depositor sdk.AccAddress) error {
	settings := k.GetWhitelistSettings(ctx)
	if settings.White && !k.IsWhitelisted(ctx, depositor) {
		return types.ErrNotWhitelisted.Wrapf("%s is not whitelisted", depositor)
	}
	return nil
}

// trackDepositor records depositors in the allow-set when tracking is on.
func (k Keeper) trackDepositor(ctx context.Context, depositor sdk.AccAddress) {
	if k.GetWhitelistSettings(ctx).Track {
		k.AddToWhitelist(ctx, depositor)
	}
}
