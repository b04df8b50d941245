package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (k msgServer) AddToWhitelist(goCtx context.Context, msg *types.MsgAddToWhitelist) (*types.MsgAddToWhitelistResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireAdmin(ctx, msg.Admin, "add to whitelist"); err != nil {
		return nil, err
	}
	addr, err := sdk.AccAddressFromBech32(msg.Address)
	if err != nil {
		return nil, err
	}

	k.Keeper.AddToWhitelist(ctx, addr)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeWhitelistAdd,
			sdk.NewAttribute(types.AttributeKeyAddress, msg.Address),
		),
	})
	k.Logger().Info("address whitelisted", "address", msg.Address)

	return &types.MsgAddToWhitelistResponse{}, nil
}

func (k msgServer) RemoveFromWhitelist(goCtx context.Context, msg *types.MsgRemoveFromWhitelist) (*types.MsgRemoveFromWhitelistResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireAdmin(ctx, msg.Admin, "remove from whitelist"); err != nil {
		return nil, err
	}
	addr, err := sdk.AccAddressFromBech32(msg.Address)
	if err != nil {
		return nil, err
	}

	k.Keeper.RemoveFromWhitelist(ctx, addr)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeWhitelistRemove,
			sdk.NewAttribute(types.AttributeKeyAddress, msg.Address),
		),
	})
	k.Logger().Info("address removed from whitelist", "address", msg.Address)

	return &types.MsgRemoveFromWhitelistResponse{}, nil
}

func (k msgServer) SetWhite(goCtx context.Context, msg *types.MsgSetWhite) (*types.MsgSetWhiteResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireAdmin(ctx, msg.Admin, "set white"); err != nil {
		return nil, err
	}

	k.SetWhitelistSettings(ctx, types.WhitelistSettings{White: msg.White, Track: msg.Track})

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeSetWhite,
			sdk.NewAttribute(types.AttributeKeyWhite, strconv.FormatBool(msg.White)),
			sdk.NewAttribute(types.AttributeKeyTrack, strconv.FormatBool(msg.Track)),
		),
	})
	k.Logger().Info("whitelist settings updated", "white", msg.White, "track", msg.Track)

	return &types.MsgSetWhiteResponse{}, nil
}
