package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (k msgServer) AdvanceWindow(goCtx context.Context, msg *types.MsgAdvanceWindow) (*types.MsgAdvanceWindowResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireAdmin(ctx, msg.Admin, "advance window"); err != nil {
		return nil, err
	}

	// Release batches whose unbonding has completed
	matured := k.MatureBatches(ctx)

	promoted := false
	window := k.GetWindow(ctx)
	if !k.GetKillSwitch(ctx).Active() && k.WindowElapsed(ctx) {
		next, err := k.promoteWindow(ctx)
		if err != nil {
			return nil, err
		}
		window = next
		promoted = true
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeAdvanceWindow,
			sdk.NewAttribute(types.AttributeKeyWindow, strconv.FormatUint(window.Index, 10)),
			sdk.NewAttribute(types.AttributeKeyPromoted, strconv.FormatBool(promoted)),
			sdk.NewAttribute(types.AttributeKeyMaturedCount, strconv.FormatUint(uint64(matured), 10)),
		),
	})
	k.Logger().Info("advance window",
		"window", window.Index,
		"promoted", promoted,
		"matured", matured,
	)

	return &types.MsgAdvanceWindowResponse{Promoted: promoted, MaturedBatches: matured, Window: window}, nil
}
