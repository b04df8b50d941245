package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (k msgServer) Claim(goCtx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}

	amount := k.GetClaimable(ctx, sender)
	if amount.IsZero() {
		return &types.MsgClaimResponse{Amount: math.ZeroInt()}, nil
	}

	kind := msg.PayoutKind()
	coin := sdk.NewCoin(k.GetParams(ctx).NativeDenom, amount)
	if err := k.payout(ctx, kind, sender, coin); err != nil {
		return nil, err
	}

	k.SetClaimable(ctx, sender, math.ZeroInt())
	pool := k.GetPool(ctx)
	pool.NativeUnderWithdraw = pool.NativeUnderWithdraw.Sub(math.MinInt(pool.NativeUnderWithdraw, amount))
	k.SetPool(ctx, pool)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeClaim,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyPayout, string(kind)),
		),
	})
	k.Logger().Info("claimed",
		"sender", msg.Sender,
		"amount", amount.String(),
		"payout", kind,
	)

	return &types.MsgClaimResponse{Amount: amount}, nil
}
