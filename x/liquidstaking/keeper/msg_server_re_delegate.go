package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

func (k msgServer) ReDelegate(goCtx context.Context, msg *types.MsgReDelegate) (*types.MsgReDelegateResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireAdmin(ctx, msg.Admin, "re delegate"); err != nil {
		return nil, err
	}
	if err := k.requireNormal(ctx); err != nil {
		return nil, err
	}

	top, err := k.ranking.TopValidators(ctx, k.GetParams(ctx).TopValidators)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, types.ErrNoValidators.Wrap("validator ranking returned no validators")
	}

	current := make(map[string]bool)
	for _, val := range k.GetValidatorSet(ctx) {
		current[val.String()] = true
	}
	inTop := make(map[string]bool)
	var added, kept []sdk.ValAddress
	for _, val := range top {
		if inTop[val.String()] {
			continue
		}
		inTop[val.String()] = true
		if current[val.String()] {
			kept = append(kept, val)
		} else {
			added = append(added, val)
		}
	}
	destinations := added
	if len(destinations) == 0 {
		destinations = kept
	}

	moved := math.ZeroInt()
	var skipped []string
	for _, d := range k.GetAllDelegations(ctx) {
		if inTop[d.Address] || !d.Staked.IsPositive() {
			continue
		}
		src, err := sdk.ValAddressFromBech32(d.Address)
		if err != nil {
			return nil, err
		}
		// Stake that arrived through a redelegation still in progress cannot move again.
		// It stays recorded and a later re_delegate picks it up.
		receiving, err := k.stakingKeeper.HasReceivingRedelegation(ctx, types.ModuleAddress(), src)
		if err != nil {
			return nil, err
		}
		if receiving {
			k.Logger().Warn("redelegation deferred, validator is still receiving a redelegation",
				"validator", d.Address,
				"staked", d.Staked.String(),
			)
			skipped = append(skipped, d.Address)
			continue
		}
		for i, share := range splitEvenly(d.Staked, len(destinations)) {
			if !share.IsPositive() {
				continue
			}
			if err := k.moveDelegation(ctx, src, destinations[i], share); err != nil {
				return nil, err
			}
		}
		moved = moved.Add(d.Staked)
	}

	k.SetValidatorSet(ctx, top)

	validators := make([]string, 0, len(top))
	for _, val := range k.GetValidatorSet(ctx) {
		validators = append(validators, val.String())
	}
	k.Logger().Info("validator set updated",
		"validators", validators,
		"added", len(added),
		"moved", moved.String(),
		"deferred", len(skipped),
	)
	return &types.MsgReDelegateResponse{Validators: validators, Moved: moved, Deferred: skipped}, nil
}
