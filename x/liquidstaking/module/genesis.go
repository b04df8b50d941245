package liquidstaking

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/keeper"
	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	k.SetPool(ctx, genState.Pool)
	k.SetKillSwitch(ctx, genState.KillSwitch)
	k.SetWhitelistSettings(ctx, genState.WhitelistSettings)

	// A fresh chain opens window 0 at its first block
	window := genState.Window
	if window.StartTime.IsZero() {
		window.StartTime = ctx.BlockTime()
	}
	k.SetWindow(ctx, window)

	for _, elem := range genState.Whitelist {
		addr, err := sdk.AccAddressFromBech32(elem)
		if err != nil {
			panic(err)
		}
		k.AddToWhitelist(ctx, addr)
	}

	validators := make([]sdk.ValAddress, 0, len(genState.Validators))
	for _, elem := range genState.Validators {
		val, err := sdk.ValAddressFromBech32(elem)
		if err != nil {
			panic(err)
		}
		validators = append(validators, val)
	}
	k.SetValidatorSet(ctx, validators)

	for _, elem := range genState.Delegations {
		val, err := sdk.ValAddressFromBech32(elem.Address)
		if err != nil {
			panic(err)
		}
		k.SetDelegation(ctx, val, elem.Staked)
	}

	for _, claim := range genState.PendingClaims {
		k.SetPendingClaim(ctx, claim)
	}
	for _, batch := range genState.UnbondingBatches {
		k.SetUnbondingBatch(ctx, batch)
	}
	for _, elem := range genState.Claimable {
		addr, err := sdk.AccAddressFromBech32(elem.Address)
		if err != nil {
			panic(err)
		}
		k.SetClaimable(ctx, addr, elem.Amount)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)
	genesis.Pool = k.GetPool(ctx)
	genesis.Window = k.GetWindow(ctx)
	genesis.KillSwitch = k.GetKillSwitch(ctx)
	genesis.WhitelistSettings = k.GetWhitelistSettings(ctx)

	whitelist := k.GetAllWhitelisted(ctx)
	genesis.Whitelist = make([]string, len(whitelist))
	for i, addr := range whitelist {
		genesis.Whitelist[i] = addr.String()
	}

	validators := k.GetValidatorSet(ctx)
	genesis.Validators = make([]string, len(validators))
	for i, val := range validators {
		genesis.Validators[i] = val.String()
	}

	genesis.Delegations = k.GetAllDelegations(ctx)
	genesis.PendingClaims = k.GetAllPendingClaims(ctx)
	genesis.UnbondingBatches = k.GetAllUnbondingBatches(ctx)
	genesis.Claimable = k.GetAllClaimable(ctx)

	return genesis
}
