package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	wasmkeeper "github.com/CosmWasm/wasmd/x/wasm/keeper"
	sdk "github.com/cosmos/cosmos-sdk/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// BondedValidatorSource lists bonded validators ordered by voting power.
type BondedValidatorSource interface {
	GetBondedValidatorsByPower(ctx context.Context) ([]stakingtypes.Validator, error)
}

// BondedPowerRanking picks the most powerful bonded validators, skipping jailed
// validators and those above a commission cap.
type BondedPowerRanking struct {
	source        BondedValidatorSource
	maxCommission math.LegacyDec
}

var _ types.ValidatorRanking = BondedPowerRanking{}

func NewBondedPowerRanking(source BondedValidatorSource, maxCommission math.LegacyDec) BondedPowerRanking {
	return BondedPowerRanking{source: source, maxCommission: maxCommission}
}

func (r BondedPowerRanking) TopValidators(ctx context.Context, n uint32) ([]sdk.ValAddress, error) {
	validators, err := r.source.GetBondedValidatorsByPower(ctx)
	if err != nil {
		return nil, err
	}
	top := make([]sdk.ValAddress, 0, n)
	for _, val := range validators {
		if uint32(len(top)) == n {
			break
		}
		if val.IsJailed() {
			continue
		}
		if !r.maxCommission.IsNil() && val.Commission.Rate.GT(r.maxCommission) {
			continue
		}
		addr, err := sdk.ValAddressFromBech32(val.GetOperator())
		if err != nil {
			return nil, err
		}
		top = append(top, addr)
	}
	return top, nil
}

type rankingQuery struct {
	GetValidators struct {
		Top uint32 `json:"top"`
	} `json:"get_validators"`
}

type rankingResponse struct {
	Validators []string `json:"validators"`
}

// ContractRanking asks a CosmWasm ranking contract for the top validators.
type ContractRanking struct {
	contract   sdk.AccAddress
	querySmart func(ctx sdk.Context, contract sdk.AccAddress, req []byte) ([]byte, error)
}

var _ types.ValidatorRanking = ContractRanking{}

func NewContractRanking(contract sdk.AccAddress, querySmart func(ctx sdk.Context, contract sdk.AccAddress, req []byte) ([]byte, error)) ContractRanking {
	return ContractRanking{contract: contract, querySmart: querySmart}
}

// NewContractRankingFromWasm queries the contract through the wasm keeper.
func NewContractRankingFromWasm(getWasmKeeper func() wasmkeeper.Keeper, contract sdk.AccAddress) ContractRanking {
	return NewContractRanking(contract, func(ctx sdk.Context, addr sdk.AccAddress, req []byte) ([]byte, error) {
		return getWasmKeeper().QuerySmart(ctx, addr, req)
	})
}

func (r ContractRanking) TopValidators(ctx context.Context, n uint32) ([]sdk.ValAddress, error) {
	var query rankingQuery
	query.GetValidators.Top = n
	req, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	bz, err := r.querySmart(sdk.UnwrapSDKContext(ctx), r.contract, req)
	if err != nil {
		return nil, fmt.Errorf("ranking contract %s query failed: %w", r.contract, err)
	}
	var resp rankingResponse
	if err := json.Unmarshal(bz, &resp); err != nil {
		return nil, fmt.Errorf("invalid ranking contract response: %w", err)
	}

	top := make([]sdk.ValAddress, 0, len(resp.Validators))
	for _, v := range resp.Validators {
		if uint32(len(top)) == n {
			break
		}
		addr, err := sdk.ValAddressFromBech32(v)
		if err != nil {
			return nil, fmt.Errorf("ranking contract returned invalid validator %s: %w", v, err)
		}
		top = append(top, addr)
	}
	return top, nil
}
