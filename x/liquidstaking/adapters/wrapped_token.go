package adapters

import (
	"context"
	"encoding/json"

	"cosmossdk.io/math"
	wasmkeeper "github.com/CosmWasm/wasmd/x/wasm/keeper"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// ExecuteFunc runs a contract message on behalf of caller.
type ExecuteFunc func(ctx sdk.Context, contract, caller sdk.AccAddress, msg []byte, coins sdk.Coins) ([]byte, error)

// CW20WrappedToken is a native-backed CW20 wrapper: deposit native coins to mint,
// redeem to burn and get the native coins back.
type CW20WrappedToken struct {
	contract    sdk.AccAddress
	nativeDenom string
	execute     ExecuteFunc
}

var _ types.WrappedToken = CW20WrappedToken{}

func NewCW20WrappedToken(contract sdk.AccAddress, nativeDenom string, execute ExecuteFunc) CW20WrappedToken {
	return CW20WrappedToken{contract: contract, nativeDenom: nativeDenom, execute: execute}
}

// NewCW20WrappedTokenFromWasm executes through the wasm permission keeper.
func NewCW20WrappedTokenFromWasm(getWasmKeeper func() wasmkeeper.Keeper, contract sdk.AccAddress, nativeDenom string) CW20WrappedToken {
	return NewCW20WrappedToken(contract, nativeDenom, func(ctx sdk.Context, addr, caller sdk.AccAddress, msg []byte, coins sdk.Coins) ([]byte, error) {
		wasmKeeper := wasmkeeper.NewDefaultPermissionKeeper(getWasmKeeper())
		return wasmKeeper.Execute(ctx, addr, caller, msg, coins)
	})
}

type depositMsg struct {
	Deposit struct{} `json:"deposit"`
}

type transferMsg struct {
	Transfer struct {
		Recipient string `json:"recipient"`
		Amount    string `json:"amount"`
	} `json:"transfer"`
}

type transferFromMsg struct {
	TransferFrom struct {
		Owner     string `json:"owner"`
		Recipient string `json:"recipient"`
		Amount    string `json:"amount"`
	} `json:"transfer_from"`
}

type redeemMsg struct {
	Redeem struct {
		Amount string `json:"amount"`
	} `json:"redeem"`
}

// Wrap deposits native coins of from into the contract and transfers the minted
// wrapped tokens to recipient.
func (t CW20WrappedToken) Wrap(ctx context.Context, from, recipient sdk.AccAddress, amount math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	bz, err := json.Marshal(depositMsg{})
	if err != nil {
		return err
	}
	coins := sdk.NewCoins(sdk.NewCoin(t.nativeDenom, amount))
	if _, err := t.execute(sdkCtx, t.contract, from, bz, coins); err != nil {
		return err
	}

	var transfer transferMsg
	transfer.Transfer.Recipient = recipient.String()
	transfer.Transfer.Amount = amount.String()
	if bz, err = json.Marshal(transfer); err != nil {
		return err
	}
	_, err = t.execute(sdkCtx, t.contract, from, bz, sdk.NewCoins())
	return err
}

// Unwrap pulls wrapped tokens from owner (which must have granted an allowance to
// recipient) and redeems them, leaving the native coins with recipient.
func (t CW20WrappedToken) Unwrap(ctx context.Context, owner, recipient sdk.AccAddress, amount math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	var pull transferFromMsg
	pull.TransferFrom.Owner = owner.String()
	pull.TransferFrom.Recipient = recipient.String()
	pull.TransferFrom.Amount = amount.String()
	bz, err := json.Marshal(pull)
	if err != nil {
		return err
	}
	if _, err := t.execute(sdkCtx, t.contract, recipient, bz, sdk.NewCoins()); err != nil {
		return err
	}

	var redeem redeemMsg
	redeem.Redeem.Amount = amount.String()
	if bz, err = json.Marshal(redeem); err != nil {
		return err
	}
	_, err = t.execute(sdkCtx, t.contract, recipient, bz, sdk.NewCoins())
	return err
}
