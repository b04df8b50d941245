package types

import (
	"context"
	"encoding/json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the server API for the module's messages.
type MsgServer interface {
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	Stake(context.Context, *MsgStake) (*MsgStakeResponse, error)
	Receive(context.Context, *MsgReceive) (*MsgReceiveResponse, error)
	ClaimAndStake(context.Context, *MsgClaimAndStake) (*MsgClaimAndStakeResponse, error)
	ReDelegate(context.Context, *MsgReDelegate) (*MsgReDelegateResponse, error)
	AdvanceWindow(context.Context, *MsgAdvanceWindow) (*MsgAdvanceWindowResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	AddToWhitelist(context.Context, *MsgAddToWhitelist) (*MsgAddToWhitelistResponse, error)
	RemoveFromWhitelist(context.Context, *MsgRemoveFromWhitelist) (*MsgRemoveFromWhitelistResponse, error)
	SetWhite(context.Context, *MsgSetWhite) (*MsgSetWhiteResponse, error)
	KillSwitchUnbond(context.Context, *MsgKillSwitchUnbond) (*MsgKillSwitchUnbondResponse, error)
	KillSwitchOpenWithdraws(context.Context, *MsgKillSwitchOpenWithdraws) (*MsgKillSwitchOpenWithdrawsResponse, error)
}

var (
	_ sdk.Msg = &MsgUpdateParams{}
	_ sdk.Msg = &MsgStake{}
	_ sdk.Msg = &MsgReceive{}
	_ sdk.Msg = &MsgClaimAndStake{}
	_ sdk.Msg = &MsgReDelegate{}
	_ sdk.Msg = &MsgAdvanceWindow{}
	_ sdk.Msg = &MsgClaim{}
	_ sdk.Msg = &MsgAddToWhitelist{}
	_ sdk.Msg = &MsgRemoveFromWhitelist{}
	_ sdk.Msg = &MsgSetWhite{}
	_ sdk.Msg = &MsgKillSwitchUnbond{}
	_ sdk.Msg = &MsgKillSwitchOpenWithdraws{}
)

// MsgUpdateParams replaces the module params. Only the module authority may send it.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgStake deposits native tokens and mints derivative tokens to the sender.
type MsgStake struct {
	Sender string   `json:"sender"`
	Amount sdk.Coin `json:"amount"`
}

type MsgStakeResponse struct {
	Minted math.Int `json:"minted"`
}

// MsgReceive is the callback for tokens sent to the engine. Token is either the
// derivative denom (a withdrawal request) or the wrapped token contract (a deposit).
type MsgReceive struct {
	Sender string   `json:"sender"`
	Token  string   `json:"token"`
	Amount math.Int `json:"amount"`
}

type MsgReceiveResponse struct {
	// NativeValue is the value of a withdrawal at the current rate.
	NativeValue math.Int `json:"native_value"`
	// Minted is set for wrapped token deposits.
	Minted math.Int `json:"minted"`
}

type MsgClaimAndStake struct {
	Admin string `json:"admin"`
}

type MsgClaimAndStakeResponse struct {
	Rewards   math.Int `json:"rewards"`
	DevFee    math.Int `json:"dev_fee"`
	Delegated math.Int `json:"delegated"`
}

type MsgReDelegate struct {
	Admin string `json:"admin"`
}

type MsgReDelegateResponse struct {
	Validators []string `json:"validators"`
	Moved      math.Int `json:"moved"`
	// Deferred lists validators whose stake could not move yet.
	Deferred []string `json:"deferred,omitempty"`
}

type MsgAdvanceWindow struct {
	Admin string `json:"admin"`
}

type MsgAdvanceWindowResponse struct {
	Promoted       bool   `json:"promoted"`
	MaturedBatches uint32 `json:"matured_batches"`
	Window         Window `json:"window"`
}

// MsgClaim pays out the sender's claimable balance, as wrapped tokens when Secret is set.
type MsgClaim struct {
	Sender string `json:"sender"`
	Secret bool   `json:"secret"`
}

type MsgClaimResponse struct {
	Amount math.Int `json:"amount"`
}

type MsgAddToWhitelist struct {
	Admin   string `json:"admin"`
	Address string `json:"address"`
}

type MsgAddToWhitelistResponse struct{}

type MsgRemoveFromWhitelist struct {
	Admin   string `json:"admin"`
	Address string `json:"address"`
}

type MsgRemoveFromWhitelistResponse struct{}

type MsgSetWhite struct {
	Admin string `json:"admin"`
	White bool   `json:"white"`
	Track bool   `json:"track"`
}

type MsgSetWhiteResponse struct{}

type MsgKillSwitchUnbond struct {
	Admin string `json:"admin"`
}

type MsgKillSwitchUnbondResponse struct {
	Unbonding  math.Int `json:"unbonding"`
	UnlockTime string   `json:"unlock_time"`
}

type MsgKillSwitchOpenWithdraws struct {
	Admin string `json:"admin"`
}

type MsgKillSwitchOpenWithdrawsResponse struct{}

func msgString(msg any) string {
	bz, err := json.Marshal(msg)
	if err != nil {
		return err.Error()
	}
	return string(bz)
}

func (m *MsgUpdateParams) Reset()         { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string { return msgString(m) }
func (*MsgUpdateParams) ProtoMessage()    {}

func (m *MsgStake) Reset()         { *m = MsgStake{} }
func (m *MsgStake) String() string { return msgString(m) }
func (*MsgStake) ProtoMessage()    {}

func (m *MsgReceive) Reset()         { *m = MsgReceive{} }
func (m *MsgReceive) String() string { return msgString(m) }
func (*MsgReceive) ProtoMessage()    {}

func (m *MsgClaimAndStake) Reset()         { *m = MsgClaimAndStake{} }
func (m *MsgClaimAndStake) String() string { return msgString(m) }
func (*MsgClaimAndStake) ProtoMessage()    {}

func (m *MsgReDelegate) Reset()         { *m = MsgReDelegate{} }
func (m *MsgReDelegate) String() string { return msgString(m) }
func (*MsgReDelegate) ProtoMessage()    {}

func (m *MsgAdvanceWindow) Reset()         { *m = MsgAdvanceWindow{} }
func (m *MsgAdvanceWindow) String() string { return msgString(m) }
func (*MsgAdvanceWindow) ProtoMessage()    {}

func (m *MsgClaim) Reset()         { *m = MsgClaim{} }
func (m *MsgClaim) String() string { return msgString(m) }
func (*MsgClaim) ProtoMessage()    {}

func (m *MsgAddToWhitelist) Reset()         { *m = MsgAddToWhitelist{} }
func (m *MsgAddToWhitelist) String() string { return msgString(m) }
func (*MsgAddToWhitelist) ProtoMessage()    {}

func (m *MsgRemoveFromWhitelist) Reset()         { *m = MsgRemoveFromWhitelist{} }
func (m *MsgRemoveFromWhitelist) String() string { return msgString(m) }
func (*MsgRemoveFromWhitelist) ProtoMessage()    {}

func (m *MsgSetWhite) Reset()         { *m = MsgSetWhite{} }
func (m *MsgSetWhite) String() string { return msgString(m) }
func (*MsgSetWhite) ProtoMessage()    {}

func (m *MsgKillSwitchUnbond) Reset()         { *m = MsgKillSwitchUnbond{} }
func (m *MsgKillSwitchUnbond) String() string { return msgString(m) }
func (*MsgKillSwitchUnbond) ProtoMessage()    {}

func (m *MsgKillSwitchOpenWithdraws) Reset()         { *m = MsgKillSwitchOpenWithdraws{} }
func (m *MsgKillSwitchOpenWithdraws) String() string { return msgString(m) }
func (*MsgKillSwitchOpenWithdraws) ProtoMessage()    {}
