package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateBasic performs basic validation of the MsgClaim
func (msg *MsgClaim) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}
	return nil
}

// PayoutKind selects the token a claim is paid in.
type PayoutKind string

const (
	PayoutNative  PayoutKind = "native"
	PayoutWrapped PayoutKind = "wrapped"
)

// PayoutKind maps the secret flag of a claim to its payout variant.
func (msg *MsgClaim) PayoutKind() PayoutKind {
	if msg.Secret {
		return PayoutWrapped
	}
	return PayoutNative
}
