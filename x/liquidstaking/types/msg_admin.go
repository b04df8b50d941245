package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

func validateAdmin(admin string) error {
	if _, err := sdk.AccAddressFromBech32(admin); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid admin address: %s", err)
	}
	return nil
}

func (msg *MsgClaimAndStake) ValidateBasic() error { return validateAdmin(msg.Admin) }

func (msg *MsgReDelegate) ValidateBasic() error { return validateAdmin(msg.Admin) }

func (msg *MsgAdvanceWindow) ValidateBasic() error { return validateAdmin(msg.Admin) }

func (msg *MsgSetWhite) ValidateBasic() error { return validateAdmin(msg.Admin) }

func (msg *MsgKillSwitchUnbond) ValidateBasic() error { return validateAdmin(msg.Admin) }

func (msg *MsgKillSwitchOpenWithdraws) ValidateBasic() error { return validateAdmin(msg.Admin) }

func (msg *MsgAddToWhitelist) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Address); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid whitelist address: %s", err)
	}
	return nil
}

func (msg *MsgRemoveFromWhitelist) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Address); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid whitelist address: %s", err)
	}
	return nil
}
