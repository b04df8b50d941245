package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/liquidstaking module sentinel errors
var (
	ErrInvalidSigner        = sdkerrors.Register(ModuleName, 1100, "expected gov account as only signer for proposal message")
	ErrUnauthorized         = sdkerrors.Register(ModuleName, 1101, "unauthorized")
	ErrNotWhitelisted       = sdkerrors.Register(ModuleName, 1102, "address is not whitelisted")
	ErrBelowMinimumDeposit  = sdkerrors.Register(ModuleName, 1103, "deposit below minimum")
	ErrBelowMinimumWithdraw = sdkerrors.Register(ModuleName, 1104, "withdrawal below minimum")
	ErrInvalidDenom         = sdkerrors.Register(ModuleName, 1105, "invalid denomination")
	ErrUnknownToken         = sdkerrors.Register(ModuleName, 1106, "unknown token")
	ErrKillSwitchActive     = sdkerrors.Register(ModuleName, 1107, "kill switch is active")
	ErrKillSwitchLocked     = sdkerrors.Register(ModuleName, 1108, "kill switch unbonding has not completed")
	ErrInvalidKillSwitch    = sdkerrors.Register(ModuleName, 1109, "invalid kill switch transition")
	ErrNoValidators         = sdkerrors.Register(ModuleName, 1110, "no validators available")
	ErrZeroMint             = sdkerrors.Register(ModuleName, 1111, "deposit too small to mint derivative tokens")
	ErrWrappedTokenDisabled = sdkerrors.Register(ModuleName, 1112, "wrapped token is not configured")
	ErrInvalidParams        = sdkerrors.Register(ModuleName, 1113, "invalid params")
)
