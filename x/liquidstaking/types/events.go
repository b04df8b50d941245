package types

// Event types
const (
	EventTypeStake             = "liquid_stake"
	EventTypeWithdrawRequest   = "withdraw_request"
	EventTypeClaimAndStake     = "claim_and_stake"
	EventTypeReDelegate        = "re_delegate"
	EventTypeAdvanceWindow     = "advance_window"
	EventTypeWindowPromoted    = "window_promoted"
	EventTypeBatchMatured      = "unbonding_batch_matured"
	EventTypeClaim             = "claim"
	EventTypeWhitelistAdd      = "whitelist_add"
	EventTypeWhitelistRemove   = "whitelist_remove"
	EventTypeSetWhite          = "set_white"
	EventTypeKillSwitchUnbond  = "kill_switch_unbond"
	EventTypeKillSwitchOpen    = "kill_switch_open_withdraws"
	EventTypeImmediateWithdraw = "immediate_withdraw"
)

// Event attribute keys
const (
	AttributeKeySender       = "sender"
	AttributeKeyAddress      = "address"
	AttributeKeyAmount       = "amount"
	AttributeKeyMinted       = "minted"
	AttributeKeyNativeValue  = "native_value"
	AttributeKeyRate         = "rate"
	AttributeKeyRewards      = "rewards"
	AttributeKeyDevFee       = "dev_fee"
	AttributeKeyDelegated    = "delegated"
	AttributeKeyWindow       = "window"
	AttributeKeyUnlockTime   = "unlock_time"
	AttributeKeyPayout       = "payout"
	AttributeKeyValidator    = "validator"
	AttributeKeySource       = "source"
	AttributeKeyDestination  = "destination"
	AttributeKeyWhite        = "white"
	AttributeKeyTrack        = "track"
	AttributeKeyMaturedCount = "matured"
	AttributeKeyPromoted     = "promoted"
)
