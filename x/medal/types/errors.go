package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Error codes for the medal module.
const BaseErrorCode uint32 = 1

// The descriptions are part of the external interface: off-chain systems
// match on the exact strings.
var (
	ErrUnauthorized   = sdkerrors.Register(ModuleName, BaseErrorCode+1, "Unauthorized")
	ErrClaimed        = sdkerrors.Register(ModuleName, BaseErrorCode+2, "Claimed")
	ErrExpired        = sdkerrors.Register(ModuleName, BaseErrorCode+3, "Expired")
	ErrUnknownVariant = sdkerrors.Register(ModuleName, BaseErrorCode+4, "unknown variant")
)
