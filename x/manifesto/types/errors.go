package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Error codes for the manifesto module.
const BaseErrorCode uint32 = 1

// The descriptions are part of the external interface: off-chain systems
// match on the exact strings, so they are returned unwrapped.
var (
	ErrUnauthorized      = sdkerrors.Register(ModuleName, BaseErrorCode+1, "Unauthorized")
	ErrInvalidTime       = sdkerrors.Register(ModuleName, BaseErrorCode+2, "Invalid Martian Time")
	ErrInvalidDate       = sdkerrors.Register(ModuleName, BaseErrorCode+3, "Invalid Martian Date")
	ErrMaxSigneesReached = sdkerrors.Register(ModuleName, BaseErrorCode+4, "Max signee limit reached")
	ErrAlreadySigned     = sdkerrors.Register(ModuleName, BaseErrorCode+5, "User has already signed the Manifesto")
	ErrUnknownVariant    = sdkerrors.Register(ModuleName, BaseErrorCode+6, "unknown variant")
)
