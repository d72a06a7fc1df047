package domain

import "errors"

var (
	// ErrInvalidArgument reports a missing, blank or malformed argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrReferentialIntegrity reports a registration that references a parent
	// entity which is not registered.
	ErrReferentialIntegrity = errors.New("referential integrity violation")
)
