package service

import (
	"errors"
	"fmt"
)

// Base error kinds. Every error returned by a service wraps exactly one of
// them, so transport layers can map failures with [errors.Is].
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

var (
	ErrInvalidDataProvided = fmt.Errorf("%w: invalid data provided", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password is too long", ErrValidation)

	ErrWrongPassword           = fmt.Errorf("%w: wrong password", ErrUnauthorized)
	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: token is expired or invalid", ErrUnauthorized)

	ErrCustomerNotFound = fmt.Errorf("%w: customer not found", ErrNotFound)

	ErrEmailAlreadyExists = fmt.Errorf("%w: email already exists", ErrConflict)
	ErrPendingPackages    = fmt.Errorf("%w: customer has pending packages", ErrConflict)

	ErrTokenCreationFailed   = fmt.Errorf("%w: token creation failed", ErrInternal)
	ErrPasswordHashingFailed = fmt.Errorf("%w: password hashing failed", ErrInternal)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
