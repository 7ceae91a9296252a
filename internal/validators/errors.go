package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail           = errors.New("email is required")
	ErrInvalidEmail         = errors.New("email is malformed")
	ErrEmptyPassword        = errors.New("password is required")
	ErrPasswordTooLong      = errors.New("password is too long")
	ErrEmptyName            = errors.New("name is required")
	ErrEmptySurname         = errors.New("surname is required")
	ErrEmptyCurrentPassword = errors.New("current password is required")
	ErrEmptyNewPassword     = errors.New("new password is required")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
)
