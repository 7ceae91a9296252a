package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-customer-portal/models"
)

// CustomerValidator checks the request bodies of account operations.
type CustomerValidator struct {
	// maxPasswordBytes caps new passwords; zero disables the check.
	maxPasswordBytes int
}

func NewCustomerValidator(maxPasswordBytes int) Validator {
	return &CustomerValidator{maxPasswordBytes: maxPasswordBytes}
}

func (v *CustomerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(ctx, value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(ctx, *value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CustomerValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(credentials.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustomerValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSurname, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(request.Name) {
				return ErrEmptyName
			}
		case FieldSurname:
			if isBlank(request.Surname) {
				return ErrEmptySurname
			}
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
			if v.tooLong(request.Password) {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustomerValidator) validatePasswordChange(ctx context.Context, change models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBefore, FieldAfter}
	}

	for _, f := range fields {
		switch f {
		case FieldBefore:
			if change.Before == "" {
				return ErrEmptyCurrentPassword
			}
		case FieldAfter:
			if change.After == "" {
				return ErrEmptyNewPassword
			}
			if v.tooLong(change.After) {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProfileUpdate only looks at the fields present in the update:
// an absent field means "keep", a present one must not be blank.
// Phone is free-form and never checked.
func (v *CustomerValidator) validateProfileUpdate(ctx context.Context, update models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAny, FieldName, FieldSurname, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldAny:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if update.Name != nil && isBlank(*update.Name) {
				return ErrEmptyName
			}
		case FieldSurname:
			if update.Surname != nil && isBlank(*update.Surname) {
				return ErrEmptySurname
			}
		case FieldEmail:
			if update.Email == nil {
				continue
			}
			if err := validateEmail(*update.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// MaxPasswordBytes returns the new-password limit, zero when unlimited.
func (v *CustomerValidator) MaxPasswordBytes() int {
	return v.maxPasswordBytes
}

func (v *CustomerValidator) tooLong(password string) bool {
	return v.maxPasswordBytes > 0 && len(password) > v.maxPasswordBytes
}

func validateEmail(email string) error {
	if isBlank(email) {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
