package auth

import "github.com/heartmarshall/roadworks-backend/internal/domain"

const (
	maxEmailLength    = 254
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt ignores anything past 72 bytes
)

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > maxEmailLength {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RegisterInput holds parameters for the registration operation.
type RegisterInput struct {
	Email    string
	Password string
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > maxEmailLength {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if !looksLikeEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	errs = append(errs, validatePassword("password", i.Password)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for the password change operation.
type ChangePasswordInput struct {
	Email       string
	OldPassword string
	NewPassword string
}

// Validate validates the password change input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.OldPassword == "" {
		errs = append(errs, domain.FieldError{Field: "old_password", Message: "required"})
	}
	errs = append(errs, validatePassword("new_password", i.NewPassword)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validatePassword(field, password string) []domain.FieldError {
	switch {
	case password == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case len(password) < minPasswordLength:
		return []domain.FieldError{{Field: field, Message: "too short"}}
	case len(password) > maxPasswordLength:
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

func looksLikeEmail(s string) bool {
	at := -1
	for i, c := range s {
		if c == '@' {
			if at >= 0 {
				return false
			}
			at = i
		}
	}
	return at > 0 && at < len(s)-1
}
