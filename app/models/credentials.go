package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrCredentialsMissing = errors.New("username and password are required")
)

var validate = validator.New()

// Credentials are the transient login form values. They are never persisted.
type Credentials struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"-" validate:"required,max=256"`
}

func (c *Credentials) Validate() error {
	return translate(validate.Struct(c))
}

// Registration is the transient register form, including the confirmation field.
type Registration struct {
	Username string `validate:"required,max=150"`
	Password string `validate:"required,max=256"`
	Confirm  string `validate:"eqfield=Password"`
}

// Validate reports a confirmation mismatch before any other problem.
func (r *Registration) Validate() error {
	err := validate.Struct(r)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Confirm" {
				return ErrPasswordMismatch
			}
		}
	}
	return translate(err)
}

// Credentials drops the confirmation field.
func (r *Registration) Credentials() Credentials {
	return Credentials{Username: r.Username, Password: r.Password}
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return ErrCredentialsMissing
	case "max":
		return fmt.Errorf("%s must be at most %s characters", fieldLabel(fe.Field()), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fieldLabel(fe.Field()))
	}
}

func fieldLabel(field string) string {
	switch field {
	case "Username":
		return "username"
	case "Password":
		return "password"
	default:
		return field
	}
}
