package service

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/storefront/internal/apierror"
)

const minPasswordLength = 6

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validate is shared by all services. validator.Validate caches its rules and
// is safe for concurrent use.
var validate = newValidator()

var passwordRule = "min=" + strconv.Itoa(minPasswordLength)

const (
	msgInvalidEmail  = "please provide a valid email address"
	msgShortPassword = "password must be at least 6 characters"
)

var (
	newAccountMessages = messages{
		"required":     "name, email and password are required",
		"email_shape":  msgInvalidEmail,
		"Password.min": msgShortPassword,
	}
	accountUpdateMessages = messages{
		"required":     "name and email are required",
		"email_shape":  msgInvalidEmail,
		"Password.min": msgShortPassword,
	}
)

// credentials is the sign-in form.
type credentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	return v
}

// messages maps a failed rule to the text returned to the client. Keys are
// either "Field.tag" or a bare tag that applies to every field.
type messages map[string]string

// checkInput validates the struct tags of in, skipping the except fields.
// A missing field is reported before any other failure, so the client sees
// the required message first.
func checkInput(in any, msgs messages, except ...string) error {
	var err error
	if len(except) > 0 {
		err = validate.StructExcept(in, except...)
	} else {
		err = validate.Struct(in)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	failed := fieldErrs[0]
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			failed = fe
			break
		}
	}

	if msg, ok := msgs[failed.Field()+"."+failed.Tag()]; ok {
		return apierror.NewErrValidation(msg)
	}
	if msg, ok := msgs[failed.Tag()]; ok {
		return apierror.NewErrValidation(msg)
	}
	return apierror.NewErrValidation("invalid " + strings.ToLower(failed.Field()))
}

func validPassword(password string) bool {
	return validate.Var(password, passwordRule) == nil
}
