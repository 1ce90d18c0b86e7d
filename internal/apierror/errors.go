// Package apierror holds the errors a service may hand to a client as-is.
package apierror

import (
	"fmt"
	"net/http"
)

// Kind classifies an APIError.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthenticated
	KindUnauthorized
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	default:
		return "INTERNAL"
	}
}

// HTTPStatus maps the kind to its response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// APIError is an error whose message is safe to show to the client.
// Fields are merged into the JSON response body next to the message.
type APIError struct {
	Kind    Kind
	Message string
	Fields  map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New creates an APIError of the given kind.
func New(kind Kind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

// With returns a copy of e with an extra response field.
func (e *APIError) With(key string, value any) *APIError {
	fields := make(map[string]any, len(e.Fields)+1)
	for k, v := range e.Fields {
		fields[k] = v
	}
	fields[key] = value
	return &APIError{Kind: e.Kind, Message: e.Message, Fields: fields}
}

func NewErrValidation(message string) *APIError {
	return New(KindValidation, message)
}

func NewErrInvalidID(entity string) *APIError {
	return New(KindValidation, fmt.Sprintf("invalid %s id", entity))
}

func NewErrNotFound(entity string) *APIError {
	return New(KindNotFound, fmt.Sprintf("%s not found", entity))
}

func NewErrConflict(message string) *APIError {
	return New(KindConflict, message)
}

func NewErrEmailIsTaken() *APIError {
	return New(KindConflict, "email is already registered")
}

func NewErrBrandNameIsTaken(name string) *APIError {
	return New(KindConflict, fmt.Sprintf("brand %q already exists", name))
}

func NewErrModelNameIsTaken(name string) *APIError {
	return New(KindConflict, fmt.Sprintf("model %q already exists for this brand", name))
}

func NewErrProductNameIsTaken(name string) *APIError {
	return New(KindConflict, fmt.Sprintf("a product with the name %q already exists", name))
}

func NewErrBrandHasModels(count int) *APIError {
	return New(KindConflict, "brand has related models and cannot be deleted").With("relatedModelsCount", count)
}

func NewErrModelHasProducts(count int) *APIError {
	return New(KindConflict, "model has related products and cannot be deleted").With("relatedProductsCount", count)
}

// NewErrInvalidCredentials is deliberately generic so that it does not reveal
// whether the email exists.
func NewErrInvalidCredentials() *APIError {
	return New(KindUnauthenticated, "invalid email or password")
}

func NewErrAuthenticationRequired() *APIError {
	return New(KindUnauthenticated, "authentication required")
}

func NewErrForbidden() *APIError {
	return New(KindUnauthorized, "you are not allowed to perform this operation")
}

func NewErrCannotDeleteSelf() *APIError {
	return New(KindValidation, "you cannot delete your own account")
}
