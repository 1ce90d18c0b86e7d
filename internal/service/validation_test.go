package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/model"
)

func TestCheckInput(t *testing.T) {
	price := func(v float64) *float64 { return &v }
	stock := func(v int) *int { return &v }
	product := func(p *float64, s *int) model.ProductInput {
		return model.ProductInput{
			Name:    "ROG Strix",
			BrandID: uuid.New(),
			ModelID: uuid.New(),
			Price:   p,
			Stock:   s,
		}
	}

	tests := []struct {
		name    string
		in      any
		msgs    messages
		except  []string
		wantMsg string
	}{
		{
			name: "valid account",
			in:   model.UserInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"},
			msgs: newAccountMessages,
		},
		{
			name:    "missing name",
			in:      model.UserInput{Email: "alice@example.com", Password: "secret1"},
			msgs:    newAccountMessages,
			wantMsg: "name, email and password are required",
		},
		{
			name:    "email without domain",
			in:      model.UserInput{Name: "Alice", Email: "alice@example", Password: "secret1"},
			msgs:    newAccountMessages,
			wantMsg: msgInvalidEmail,
		},
		{
			name:    "email with space",
			in:      model.UserInput{Name: "Alice", Email: "al ice@example.com", Password: "secret1"},
			msgs:    newAccountMessages,
			wantMsg: msgInvalidEmail,
		},
		{
			name:    "short password",
			in:      model.UserInput{Name: "Alice", Email: "alice@example.com", Password: "12345"},
			msgs:    newAccountMessages,
			wantMsg: msgShortPassword,
		},
		{
			name:    "missing field reported before bad email",
			in:      model.UserInput{Email: "alice", Password: "123"},
			msgs:    newAccountMessages,
			wantMsg: "name, email and password are required",
		},
		{
			name:   "skipped password",
			in:     model.UserInput{Name: "Alice", Email: "alice@example.com"},
			msgs:   accountUpdateMessages,
			except: []string{"Password"},
		},
		{
			name: "zero price and stock",
			in:   product(price(0), stock(0)),
			msgs: productMessages,
		},
		{
			name:    "price above column precision",
			in:      product(price(1e10), stock(1)),
			msgs:    productMessages,
			wantMsg: "price must be at most 9999999999.99",
		},
		{
			name:    "stock above integer range",
			in:      product(price(1), stock(2147483648)),
			msgs:    productMessages,
			wantMsg: "stock must be at most 2147483647",
		},
		{
			name:    "negative price",
			in:      product(price(-1), stock(1)),
			msgs:    productMessages,
			wantMsg: "price must not be negative",
		},
		{
			name:    "unknown rule falls back to field name",
			in:      model.UserInput{Name: "Alice", Email: "alice@example.com", Password: "123"},
			msgs:    messages{},
			wantMsg: "invalid password",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := checkInput(tt.in, tt.msgs, tt.except...)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			var apiErr *apierror.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, apierror.KindValidation, apiErr.Kind)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestValidPassword(t *testing.T) {
	assert.False(t, validPassword(""))
	assert.False(t, validPassword("12345"))
	assert.True(t, validPassword("123456"))
	assert.True(t, validPassword("şifre1"))
}
