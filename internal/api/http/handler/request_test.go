package handler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/storefront/internal/apierror"
)

func TestSafeCallback(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/admin", "/admin"},
		{"/products/asus?page=2", "/products/asus?page=2"},
		{"https://evil.example.com", "/"},
		{"//evil.example.com", "/"},
		{`/\evil.example.com`, "/"},
		{"admin", "/"},
		{"/\t/evil.example.com", "/"},
		{"/\n/evil.example.com", "/"},
		{"/\r//evil.example.com", "/"},
		{"/admin\x7f", "/"},
		{`/admin\users`, "/"},
		{"/%2F%2Fevil.example.com", "/%2F%2Fevil.example.com"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, safeCallback(tt.in))
		})
	}
}

func TestOptionalID(t *testing.T) {
	id := uuid.New()

	got, err := optionalID("  "+id.String()+" ", "brand")
	assert.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = optionalID("", "brand")
	assert.NoError(t, err)
	assert.Equal(t, uuid.Nil, got)

	_, err = optionalID("not-a-uuid", "brand")
	var apiErr *apierror.APIError
	if assert.ErrorAs(t, err, &apiErr) {
		assert.Equal(t, "invalid brand id", apiErr.Message)
	}
}
