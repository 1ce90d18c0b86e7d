package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/apierror"
)

func requireKind(t *testing.T, err error, kind apierror.Kind) *apierror.APIError {
	t.Helper()

	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, kind, apiErr.Kind, apiErr.Message)
	return apiErr
}

func ptr[T any](v T) *T {
	return &v
}
