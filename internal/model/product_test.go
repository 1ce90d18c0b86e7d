package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatures_Value(t *testing.T) {
	v, err := Features(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), v)

	v, err = Features{"ram": "16GB"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"ram":"16GB"}`, string(v.([]byte)))
}

func TestFeatures_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    Features
		wantErr bool
	}{
		{name: "bytes", src: []byte(`{"cpu":"i7"}`), want: Features{"cpu": "i7"}},
		{name: "string", src: `{"gpu":"rtx"}`, want: Features{"gpu": "rtx"}},
		{name: "nil", src: nil, want: Features{}},
		{name: "bad json", src: []byte(`[1]`), wantErr: true},
		{name: "bad type", src: 12, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Features
			err := f.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestAuthError_UnwrapsToInvalidCredentials(t *testing.T) {
	err := error(&AuthError{Reason: AuthFailureBadPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "bad_password")
}
