package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/storefront/internal/model"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "nil",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows",
			err:     sql.ErrNoRows,
			wantErr: model.ErrNotFound,
		},
		{
			name:    "wrapped no rows",
			err:     fmt.Errorf("scan: %w", sql.ErrNoRows),
			wantErr: model.ErrNotFound,
		},
		{
			name:    "unique violation",
			err:     &pgconn.PgError{Code: uniqueViolation, ConstraintName: "brands_name_key"},
			wantErr: model.ErrConflict,
		},
		{
			name:    "foreign key violation",
			err:     &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "models_brand_id_fkey"},
			wantErr: model.ErrConflict,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := mapError(tt.err, "do something")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("other errors are wrapped", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection reset")
		err := mapError(cause, "list brands")
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, model.ErrNotFound)
		assert.Contains(t, err.Error(), "failed to list brands")
	})

	t.Run("other pg codes are not conflicts", func(t *testing.T) {
		t.Parallel()

		err := mapError(&pgconn.PgError{Code: "23514"}, "create product")
		assert.NotErrorIs(t, err, model.ErrConflict)
	})
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%ali%", containsPattern("ali"))
	assert.Equal(t, `%50\%\_off\\%`, containsPattern(`50%_off\`))
}
