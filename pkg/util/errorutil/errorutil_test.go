package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
		assert.NoError(t, MapError(nil))
	})

	t.Run("passes domain errors through", func(t *testing.T) {
		orig := NewConflict("dup", nil)
		wrapped := fmt.Errorf("create: %w", orig)
		assert.Same(t, orig, ToDomainError(wrapped))
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		de := ToDomainError(fmt.Errorf("get: %w", pgx.ErrNoRows))
		assert.Equal(t, "NOT_FOUND", de.Code)
		assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	})

	t.Run("foreign key violation becomes validation error", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "departamentos_empresa_id_fkey"}
		de := ToDomainError(fmt.Errorf("insert: %w", pgErr))
		assert.Equal(t, "VALIDATION_FAILED", de.Code)
		assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
		assert.Equal(t, "departamentos_empresa_id_fkey", de.Details["constraint"])
		assert.ErrorIs(t, de, pgErr)
	})

	t.Run("unique violation becomes conflict", func(t *testing.T) {
		de := ToDomainError(&pgconn.PgError{Code: "23505"})
		assert.Equal(t, "CONFLICT", de.Code)
	})

	t.Run("anything else is internal", func(t *testing.T) {
		cause := errors.New("connection reset")
		de := ToDomainError(cause)
		assert.Equal(t, "INTERNAL_ERROR", de.Code)
		assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
		assert.ErrorIs(t, de, cause)
	})
}
