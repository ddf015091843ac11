package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDepartamentoListQuery(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		query, args, err := buildDepartamentoListQuery(DepartamentoFilter{})
		require.NoError(t, err)
		assert.Equal(t, "SELECT id, nombre, empresa_id, created_at, updated_at FROM departamentos ORDER BY id", query)
		assert.Empty(t, args)
	})

	t.Run("by empresa", func(t *testing.T) {
		empresaID := int64(7)
		query, args, err := buildDepartamentoListQuery(DepartamentoFilter{EmpresaID: &empresaID})
		require.NoError(t, err)
		assert.Equal(t, "SELECT id, nombre, empresa_id, created_at, updated_at FROM departamentos WHERE empresa_id = $1 ORDER BY id", query)
		assert.Equal(t, []any{int64(7)}, args)
	})
}
