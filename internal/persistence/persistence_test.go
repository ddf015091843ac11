package persistence

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orgdesk/org-service/internal/config"
)

func TestMigrationNames_SortedAndFilesOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_b.sql":   {Data: []byte("SELECT 2")},
		"migrations/0001_a.sql":   {Data: []byte("SELECT 1")},
		"migrations/nested/x.sql": {Data: []byte("SELECT 3")},
	}

	names, err := migrationNames(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_a.sql", "0002_b.sql"}, names)
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	names, err := migrationNames(migrationFiles)
	require.NoError(t, err)
	assert.Contains(t, names, "0001_org_schema.sql")
}

func TestNewPostgres_NoDSN(t *testing.T) {
	pg, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, pg.PoolHandle())
	assert.ErrorIs(t, pg.Ping(context.Background()), ErrNoDatabase)

	pg.Close()
	pg.Close()
}

func TestWithPostgres_ReleasesAfterFn(t *testing.T) {
	called := false
	err := WithPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop(), func(pg *Postgres) error {
		called = true
		assert.NotNil(t, pg)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestRunMigrations_NilPool(t *testing.T) {
	assert.NoError(t, RunMigrations(context.Background(), nil, zap.NewNop()))
}

func TestNewRedis_Disabled(t *testing.T) {
	r := NewRedis(config.RedisConfig{Enabled: false}, zap.NewNop())
	assert.Nil(t, r.Handle())
	assert.Error(t, r.Ping(context.Background()))
	r.Close()
}
