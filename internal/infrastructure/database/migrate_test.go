package database

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationSource_VersionsAreContiguousWithUpAndDown(t *testing.T) {
	src, err := MigrationSource()
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	count := 0
	for {
		count++

		up, _, err := src.ReadUp(version)
		require.NoError(t, err, "missing up migration for version %d", version)
		body, err := io.ReadAll(up)
		up.Close()
		require.NoError(t, err)
		assert.NotEmpty(t, body)

		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "missing down migration for version %d", version)
		down.Close()

		next, err := src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, version+1, next, "gap after version %d", version)
		version = next
	}

	assert.Equal(t, 8, count)
}

func TestMigrateURL_UsesPgx5Scheme(t *testing.T) {
	cfg := &DBConfig{Host: "db", Port: 5432, Username: "artist", Password: "p@ss", DBName: "artisthub"}

	assert.Equal(t, "postgres://artist:p%40ss@db:5432/artisthub?sslmode=disable", cfg.DSN())
	assert.Equal(t, "pgx5://artist:p%40ss@db:5432/artisthub?sslmode=disable", migrateURL(cfg))
}
