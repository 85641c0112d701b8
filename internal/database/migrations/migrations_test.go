package migrations

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, name := range entries {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		text := string(body)
		assert.True(t, strings.HasPrefix(text, "-- +goose Up"), "%s must start with a goose Up marker", name)
		assert.Contains(t, text, "-- +goose Down", "%s must be reversible", name)
	}
}

func TestRunDB_UnknownDirection(t *testing.T) {
	err := RunDB(context.Background(), nil, Direction("sideways"))
	assert.Error(t, err)
}
