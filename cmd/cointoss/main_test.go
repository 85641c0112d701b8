package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinToss_Go/internal/auth"
)

const testSecret = "cli-test-secret-that-is-long-enough"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenIssue(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("JWT_ISSUER", "cointoss")

	out, err := execute(t, "token", "issue", "--owner", "player-7", "--ttl", "1m")
	require.NoError(t, err)

	owner, err := auth.NewJWTIdentifier(testSecret, "cointoss").Verify(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "player-7", owner)
}

func TestTokenIssue_RequiresOwner(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	_, err := execute(t, "token", "issue")
	assert.Error(t, err)
}

func TestTokenIssue_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := execute(t, "token", "issue", "--owner", "player-7")
	assert.Error(t, err)
}

func TestMigrate_RejectsUnknownDirection(t *testing.T) {
	_, err := execute(t, "migrate", "sideways")
	assert.Error(t, err)

	_, err = execute(t, "migrate")
	assert.Error(t, err)
}
