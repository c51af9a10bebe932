package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCommand_ByName(t *testing.T) {
	path := newFixtureDB(t)

	out, _, err := runCommand(t, "lookup", "staff", "--db", path)
	require.NoError(t, err)
	assert.Equal(t, "staff:x:100:alice,bob\n", out)
}

func TestLookupCommand_ByGID(t *testing.T) {
	path := newFixtureDB(t)

	out, _, err := runCommand(t, "lookup", "101", "--db", path)
	require.NoError(t, err)
	assert.Equal(t, "wheel:x:101:alice\n", out)
}

func TestLookupCommand_JSON(t *testing.T) {
	path := newFixtureDB(t)

	out, _, err := runCommand(t, "lookup", "staff", "--db", path, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "staff", data["name"])
	assert.Equal(t, float64(100), data["gid"])
}

func TestLookupCommand_NotFound(t *testing.T) {
	path := newFixtureDB(t)

	_, _, err := runCommand(t, "lookup", "nope", "--db", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestLookupCommand_MissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	_, _, err := runCommand(t, "lookup", "staff", "--db", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestListCommand(t *testing.T) {
	path := newFixtureDB(t)

	out, _, err := runCommand(t, "list", "--db", path)
	require.NoError(t, err)
	assert.Equal(t, "staff:x:100:alice,bob\nwheel:x:101:alice\n", out)
}

func TestListCommand_JSON(t *testing.T) {
	path := newFixtureDB(t)

	out, _, err := runCommand(t, "list", "--db", path, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestListCommand_MissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	_, _, err := runCommand(t, "list", "--db", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGroupsCommand(t *testing.T) {
	path := newFixtureDB(t)

	out, _, err := runCommand(t, "groups", "alice", "--db", path)
	require.NoError(t, err)
	assert.Equal(t, "alice:100,101\n", out)
}

func TestGroupsCommand_PrimaryExcluded(t *testing.T) {
	path := newFixtureDB(t)

	out, _, err := runCommand(t, "groups", "alice", "--db", path, "--primary", "100")
	require.NoError(t, err)
	assert.Equal(t, "alice:101\n", out)
}

func TestGroupsCommand_CeilingReached(t *testing.T) {
	path := newFixtureDB(t)

	_, _, err := runCommand(t, "groups", "alice", "--db", path, "--ceiling", "1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "ceiling")
}

func TestGroupsCommand_MemberlessUser(t *testing.T) {
	path := newFixtureDB(t)

	out, _, err := runCommand(t, "groups", "bob", "--db", path, "--primary", "100")
	require.NoError(t, err)
	assert.Equal(t, "bob:\n", out)
}
