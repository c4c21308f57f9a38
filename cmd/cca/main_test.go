package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-cca/internal/config"
	"mad-cca/internal/runner"
	"mad-cca/internal/sweep"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRunJSON(t *testing.T) {
	out, logs, err := execute(t, "run", "--json", "--size", "12", "--particles", "25", "--seed", "3", "--verify", "--log-format", "json")
	require.NoError(t, err)

	var res runner.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Complete)
	assert.Equal(t, 1, res.Clusters)
	assert.Equal(t, 25, res.Largest)
	assert.Equal(t, int64(3), res.Seed)
	assert.Equal(t, 25, res.BoxCounts[1])
	assert.NotEmpty(t, res.RunID)
	assert.Contains(t, logs, `"msg":"run finished"`)
}

func TestRunStepLimitText(t *testing.T) {
	out, _, err := execute(t, "run", "--size", "40", "--particles", "100", "--steps", "10", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "steps      10")
	assert.Contains(t, out, "box counts")
}

func TestBoxCount(t *testing.T) {
	out, _, err := execute(t, "boxcount", "--size", "8", "--particles", "64", "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"1 64", "2 16", "4 4", "dimension 2.0000"}, lines)
}

func TestSweepJSON(t *testing.T) {
	out, _, err := execute(t, "sweep", "--json", "--runs", "3", "--workers", "2", "--size", "16", "--particles", "30", "--steps", "40", "--log-level", "error")
	require.NoError(t, err)

	var sum sweep.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	require.Len(t, sum.Results, 3)
	for i, r := range sum.Results {
		assert.Equal(t, int64(1337+i), r.Seed)
		assert.Equal(t, 40, r.Steps)
	}
}

func TestConfigFileAndValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cca.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lattice:\n  size: 3\n  particles: 9\nlogging:\n  level: error\n"), 0o644))

	out, _, err := execute(t, "boxcount", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 9")

	_, _, err = execute(t, "run", "--config", path, "--particles", "10")
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "exceeds lattice capacity 9")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cca version "+version+"\n", out)
}
