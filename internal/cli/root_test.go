package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transportation/transport"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TRANSPORTATION_SEED", "")
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSolveCommand(t *testing.T) {
	path := writeTemp(t, "p.txt", "2 2\n4 1 5\n2 3 5\n6 4\n")
	cfg := writeTemp(t, "run.yaml", "render:\n  color: false\n")

	out, err := execute(t, "solve", path, "--seed", "3", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Costs")
	assert.Contains(t, out, "supply")
	assert.Contains(t, out, "total cost")
	assert.Contains(t, out, "34")
	assert.Contains(t, out, "[0 -2]")
	assert.Contains(t, out, "plan can improve: min marginal cost -4 at S1-D2")
}

func TestSolveCommandLPAndType(t *testing.T) {
	path := writeTemp(t, "p.txt", "2 2\n1 2 5\n3 4 5\n6 4\n")

	out, err := execute(t, "solve", path, "--lp", "--type", "float64", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "plan is optimal")
	assert.Contains(t, out, "lp optimum")
	assert.Contains(t, out, "0.0000%")

	_, err = execute(t, "solve", path, "--type", "int8")
	require.Error(t, err)
}

func TestSolveCommandErrors(t *testing.T) {
	_, err := execute(t, "solve", writeTemp(t, "bad.txt", "2 2\n1 2 5\n3 4 5\n6 5\n"))
	require.ErrorIs(t, err, transport.ErrUnbalancedProblem)

	_, err = execute(t, "solve")
	require.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, "generate", "-n", "3", "-m", "4", "--seed", "9")
	require.NoError(t, err)
	again, err := execute(t, "generate", "-n", "3", "-m", "4", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	tbl, err := transport.Parse[int64](strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.N())
	assert.Equal(t, 4, tbl.M())

	file := filepath.Join(t.TempDir(), "gen.txt")
	_, err = execute(t, "generate", "-n", "2", "-m", "2", "-o", file)
	require.NoError(t, err)
	_, err = transport.LoadFile[int64](file)
	require.NoError(t, err)
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--problems", "3", "-n", "20", "-m", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "3 problems of 20x30")
	assert.Contains(t, out, "average")
	assert.Contains(t, out, "worst")

	_, err = execute(t, "bench", "--problems", "-1")
	require.Error(t, err)
}
