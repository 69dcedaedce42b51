package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/btracey/intervalsearch/common"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(append([]string{"intervalsearch", "--log-level", "error"}, args...))
	return stdout.String(), err
}

func TestFib(t *testing.T) {
	out, err := run(t, "fib", "10")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "9\t55", lines[9])
	assert.Equal(t, "10\t89", lines[10])

	_, err = run(t, "fib", "-1")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	out, err := run(t, "run", "--method", "fibonacci", "--function", "quadratic")
	require.NoError(t, err)
	assert.Contains(t, out, "fibonacci for quadratic with a=-3, b=5, eps=0.05, l=0.2")
	assert.Contains(t, out, "Found x=")

	_, err = run(t, "run", "--method", "dichotomous", "--eps", "0.1", "--l", "0.1")
	assert.True(t, errors.Is(err, common.ErrInvalidPrecision))

	_, err = run(t, "run", "--a", "5", "--b", "3")
	assert.True(t, errors.Is(err, common.ErrInvalidInterval))
}

func TestGrid(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "grid", "--quiet", "--csv-dir", dir)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBadLogLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run([]string{"intervalsearch", "--log-level", "loud", "fib", "3"})
	assert.Error(t, err)
}
