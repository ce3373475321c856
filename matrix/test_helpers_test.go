package matrix_test

import (
	"testing"

	"github.com/katalvlaran/transportation/matrix"
	"github.com/stretchr/testify/require"
)

// mustNew builds a Dense from literal rows or fails the test.
func mustNew[T matrix.Number](t *testing.T, data [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.New(data)
	require.NoError(t, err)

	return m
}
