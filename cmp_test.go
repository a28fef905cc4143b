package option

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	require.True(t, Contains(Some(3), 3))
	assert.False(t, Contains(Some(3), 4))
	assert.False(t, Contains(None[int](), 3))
	// Structural equality on composite payloads.
	assert.True(t, Contains(Some([]int{1, 2}), []int{1, 2}))
	assert.False(t, Contains(Some([]int{1, 2}), []int{2, 1}))
}

func TestContainsFunc(t *testing.T) {
	assert.True(t, ContainsFunc(Some("Sam"), "sam", strings.EqualFold))
	assert.False(t, ContainsFunc(Some("Sam"), "pat", strings.EqualFold))
	assert.False(t, ContainsFunc(None[string](), "sam", strings.EqualFold))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Some(3), Some(3)))
	assert.False(t, Equal(Some(3), Some(4)))
	assert.True(t, Equal(None[int](), None[int]()))
	assert.False(t, Equal(Some(0), None[int]()))
	assert.False(t, Equal(None[int](), Some(0)))
	assert.True(t, Equal(Some([]string{"a"}), Some([]string{"a"})))
}

func TestEqualFunc(t *testing.T) {
	approxEq := func(a, b float64) bool {
		d := a - b
		return d < 1e-9 && d > -1e-9
	}
	assert.True(t, EqualFunc(Some(0.1+0.2), Some(0.3), approxEq))
	assert.False(t, EqualFunc(Some(0.1), Some(0.3), approxEq))
	assert.True(t, EqualFunc(None[float64](), None[float64](), approxEq))
}
