package complexity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulChecked(t *testing.T) {
	got, ok := mulChecked(1, math.MaxInt)
	require.True(t, ok)
	assert.Equal(t, math.MaxInt, got)

	got, ok = mulChecked(0, math.MaxUint64)
	require.True(t, ok)
	assert.Zero(t, got)

	_, ok = mulChecked(2, math.MaxInt/2+1)
	assert.False(t, ok, "product one past MaxInt")
	_, ok = mulChecked(73, 1<<62)
	assert.False(t, ok, "high word set")
}

func TestSumChecked(t *testing.T) {
	got, err := sumChecked([]int{math.MaxInt - 1, 1})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)

	_, err = sumChecked([]int{math.MaxInt, 1})
	assert.ErrorIs(t, err, ErrOverflow)

	got, err = sumChecked(nil)
	require.NoError(t, err)
	assert.Zero(t, got)
}
