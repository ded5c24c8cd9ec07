package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumMean(t *testing.T) {
	a := New(1, 2, 3, 4, 5)
	assert.Equal(t, 15.0, a.Sum())
	assert.Equal(t, 3.0, a.Mean())
	assert.Equal(t, 0.0, New().Mean())
}

func TestMinMax(t *testing.T) {
	a := New(3, -1, 2, 9, 0)
	assert.Equal(t, -1.0, a.Min())
	assert.Equal(t, 9.0, a.Max())
}

func TestSortedDoesNotMutate(t *testing.T) {
	a := New(3, 1, 2)
	b := a.Sorted()
	assert.Equal(t, Slice{1, 2, 3}, b)
	assert.Equal(t, Slice{3, 1, 2}, a)
}

func TestPercentile(t *testing.T) {
	a := New(1, 2, 3, 4)

	// rank = 3 * 0.05 = 0.15 -> 1 + 0.15*(2-1)
	assert.InDelta(t, 1.15, a.Percentile(5), 1e-12)
	assert.InDelta(t, 2.5, a.Percentile(50), 1e-12)
	assert.Equal(t, 1.0, a.Percentile(0))
	assert.Equal(t, 4.0, a.Percentile(100))
	assert.Equal(t, 7.0, New(7).Percentile(42))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, New(3, 1, 2).Median())
	assert.Equal(t, 2.5, New(4, 1, 2, 3).Median())
}

func TestStdev(t *testing.T) {
	// population stdev of {2, 4, 4, 4, 5, 5, 7, 9} is exactly 2
	a := New(2, 4, 4, 4, 5, 5, 7, 9)
	assert.InDelta(t, 2.0, a.Stdev(), 1e-12)
}

func TestAdd(t *testing.T) {
	a := New(1, 2, 3)
	b := New(10, 20, 30)
	assert.Equal(t, Slice{11, 22, 33}, a.Add(b))
}
