package floats

import (
	"math"
	"sort"
)

type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

func (s Slice) Push(v float64) Slice {
	return append(s, v)
}

func (s Slice) Length() int {
	return len(s)
}

func (s Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() (mean float64) {
	length := len(s)
	if length == 0 {
		return 0.0
	}
	return s.Sum() / float64(length)
}

// Stdev is the population standard deviation of the slice.
func (s Slice) Stdev() float64 {
	length := len(s)
	if length == 0 {
		return 0.0
	}

	mean := s.Mean()
	var sqsum float64
	for _, v := range s {
		d := v - mean
		sqsum += d * d
	}
	return math.Sqrt(sqsum / float64(length))
}

func (s Slice) Min() float64 {
	if len(s) == 0 {
		return 0.0
	}

	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func (s Slice) Max() float64 {
	if len(s) == 0 {
		return 0.0
	}

	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func (s Slice) Copy() Slice {
	out := make(Slice, len(s))
	copy(out, s)
	return out
}

// Sorted returns a copy of the slice sorted in ascending order. The receiver
// is left untouched.
func (s Slice) Sorted() Slice {
	out := s.Copy()
	sort.Float64s(out)
	return out
}

// Percentile returns the p-th percentile of the slice with linear
// interpolation between closest ranks: for n sorted values the rank is
// (n-1)*p/100, interpolated between the surrounding indexes.
func (s Slice) Percentile(p float64) float64 {
	n := len(s)
	if n == 0 {
		return 0.0
	}
	if n == 1 {
		return s[0]
	}

	sorted := s.Sorted()
	rank := (float64(n) - 1.0) * p / 100.0
	lower := int(math.Floor(rank))

	if lower < 0 {
		return sorted[0]
	}
	if lower >= n-1 {
		return sorted[n-1]
	}

	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

func (s Slice) Median() float64 {
	return s.Percentile(50.0)
}

// Add returns the elementwise sum of two slices of the same length.
func (s Slice) Add(b Slice) Slice {
	out := make(Slice, len(s))
	for i := range s {
		out[i] = s[i] + b[i]
	}
	return out
}
