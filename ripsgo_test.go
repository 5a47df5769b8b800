package ripsgo

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ripsgo/distmat"
)

const sqrt2 = 1.4142135623730951

// unitSquare is the lower-triangular distance matrix of the four corners of
// a unit square, ordered around the cycle.
func unitSquare() []float32 {
	return []float32{1, sqrt2, 1, 1, sqrt2, 1}
}

func sortedPairs(pairs []Pair) []Pair {
	out := append([]Pair(nil), pairs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Birth != out[j].Birth {
			return out[i].Birth < out[j].Birth
		}
		return out[i].Death < out[j].Death
	})
	return out
}

func TestDense_UnitSquare(t *testing.T) {
	barcode, err := Dense(unitSquare())
	require.NoError(t, err)

	require.Len(t, barcode.Intervals, 2)
	assert.Equal(t, 6, barcode.NumEdges)

	h0 := sortedPairs(barcode.PairsInDim(0))
	require.Len(t, h0, 4)
	for _, p := range h0[:3] {
		assert.Equal(t, Pair{Birth: 0, Death: 1}, p)
	}
	assert.True(t, h0[3].IsEssential())

	h1 := barcode.PairsInDim(1)
	require.Len(t, h1, 1)
	assert.InDelta(t, 1, h1[0].Birth, 1e-6)
	assert.InDelta(t, sqrt2, h1[0].Death, 1e-6)

	assert.Equal(t, 1, barcode.BettiNumber(0))
	assert.Equal(t, 0, barcode.BettiNumber(1))
	assert.Equal(t, 1, barcode.MaxDim())
}

func TestDense_SinglePoint(t *testing.T) {
	barcode, err := Dense(nil)
	require.NoError(t, err)

	h0 := barcode.PairsInDim(0)
	require.Len(t, h0, 1)
	assert.True(t, h0[0].IsEssential())
}

func TestDense_EnclosingRadiusMatchesExplicit(t *testing.T) {
	// The enclosing radius of the square is sqrt2, so the default must
	// agree with an explicit threshold at that scale.
	auto, err := Dense(unitSquare())
	require.NoError(t, err)

	explicit, err := Dense(unitSquare(), WithThreshold(sqrt2))
	require.NoError(t, err)

	assert.Equal(t, explicit.Intervals, auto.Intervals)
	assert.Equal(t, explicit.NumEdges, auto.NumEdges)
}

func TestDense_InvalidLength(t *testing.T) {
	_, err := Dense([]float32{1, 2})

	var te *distmat.ErrTriangularLength
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 2, te.Length)
}

func TestDenseUpper_MatchesLower(t *testing.T) {
	// Same square, upper-triangular row-major order.
	upper := []float32{1, sqrt2, 1, 1, sqrt2, 1}

	want, err := Dense(unitSquare())
	require.NoError(t, err)

	got, err := DenseUpper(upper)
	require.NoError(t, err)

	assert.Equal(t, sortedPairs(want.Intervals[0]), sortedPairs(got.Intervals[0]))
	assert.Equal(t, sortedPairs(want.Intervals[1]), sortedPairs(got.Intervals[1]))
}

func TestSparse_RequiresThreshold(t *testing.T) {
	_, err := Sparse([]int{1}, []int{0}, []float32{1}, 2)
	assert.ErrorIs(t, err, ErrThresholdRequired)
}

func TestSparse_MatchesDense(t *testing.T) {
	rows := []int{1, 2, 2, 3, 3, 3}
	cols := []int{0, 0, 1, 0, 1, 2}
	weights := unitSquare()

	want, err := Dense(unitSquare(), WithThreshold(2))
	require.NoError(t, err)

	got, err := Sparse(rows, cols, weights, 4, WithThreshold(2))
	require.NoError(t, err)

	assert.Equal(t, sortedPairs(want.Intervals[0]), sortedPairs(got.Intervals[0]))
	assert.Equal(t, sortedPairs(want.Intervals[1]), sortedPairs(got.Intervals[1]))
	assert.Equal(t, want.NumEdges, got.NumEdges)
}

func TestRun_MatrixInterface(t *testing.T) {
	m, err := distmat.NewDense(unitSquare())
	require.NoError(t, err)

	barcode, err := Run(m, WithModulus(3), WithMaxDim(2))
	require.NoError(t, err)

	require.Len(t, barcode.Intervals, 3)
	assert.Len(t, barcode.PairsInDim(1), 1)
	assert.Empty(t, barcode.PairsInDim(2))
}

func TestDense_ThresholdCutsLoop(t *testing.T) {
	// Below sqrt2 the square's loop never fills in, so it is essential.
	barcode, err := Dense(unitSquare(), WithThreshold(1.2))
	require.NoError(t, err)

	h1 := barcode.PairsInDim(1)
	require.Len(t, h1, 1)
	assert.InDelta(t, 1, h1[0].Birth, 1e-6)
	assert.True(t, h1[0].IsEssential())
}

func TestDense_RatioFiltersShortBars(t *testing.T) {
	barcode, err := Dense(unitSquare(), WithRatio(2))
	require.NoError(t, err)

	// death/birth of the loop is sqrt2, below the ratio floor.
	assert.Empty(t, barcode.PairsInDim(1))

	// Bars born at zero are never filtered.
	assert.Len(t, barcode.PairsInDim(0), 4)
}

func TestDense_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	_, err := Dense(unitSquare(), WithMetricsCollector(metrics))
	require.NoError(t, err)

	_, err = Dense([]float32{1, 2}, WithMetricsCollector(metrics))
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.RunCount)
	assert.Equal(t, int64(0), stats.RunErrors)
	assert.Equal(t, int64(6), stats.RunEdges)
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want any
	}{
		{name: "non-prime modulus", opt: WithModulus(4), want: new(*ErrNonPrimeModulus)},
		{name: "one is not prime", opt: WithModulus(1), want: new(*ErrNonPrimeModulus)},
		{name: "negative modulus", opt: WithModulus(-2), want: new(*ErrNonPrimeModulus)},
		{name: "negative max dim", opt: WithMaxDim(-1), want: new(*ErrInvalidMaxDim)},
		{name: "negative threshold", opt: WithThreshold(-1), want: new(*ErrInvalidThreshold)},
		{name: "nan threshold", opt: WithThreshold(float32(math.NaN())), want: new(*ErrInvalidThreshold)},
		{name: "zero ratio", opt: WithRatio(0), want: new(*ErrInvalidRatio)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Dense(unitSquare(), tt.opt)
			require.Error(t, err)
			assert.ErrorAs(t, err, tt.want)
		})
	}
}

func TestIsPrime(t *testing.T) {
	primes := []int16{2, 3, 5, 7, 11, 13, 251}
	for _, p := range primes {
		assert.True(t, isPrime(p), "expected %d to be prime", p)
	}

	composites := []int16{-3, 0, 1, 4, 9, 15, 249}
	for _, c := range composites {
		assert.False(t, isPrime(c), "expected %d to be composite", c)
	}
}
