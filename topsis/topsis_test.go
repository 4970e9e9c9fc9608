package topsis_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdm/critic"
	"github.com/katalvlaran/mcdm/decision"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/topsis"
)

const tol = 1e-12

var (
	b = decision.Benefit
	c = decision.Cost
)

var laptops = [][]float64{
	{250, 16, 12, 5},
	{200, 16, 8, 3},
	{300, 32, 16, 4},
	{275, 32, 8, 4},
	{225, 16, 16, 2},
}

func TestRun_TwoAlternativesPinned(t *testing.T) {
	t.Parallel()

	res, err := topsis.Run([][]float64{{7, 9}, {8, 7}}, []float64{0.5, 0.5}, []decision.Direction{b, b})
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.658504607868518, 0.7893522173763263}, res.NormalizedMatrix[0], tol)
	assert.InDeltaSlice(t, []float64{0.3762883473534389, 0.30697030675746023}, res.WeightedMatrix[1], tol)
	assert.InDeltaSlice(t, []float64{0.3762883473534389, 0.39467610868816316}, res.IdealPositive, tol)
	assert.InDeltaSlice(t, []float64{0.329252303934259, 0.30697030675746023}, res.IdealNegative, tol)
	assert.InDeltaSlice(t, []float64{0.047036043419179885, 0.08770580193070293}, res.DistancePositive, tol)
	assert.InDeltaSlice(t, []float64{0.08770580193070293, 0.047036043419179885}, res.DistanceNegative, tol)
	assert.InDeltaSlice(t, []float64{0.6509173278943757, 0.3490826721056243}, res.Closeness, tol)
	assert.Equal(t, []int{1, 2}, res.Ranking)
	assert.Equal(t, []float64{0.5, 0.5}, res.WeightsUsed)
}

func TestRun_WithCriticWeights(t *testing.T) {
	t.Parallel()

	dirs := []decision.Direction{c, b, b, b}
	cw, err := critic.Run(laptops, dirs)
	require.NoError(t, err)

	res, err := topsis.Run(laptops, cw.Weights, dirs)
	require.NoError(t, err)

	// Price is a cost: A+ takes the column minimum.
	assert.InDelta(t, 0.09620242848738335, res.IdealPositive[0], tol)
	assert.InDelta(t, 0.14430364273107502, res.IdealNegative[0], tol)
	assert.InDeltaSlice(t,
		[]float64{0.45910864129908285, 0.30538019786994536, 0.6946198021300547, 0.5339087479987079, 0.4268922607655311},
		res.Closeness, tol)
	assert.Equal(t, []int{3, 5, 1, 2, 4}, res.Ranking)
	assert.Equal(t, []int{2, 3, 0, 4, 1}, res.Order())
}

func TestRun_SingleAlternative(t *testing.T) {
	t.Parallel()

	res, err := topsis.Run([][]float64{{3, 4}}, []float64{0.5, 0.5}, []decision.Direction{b, c})
	require.NoError(t, err)

	assert.Equal(t, []float64{0}, res.DistancePositive)
	assert.Equal(t, []float64{0}, res.DistanceNegative)
	assert.Equal(t, []float64{0}, res.Closeness)
	assert.Equal(t, []int{1}, res.Ranking)
}

func TestRun_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	res, err := topsis.Run([][]float64{{1, 2}, {1, 2}, {3, 1}}, []float64{1, 1}, []decision.Direction{b, b})
	require.NoError(t, err)

	assert.Equal(t, res.Closeness[0], res.Closeness[1])
	assert.InDelta(t, 0.644010050314704, res.Closeness[2], tol)
	assert.Equal(t, []int{2, 3, 1}, res.Ranking)
}

func TestRun_DominantAlternativeRanksFirst(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{10, 5, 3},
		{12, 7, 1}, // best on both benefits, cheapest
		{11, 6, 2},
		{9, 4, 4},
	}
	res, err := topsis.Run(rows, []float64{0.2, 0.5, 0.3}, []decision.Direction{b, b, c})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Ranking[1])
	assert.Equal(t, 1.0, res.Closeness[1])
	assert.InDelta(t, 0.0, res.Closeness[3], tol)
}

func TestRun_Properties(t *testing.T) {
	t.Parallel()

	inputs := []struct {
		rows    [][]float64
		weights []float64
		dirs    []decision.Direction
	}{
		{laptops, []float64{0.25, 0.25, 0.25, 0.25}, []decision.Direction{c, b, b, b}},
		{laptops, []float64{3, 0, 1, 7}, []decision.Direction{b, c, c, b}},
		{[][]float64{{0, 0}, {0, 0}, {0, 0}}, []float64{0.5, 0.5}, []decision.Direction{b, c}},
		{[][]float64{{-2, 5}, {4, -1}, {0, 0}, {1, 1}}, []float64{1, 2}, []decision.Direction{c, b}},
		{[][]float64{{1}, {2}, {2}, {1}, {3}}, []float64{1}, []decision.Direction{b}},
	}
	for idx, in := range inputs {
		res, err := topsis.Run(in.rows, in.weights, in.dirs)
		require.NoError(t, err, "input %d", idx)

		for i, cc := range res.Closeness {
			assert.GreaterOrEqual(t, cc, 0.0, "input %d alt %d", idx, i)
			assert.LessOrEqual(t, cc, 1.0, "input %d alt %d", idx, i)
		}
		ranks := append([]int(nil), res.Ranking...)
		sort.Ints(ranks)
		for i, r := range ranks {
			assert.Equal(t, i+1, r, "input %d: ranking must be a permutation", idx)
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	w := []float64{0.1, 0.2, 0.3, 0.4}
	dirs := []decision.Direction{c, b, b, b}
	first, err := topsis.Run(laptops, w, dirs)
	require.NoError(t, err)
	second, err := topsis.Run(laptops, w, dirs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	first.WeightsUsed[0] = 99
	assert.Equal(t, 0.1, w[0], "WeightsUsed must not alias the input")
}

func TestRun_InputErrors(t *testing.T) {
	t.Parallel()

	bb := []decision.Direction{b, b}

	_, err := topsis.Run([][]float64{{1, 2}, {3}}, []float64{1, 1}, bb)
	assert.ErrorIs(t, err, decision.ErrInputShape)

	_, err = topsis.Run([][]float64{{1, 2}}, []float64{1}, bb)
	assert.ErrorIs(t, err, decision.ErrInputShape)

	_, err = topsis.Run([][]float64{{1, 2}}, []float64{1, 1}, []decision.Direction{b})
	assert.ErrorIs(t, err, decision.ErrInputShape)

	_, err = topsis.Run([][]float64{{1, 2}}, []float64{1, -1}, bb)
	assert.ErrorIs(t, err, decision.ErrInvalidWeight)

	_, err = topsis.Run([][]float64{{1, 2}}, []float64{1, math.NaN()}, bb)
	assert.ErrorIs(t, err, decision.ErrInvalidWeight)

	_, err = topsis.Run([][]float64{{1, math.NaN()}}, []float64{1, 1}, bb)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestClosenessAndRank(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{0, 0.25, 1}, topsis.Closeness([]float64{0, 3, 0}, []float64{0, 1, 2}))
	assert.Equal(t, []int{3, 1, 2, 4}, topsis.Rank([]float64{0.2, 0.9, 0.5, 0.2}))
	assert.Empty(t, topsis.Rank(nil))
}

func TestIdealSolutions_DirectionMismatch(t *testing.T) {
	t.Parallel()

	V, err := matrix.NewFromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	_, _, err = topsis.IdealSolutions(V, []decision.Direction{b})
	assert.ErrorIs(t, err, decision.ErrInputShape)

	_, _, err = topsis.IdealSolutions(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
