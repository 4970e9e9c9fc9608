package critic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mcdm/critic"
	"github.com/katalvlaran/mcdm/decision"
	"github.com/katalvlaran/mcdm/matrix"
)

const tol = 1e-12

var (
	b = decision.Benefit
	c = decision.Cost
)

// laptops is a 5×4 fixture: price (cost), RAM, storage, rating.
var laptops = [][]float64{
	{250, 16, 12, 5},
	{200, 16, 8, 3},
	{300, 32, 16, 4},
	{275, 32, 8, 4},
	{225, 16, 16, 2},
}

func TestRun_PerfectlyCorrelatedFallsBackToUniform(t *testing.T) {
	t.Parallel()

	res, err := critic.Run([][]float64{{1, 2}, {3, 4}, {5, 6}}, []decision.Direction{b, b})
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{0, 0}, {0.5, 0.5}, {1, 1}}, res.NormalizedMatrix)
	assert.InDeltaSlice(t, []float64{0.408248290463863, 0.408248290463863}, res.StdDevs, tol)
	assert.InDelta(t, 1.0, res.CorrelationMatrix[0][1], tol)
	assert.InDeltaSlice(t, []float64{0, 0}, res.InformationContent, tol)
	assert.Equal(t, []float64{0.5, 0.5}, res.Weights)
}

func TestRun_PinnedFourCriteria(t *testing.T) {
	t.Parallel()

	res, err := critic.Run(laptops, []decision.Direction{c, b, b, b})
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.5, 0, 0.5, 1}, res.NormalizedMatrix[0], tol)
	assert.InDeltaSlice(t, []float64{1, 0, 0, 1.0 / 3}, res.NormalizedMatrix[1], tol)
	assert.InDeltaSlice(t,
		[]float64{0.3535533905932738, 0.48989794855663565, 0.4472135954999579, 0.339934634239519},
		res.StdDevs, tol)
	assert.InDeltaSlice(t,
		[]float64{1.0, -0.8660254037844386, -0.31622776601683794, -0.5547001962252291},
		res.CorrelationMatrix[0], tol)
	assert.InDelta(t, 0.0, res.CorrelationMatrix[1][2], tol)
	assert.InDeltaSlice(t,
		[]float64{1.6747659236408923, 1.737065006271288, 1.5811202103062754, 1.1740350994945992},
		res.InformationContent, tol)
	assert.InDeltaSlice(t,
		[]float64{0.2715695898356371, 0.2816716202616519, 0.25638458541134085, 0.19037420449137019},
		res.Weights, tol)
}

func TestRun_WeightsAreAProbabilityVector(t *testing.T) {
	t.Parallel()

	inputs := []struct {
		rows [][]float64
		dirs []decision.Direction
	}{
		{laptops, []decision.Direction{c, b, b, b}},
		{[][]float64{{1, 1, 1}, {1, 1, 1}}, []decision.Direction{b, c, b}},
		{[][]float64{{3, 9}, {3, 1}, {3, 4}}, []decision.Direction{c, c}},
		{[][]float64{{-1.5, 2e9, 0}, {4, -7, 0.001}, {0, 0, 0}}, []decision.Direction{b, c, b}},
		{[][]float64{{42, 7}}, []decision.Direction{b, c}},
	}
	for i, in := range inputs {
		res, err := critic.Run(in.rows, in.dirs)
		require.NoError(t, err, "input %d", i)
		assert.InDelta(t, 1.0, floats.Sum(res.Weights), 1e-12, "input %d", i)
		for j, w := range res.Weights {
			assert.GreaterOrEqual(t, w, 0.0, "input %d weight %d", i, j)
		}
		for a := range res.CorrelationMatrix {
			assert.Equal(t, 1.0, res.CorrelationMatrix[a][a])
			for k := range res.CorrelationMatrix {
				assert.Equal(t, res.CorrelationMatrix[a][k], res.CorrelationMatrix[k][a])
			}
		}
	}
}

func TestRun_SingleConstantCriterion(t *testing.T) {
	t.Parallel()

	res, err := critic.Run([][]float64{{7}, {7}, {7}}, []decision.Direction{b})
	require.NoError(t, err)

	assert.Equal(t, []float64{1}, res.Weights)
	assert.Equal(t, []float64{0}, res.StdDevs)
	assert.Equal(t, [][]float64{{1}}, res.CorrelationMatrix)
}

func TestRun_ZeroVarianceColumnCorrelatesZero(t *testing.T) {
	t.Parallel()

	res, err := critic.Run([][]float64{{5, 1}, {5, 2}, {5, 4}}, []decision.Direction{b, b})
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.CorrelationMatrix[0][1])
	assert.Equal(t, 0.0, res.InformationContent[0])
	assert.InDeltaSlice(t, []float64{0, 1}, res.Weights, tol)
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	dirs := []decision.Direction{c, b, b, b}
	first, err := critic.Run(laptops, dirs)
	require.NoError(t, err)
	second, err := critic.Run(laptops, dirs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 250.0, laptops[0][0], "input must not be mutated")
}

func TestRun_ShapeErrors(t *testing.T) {
	t.Parallel()

	_, err := critic.Run([][]float64{{1, 2}, {3}}, []decision.Direction{b, b})
	assert.ErrorIs(t, err, decision.ErrInputShape)

	_, err = critic.Run([][]float64{{1, 2}}, []decision.Direction{b})
	assert.ErrorIs(t, err, decision.ErrInputShape)

	_, err = critic.Run(nil, nil)
	assert.ErrorIs(t, err, decision.ErrInputShape)

	_, err = critic.Run([][]float64{{math.Inf(1), 2}}, []decision.Direction{b, b})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestInformationContent_ShapeMismatch(t *testing.T) {
	t.Parallel()

	corr, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = critic.InformationContent([]float64{1, 2, 3}, corr)
	assert.ErrorIs(t, err, decision.ErrInputShape)

	_, err = critic.InformationContent([]float64{1}, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestStages_Compose(t *testing.T) {
	t.Parallel()

	N, err := matrix.NewFromRows([][]float64{{0, 1}, {1, 0}, {0.5, 0.5}})
	require.NoError(t, err)

	stds, err := critic.StdDevs(N)
	require.NoError(t, err)
	corr, err := critic.Correlation(N)
	require.NoError(t, err)
	info, err := critic.InformationContent(stds, corr)
	require.NoError(t, err)

	// r = -1 → each criterion's conflict is 0 + 2.
	assert.InDeltaSlice(t, []float64{2 * stds[0], 2 * stds[1]}, info, tol)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, critic.Weights(info), tol)
}
