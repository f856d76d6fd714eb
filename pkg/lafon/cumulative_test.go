package lafon

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCumulativeLargeCorpus(t *testing.T) {
	c, err := Cumulative(296, 5, 61449, 1084, ExactEngine{})
	require.NoError(t, err)
	assert.InDelta(t, 0.576705764428563, c, 1e-12)

	comp, err := CumulativeComplement(296, 5, 61449, 1084, ExactEngine{})
	require.NoError(t, err)
	assert.InDelta(t, 0.42329423557143697, comp, 1e-12)
	assert.Equal(t, 1.0, c+comp)
}

func TestCumulativeLargeCorpusApprox(t *testing.T) {
	// Stirling's error on the small k! terms overshoots slightly
	c, err := Cumulative(296, 5, 61449, 1084, ApproxEngine{})
	require.NoError(t, err)
	assert.InDelta(t, 0.5767, c, 2e-2)
	assert.Greater(t, c, 0.5767)

	comp, err := CumulativeComplement(296, 5, 61449, 1084, ApproxEngine{})
	require.NoError(t, err)
	assert.InDelta(t, 0.4233, comp, 2e-2)
	assert.InDelta(t, 1.0, c+comp, 1e-15)
}

func TestCumulativePaper(t *testing.T) {
	cases := []struct {
		K    int
		want float64
	}{
		{0, 0},
		{1, 0.3},
		{2, 0.9},
		{3, 1},
	}
	for _, c := range cases {
		got, err := Cumulative(3, c.K, 5, 3, ExactEngine{})
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 1e-15, "K=%d", c.K)
	}
}

func TestCumulativeFullSupportIsOne(t *testing.T) {
	for _, c := range [][3]int{{3, 5, 3}, {7, 20, 9}, {40, 100, 25}} {
		f, T, s := c[0], c[1], c[2]
		got, err := Cumulative(f, MaxK(s, f), T, s, ExactEngine{})
		require.NoError(t, err)
		assert.Equal(t, 1.0, got, "f=%d T=%d t=%d", f, T, s)

		comp, err := CumulativeComplement(f, MaxK(s, f), T, s, ExactEngine{})
		require.NoError(t, err)
		assert.Equal(t, 0.0, comp)
	}
}

func TestCumulativeComplementIdentity(t *testing.T) {
	for _, engine := range []Engine{ExactEngine{}, ApproxEngine{}} {
		for K := 0; K <= MaxK(80, 50); K++ {
			c, err := Cumulative(50, K, 500, 80, engine)
			require.NoError(t, err)
			comp, err := CumulativeComplement(50, K, 500, 80, engine)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, c+comp, 1e-15, "%s K=%d", engine.Name(), K)
		}
	}
}

func TestCumulativeMonotone(t *testing.T) {
	prev := 0.0
	for K := 0; K <= 10; K++ {
		c, err := Cumulative(10, K, 1000, 100, ExactEngine{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c, prev)
		prev = c
	}
}

func TestCumulativeInvalid(t *testing.T) {
	_, err := Cumulative(3, 4, 5, 3, ExactEngine{})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Cumulative(3, -1, 5, 3, ExactEngine{})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Cumulative(6, 1, 5, 3, ApproxEngine{})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Cumulative(3, 1, 5, 3, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = CumulativeComplement(3, 4, 5, 3, ExactEngine{})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestCumulativeExactMatchesPointSum(t *testing.T) {
	for _, c := range [][3]int{{50, 500, 80}, {8, 10, 5}, {296, 61449, 1084}} {
		f, T, s := c[0], c[1], c[2]
		sum := new(big.Rat)
		for K := 0; K <= min(MaxK(s, f), 40); K++ {
			p, err := PointProbability(f, K, T, s)
			require.NoError(t, err)
			sum.Add(sum, p)
			want, _ := sum.Float64()

			got, err := Cumulative(f, K, T, s, ExactEngine{})
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-15, "f=%d K=%d T=%d t=%d", f, K, T, s)
		}
	}
}

func TestDistributionMatchesCumulative(t *testing.T) {
	for _, engine := range []Engine{ExactEngine{}, ApproxEngine{}} {
		var ks []int
		var last float64
		err := Distribution(50, 20, 500, 80, engine, func(k int, point, cum float64) {
			ks = append(ks, k)
			assert.GreaterOrEqual(t, point, 0.0)
			assert.GreaterOrEqual(t, cum, last)
			last = cum
		})
		require.NoError(t, err)
		assert.Len(t, ks, 21)
		assert.Equal(t, 0, ks[0])
		assert.Equal(t, 20, ks[20])

		c, err := Cumulative(50, 20, 500, 80, engine)
		require.NoError(t, err)
		assert.Equal(t, c, last, engine.Name())
	}
}

func TestDistributionPaper(t *testing.T) {
	var points []float64
	err := Distribution(3, 3, 5, 3, ExactEngine{}, func(k int, point, cum float64) {
		points = append(points, point)
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.3, 0.6, 0.1}, points)

	assert.ErrorIs(t, Distribution(3, 4, 5, 3, ExactEngine{}, func(int, float64, float64) {}), ErrInvalidParameter)
}
