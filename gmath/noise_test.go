package gmath_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/plus3/lume/gmath"
	"github.com/stretchr/testify/assert"
)

func TestNoiseDeterministic(t *testing.T) {
	coords := [][]float64{
		{0.5},
		{1.25, -3.75},
		{0.1, 0.2, 0.3},
		{10.5, -2.25, 7.125, 0.0625},
	}

	for _, c := range coords {
		t.Run(fmt.Sprintf("dims=%d", len(c)), func(t *testing.T) {
			first, err := gmath.Noise(c...)
			assert.NoError(t, err)
			for i := 0; i < 100; i++ {
				again, err := gmath.Noise(c...)
				assert.NoError(t, err)
				assert.Equal(t, first, again)
			}
		})
	}
}

func TestNoiseRange(t *testing.T) {
	for i := 0; i < 5000; i++ {
		x := float64(i)*0.137 - 300
		y := float64(i)*0.291 + 17
		z := float64(i) * 0.073
		w := float64(i)*-0.051 + 2

		for _, v := range []float64{
			gmath.Noise1(x),
			gmath.Noise2(x, y),
			gmath.Noise3(x, y, z),
			gmath.Noise4(x, y, z, w),
		} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestNoiseContinuity(t *testing.T) {
	// Nearby inputs produce nearby outputs; a jump would indicate a seam
	// between simplex cells.
	const step = 1e-4
	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.31
		assert.InDelta(t, gmath.Noise2(x, x/2), gmath.Noise2(x+step, x/2), 0.01)
		assert.InDelta(t, gmath.Noise3(x, x/2, x/3), gmath.Noise3(x+step, x/2, x/3), 0.01)
	}
}

func TestNoiseNotConstant(t *testing.T) {
	var min1, max1 = math.Inf(1), math.Inf(-1)
	for i := 0; i < 1000; i++ {
		v := gmath.Noise1(float64(i) * 0.471)
		min1 = math.Min(min1, v)
		max1 = math.Max(max1, v)
	}
	assert.Greater(t, max1-min1, 0.1)
}

func TestNoiseArgumentCount(t *testing.T) {
	_, err := gmath.Noise()
	assert.ErrorIs(t, err, gmath.ErrInvalidArgument)

	_, err = gmath.Noise(1, 2, 3, 4, 5)
	assert.ErrorIs(t, err, gmath.ErrInvalidArgument)
}
