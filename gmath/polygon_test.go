package gmath_test

import (
	"fmt"
	"testing"

	"github.com/plus3/lume/gmath"
	"github.com/stretchr/testify/assert"
)

func TestIsConvex(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
		want   bool
	}{
		{"unit square", []float64{0, 0, 1, 0, 1, 1, 0, 1}, true},
		{"clockwise square", []float64{0, 0, 0, 1, 1, 1, 1, 0}, true},
		{"triangle", []float64{0, 0, 4, 0, 2, 3}, true},
		{"square with collinear midpoint", []float64{0, 0, 1, 0, 2, 0, 2, 2, 0, 2}, true},
		{"L-shape", []float64{0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2}, false},
		{"self-intersecting bowtie", []float64{0, 0, 2, 2, 2, 0, 0, 2}, false},
		{"too few points", []float64{0, 0, 1, 1}, false},
		{"odd length", []float64{0, 0, 1, 0, 1}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gmath.IsConvex(tt.points...))
		})
	}
}

func TestTriangulateSquare(t *testing.T) {
	triangles, err := gmath.Triangulate(0, 0, 2, 0, 2, 2, 0, 2)
	assert.NoError(t, err)
	assert.Len(t, triangles, 2)

	var area float64
	for _, tri := range triangles {
		area += tri.Area()
	}
	assert.InDelta(t, 4.0, area, 1e-9)
}

func TestTriangulateConcave(t *testing.T) {
	// L-shape with area 3.
	points := []float64{0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2}

	triangles, err := gmath.Triangulate(points...)
	assert.NoError(t, err)
	assert.Len(t, triangles, 4)

	var area float64
	for _, tri := range triangles {
		area += tri.Area()
	}
	assert.InDelta(t, gmath.PolygonArea(points...), area, 1e-9)
}

func TestTriangulateTriangle(t *testing.T) {
	triangles, err := gmath.Triangulate(0, 0, 3, 0, 0, 4)
	assert.NoError(t, err)
	assert.Len(t, triangles, 1)
	assert.InDelta(t, 6.0, triangles[0].Area(), 1e-9)
}

func TestTriangulateClockwiseWinding(t *testing.T) {
	ccw, err := gmath.Triangulate(0, 0, 2, 0, 2, 2, 0, 2)
	assert.NoError(t, err)
	cw, err := gmath.Triangulate(0, 0, 0, 2, 2, 2, 2, 0)
	assert.NoError(t, err)

	var ccwArea, cwArea float64
	for i := range ccw {
		ccwArea += ccw[i].Area()
		cwArea += cw[i].Area()
	}
	assert.InDelta(t, ccwArea, cwArea, 1e-9)
}

func TestTriangulateToleratesCollinearVertex(t *testing.T) {
	// Square with a redundant midpoint on the bottom edge.
	triangles, err := gmath.Triangulate(0, 0, 1, 0, 2, 0, 2, 2, 0, 2)
	assert.NoError(t, err)

	var area float64
	for _, tri := range triangles {
		area += tri.Area()
	}
	assert.InDelta(t, 4.0, area, 1e-9)
}

func TestTriangulateInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
	}{
		{"empty", nil},
		{"single point", []float64{1, 1}},
		{"two points", []float64{0, 0, 1, 1}},
		{"odd length", []float64{0, 0, 1, 0, 1, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gmath.Triangulate(tt.points...)
			assert.ErrorIs(t, err, gmath.ErrInvalidArgument)
		})
	}
}

func TestTriangulateSelfIntersecting(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
	}{
		{"bowtie", []float64{0, 0, 2, 2, 2, 0, 0, 2}},
		{"crossed quad", []float64{0, 0, 2, 0, 0, 2, 2, 2}},
		{"five-point star outline", []float64{0, -2, 1.18, 1.62, -1.9, -0.62, 1.9, -0.62, -1.18, 1.62}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gmath.Triangulate(tt.points...)
			assert.ErrorIs(t, err, gmath.ErrInvalidArgument)
		})
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
	}{
		{"fully collinear", []float64{0, 0, 1, 0, 2, 0, 3, 0}},
		{"collinear triangle", []float64{0, 0, 1, 1, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gmath.Triangulate(tt.points...)
			assert.ErrorIs(t, err, gmath.ErrDegeneratePolygon)
		})
	}
}

func TestPolygonArea(t *testing.T) {
	assert.InDelta(t, 4.0, gmath.PolygonArea(0, 0, 2, 0, 2, 2, 0, 2), 1e-9)
	assert.InDelta(t, 6.0, gmath.PolygonArea(0, 0, 3, 0, 0, 4), 1e-9)
	assert.Equal(t, 0.0, gmath.PolygonArea(0, 0, 1, 1))
}

func TestTriangleArea(t *testing.T) {
	for _, tt := range []struct {
		tri  gmath.Triangle
		want float64
	}{
		{gmath.Triangle{0, 0, 3, 0, 0, 4}, 6},
		{gmath.Triangle{0, 0, 1, 1, 2, 2}, 0},
	} {
		t.Run(fmt.Sprintf("%v", tt.tri), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.tri.Area(), 1e-9)
		})
	}
}
