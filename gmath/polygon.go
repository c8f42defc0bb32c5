package gmath

import (
	"fmt"
	"math"
)

// collinearEps absorbs floating-point wobble when testing edge cross
// products for sign flips.
const collinearEps = 1e-9

// Triangle is a flat coordinate sequence (x1, y1, x2, y2, x3, y3).
type Triangle [6]float64

// Area returns the triangle's unsigned area.
func (t Triangle) Area() float64 {
	return math.Abs(cross(t[2]-t[0], t[3]-t[1], t[4]-t[0], t[5]-t[1])) / 2
}

func cross(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}

// IsConvex reports whether the flat coordinate sequence describes a convex
// simple polygon. It returns false for fewer than 3 points, for odd-length
// input, and whenever consecutive edge cross products disagree in sign.
// Collinear triples are tolerated.
func IsConvex(points ...float64) bool {
	if len(points) < 6 || len(points)%2 != 0 {
		return false
	}

	n := len(points) / 2
	sign := 0.0
	for i := 0; i < n; i++ {
		ax, ay := points[2*i], points[2*i+1]
		bx, by := points[2*((i+1)%n)], points[2*((i+1)%n)+1]
		cx, cy := points[2*((i+2)%n)], points[2*((i+2)%n)+1]

		c := cross(bx-ax, by-ay, cx-bx, cy-by)
		if math.Abs(c) <= collinearEps {
			continue
		}
		if sign == 0 {
			sign = c
		} else if (c > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// polygonSignedArea is positive for counter-clockwise winding.
func polygonSignedArea(points []float64) float64 {
	n := len(points) / 2
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[2*i]*points[2*j+1] - points[2*j]*points[2*i+1]
	}
	return area / 2
}

// PolygonArea returns the unsigned area of a simple polygon given as a flat
// coordinate sequence.
func PolygonArea(points ...float64) float64 {
	if len(points) < 6 || len(points)%2 != 0 {
		return 0
	}
	return math.Abs(polygonSignedArea(points))
}

// pointInTriangle uses barycentric sign tests; points exactly on an edge
// count as outside so shared vertices do not block ears.
func pointInTriangle(px, py, ax, ay, bx, by, cx, cy float64) bool {
	d1 := cross(bx-ax, by-ay, px-ax, py-ay)
	d2 := cross(cx-bx, cy-by, px-bx, py-by)
	d3 := cross(ax-cx, ay-cy, px-cx, py-cy)

	hasNeg := d1 < -collinearEps || d2 < -collinearEps || d3 < -collinearEps
	hasPos := d1 > collinearEps || d2 > collinearEps || d3 > collinearEps
	return !(hasNeg && hasPos)
}

// segmentsCross reports whether two segments properly cross, meaning each
// straddles the other's supporting line. Shared endpoints and collinear
// touches do not count; those belong to the ear loop's degeneracy handling.
func segmentsCross(ax, ay, bx, by, cx, cy, dx, dy float64) bool {
	d1 := cross(dx-cx, dy-cy, ax-cx, ay-cy)
	d2 := cross(dx-cx, dy-cy, bx-cx, by-cy)
	d3 := cross(bx-ax, by-ay, cx-ax, cy-ay)
	d4 := cross(bx-ax, by-ay, dx-ax, dy-ay)

	straddles := func(p, q float64) bool {
		return (p > collinearEps && q < -collinearEps) || (p < -collinearEps && q > collinearEps)
	}
	return straddles(d1, d2) && straddles(d3, d4)
}

// selfIntersects tests every pair of non-adjacent edges for a proper
// crossing.
func selfIntersects(points []float64) bool {
	n := len(points) / 2
	for i := 0; i < n; i++ {
		i2 := (i + 1) % n
		for j := i + 1; j < n; j++ {
			j2 := (j + 1) % n
			// Skip edges sharing a vertex.
			if i == j || i2 == j || j2 == i {
				continue
			}
			if segmentsCross(
				points[2*i], points[2*i+1], points[2*i2], points[2*i2+1],
				points[2*j], points[2*j+1], points[2*j2], points[2*j2+1],
			) {
				return true
			}
		}
	}
	return false
}

// Triangulate decomposes a simple polygon, given as a flat coordinate
// sequence, into non-overlapping triangles covering the same region, using
// ear clipping. Triangle order follows the clipping traversal, not input
// winding. It fails with ErrInvalidArgument for malformed or
// self-intersecting input and ErrDegeneratePolygon when a full pass over
// the remaining vertices yields no ear (fully collinear input).
func Triangulate(points ...float64) ([]Triangle, error) {
	if len(points)%2 != 0 {
		return nil, fmt.Errorf("coordinate sequence has odd length %d: %w", len(points), ErrInvalidArgument)
	}
	if len(points) < 6 {
		return nil, fmt.Errorf("polygon needs at least 3 points, got %d: %w", len(points)/2, ErrInvalidArgument)
	}
	if selfIntersects(points) {
		return nil, fmt.Errorf("polygon self-intersects: %w", ErrInvalidArgument)
	}

	n := len(points) / 2
	// Remaining vertex indices, in winding order.
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	ccw := polygonSignedArea(points) >= 0

	vertex := func(idx int) (float64, float64) {
		return points[2*idx], points[2*idx+1]
	}

	isEar := func(pos int) bool {
		prev := indices[(pos-1+len(indices))%len(indices)]
		curr := indices[pos]
		next := indices[(pos+1)%len(indices)]

		ax, ay := vertex(prev)
		bx, by := vertex(curr)
		cx, cy := vertex(next)

		c := cross(bx-ax, by-ay, cx-bx, cy-by)
		if ccw && c <= collinearEps {
			return false
		}
		if !ccw && c >= -collinearEps {
			return false
		}

		for _, other := range indices {
			if other == prev || other == curr || other == next {
				continue
			}
			px, py := vertex(other)
			if pointInTriangle(px, py, ax, ay, bx, by, cx, cy) {
				return false
			}
		}
		return true
	}

	triangles := make([]Triangle, 0, n-2)
	for len(indices) > 3 {
		clipped := false
		for pos := 0; pos < len(indices); pos++ {
			if !isEar(pos) {
				continue
			}
			prev := indices[(pos-1+len(indices))%len(indices)]
			curr := indices[pos]
			next := indices[(pos+1)%len(indices)]

			ax, ay := vertex(prev)
			bx, by := vertex(curr)
			cx, cy := vertex(next)
			triangles = append(triangles, Triangle{ax, ay, bx, by, cx, cy})

			indices = append(indices[:pos], indices[pos+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, fmt.Errorf("no ear found with %d vertices remaining: %w", len(indices), ErrDegeneratePolygon)
		}
	}

	ax, ay := vertex(indices[0])
	bx, by := vertex(indices[1])
	cx, cy := vertex(indices[2])
	final := Triangle{ax, ay, bx, by, cx, cy}
	if final.Area() > collinearEps {
		triangles = append(triangles, final)
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("polygon is fully collinear: %w", ErrDegeneratePolygon)
	}
	return triangles, nil
}
