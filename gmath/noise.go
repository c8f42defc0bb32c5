package gmath

import (
	"fmt"
	"math"
)

// Simplex noise over 1-4 dimensions, after Gustavson's SimplexNoise1234.
// The permutation table is fixed, so every call is bit-deterministic: the
// same coordinates always produce the same value, across processes.

var perm = [512]uint8{}

// Ken Perlin's reference permutation, repeated once to avoid index wrapping.
var permBase = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

func init() {
	for i := 0; i < 512; i++ {
		perm[i] = permBase[i&255]
	}
}

func grad1(hash uint8, x float64) float64 {
	h := hash & 15
	grad := 1.0 + float64(h&7)
	if h&8 != 0 {
		grad = -grad
	}
	return grad * x
}

func grad2(hash uint8, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -2 * v
	} else {
		v = 2 * v
	}
	return u + v
}

func grad3(hash uint8, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := z
	if h < 4 {
		v = y
	} else if h == 12 || h == 14 {
		v = x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

func grad4(hash uint8, x, y, z, w float64) float64 {
	h := hash & 31
	u := x
	if h >= 24 {
		u = y
	}
	v := y
	if h >= 16 {
		v = z
	}
	s := z
	if h >= 8 {
		s = w
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	if h&4 != 0 {
		s = -s
	}
	return u + v + s
}

// Noise1 evaluates 1D simplex noise at x, returning a value in [0, 1].
func Noise1(x float64) float64 {
	i0 := int(math.Floor(x))
	i1 := i0 + 1
	x0 := x - float64(i0)
	x1 := x0 - 1

	t0 := 1 - x0*x0
	t0 *= t0
	n0 := t0 * t0 * grad1(perm[i0&255], x0)

	t1 := 1 - x1*x1
	t1 *= t1
	n1 := t1 * t1 * grad1(perm[i1&255], x1)

	// 0.395 scales the result into [-1, 1].
	return 0.5 * (0.395*(n0+n1) + 1)
}

// Noise2 evaluates 2D simplex noise at (x, y), returning a value in [0, 1].
func Noise2(x, y float64) float64 {
	const f2 = 0.36602540378443864 // (sqrt(3)-1)/2
	const g2 = 0.21132486540518713 // (3-sqrt(3))/6

	s := (x + y) * f2
	i := int(math.Floor(x + s))
	j := int(math.Floor(y + s))

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Which of the two triangles of the unit square are we in?
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := i & 255
	jj := j & 255

	var n0, n1, n2 float64
	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad2(perm[ii+int(perm[jj])], x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad2(perm[ii+i1+int(perm[jj+j1])], x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad2(perm[ii+1+int(perm[jj+1])], x2, y2)
	}

	return 0.5 * (40*(n0+n1+n2) + 1)
}

// Noise3 evaluates 3D simplex noise at (x, y, z), returning a value in [0, 1].
func Noise3(x, y, z float64) float64 {
	const f3 = 1.0 / 3.0
	const g3 = 1.0 / 6.0

	s := (x + y + z) * f3
	i := int(math.Floor(x + s))
	j := int(math.Floor(y + s))
	k := int(math.Floor(z + s))

	t := float64(i+j+k) * g3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Rank the offsets to pick the simplex (one of six tetrahedra).
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := i & 255
	jj := j & 255
	kk := k & 255

	var n0, n1, n2, n3 float64
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad3(perm[ii+int(perm[jj+int(perm[kk])])], x0, y0, z0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad3(perm[ii+i1+int(perm[jj+j1+int(perm[kk+k1])])], x1, y1, z1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad3(perm[ii+i2+int(perm[jj+j2+int(perm[kk+k2])])], x2, y2, z2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		t3 *= t3
		n3 = t3 * t3 * grad3(perm[ii+1+int(perm[jj+1+int(perm[kk+1])])], x3, y3, z3)
	}

	return 0.5 * (32*(n0+n1+n2+n3) + 1)
}

// Noise4 evaluates 4D simplex noise at (x, y, z, w), returning a value in [0, 1].
func Noise4(x, y, z, w float64) float64 {
	const f4 = 0.30901699437494745 // (sqrt(5)-1)/4
	const g4 = 0.1381966011250105  // (5-sqrt(5))/20

	s := (x + y + z + w) * f4
	i := int(math.Floor(x + s))
	j := int(math.Floor(y + s))
	k := int(math.Floor(z + s))
	l := int(math.Floor(w + s))

	t := float64(i+j+k+l) * g4
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)
	w0 := w - (float64(l) - t)

	// Rank the coordinates pairwise; the ranks order the simplex traversal.
	var rankX, rankY, rankZ, rankW int
	if x0 > y0 {
		rankX++
	} else {
		rankY++
	}
	if x0 > z0 {
		rankX++
	} else {
		rankZ++
	}
	if x0 > w0 {
		rankX++
	} else {
		rankW++
	}
	if y0 > z0 {
		rankY++
	} else {
		rankZ++
	}
	if y0 > w0 {
		rankY++
	} else {
		rankW++
	}
	if z0 > w0 {
		rankZ++
	} else {
		rankW++
	}

	step := func(rank, threshold int) int {
		if rank >= threshold {
			return 1
		}
		return 0
	}
	i1, j1, k1, l1 := step(rankX, 3), step(rankY, 3), step(rankZ, 3), step(rankW, 3)
	i2, j2, k2, l2 := step(rankX, 2), step(rankY, 2), step(rankZ, 2), step(rankW, 2)
	i3, j3, k3, l3 := step(rankX, 1), step(rankY, 1), step(rankZ, 1), step(rankW, 1)

	x1 := x0 - float64(i1) + g4
	y1 := y0 - float64(j1) + g4
	z1 := z0 - float64(k1) + g4
	w1 := w0 - float64(l1) + g4
	x2 := x0 - float64(i2) + 2*g4
	y2 := y0 - float64(j2) + 2*g4
	z2 := z0 - float64(k2) + 2*g4
	w2 := w0 - float64(l2) + 2*g4
	x3 := x0 - float64(i3) + 3*g4
	y3 := y0 - float64(j3) + 3*g4
	z3 := z0 - float64(k3) + 3*g4
	w3 := w0 - float64(l3) + 3*g4
	x4 := x0 - 1 + 4*g4
	y4 := y0 - 1 + 4*g4
	z4 := z0 - 1 + 4*g4
	w4 := w0 - 1 + 4*g4

	ii := i & 255
	jj := j & 255
	kk := k & 255
	ll := l & 255

	var n0, n1, n2, n3, n4 float64
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0 - w0*w0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad4(perm[ii+int(perm[jj+int(perm[kk+int(perm[ll])])])], x0, y0, z0, w0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1 - w1*w1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad4(perm[ii+i1+int(perm[jj+j1+int(perm[kk+k1+int(perm[ll+l1])])])], x1, y1, z1, w1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2 - w2*w2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad4(perm[ii+i2+int(perm[jj+j2+int(perm[kk+k2+int(perm[ll+l2])])])], x2, y2, z2, w2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3 - w3*w3; t3 > 0 {
		t3 *= t3
		n3 = t3 * t3 * grad4(perm[ii+i3+int(perm[jj+j3+int(perm[kk+k3+int(perm[ll+l3])])])], x3, y3, z3, w3)
	}
	if t4 := 0.6 - x4*x4 - y4*y4 - z4*z4 - w4*w4; t4 > 0 {
		t4 *= t4
		n4 = t4 * t4 * grad4(perm[ii+1+int(perm[jj+1+int(perm[kk+1+int(perm[ll+1])])])], x4, y4, z4, w4)
	}

	return 0.5 * (27*(n0+n1+n2+n3+n4) + 1)
}

// Noise evaluates simplex noise over 1 to 4 coordinates.
// It fails with ErrInvalidArgument for any other argument count.
func Noise(coords ...float64) (float64, error) {
	switch len(coords) {
	case 1:
		return Noise1(coords[0]), nil
	case 2:
		return Noise2(coords[0], coords[1]), nil
	case 3:
		return Noise3(coords[0], coords[1], coords[2]), nil
	case 4:
		return Noise4(coords[0], coords[1], coords[2], coords[3]), nil
	default:
		return 0, fmt.Errorf("noise takes 1 to 4 coordinates, got %d: %w", len(coords), ErrInvalidArgument)
	}
}
