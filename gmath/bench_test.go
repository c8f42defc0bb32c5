package gmath_test

import (
	"testing"

	"github.com/plus3/lume/gmath"
)

func BenchmarkRandom(b *testing.B) {
	g := gmath.NewRandomGenerator()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Random()
	}
}

func BenchmarkRandomNormal(b *testing.B) {
	g := gmath.NewRandomGenerator()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.RandomNormal(1, 0)
	}
}

func BenchmarkDefaultRandom(b *testing.B) {
	for i := 0; i < b.N; i++ {
		gmath.Random()
	}
}

func BenchmarkNoise1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		gmath.Noise1(float64(i) * 0.01)
	}
}

func BenchmarkNoise2(b *testing.B) {
	for i := 0; i < b.N; i++ {
		gmath.Noise2(float64(i)*0.01, 3.7)
	}
}

func BenchmarkNoise4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		gmath.Noise4(float64(i)*0.01, 3.7, 1.1, 9.4)
	}
}

func BenchmarkTriangulateSquare(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = gmath.Triangulate(0, 0, 2, 0, 2, 2, 0, 2)
	}
}

func BenchmarkTriangulateConcave(b *testing.B) {
	points := []float64{0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gmath.Triangulate(points...)
	}
}

func BenchmarkTransformPoint(b *testing.B) {
	tr := gmath.NewTransformWith(3, 4, 0.7, 2, 1.5, 0.5, 0.25, 0.1, 0.2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.TransformPoint(float64(i), 2)
	}
}
