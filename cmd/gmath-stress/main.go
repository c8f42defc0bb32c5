package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/lume/gmath"
)

func main() {
	duration := flag.Duration("duration", 5*time.Second, "The duration to run each workload for.")
	seed := flag.Int64("seed", 42, "Seed for the random generator workload and polygon generation.")
	polygonPoints := flag.Int("polygon-points", 64, "Vertex count for the triangulation workload.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting math stress test...")

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		PolygonPoints:  *polygonPoints,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	g, err := gmath.NewRandomGeneratorSeeded(*seed)
	if err != nil {
		log.Fatalf("Failed to seed generator: %v", err)
	}

	log.Printf("Running random draws for %s...\n", *duration)
	report.RandomDraws = runWorkload(*duration, func() {
		g.Random()
	})

	log.Printf("Running 2D noise evaluations for %s...\n", *duration)
	var nx float64
	report.NoiseEvals = runWorkload(*duration, func() {
		gmath.Noise2(nx, nx*0.5)
		nx += 0.01
	})

	log.Printf("Running triangulations for %s...\n", *duration)
	polygon := starPolygon(g, *polygonPoints)
	report.Triangulations = runWorkload(*duration, func() {
		if _, err := gmath.Triangulate(polygon...); err != nil {
			log.Fatalf("Triangulation failed: %v", err)
		}
	})

	log.Printf("Running point transforms for %s...\n", *duration)
	tr := gmath.NewTransformWith(3, 4, 0.7, 2, 1.5, 0.5, 0.25, 0.1, 0.2)
	var px float64
	report.PointTransforms = runWorkload(*duration, func() {
		tr.TransformPoint(px, px*2)
		px += 0.125
	})

	runtime.ReadMemStats(&report.MemStatsEnd)
	log.Println("Workloads finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// runWorkload invokes fn in a tight loop for the given duration, checking
// the clock once per batch to keep timer overhead out of the measurement.
func runWorkload(duration time.Duration, fn func()) Workload {
	const batch = 1024

	var ops int64
	start := time.Now()
	for {
		for i := 0; i < batch; i++ {
			fn()
		}
		ops += batch
		if time.Since(start) >= duration {
			break
		}
	}
	elapsed := time.Since(start)

	return Workload{
		Operations: ops,
		Elapsed:    elapsed,
		PerSecond:  float64(ops) / elapsed.Seconds(),
	}
}

// starPolygon builds a non-convex star-shaped polygon with jittered radii.
// Star polygons are simple by construction, so triangulation always
// succeeds while exercising the concave-vertex paths.
func starPolygon(g *gmath.RandomGenerator, points int) []float64 {
	polygon := make([]float64, 0, points*2)
	for i := 0; i < points; i++ {
		angle := 2 * 3.141592653589793 * float64(i) / float64(points)
		radius := 10.0
		if i%2 == 0 {
			radius = 20.0
		}
		radius += g.Random() * 2

		tr := gmath.NewTransform().Rotate(angle)
		x, y := tr.TransformPoint(radius, 0)
		polygon = append(polygon, x, y)
	}
	return polygon
}
