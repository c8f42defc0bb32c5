package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration      time.Duration
	Seed          int64
	PolygonPoints int

	// Results
	RandomDraws     Workload
	NoiseEvals      Workload
	Triangulations  Workload
	PointTransforms Workload

	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Workload struct {
	Operations int64
	Elapsed    time.Duration
	PerSecond  float64
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Math Stress Test Report

## Test Configuration
- **Duration per Workload:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Polygon Vertices:** {{.PolygonPoints}}

## Throughput
- **Random Draws:**     {{ops .RandomDraws}}
- **2D Noise Evals:**   {{ops .NoiseEvals}}
- **Triangulations:**   {{ops .Triangulations}}
- **Point Transforms:** {{ops .PointTransforms}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"ops": func(w Workload) string {
			return fmt.Sprintf("%d ops in %s (%.0f ops/sec)", w.Operations, w.Elapsed.Round(time.Millisecond), w.PerSecond)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
