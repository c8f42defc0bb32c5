package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/lume/gmath"
)

const histogramBuckets = 32

// RandomInspector renders a generator's seed and state plus a live histogram
// of its output, which should stay flat for a healthy uniform source.
type RandomInspector struct {
	buckets    [histogramBuckets]float32
	totalDraws int
	drawsPer   int32

	capturedState string
}

func NewRandomInspector() *RandomInspector {
	return &RandomInspector{drawsPer: 256}
}

func (ri *RandomInspector) Render(g *gmath.RandomGenerator) {
	if !imgui.BeginV("Random Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	low, high := g.Seed()
	imgui.Text(fmt.Sprintf("Seed: low=%d high=%d", low, high))
	imgui.Text(fmt.Sprintf("State: %s", g.State()))

	imgui.Separator()
	imgui.SliderInt("Draws/frame", &ri.drawsPer, 0, 4096)
	for i := int32(0); i < ri.drawsPer; i++ {
		bucket := int(g.Random() * histogramBuckets)
		ri.buckets[bucket]++
		ri.totalDraws++
	}

	imgui.Text(fmt.Sprintf("Total draws: %d", ri.totalDraws))
	imgui.PlotHistogramFloatPtr("##uniform", &ri.buckets[0], int32(histogramBuckets))

	imgui.Separator()
	if imgui.Button("Capture state") {
		ri.capturedState = g.State()
	}
	if ri.capturedState != "" {
		imgui.SameLine()
		if imgui.Button("Restore state") {
			// The token came from State, so restore cannot fail.
			_ = g.SetState(ri.capturedState)
		}
		imgui.Text(fmt.Sprintf("Captured: %s", ri.capturedState))
	}

	if imgui.Button("Reset histogram") {
		ri.buckets = [histogramBuckets]float32{}
		ri.totalDraws = 0
	}

	imgui.End()
}
