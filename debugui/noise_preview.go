package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/lume/gmath"
)

const noiseSamples = 256

// NoisePreview plots a 1D slice through the noise field, with adjustable
// frequency and a scrolling offset along a second axis to animate it.
type NoisePreview struct {
	samples   [noiseSamples]float32
	frequency float32
	offset    float32
	animate   bool
}

func NewNoisePreview() *NoisePreview {
	return &NoisePreview{frequency: 0.05, animate: true}
}

func (np *NoisePreview) Render(deltaTime float32) {
	if !imgui.BeginV("Noise Preview", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.SliderFloat("Frequency", &np.frequency, 0.001, 0.5)
	imgui.Checkbox("Animate", &np.animate)
	if np.animate {
		np.offset += deltaTime
	}

	for i := 0; i < noiseSamples; i++ {
		x := float64(i) * float64(np.frequency)
		np.samples[i] = float32(gmath.Noise2(x, float64(np.offset)))
	}

	imgui.PlotLinesFloatPtr("##noise", &np.samples[0], int32(noiseSamples))
	imgui.Text(fmt.Sprintf("Offset: %.2f", np.offset))

	imgui.End()
}
