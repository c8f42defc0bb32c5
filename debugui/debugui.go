// Package debugui provides immediate-mode Dear ImGui panels for inspecting
// the math layer at runtime: random generator state, noise fields, and
// transform matrices. Panels hold their own UI state and expose a Render
// method to call once per frame inside an active ImGui frame.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/lume/gmath"
)

// TransformInspector renders the affine coefficients of a transform and the
// image of a probe point, updating live as the transform mutates.
type TransformInspector struct {
	probeX float32
	probeY float32
}

func NewTransformInspector() *TransformInspector {
	return &TransformInspector{probeX: 1, probeY: 1}
}

func (ti *TransformInspector) Render(tr *gmath.Transform) {
	if !imgui.BeginV("Transform Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	a, b, c, d, tx, ty := tr.Matrix()
	imgui.Text(fmt.Sprintf("| %8.4f %8.4f %8.4f |", a, b, tx))
	imgui.Text(fmt.Sprintf("| %8.4f %8.4f %8.4f |", c, d, ty))

	det := a*d - b*c
	imgui.Text(fmt.Sprintf("Determinant: %.6f", det))
	if _, err := tr.Inverse(); err != nil {
		imgui.Text("Inverse: singular")
	} else {
		imgui.Text("Inverse: ok")
	}

	imgui.Separator()
	imgui.SliderFloat("Probe X", &ti.probeX, -100, 100)
	imgui.SliderFloat("Probe Y", &ti.probeY, -100, 100)

	px, py := tr.TransformPoint(float64(ti.probeX), float64(ti.probeY))
	imgui.Text(fmt.Sprintf("(%.2f, %.2f) -> (%.2f, %.2f)", ti.probeX, ti.probeY, px, py))

	imgui.End()
}
