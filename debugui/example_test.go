package debugui_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/lume/debugui"
	"github.com/plus3/lume/gmath"
)

// Game implements ebiten.Game and renders the math inspector panels on top
// of the game content.
type Game struct {
	backend *ebitenbackend.EbitenBackend

	rng       *gmath.RandomGenerator
	transform *gmath.Transform

	randomInspector    *debugui.RandomInspector
	noisePreview       *debugui.NoisePreview
	transformInspector *debugui.TransformInspector
}

func (g *Game) Update() error {
	g.backend.BeginFrame()

	g.randomInspector.Render(g.rng)
	g.noisePreview.Render(1.0 / 60.0)
	g.transformInspector.Render(g.transform)

	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content first, then the ImGui overlay.
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("Math Inspector Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	game := &Game{
		backend:            backend,
		rng:                gmath.NewRandomGenerator(),
		transform:          gmath.NewTransform().Translate(100, 50).Rotate(0.5),
		randomInspector:    debugui.NewRandomInspector(),
		noisePreview:       debugui.NewNoisePreview(),
		transformInspector: debugui.NewTransformInspector(),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
