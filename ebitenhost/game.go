// Package ebitenhost runs an fgui Stage inside an Ebitengine game loop.
//
// The host reads the mouse and touches each tick and feeds them to
// [fgui.Stage.HandlePointer]. It draws nothing of the UI itself; with
// RunConfig.DebugDraw set it outlines touchable node bounds.
//
//	stage := fgui.NewStage(fgui.DefaultUIConfig())
//	// ... build the tree ...
//	if err := ebitenhost.Run(stage, ebitenhost.RunConfig{
//		Title: "Demo", Width: 640, Height: 480,
//	}); err != nil {
//		log.Fatal(err)
//	}
package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/fgui"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS is the tick rate. Zero means ebiten.DefaultTPS.
	TPS int
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool
	// DebugDraw outlines the bounds of every visible node.
	DebugDraw bool
	// ClearColor fills the screen each frame. Nil leaves it black.
	ClearColor color.Color
	// OnUpdate is called once per tick after input has been dispatched.
	OnUpdate func(dt float64) error
}

// Game implements ebiten.Game for a Stage.
type Game struct {
	stage *fgui.Stage
	cfg   RunConfig
	input InputSource
	dt    float64

	slots    touchSlots
	touchBuf []Touch
	pixel    *ebiten.Image
}

// NewGame creates a game reading devices through ebiten. The process-wide
// event context pool is reset.
func NewGame(stage *fgui.Stage, cfg RunConfig) *Game {
	return NewGameWithInput(stage, cfg, &EbitenInput{})
}

// NewGameWithInput is NewGame with a custom input source.
func NewGameWithInput(stage *fgui.Stage, cfg RunConfig, input InputSource) *Game {
	fgui.ResetContextPool()
	tps := cfg.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &Game{
		stage: stage,
		cfg:   cfg,
		input: input,
		dt:    1.0 / float64(tps),
	}
}

// Stage returns the hosted stage.
func (g *Game) Stage() *fgui.Stage {
	return g.stage
}

// Update advances the stage and dispatches device input. Injected input
// replaces device input for the frames it is queued.
func (g *Game) Update() error {
	if !g.stage.Update(g.dt) {
		mods := g.input.Modifiers()
		g.pollMouse(mods)
		g.pollTouches(mods)
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate(g.dt)
	}
	return nil
}

// Draw clears the screen and draws the optional debug overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != nil {
		screen.Fill(g.cfg.ClearColor)
	}
	if g.cfg.DebugDraw {
		g.drawBounds(screen, g.stage.Root())
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout returns the configured size, or the outside size when none is set.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		return g.cfg.Width, g.cfg.Height
	}
	return outsideWidth, outsideHeight
}

var boundsColor = color.RGBA{R: 0x40, G: 0xc0, B: 0xff, A: 0x50}

// drawBounds fills the root-space bounding box of each visible sized node.
func (g *Game) drawBounds(screen *ebiten.Image, n *fgui.Node) {
	if !n.Visible {
		return
	}
	if n.Width > 0 && n.Height > 0 {
		if g.pixel == nil {
			g.pixel = ebiten.NewImage(1, 1)
			g.pixel.Fill(color.White)
		}
		r := n.GlobalBounds()
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(r.Width, r.Height)
		op.GeoM.Translate(r.X, r.Y)
		op.ColorScale.ScaleWithColor(boundsColor)
		screen.DrawImage(g.pixel, &op)
	}
	for _, c := range n.Children() {
		g.drawBounds(screen, c)
	}
}

// Run creates a window and runs the stage until the window closes or
// OnUpdate returns an error.
func Run(stage *fgui.Stage, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(NewGame(stage, cfg))
}
