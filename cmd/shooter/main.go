package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hollowglade/arcade/engine/core"
	"github.com/hollowglade/arcade/engine/geom"
	"github.com/hollowglade/arcade/engine/input"
	"github.com/hollowglade/arcade/engine/render"
	"github.com/hollowglade/arcade/engine/save"
	"github.com/hollowglade/arcade/engine/sim"
)

// Game implements ebiten.Game: one simulation tick per frame while the run
// is in the Running phase, a redraw every frame regardless.
type Game struct {
	state    *sim.State
	bus      *core.EventBus
	in       *input.State
	clock    *core.FrameClock
	renderer *render.Renderer
	overlay  *render.Overlay
	store    *save.Store

	prevPhase core.Phase
}

func NewGame() *Game {
	bus := core.NewEventBus()
	sprites := render.NewSprites()

	g := &Game{
		state:    sim.New(bus, time.Now().UnixNano()),
		bus:      bus,
		in:       input.NewState(),
		clock:    core.NewFrameClock(),
		renderer: render.NewRenderer(sprites),
		overlay:  render.NewOverlay(sprites),
	}

	path, err := save.DefaultPath()
	if err == nil {
		g.store, err = save.Open(path)
	}
	if err != nil {
		log.Printf("gold counter will not persist: %v", err)
	}
	if g.store != nil {
		g.state.Gold = g.store.Gold()
		bus.On(core.EvtDropCollected, func(core.Event) {
			g.store.Add(1)
		})
	}

	return g
}

func (g *Game) Update() error {
	g.renderer.Sprites.Poll()
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.renderer.Debug = !g.renderer.Debug
	}

	px, py, _ := geom.Project(g.state.Player.Pos.X, g.state.Player.Pos.Y)
	g.in.Update(px, py)

	switch g.state.Phase {
	case core.PhaseIdle:
		if g.in.AnyKeyJustPressed() || g.in.LeftJustPressed {
			g.state.Start()
			g.clock.Reset()
		}

	case core.PhaseRunning:
		g.state.Step(g.in.Intent(), g.clock.Tick())

	case core.PhasePerkChoice:
		if i := g.overlay.Hit(g.in.MouseX, g.in.MouseY, g.in.LeftJustPressed); i >= 0 {
			g.state.ApplyPerk(g.state.Choices[i].ID)
			g.clock.Reset()
		}

	case core.PhaseGameOver:
		if i := g.overlay.Hit(g.in.MouseX, g.in.MouseY, g.in.LeftJustPressed); i >= 0 {
			g.state.Reset()
		}
	}

	if g.state.Phase != g.prevPhase {
		switch g.state.Phase {
		case core.PhasePerkChoice:
			g.overlay.LayoutPerks(g.state.Choices)
		case core.PhaseGameOver:
			g.overlay.LayoutGameOver()
		}
		g.prevPhase = g.state.Phase
	}

	g.bus.Dispatch()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state)

	switch g.state.Phase {
	case core.PhaseIdle:
		g.overlay.DrawIdle(screen)
	case core.PhasePerkChoice:
		g.overlay.DrawPerkPrompt(screen)
	case core.PhaseGameOver:
		g.overlay.DrawGameOver(screen, g.state)
	}
}

// Layout fixes the logical canvas size; ebiten scales it to the window and
// keeps the backing store bounded on high-density displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return geom.ScreenWidth, geom.ScreenHeight
}

func main() {
	ebiten.SetWindowSize(geom.ScreenWidth, geom.ScreenHeight)
	ebiten.SetWindowTitle("Glade Warden")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	game := NewGame()
	defer func() {
		if game.store != nil {
			game.store.Close()
		}
	}()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
