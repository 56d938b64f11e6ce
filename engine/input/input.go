package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hollowglade/arcade/engine/geom"
	"github.com/hollowglade/arcade/engine/sim"
)

// State tracks keyboard and pointer state per frame and turns it into
// player intent. It only ever produces velocity direction and aim; the
// simulation owns everything else.
type State struct {
	MouseX, MouseY  int
	LeftJustPressed bool

	move geom.Vec2
	aim  geom.Vec2
}

func NewState() *State {
	return &State{}
}

// Update polls the host input once per frame. playerSX/playerSY is the
// player's projected screen position; aim is the normalized vector from it
// to the pointer.
func (s *State) Update(playerSX, playerSY float64) {
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	// Opposite keys cancel out.
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		dy++
	}
	s.move = geom.Vec2{X: dx, Y: dy}.Norm()

	s.aim = geom.Vec2{
		X: float64(s.MouseX) - playerSX,
		Y: float64(s.MouseY) - playerSY,
	}.Norm()
}

// Intent returns the simulation input for this frame.
func (s *State) Intent() sim.Input {
	return sim.Input{Move: s.move, Aim: s.aim}
}

// AnyKeyJustPressed reports a fresh keypress of any bound key, used to
// leave the idle screen.
func (s *State) AnyKeyJustPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}
