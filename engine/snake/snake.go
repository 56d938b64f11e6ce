// Package snake is a self-contained grid snake game. It shares no code
// with the shooter simulation on purpose: the two games only meet at the
// ebiten wiring layer.
package snake

import "math/rand"

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Dir is a movement direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

func (d Dir) opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	}
	return DirLeft
}

func (d Dir) delta() Cell {
	switch d {
	case DirUp:
		return Cell{0, -1}
	case DirDown:
		return Cell{0, 1}
	case DirLeft:
		return Cell{-1, 0}
	}
	return Cell{1, 0}
}

// Game is one snake round on a W×H grid. Body is head-first.
type Game struct {
	W, H  int
	Body  []Cell
	Food  Cell
	Score int
	Over  bool

	dir     Dir
	nextDir Dir
	growth  int
	rng     *rand.Rand
}

const growthPerFood = 2

// New starts a round with a three-segment snake heading right from the
// grid center.
func New(w, h int, seed int64) *Game {
	g := &Game{
		W:       w,
		H:       h,
		dir:     DirRight,
		nextDir: DirRight,
		rng:     rand.New(rand.NewSource(seed)),
	}
	cx, cy := w/2, h/2
	g.Body = []Cell{{cx, cy}, {cx - 1, cy}, {cx - 2, cy}}
	g.placeFood()
	return g
}

// Turn requests a direction change for the next step. Reversing straight
// into the neck is rejected.
func (g *Game) Turn(d Dir) {
	if d == g.dir.opposite() {
		return
	}
	g.nextDir = d
}

// Step advances the snake one cell. Hitting a wall or the body ends the
// round; eating food grows the snake and respawns the food off-body.
func (g *Game) Step() {
	if g.Over {
		return
	}
	g.dir = g.nextDir
	d := g.dir.delta()
	head := Cell{g.Body[0].X + d.X, g.Body[0].Y + d.Y}

	if head.X < 0 || head.X >= g.W || head.Y < 0 || head.Y >= g.H {
		g.Over = true
		return
	}
	// The tail cell vacates this step unless the snake is growing.
	limit := len(g.Body)
	if g.growth == 0 {
		limit--
	}
	for _, c := range g.Body[:limit] {
		if c == head {
			g.Over = true
			return
		}
	}

	g.Body = append([]Cell{head}, g.Body...)
	if g.growth > 0 {
		g.growth--
	} else {
		g.Body = g.Body[:len(g.Body)-1]
	}

	if head == g.Food {
		g.Score++
		g.growth += growthPerFood
		g.placeFood()
	}
}

func (g *Game) occupied(c Cell) bool {
	for _, b := range g.Body {
		if b == c {
			return true
		}
	}
	return false
}

func (g *Game) placeFood() {
	if len(g.Body) >= g.W*g.H {
		g.Over = true // board full, nothing left to eat
		return
	}
	for {
		c := Cell{g.rng.Intn(g.W), g.rng.Intn(g.H)}
		if !g.occupied(c) {
			g.Food = c
			return
		}
	}
}
