package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/hollowglade/arcade/engine/snake"
)

const (
	gridW    = 28
	gridH    = 22
	cellSize = 24

	screenWidth  = gridW * cellSize
	screenHeight = gridH*cellSize + hudHeight
	hudHeight    = 32

	stepInterval = 0.11 // seconds per cell
)

var (
	boardColorA = color.RGBA{32, 38, 32, 255}
	boardColorB = color.RGBA{28, 34, 28, 255}
	snakeColor  = color.RGBA{110, 200, 90, 255}
	headColor   = color.RGBA{150, 235, 120, 255}
	foodColor   = color.RGBA{220, 80, 70, 255}
	hudColor    = color.RGBA{230, 230, 230, 255}
)

type Game struct {
	round *snake.Game
	acc   float64
	last  time.Time
}

func NewGame() *Game {
	return &Game{
		round: snake.New(gridW, gridH, time.Now().UnixNano()),
		last:  time.Now(),
	}
}

func (g *Game) Update() error {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyW), ebiten.IsKeyPressed(ebiten.KeyUp):
		g.round.Turn(snake.DirUp)
	case ebiten.IsKeyPressed(ebiten.KeyS), ebiten.IsKeyPressed(ebiten.KeyDown):
		g.round.Turn(snake.DirDown)
	case ebiten.IsKeyPressed(ebiten.KeyA), ebiten.IsKeyPressed(ebiten.KeyLeft):
		g.round.Turn(snake.DirLeft)
	case ebiten.IsKeyPressed(ebiten.KeyD), ebiten.IsKeyPressed(ebiten.KeyRight):
		g.round.Turn(snake.DirRight)
	}

	if g.round.Over {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.round = snake.New(gridW, gridH, time.Now().UnixNano())
		}
		g.last = time.Now()
		return nil
	}

	now := time.Now()
	g.acc += now.Sub(g.last).Seconds()
	g.last = now
	if g.acc > 0.25 {
		g.acc = 0.25
	}
	for g.acc >= stepInterval {
		g.acc -= stepInterval
		g.round.Step()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			clr := boardColorA
			if (x+y)%2 == 1 {
				clr = boardColorB
			}
			vector.DrawFilledRect(screen,
				float32(x*cellSize), float32(hudHeight+y*cellSize),
				cellSize, cellSize, clr, false)
		}
	}

	drawCell := func(c snake.Cell, clr color.RGBA) {
		vector.DrawFilledRect(screen,
			float32(c.X*cellSize)+1, float32(hudHeight+c.Y*cellSize)+1,
			cellSize-2, cellSize-2, clr, false)
	}
	drawCell(g.round.Food, foodColor)
	for i := len(g.round.Body) - 1; i >= 0; i-- {
		clr := snakeColor
		if i == 0 {
			clr = headColor
		}
		drawCell(g.round.Body[i], clr)
	}

	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("Score %d", g.round.Score), face, 12, 21, hudColor)
	if g.round.Over {
		msg := "Game over - Space to restart"
		text.Draw(screen, msg, face, (screenWidth-len(msg)*7)/2, screenHeight/2, hudColor)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
