package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/hollowglade/arcade/engine/geom"
	"github.com/hollowglade/arcade/engine/sim"
)

// Button is a clickable overlay region.
type Button struct {
	X, Y, W, H int
	Text       string
	Sub        string
	Hovered    bool
}

func (b *Button) contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

var (
	dimColor      = color.RGBA{0, 0, 0, 150}
	buttonColor   = color.RGBA{40, 44, 60, 235}
	buttonHover   = color.RGBA{60, 68, 94, 235}
	buttonEdge    = color.RGBA{160, 170, 200, 255}
	titleColor    = color.RGBA{250, 245, 230, 255}
	subtextColor  = color.RGBA{190, 190, 200, 255}
	gameOverColor = color.RGBA{220, 70, 70, 255}
)

// Overlay draws the perk prompt and the game-over screen and reports which
// button the pointer picked. It holds only hover state; the simulation
// decides what a click means.
type Overlay struct {
	Sprites *Sprites
	buttons []Button
}

func NewOverlay(sprites *Sprites) *Overlay {
	return &Overlay{Sprites: sprites}
}

// LayoutPerks rebuilds the buttons for an open perk prompt.
func (o *Overlay) LayoutPerks(choices []sim.Perk) {
	const bw, bh, gap = 220, 110, 24
	total := len(choices)*bw + (len(choices)-1)*gap
	x := (geom.ScreenWidth - total) / 2
	y := (geom.ScreenHeight - bh) / 2
	o.buttons = o.buttons[:0]
	for _, p := range choices {
		o.buttons = append(o.buttons, Button{X: x, Y: y, W: bw, H: bh, Text: p.Name, Sub: p.Desc})
		x += bw + gap
	}
}

// LayoutGameOver rebuilds the single restart button.
func (o *Overlay) LayoutGameOver() {
	const bw, bh = 200, 48
	o.buttons = o.buttons[:0]
	o.buttons = append(o.buttons, Button{
		X: (geom.ScreenWidth - bw) / 2, Y: geom.ScreenHeight/2 + 70, W: bw, H: bh,
		Text: "Play Again",
	})
}

// Hit updates hover state and returns the index of the clicked button, or
// -1 when the click landed nowhere.
func (o *Overlay) Hit(mx, my int, clicked bool) int {
	for i := range o.buttons {
		o.buttons[i].Hovered = o.buttons[i].contains(mx, my)
		if clicked && o.buttons[i].Hovered {
			return i
		}
	}
	return -1
}

// DrawPerkPrompt dims the arena and draws the three perk cards.
func (o *Overlay) DrawPerkPrompt(screen *ebiten.Image) {
	o.dim(screen)
	face := basicfont.Face7x13
	title := "Choose an upgrade"
	text.Draw(screen, title, face, centerTextX(title), geom.ScreenHeight/2-90, titleColor)
	for i := range o.buttons {
		o.drawButton(screen, &o.buttons[i])
	}
}

// DrawGameOver draws the end-of-run overlay with the final score.
func (o *Overlay) DrawGameOver(screen *ebiten.Image, s *sim.State) {
	o.dim(screen)
	face := basicfont.Face7x13

	if img := o.Sprites.Get(SpriteGameOver); img != nil {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(geom.ScreenWidth-w)/2, float64(geom.ScreenHeight/2-120-h/2))
		screen.DrawImage(img, op)
	} else {
		msg := "THE HORDE GOT YOU"
		text.Draw(screen, msg, face, centerTextX(msg), geom.ScreenHeight/2-110, gameOverColor)
	}

	lines := []string{
		fmt.Sprintf("Score %d", s.Score),
		fmt.Sprintf("Kills %d", s.Kills),
		fmt.Sprintf("Gold %d", s.Gold),
	}
	y := geom.ScreenHeight/2 - 50
	for _, l := range lines {
		text.Draw(screen, l, face, centerTextX(l), y, titleColor)
		y += 20
	}
	for i := range o.buttons {
		o.drawButton(screen, &o.buttons[i])
	}
}

// DrawIdle draws the pre-run prompt.
func (o *Overlay) DrawIdle(screen *ebiten.Image) {
	o.dim(screen)
	face := basicfont.Face7x13
	title := "GLADE WARDEN"
	text.Draw(screen, title, face, centerTextX(title), geom.ScreenHeight/2-40, titleColor)
	msg := "WASD to move, mouse to aim. Stand still to shoot."
	text.Draw(screen, msg, face, centerTextX(msg), geom.ScreenHeight/2-10, subtextColor)
	msg = "Press any key to start"
	text.Draw(screen, msg, face, centerTextX(msg), geom.ScreenHeight/2+20, titleColor)
}

func (o *Overlay) dim(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, geom.ScreenWidth, geom.ScreenHeight, dimColor, false)
}

func (o *Overlay) drawButton(screen *ebiten.Image, b *Button) {
	clr := buttonColor
	if b.Hovered {
		clr = buttonHover
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, buttonEdge, false)

	face := basicfont.Face7x13
	tx := b.X + (b.W-len(b.Text)*7)/2
	text.Draw(screen, b.Text, face, tx, b.Y+28, titleColor)
	if b.Sub != "" {
		sx := b.X + (b.W-len(b.Sub)*7)/2
		text.Draw(screen, b.Sub, face, sx, b.Y+52, subtextColor)
	}
}

// centerTextX centers a basicfont string horizontally (7px advance).
func centerTextX(s string) int {
	return (geom.ScreenWidth - len(s)*7) / 2
}
