package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/hollowglade/arcade/engine/geom"
	"github.com/hollowglade/arcade/engine/sim"
)

// groundPalettes are the arena color pairs; a milestone crossing rerolls
// which pair is in use.
var groundPalettes = [][2]color.RGBA{
	{{86, 125, 70, 255}, {74, 111, 60, 255}},   // grass
	{{121, 104, 74, 255}, {106, 90, 62, 255}},  // dirt
	{{90, 106, 130, 255}, {76, 92, 116, 255}},  // slate
	{{128, 88, 100, 255}, {112, 74, 86, 255}},  // clay
	{{70, 112, 112, 255}, {58, 98, 98, 255}},   // moss
}

var (
	backgroundColor = color.RGBA{20, 20, 30, 255}
	obstacleColor   = color.RGBA{70, 60, 50, 255}
	obstacleEdge    = color.RGBA{110, 96, 80, 255}
	playerColor     = color.RGBA{235, 225, 200, 255}
	enemyColor      = color.RGBA{190, 60, 60, 255}
	invulnColor     = color.RGBA{190, 60, 60, 110}
	arrowColor      = color.RGBA{240, 230, 140, 255}
	dropColor       = color.RGBA{250, 200, 60, 255}
	hudColor        = color.RGBA{235, 235, 235, 255}
)

// Renderer draws the shooter from the current simulation state. It is a
// read-only consumer: nothing here mutates the state.
type Renderer struct {
	Sprites *Sprites
	Debug   bool
}

func NewRenderer(sprites *Sprites) *Renderer {
	return &Renderer{Sprites: sprites}
}

// Draw renders the arena, all entities back-to-front, and the HUD.
func (r *Renderer) Draw(screen *ebiten.Image, s *sim.State) {
	screen.Fill(backgroundColor)
	r.drawGround(screen, s.GroundSeed)
	r.drawObstacles(screen, s.Obstacles)
	r.drawEntities(screen, s)
	r.drawHUD(screen, s)
	if r.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.0f | enemies: %d arrows: %d drops: %d",
			ebiten.ActualFPS(), len(s.Enemies), len(s.Projectiles), len(s.Drops)))
	}
}

// drawGround fills the trapezoid as thin horizontal bands whose width
// follows the projection, alternating the palette pair.
func (r *Renderer) drawGround(screen *ebiten.Image, seed int64) {
	pal := groundPalettes[int(uint64(seed)%uint64(len(groundPalettes)))]
	const bands = 26
	for i := 0; i < bands; i++ {
		y0 := geom.ArenaHeight * float64(i) / bands
		y1 := geom.ArenaHeight * float64(i+1) / bands
		_, sy0, _ := geom.Project(0, y0)
		_, sy1, _ := geom.Project(0, y1)
		ex, _, _ := geom.Project(geom.HalfWidthAt(y1), y1)
		cx := float32(geom.ScreenWidth) / 2
		half := float32(ex) - cx
		vector.DrawFilledRect(screen, cx-half, float32(sy0), half*2, float32(sy1-sy0)+1, pal[i%2], false)
	}
}

func (r *Renderer) drawObstacles(screen *ebiten.Image, obstacles []geom.Rect) {
	for _, ob := range obstacles {
		sx, sy, scale := geom.Project(ob.X, ob.Y)
		w := float32(ob.W * scale)
		h := float32(ob.H * scale)
		x := float32(sx) - w/2
		y := float32(sy) - h/2
		vector.DrawFilledRect(screen, x, y, w, h, obstacleColor, false)
		vector.StrokeRect(screen, x, y, w, h, 2, obstacleEdge, false)
	}
}

type drawable struct {
	row  float64
	draw func()
}

// drawEntities paints drops, projectiles, enemies and the player sorted by
// arena row so lower entities overlap higher ones.
func (r *Renderer) drawEntities(screen *ebiten.Image, s *sim.State) {
	items := make([]drawable, 0, len(s.Drops)+len(s.Projectiles)+len(s.Enemies)+1)

	for i := range s.Drops {
		d := s.Drops[i]
		items = append(items, drawable{d.Pos.Y, func() {
			r.drawSpriteOrCircle(screen, SpriteDrop, d.Pos, d.R, dropColor)
		}})
	}
	for i := range s.Projectiles {
		p := s.Projectiles[i]
		items = append(items, drawable{p.Pos.Y, func() {
			sx, sy, scale := geom.Project(p.Pos.X, p.Pos.Y)
			tip := p.Pos.Add(p.Vel.Norm().Mul(p.R * 3))
			tx, ty, _ := geom.Project(tip.X, tip.Y)
			vector.StrokeLine(screen, float32(sx), float32(sy), float32(tx), float32(ty), 2, arrowColor, false)
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(p.R*scale), arrowColor, false)
		}})
	}
	for i := range s.Enemies {
		e := s.Enemies[i]
		clr := enemyColor
		if s.Now < e.InvulnUntil {
			clr = invulnColor
		}
		items = append(items, drawable{e.Pos.Y, func() {
			r.drawSpriteOrCircle(screen, SpriteEnemy, e.Pos, e.R, clr)
		}})
	}
	items = append(items, drawable{s.Player.Pos.Y, func() {
		r.drawSpriteOrCircle(screen, SpritePlayer, s.Player.Pos, s.Player.R, playerColor)
		// aim tick
		from := s.Player.Pos.Add(s.Player.Aim.Mul(s.Player.R))
		to := s.Player.Pos.Add(s.Player.Aim.Mul(s.Player.R * 1.9))
		fx, fy, _ := geom.Project(from.X, from.Y)
		tx, ty, _ := geom.Project(to.X, to.Y)
		vector.StrokeLine(screen, float32(fx), float32(fy), float32(tx), float32(ty), 2, playerColor, false)
	}})

	sort.SliceStable(items, func(i, j int) bool { return items[i].row < items[j].row })
	for _, it := range items {
		it.draw()
	}
}

// drawSpriteOrCircle draws the named sprite scaled with depth, or a filled
// circle when the asset never loaded.
func (r *Renderer) drawSpriteOrCircle(screen *ebiten.Image, name string, pos geom.Vec2, radius float64, clr color.RGBA) {
	sx, sy, scale := geom.Project(pos.X, pos.Y)
	img := r.Sprites.Get(name)
	if img == nil {
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius*scale), clr, false)
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	target := radius * 2 * scale
	k := target / float64(w)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(sx-float64(w)*k/2, sy-float64(h)*k/2)
	screen.DrawImage(img, op)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s *sim.State) {
	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("Score %d", s.Score), face, 16, 24, hudColor)
	text.Draw(screen, fmt.Sprintf("Kills %d / %d", s.Kills, s.Milestone), face, 16, 40, hudColor)
	text.Draw(screen, fmt.Sprintf("Gold %d", s.Gold), face, 16, 56, hudColor)
}
