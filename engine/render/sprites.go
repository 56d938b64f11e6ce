package render

import (
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite asset names. All are optional: a missing or still-loading image
// makes the renderer fall back to vector shapes.
const (
	SpritePlayer   = "player"
	SpriteEnemy    = "enemy"
	SpriteDrop     = "drop"
	SpriteGameOver = "gameover"
)

var spriteNames = []string{SpritePlayer, SpriteEnemy, SpriteDrop, SpriteGameOver}

const retryDelay = 2 * time.Second

// Sprites holds the optional image assets. A first load pass runs at
// construction; files that were absent are retried once after a fixed
// delay, then left nil for good.
type Sprites struct {
	images  map[string]*ebiten.Image
	retryAt time.Time
	retried bool
}

func NewSprites() *Sprites {
	s := &Sprites{images: make(map[string]*ebiten.Image)}
	missing := s.loadAll()
	if missing > 0 {
		s.retryAt = time.Now().Add(retryDelay)
	} else {
		s.retried = true
	}
	return s
}

// Get returns the named sprite, or nil when it never loaded.
func (s *Sprites) Get(name string) *ebiten.Image {
	return s.images[name]
}

// Poll runs the single delayed retry. Call once per frame.
func (s *Sprites) Poll() {
	if s.retried || time.Now().Before(s.retryAt) {
		return
	}
	s.retried = true
	s.loadAll()
}

func (s *Sprites) loadAll() (missing int) {
	dir := getAssetsDir()
	for _, name := range spriteNames {
		if s.images[name] != nil {
			continue
		}
		img := loadFromFile(filepath.Join(dir, name+".png"))
		if img == nil {
			missing++
			continue
		}
		s.images[name] = img
	}
	if missing > 0 {
		log.Printf("Sprites: %d of %d assets missing, drawing fallback shapes", missing, len(spriteNames))
	}
	return missing
}

func getAssetsDir() string {
	exe, err := os.Executable()
	if err == nil {
		dir := filepath.Join(filepath.Dir(exe), "assets")
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(filename), "..", "..", "assets")
	if _, err := os.Stat(dir); err == nil {
		return dir
	}
	return "assets"
}

func loadFromFile(path string) *ebiten.Image {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Printf("Warning: could not decode sprite %s: %v", path, err)
		return nil
	}

	return ebiten.NewImageFromImage(img)
}
