package sim

import (
	"github.com/hollowglade/arcade/engine/core"
	"github.com/hollowglade/arcade/engine/geom"
)

// placeClear samples random arena points until ok accepts one or the
// attempt budget runs out, in which case the last (unchecked) sample is
// used as-is rather than aborting the spawn.
func (s *State) placeClear(margin float64, ok func(geom.Vec2) bool) geom.Vec2 {
	var p geom.Vec2
	for i := 0; i < PlaceAttempts; i++ {
		y := s.rng.Float64() * geom.ArenaHeight
		hw := geom.HalfWidthAt(y) - margin
		if hw < 0 {
			hw = 0
		}
		p = geom.Vec2{X: (s.rng.Float64()*2 - 1) * hw, Y: y}
		if ok(p) {
			return p
		}
	}
	return p
}

// spawnEnemy adds one enemy when the spawn interval has elapsed and the
// population is below the cap. The interval timer resets either way.
func (s *State) spawnEnemy() {
	if s.Now-s.LastSpawn < SpawnInterval {
		return
	}
	s.LastSpawn = s.Now
	if len(s.Enemies) >= MaxEnemies {
		return
	}
	pos := s.placeClear(EnemyRadius, func(p geom.Vec2) bool {
		return p.DistanceTo(s.Player.Pos) >= MinSpawnDistance &&
			!s.hitsObstacle(p, EnemyRadius)
	})
	s.Enemies = append(s.Enemies, Enemy{
		Pos:         pos,
		Prev:        pos,
		R:           EnemyRadius,
		InvulnUntil: s.Now + SpawnInvulnTime,
	})
	s.emit(core.EvtEnemySpawned, len(s.Enemies))
}

// spawnObstacle places one static rectangle, sized relative to the player,
// clear of the player and of existing obstacles.
func (s *State) spawnObstacle() {
	w := ObstacleSizeMin + s.rng.Float64()*(ObstacleSizeMax-ObstacleSizeMin)
	h := ObstacleSizeMin + s.rng.Float64()*(ObstacleSizeMax-ObstacleSizeMin)
	margin := w / 2
	if h > w {
		margin = h / 2
	}
	pos := s.placeClear(margin, func(p geom.Vec2) bool {
		ob := geom.Rect{X: p.X, Y: p.Y, W: w, H: h}
		if p.DistanceTo(s.Player.Pos) < MinSpawnDistance {
			return false
		}
		if geom.CircleRectOverlap(s.Player.Pos, s.Player.R, ob) {
			return false
		}
		for _, other := range s.Obstacles {
			if ob.Intersects(other) {
				return false
			}
		}
		return true
	})
	s.Obstacles = append(s.Obstacles, geom.Rect{X: pos.X, Y: pos.Y, W: w, H: h})
}
