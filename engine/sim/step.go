package sim

import (
	"github.com/hollowglade/arcade/engine/core"
	"github.com/hollowglade/arcade/engine/geom"
)

// Step advances the simulation by one tick. Stage order is load-bearing:
// later stages read state written by earlier ones in the same tick.
//
//  1. enemy spawn
//  2. auto-fire volley while standing still
//  3. player movement
//  4. projectile movement and despawn
//  5. enemy seek movement
//  6. combat resolution on start-of-tick positions
//  7. drop pickup
//  8. milestone crossing
//
// A tick only runs in the Running phase, so a paused or finished run is
// never left with partially-applied mutations.
func (s *State) Step(in Input, dt float64) {
	if s.Phase != core.PhaseRunning || dt <= 0 {
		return
	}
	s.Now += dt

	s.Player.Vel = in.Move.Mul(s.Stats.PlayerSpeed)
	if in.Aim != (geom.Vec2{}) {
		s.Player.Aim = in.Aim
	}

	s.spawnEnemy()
	s.fireVolley()

	prevPlayer := s.Player.Pos
	s.movePlayer(dt)
	s.moveProjectiles(dt)
	s.moveEnemies(dt)

	s.resolveCombat(prevPlayer)
	if s.Phase != core.PhaseRunning {
		return
	}
	s.collectDrops()
	s.checkMilestone()
}

// movePlayer advances the player by its velocity, rejecting each axis move
// independently when it would enter an obstacle so the player can slide
// along walls, then clamps into the trapezoid at the new row.
func (s *State) movePlayer(dt float64) {
	p := &s.Player
	next := p.Pos
	if nx := next.X + p.Vel.X*dt; !s.hitsObstacle(geom.Vec2{X: nx, Y: next.Y}, p.R) {
		next.X = nx
	}
	if ny := next.Y + p.Vel.Y*dt; !s.hitsObstacle(geom.Vec2{X: next.X, Y: ny}, p.R) {
		next.Y = ny
	}
	p.Pos = clampToArena(next, p.R)
}

// moveEnemies walks every enemy one step toward the player, with the same
// per-axis obstacle rejection and arena clamp as the player.
func (s *State) moveEnemies(dt float64) {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.Prev = e.Pos
		e.Vel = s.Player.Pos.Sub(e.Pos).Norm().Mul(s.Stats.EnemySpeed)
		next := e.Pos
		if nx := next.X + e.Vel.X*dt; !s.hitsObstacle(geom.Vec2{X: nx, Y: next.Y}, e.R) {
			next.X = nx
		}
		if ny := next.Y + e.Vel.Y*dt; !s.hitsObstacle(geom.Vec2{X: next.X, Y: ny}, e.R) {
			next.Y = ny
		}
		e.Pos = clampToArena(next, e.R)
	}
}

// moveProjectiles advances every projectile and removes the ones that age
// out, leave the arena without ricochet, or strike an obstacle they cannot
// bounce off. A ricochet inverts the velocity component on the penetrated
// axis and replays the move from the start-of-tick position.
func (s *State) moveProjectiles(dt float64) {
	alive := s.Projectiles[:0]
	for i := range s.Projectiles {
		pr := s.Projectiles[i]
		if s.Now-pr.Born > ProjectileLifetime {
			continue
		}
		pr.Prev = pr.Pos
		pr.Pos = pr.Pos.Add(pr.Vel.Mul(dt))

		if ax, ay, out := outsideArena(pr.Pos, pr.R); out {
			if !pr.Ricochet {
				continue
			}
			if ax {
				pr.Vel.X = -pr.Vel.X
			}
			if ay {
				pr.Vel.Y = -pr.Vel.Y
			}
			pr.Pos = pr.Prev.Add(pr.Vel.Mul(dt))
		}

		blocked := false
		for _, ob := range s.Obstacles {
			if !geom.CircleRectOverlap(pr.Pos, pr.R, ob) {
				continue
			}
			if !pr.Ricochet {
				blocked = true
				break
			}
			if geom.PenetrationAxis(pr.Pos, ob) == geom.AxisX {
				pr.Vel.X = -pr.Vel.X
			} else {
				pr.Vel.Y = -pr.Vel.Y
			}
			pr.Pos = pr.Prev
			break
		}
		if blocked {
			continue
		}
		alive = append(alive, pr)
	}
	s.Projectiles = alive
}

// outsideArena reports whether a circle has left the trapezoid, and on
// which axes.
func outsideArena(p geom.Vec2, r float64) (x, y, out bool) {
	if p.Y < r || p.Y > geom.ArenaHeight-r {
		y = true
	}
	hw := geom.HalfWidthAt(p.Y) - r
	if p.X < -hw || p.X > hw {
		x = true
	}
	return x, y, x || y
}

// clampToArena pulls a circle center back inside the trapezoid bounds for
// its row.
func clampToArena(p geom.Vec2, r float64) geom.Vec2 {
	p.Y = geom.Clamp(p.Y, r, geom.ArenaHeight-r)
	hw := geom.HalfWidthAt(p.Y) - r
	p.X = geom.Clamp(p.X, -hw, hw)
	return p
}

func (s *State) hitsObstacle(p geom.Vec2, r float64) bool {
	for _, ob := range s.Obstacles {
		if geom.CircleRectOverlap(p, r, ob) {
			return true
		}
	}
	return false
}
