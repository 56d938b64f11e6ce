package sim

import (
	"github.com/hollowglade/arcade/engine/core"
	"github.com/hollowglade/arcade/engine/geom"
)

// fireVolley releases a fan of arrows when the player stands still and the
// fire interval has elapsed. The fan widens with arrow count up to a cap
// and stays symmetric about the aim direction.
func (s *State) fireVolley() {
	if s.Player.Vel.X != 0 || s.Player.Vel.Y != 0 {
		return
	}
	if s.Now-s.Player.LastShot < FireInterval {
		return
	}
	s.Player.LastShot = s.Now

	n := s.Stats.ArrowCount
	base := s.Player.Aim.Angle()
	spread := VolleySpreadStep * float64(n-1)
	if spread > VolleySpreadMax {
		spread = VolleySpreadMax
	}
	pierce := 0
	if s.Stats.Pierce {
		pierce = 1
	}
	for i := 0; i < n; i++ {
		a := base
		if n > 1 {
			a += -spread/2 + spread*float64(i)/float64(n-1)
		}
		s.Projectiles = append(s.Projectiles, Projectile{
			Pos:      s.Player.Pos,
			Prev:     s.Player.Pos,
			Vel:      geom.FromAngle(a).Mul(s.Stats.ProjectileSpeed),
			R:        ProjectileRadius,
			Born:     s.Now,
			Pierce:   pierce,
			Ricochet: s.Stats.Ricochet,
		})
	}
	s.emit(core.EvtVolleyFired, n)
}

// resolveCombat runs the tick's combat pass on start-of-tick positions so
// every test in the frame sees one consistent entity layout. Enemies in
// their invulnerability window are skipped entirely. Player contact ends
// the run immediately. Otherwise the first overlapping projectile in
// iteration order claims the kill; simultaneous overlaps are not re-ranked.
func (s *State) resolveCombat(prevPlayer geom.Vec2) {
	alive := s.Enemies[:0]
	for i := range s.Enemies {
		e := s.Enemies[i]
		if s.Now < e.InvulnUntil {
			alive = append(alive, e)
			continue
		}
		if geom.CirclesOverlap(e.Prev, e.R, prevPlayer, s.Player.R) {
			s.Phase = core.PhaseGameOver
			alive = append(alive, s.Enemies[i:]...)
			s.Enemies = alive
			s.compactProjectiles()
			s.emit(core.EvtRunEnded, s.Score)
			return
		}
		killed := false
		for j := range s.Projectiles {
			pr := &s.Projectiles[j]
			if pr.spent {
				continue
			}
			if !geom.CirclesOverlap(e.Prev, e.R, pr.Prev, pr.R) {
				continue
			}
			killed = true
			s.Kills++
			s.Score += KillScore
			if pr.Pierce > 0 {
				pr.Pierce--
			} else {
				pr.spent = true
			}
			if s.rng.Float64() < DropChance {
				s.Drops = append(s.Drops, Drop{Pos: e.Prev, R: DropRadius})
				s.emit(core.EvtDropSpawned, nil)
			}
			s.emit(core.EvtEnemyKilled, s.Kills)
			break
		}
		if !killed {
			alive = append(alive, e)
		}
	}
	s.Enemies = alive
	s.compactProjectiles()
}

func (s *State) compactProjectiles() {
	alive := s.Projectiles[:0]
	for i := range s.Projectiles {
		if !s.Projectiles[i].spent {
			alive = append(alive, s.Projectiles[i])
		}
	}
	s.Projectiles = alive
}

// collectDrops awards one gold per drop within contact radius.
func (s *State) collectDrops() {
	remaining := s.Drops[:0]
	for _, d := range s.Drops {
		if geom.CirclesOverlap(d.Pos, d.R, s.Player.Pos, s.Player.R) {
			s.Gold++
			s.emit(core.EvtDropCollected, s.Gold)
			continue
		}
		remaining = append(remaining, d)
	}
	s.Drops = remaining
}
