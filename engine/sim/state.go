package sim

import (
	"math/rand"

	"github.com/hollowglade/arcade/engine/core"
	"github.com/hollowglade/arcade/engine/geom"
)

// Player is the single player-controlled entity. Velocity and aim are set
// by the input layer; everything else is mutated only by Step.
type Player struct {
	Pos, Vel geom.Vec2
	R        float64
	Aim      geom.Vec2 // unit vector, last non-zero aim
	LastShot float64   // sim time of last volley
}

// Enemy seeks the player. Within its invulnerability window it can neither
// deal nor take damage.
type Enemy struct {
	Pos, Vel    geom.Vec2
	Prev        geom.Vec2 // position at the start of the tick; combat resolves on these
	R           float64
	InvulnUntil float64
}

// Projectile is one arrow of a volley.
type Projectile struct {
	Pos, Vel geom.Vec2
	Prev     geom.Vec2
	R        float64
	Born     float64
	Pierce   int // remaining enemies it may pass through; never negative
	Ricochet bool
	spent    bool
}

// Drop is a currency pickup left behind by a dead enemy.
type Drop struct {
	Pos geom.Vec2
	R   float64
}

// Stats hold the perk-mutable simulation parameters. They only ever
// improve over a run.
type Stats struct {
	PlayerSpeed     float64
	ProjectileSpeed float64
	ArrowCount      int
	Pierce          bool
	Ricochet        bool
	EnemySpeed      float64 // escalates at every milestone
}

func baseStats() Stats {
	return Stats{
		PlayerSpeed:     BasePlayerSpeed,
		ProjectileSpeed: BaseProjectileSpeed,
		ArrowCount:      BaseArrowCount,
		EnemySpeed:      BaseEnemySpeed,
	}
}

// Input is the per-tick player intent, produced by the input layer.
type Input struct {
	Move geom.Vec2 // normalized move direction, zero when idle
	Aim  geom.Vec2 // unit aim direction, zero to keep the previous aim
}

// State is the complete shooter simulation. One instance per run; owned by
// the frame loop, read by the renderer, mutated only by Step, ApplyPerk and
// Reset so a tick is always committed whole.
type State struct {
	Now float64 // sim clock, seconds since run start

	Player      Player
	Enemies     []Enemy
	Projectiles []Projectile
	Drops       []Drop
	Obstacles   []geom.Rect

	Stats Stats

	Phase     core.Phase
	Score     int
	Kills     int
	Gold      int    // survives Reset
	Milestone int    // next kill threshold; strictly increasing
	Choices   []Perk // open perk prompt, nil when none

	GroundSeed int64 // picks the arena ground color pair

	LastSpawn float64

	rng *rand.Rand
	bus *core.EventBus
}

// New returns an idle simulation. The seed makes a run replayable; the bus
// may be nil when no one listens (tests).
func New(bus *core.EventBus, seed int64) *State {
	s := &State{
		rng: rand.New(rand.NewSource(seed)),
		bus: bus,
	}
	s.Reset()
	return s
}

// Start begins a run from Idle.
func (s *State) Start() {
	if s.Phase != core.PhaseIdle {
		return
	}
	s.Phase = core.PhaseRunning
	s.emit(core.EvtRunStarted, nil)
}

// Reset returns to Idle with fresh entities and base stats. Accumulated
// gold is the only thing that survives.
func (s *State) Reset() {
	gold := s.Gold
	*s = State{
		Player: Player{
			Pos: geom.Vec2{X: 0, Y: geom.ArenaHeight * 0.75},
			R:   PlayerRadius,
			Aim: geom.Vec2{X: 0, Y: -1},
		},
		Stats:     baseStats(),
		Phase:     core.PhaseIdle,
		Gold:      gold,
		Milestone: FirstMilestone,
		rng:       s.rng,
		bus:       s.bus,
	}
}

func (s *State) emit(t core.EventType, payload interface{}) {
	if s.bus != nil {
		s.bus.Emit(core.Event{Type: t, Payload: payload})
	}
}
