package sim

import "math"

// All gameplay tuning in one place. Distances are simulation units, times
// are seconds, speeds are units per second.
const (
	PlayerRadius     = 16.0
	EnemyRadius      = 14.0
	ProjectileRadius = 4.0
	DropRadius       = 9.0

	BasePlayerSpeed     = 220.0
	BaseProjectileSpeed = 420.0
	BaseEnemySpeed      = 70.0
	BaseArrowCount      = 1

	SpawnInterval    = 1.2  // between enemy spawns
	SpawnInvulnTime  = 0.3  // post-spawn window with no combat interaction
	MaxEnemies       = 35   // hard cap; spawns above it are skipped
	MinSpawnDistance = 160.0
	PlaceAttempts    = 20 // rejection-sampling budget, then unchecked fallback

	FireInterval       = 0.5 // volley cadence while standing still
	VolleySpreadStep   = 0.12
	VolleySpreadMax    = 17.0 * math.Pi / 180
	ProjectileLifetime = 2.5

	DropChance = 0.25
	KillScore  = 10

	FirstMilestone = 10
	MilestoneStep  = 10
	PerkChoiceSize = 3
	EnemySpeedRamp = 1.1

	ObstacleSizeMin = PlayerRadius * 2
	ObstacleSizeMax = PlayerRadius * 4

	PerkArrowSpeedMult  = 1.1
	PerkPlayerSpeedMult = 1.25
)
