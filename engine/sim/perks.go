package sim

import "github.com/hollowglade/arcade/engine/core"

// Perk is one stat upgrade offered at a milestone.
type Perk struct {
	ID    string
	Name  string
	Desc  string
	apply func(*Stats)
}

// Catalog is the full upgrade pool. Multiplicative perks stack across
// milestones; the boolean ones are idempotent.
var Catalog = []Perk{
	{
		ID: "arrow_speed", Name: "Swift Arrows", Desc: "Arrows fly 10% faster",
		apply: func(st *Stats) { st.ProjectileSpeed *= PerkArrowSpeedMult },
	},
	{
		ID: "player_speed", Name: "Fleet Foot", Desc: "Move 25% faster",
		apply: func(st *Stats) { st.PlayerSpeed *= PerkPlayerSpeedMult },
	},
	{
		ID: "arrow_count", Name: "Extra Arrow", Desc: "Fire one more arrow per volley",
		apply: func(st *Stats) { st.ArrowCount++ },
	},
	{
		ID: "pierce", Name: "Piercing Tips", Desc: "Arrows pass through one extra enemy",
		apply: func(st *Stats) { st.Pierce = true },
	},
	{
		ID: "ricochet", Name: "Ricochet", Desc: "Arrows bounce off walls and rocks",
		apply: func(st *Stats) { st.Ricochet = true },
	},
}

// rollPerks draws n distinct perks from the catalog, uniformly at random,
// rejecting repeated ids.
func (s *State) rollPerks(n int) []Perk {
	picked := make([]Perk, 0, n)
	used := make(map[string]bool, n)
	for len(picked) < n {
		p := Catalog[s.rng.Intn(len(Catalog))]
		if used[p.ID] {
			continue
		}
		used[p.ID] = true
		picked = append(picked, p)
	}
	return picked
}

// checkMilestone opens the perk prompt once the kill threshold is reached,
// and escalates the run: enemies speed up, the ground recolors, the next
// threshold rises and a couple of fresh obstacles drop in.
func (s *State) checkMilestone() {
	if s.Kills < s.Milestone || s.Choices != nil {
		return
	}
	s.Choices = s.rollPerks(PerkChoiceSize)
	s.Phase = core.PhasePerkChoice
	s.GroundSeed = s.rng.Int63()
	s.Stats.EnemySpeed *= EnemySpeedRamp
	s.Milestone += MilestoneStep
	for i, n := 0, 1+s.rng.Intn(2); i < n; i++ {
		s.spawnObstacle()
	}
	s.emit(core.EvtMilestoneReached, s.Milestone)
}

// ApplyPerk applies the chosen perk, closes the prompt and resumes the run
// unless it already ended. Unknown ids only close the prompt.
func (s *State) ApplyPerk(id string) {
	for _, p := range s.Choices {
		if p.ID == id {
			p.apply(&s.Stats)
			s.emit(core.EvtPerkChosen, id)
			break
		}
	}
	s.Choices = nil
	if s.Phase == core.PhasePerkChoice {
		s.Phase = core.PhaseRunning
	}
}
