package sim

import (
	"testing"

	"github.com/hollowglade/arcade/engine/core"
	"github.com/hollowglade/arcade/engine/geom"
)

func TestMilestoneOpensPerkPrompt(t *testing.T) {
	s := newRunningState(2)
	s.Kills = s.Milestone

	s.Step(Input{Move: geom.Vec2{X: 1}}, tick)

	if s.Phase != core.PhasePerkChoice {
		t.Fatalf("phase = %v, want perk-choice", s.Phase)
	}
	if len(s.Choices) != PerkChoiceSize {
		t.Fatalf("offered %d perks, want %d", len(s.Choices), PerkChoiceSize)
	}
	seen := map[string]bool{}
	for _, p := range s.Choices {
		if seen[p.ID] {
			t.Fatalf("perk %q offered twice", p.ID)
		}
		seen[p.ID] = true
	}
	if s.Milestone != FirstMilestone+MilestoneStep {
		t.Errorf("next milestone = %d, want %d", s.Milestone, FirstMilestone+MilestoneStep)
	}
	if s.Stats.EnemySpeed <= BaseEnemySpeed {
		t.Error("milestone crossing must escalate enemy speed")
	}
	if n := len(s.Obstacles); n < 1 || n > 2 {
		t.Errorf("milestone spawned %d obstacles, want 1 or 2", n)
	}
}

func TestMilestonesStrictlyIncrease(t *testing.T) {
	s := newRunningState(2)
	prev := s.Milestone
	for i := 0; i < 6; i++ {
		s.Kills = s.Milestone
		s.Step(Input{Move: geom.Vec2{X: 1}}, tick)
		if s.Phase != core.PhasePerkChoice {
			t.Fatalf("round %d: phase = %v, want perk-choice", i, s.Phase)
		}
		if s.Milestone != prev+MilestoneStep {
			t.Fatalf("round %d: milestone %d, want %d", i, s.Milestone, prev+MilestoneStep)
		}
		prev = s.Milestone
		s.ApplyPerk(s.Choices[0].ID)
		if s.Phase != core.PhaseRunning {
			t.Fatalf("round %d: choosing a perk must resume the run", i)
		}
	}
}

func TestApplyPerkEffects(t *testing.T) {
	tests := []struct {
		id    string
		check func(before, after Stats) bool
	}{
		{"arrow_speed", func(b, a Stats) bool { return a.ProjectileSpeed == b.ProjectileSpeed*PerkArrowSpeedMult }},
		{"player_speed", func(b, a Stats) bool { return a.PlayerSpeed == b.PlayerSpeed*PerkPlayerSpeedMult }},
		{"arrow_count", func(b, a Stats) bool { return a.ArrowCount == b.ArrowCount+1 }},
		{"pierce", func(b, a Stats) bool { return a.Pierce && !b.Pierce }},
		{"ricochet", func(b, a Stats) bool { return a.Ricochet && !b.Ricochet }},
	}
	for _, tt := range tests {
		s := newRunningState(2)
		s.Phase = core.PhasePerkChoice
		s.Choices = append([]Perk{}, Catalog...)
		before := s.Stats
		s.ApplyPerk(tt.id)
		if !tt.check(before, s.Stats) {
			t.Errorf("perk %q did not apply its effect", tt.id)
		}
		if s.Choices != nil {
			t.Errorf("perk %q left the prompt open", tt.id)
		}
		if s.Phase != core.PhaseRunning {
			t.Errorf("perk %q did not resume the run", tt.id)
		}
	}
}

func TestApplyPerkAfterRunEnded(t *testing.T) {
	s := newRunningState(2)
	s.Phase = core.PhaseGameOver
	s.Choices = append([]Perk{}, Catalog[:1]...)
	s.ApplyPerk("arrow_speed")
	if s.Phase != core.PhaseGameOver {
		t.Error("choosing a perk must not revive a finished run")
	}
}

func TestRollPerksDistinct(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := New(nil, seed)
		picked := s.rollPerks(PerkChoiceSize)
		if len(picked) != PerkChoiceSize {
			t.Fatalf("seed %d: got %d perks", seed, len(picked))
		}
		seen := map[string]bool{}
		for _, p := range picked {
			if seen[p.ID] {
				t.Fatalf("seed %d: duplicate perk %q", seed, p.ID)
			}
			seen[p.ID] = true
		}
	}
}

func TestStatsOnlyImprove(t *testing.T) {
	s := newRunningState(2)
	for _, p := range Catalog {
		before := s.Stats
		p.apply(&s.Stats)
		if s.Stats.PlayerSpeed < before.PlayerSpeed ||
			s.Stats.ProjectileSpeed < before.ProjectileSpeed ||
			s.Stats.ArrowCount < before.ArrowCount {
			t.Errorf("perk %q degraded stats", p.ID)
		}
		if before.Pierce && !s.Stats.Pierce || before.Ricochet && !s.Stats.Ricochet {
			t.Errorf("perk %q revoked a boolean upgrade", p.ID)
		}
	}
}
