package arsenal

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/keshon/toolmaker/internal/hunger"
	"github.com/keshon/toolmaker/internal/state"
)

// scripted replays fixed draws; once exhausted it returns 0 and 0.99.
type scripted struct {
	ints   []int
	floats []float64
}

func (s *scripted) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scripted) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

var t0 = time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

func TestFirstNineThenMilestone(t *testing.T) {
	s := state.New("2026-02-10")
	s.LastReplenishAt = state.Ptr(t0)
	rnd := &scripted{}

	for i := 1; i <= 9; i++ {
		out := Record(s, t0, rnd)
		if out.Milestone {
			t.Fatalf("production %d flagged milestone", i)
		}
		if out.BonusHours != ProductionBonusHours {
			t.Fatalf("production %d bonus = %v", i, out.BonusHours)
		}
	}
	if s.ProductionTotal != 9 {
		t.Fatalf("total = %d, want 9", s.ProductionTotal)
	}
	if got := hunger.DeficitHours(s, t0); math.Abs(got+9*12) > 1e-6 {
		t.Fatalf("deficit = %v, want -108", got)
	}

	out := Record(s, t0, rnd)
	if !out.Milestone || out.BonusHours != MilestoneBonusHours || out.Number != 10 {
		t.Fatalf("10th outcome = %+v", out)
	}
	if !s.WeeklyLog[9].Milestone {
		t.Fatal("10th log entry not flagged")
	}
	if got := hunger.DeficitHours(s, t0); math.Abs(got+9*12+18) > 1e-6 {
		t.Fatalf("deficit = %v, want -126", got)
	}
}

func TestMilestoneCountWithOffset(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, start := range []int{0, 3, 9, 27} {
		s := state.New("2026-02-10")
		s.ProductionTotal = start
		const n = 35
		for range n {
			Record(s, t0, rnd)
		}
		if s.ProductionTotal != start+n {
			t.Fatalf("start %d: total = %d", start, s.ProductionTotal)
		}
		flagged := 0
		for _, e := range s.WeeklyLog {
			if e.Milestone {
				flagged++
			}
		}
		want := (start+n)/MilestoneEvery - start/MilestoneEvery
		if flagged != want {
			t.Errorf("start %d: %d milestones, want %d", start, flagged, want)
		}
	}
}

func TestGrandAchievementOnce(t *testing.T) {
	s := state.New("2026-02-10")
	s.ProductionTotal = 51
	rnd := &scripted{}

	out := Record(s, t0, rnd)
	if !out.GrandAchievement || !s.GrandAchievementReached || out.Number != 52 {
		t.Fatalf("52nd outcome = %+v", out)
	}
	out = Record(s, t0, rnd)
	if out.GrandAchievement {
		t.Fatal("grand achievement signalled twice")
	}
	if !s.GrandAchievementReached {
		t.Fatal("flag cleared")
	}
}

func TestGrandAchievementNotReplayedWhenAlreadySet(t *testing.T) {
	s := state.New("2026-02-10")
	s.ProductionTotal = 51
	s.GrandAchievementReached = true
	if out := Record(s, t0, &scripted{}); out.GrandAchievement {
		t.Fatal("signalled although already reached")
	}
}

func TestRecordClearsDecayWarning(t *testing.T) {
	s := state.New("2026-02-10")
	s.DecayWarningSent = true
	Record(s, t0, &scripted{})
	if s.DecayWarningSent {
		t.Fatal("production must re-arm the decay warning")
	}
}

func TestDrawToolRareOverride(t *testing.T) {
	// Second Intn picks jasper, the override roll replaces it.
	tool, mat := DrawTool(&scripted{ints: []int{1, 2}, floats: []float64{0.05}})
	if tool.Key != "knife" || mat != RareMaterial {
		t.Fatalf("got %v %v, want knife obsidian", tool, mat)
	}
	_, mat = DrawTool(&scripted{ints: []int{1, 2}, floats: []float64{0.10}})
	if mat.Key != "jasper" {
		t.Fatalf("override applied at p=0.10 boundary: %v", mat)
	}
}

func TestDrawToolConsumesTwoStages(t *testing.T) {
	// The override is an independent draw even when the first stage already
	// hit the rare material.
	rnd := &scripted{ints: []int{0, 1}, floats: []float64{0.5}}
	_, mat := DrawTool(rnd)
	if mat.Key != "obsidian" {
		t.Fatalf("material = %v", mat)
	}
	if len(rnd.floats) != 0 {
		t.Fatal("override roll was not consumed")
	}
}

func TestRecordAppendsEntry(t *testing.T) {
	s := state.New("2026-02-10")
	Record(s, t0, &scripted{ints: []int{3, 3}})
	if len(s.WeeklyLog) != 1 {
		t.Fatalf("log len = %d", len(s.WeeklyLog))
	}
	e := s.WeeklyLog[0]
	if e.Date != "2026-02-10" || e.Category != "Adze" || e.Variant != "Quartzite" || e.Milestone {
		t.Fatalf("entry = %+v", e)
	}
}

func TestCatalogKeys(t *testing.T) {
	want := []string{"arrowhead", "knife", "scraper", "axe", "spear_tip", "harpoon", "drill"}
	if len(Tools) != len(want) {
		t.Fatalf("%d tools, want %d", len(Tools), len(want))
	}
	for i, k := range want {
		if Tools[i].Key != k {
			t.Errorf("Tools[%d].Key = %q, want %q", i, Tools[i].Key, k)
		}
	}
}
