package hunger

import (
	"math"
	"testing"
	"time"

	"github.com/keshon/toolmaker/internal/state"
)

var t0 = time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestDeficitZeroWhenNeverReplenished(t *testing.T) {
	s := state.New("2026-02-10")
	if got := DeficitHours(s, t0); got != 0 {
		t.Fatalf("DeficitHours = %v, want 0", got)
	}
	if ModeAt(s, t0) != Normal {
		t.Fatal("never-fed resource should be normal")
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		hours float64
		want  Mode
	}{
		{-30, Normal},
		{0, Normal},
		{11.999, Normal},
		{12, Warning},
		{23.999, Warning},
		{24, Critical},
		{100, Critical},
	}
	for _, c := range cases {
		if got := Classify(c.hours); got != c.want {
			t.Errorf("Classify(%v) = %v, want %v", c.hours, got, c.want)
		}
	}
}

func TestModeAtExactThresholds(t *testing.T) {
	s := state.New("2026-02-10")
	s.LastReplenishAt = state.Ptr(t0.Add(-12 * time.Hour))
	if got := ModeAt(s, t0); got != Warning {
		t.Errorf("at exactly 12h mode = %v, want warning", got)
	}
	s.LastReplenishAt = state.Ptr(t0.Add(-24 * time.Hour))
	if got := ModeAt(s, t0); got != Critical {
		t.Errorf("at exactly 24h mode = %v, want critical", got)
	}
}

func TestReplenishBanksSurplus(t *testing.T) {
	s := state.New("2026-02-10")
	s.LastReplenishAt = state.Ptr(t0.Add(-3 * time.Hour))

	Replenish(s, t0, 12)

	if got := DeficitHours(s, t0); !approx(got, -9) {
		t.Fatalf("deficit after +12h on 3h = %v, want -9", got)
	}
	// The surplus must decay away before warning starts.
	if ModeAt(s, t0.Add(20*time.Hour)) != Normal {
		t.Error("banked credit lost: warning reached before 21h")
	}
	if ModeAt(s, t0.Add(21*time.Hour)) != Warning {
		t.Error("expected warning once 21h elapsed")
	}
}

func TestBankingEqualsSumOfDeltas(t *testing.T) {
	s := state.New("2026-02-10")
	s.LastReplenishAt = state.Ptr(t0)

	now := t0
	want := 0.0
	steps := []struct {
		elapsed time.Duration
		delta   float64
	}{
		{2 * time.Hour, 12},
		{30 * time.Minute, -1},
		{7 * time.Hour, 18},
		{0, 4},
		{45 * time.Minute, -1},
		{26 * time.Hour, 12},
	}
	for i, st := range steps {
		now = now.Add(st.elapsed)
		want += st.elapsed.Hours()
		if st.delta >= 0 {
			Replenish(s, now, st.delta)
		} else {
			Penalize(s, now, -st.delta)
		}
		want -= st.delta
		if got := DeficitHours(s, now); !approx(got, want) {
			t.Fatalf("step %d: deficit = %v, want %v", i, got, want)
		}
	}
}

func TestPenalizeAdvancesDeficit(t *testing.T) {
	s := state.New("2026-02-10")
	s.LastReplenishAt = state.Ptr(t0.Add(-23*time.Hour - 30*time.Minute))
	Penalize(s, t0, 1)
	if got := DeficitHours(s, t0); !approx(got, 24.5) {
		t.Fatalf("deficit = %v, want 24.5", got)
	}
	if ModeAt(s, t0) != Critical {
		t.Fatal("penalty should push into critical")
	}
}

func TestReplenishWithoutReference(t *testing.T) {
	s := state.New("2026-02-10")
	Replenish(s, t0, 4)
	if got := DeficitHours(s, t0); !approx(got, -4) {
		t.Fatalf("deficit = %v, want -4", got)
	}
}

func TestFeedOnlyStartsOnce(t *testing.T) {
	s := state.New("2026-02-10")
	Feed(s, t0)
	Feed(s, t0.Add(5*time.Hour))
	if !s.LastReplenishAt.Equal(t0) {
		t.Fatalf("Feed moved an existing reference: %v", s.LastReplenishAt)
	}
}

func TestRemaining(t *testing.T) {
	s := state.New("2026-02-10")
	s.LastReplenishAt = state.Ptr(t0.Add(-30 * time.Hour))
	m, h := Remaining(s, t0)
	if m != Critical || !approx(h, 6) {
		t.Errorf("Remaining = %v %v, want critical 6", m, h)
	}
	s.LastReplenishAt = state.Ptr(t0.Add(-4 * time.Hour))
	m, h = Remaining(s, t0)
	if m != Normal || !approx(h, 8) {
		t.Errorf("Remaining = %v %v, want normal 8", m, h)
	}
}
