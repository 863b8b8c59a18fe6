package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/keshon/toolmaker/internal/clock"
	"github.com/keshon/toolmaker/internal/state"
)

var now = time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

func openAll(t *testing.T) map[string]Storage {
	t.Helper()
	clk := clock.NewManual(now)
	dir := t.TempDir()
	stores := map[string]Storage{}
	for driver, path := range map[string]string{
		DriverJSON:   filepath.Join(dir, "state.json"),
		DriverSQLite: filepath.Join(dir, "state.db"),
	} {
		st, err := Open(driver, path, 2, clk)
		if err != nil {
			t.Fatalf("Open(%s): %v", driver, err)
		}
		t.Cleanup(func() { st.Close() })
		stores[driver] = st
	}
	return stores
}

func TestLoadMissing(t *testing.T) {
	for driver, st := range openAll(t) {
		if _, err := st.Load(context.Background()); !errors.Is(err, state.ErrNotFound) {
			t.Errorf("%s: Load error = %v, want ErrNotFound", driver, err)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	for driver, st := range openAll(t) {
		s := state.New("2026-02-09")
		s.SubjectID = "42"
		s.ProductionTotal = 11
		s.LastReplenishAt = state.Ptr(now.Add(-3 * time.Hour))
		s.WeeklyLog = append(s.WeeklyLog, state.Tool{Date: "2026-02-10", Category: "Adze", Variant: "Jasper", Milestone: true})

		if err := st.Save(ctx, s); err != nil {
			t.Fatalf("%s: Save: %v", driver, err)
		}
		s.ProductionTotal = 12
		if err := st.Save(ctx, s); err != nil {
			t.Fatalf("%s: second Save: %v", driver, err)
		}

		got, err := st.Load(ctx)
		if err != nil {
			t.Fatalf("%s: Load: %v", driver, err)
		}
		if got.SubjectID != "42" || got.ProductionTotal != 12 {
			t.Errorf("%s: loaded %+v", driver, got)
		}
		if got.LastReplenishAt == nil || !got.LastReplenishAt.Equal(*s.LastReplenishAt) {
			t.Errorf("%s: last replenish = %v", driver, got.LastReplenishAt)
		}
		if len(got.WeeklyLog) != 1 || !got.WeeklyLog[0].Milestone {
			t.Errorf("%s: weekly log = %+v", driver, got.WeeklyLog)
		}
	}
}

func TestJSONMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	st, err := NewJSON(path, 0, clock.NewManual(now))
	if err != nil {
		t.Fatalf("NewJSON: %v", err)
	}
	if _, err := st.Load(context.Background()); !errors.Is(err, state.ErrMalformed) {
		t.Fatalf("Load error = %v, want ErrMalformed", err)
	}
}

func TestJSONDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte(`{"production_total": 4}`), 0o644); err != nil {
		t.Fatal(err)
	}
	st, err := NewJSON(path, 0, clock.NewManual(now))
	if err != nil {
		t.Fatalf("NewJSON: %v", err)
	}
	got, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.WeekStartMarker != "2026-02-10" || got.WeeklyLog == nil {
		t.Fatalf("defaults not applied: %+v", got)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open("redis", "x", 0, clock.NewManual(now)); err == nil {
		t.Fatal("Open accepted an unknown driver")
	}
}
