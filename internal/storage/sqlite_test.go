package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveRunAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun(RunRecord{Mode: "normal", Score: 12.5, Ticks: 12, Kills: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID == 0 {
		t.Error("SaveRun() should set the row ID")
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a uuid: %v", saved.RunID, err)
	}
	if saved.Source != "local" {
		t.Errorf("Source = %q, expected local", saved.Source)
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for saved run")
	}
	if got.Score != 12.5 || got.Ticks != 12 || got.Kills != 1 || got.Mode != "normal" {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("does-not-exist")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("RunByID() = %+v, expected nil", got)
	}
}

func TestTopRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []float64{100, 50, 200, 150.5, 75} {
		if _, err := store.SaveRun(RunRecord{Mode: "normal", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun(RunRecord{Mode: "hard", Score: 500})

	runs, err := store.TopRuns("normal", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	want := []float64{200, 150.5, 100}
	for i, w := range want {
		if runs[i].Score != w {
			t.Errorf("runs[%d].Score = %v, expected %v", i, runs[i].Score, w)
		}
	}

	all, _ := store.TopRuns("normal", 0)
	if len(all) != 5 {
		t.Errorf("default limit returned %d runs, expected 5", len(all))
	}
}

func TestTopRunsTieKeepsEarlier(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun(RunRecord{Mode: "easy", Score: 10})
	store.SaveRun(RunRecord{Mode: "easy", Score: 10})

	runs, err := store.TopRuns("easy", 1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != first.RunID {
		t.Errorf("tie should favour the earlier run, got %+v", runs)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %v", high)
	}

	store.SaveRun(RunRecord{Mode: "normal", Score: 100})
	store.SaveRun(RunRecord{Mode: "normal", Score: 300.25})
	store.SaveRun(RunRecord{Mode: "normal", Score: 200})

	high, err = store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300.25 {
		t.Errorf("Expected high score of 300.25, got %v", high)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Mode: "normal", Score: 100})
	store.SaveRun(RunRecord{Mode: "normal", Score: 200})
	store.SaveRun(RunRecord{Mode: "hard", Score: 300})

	if err := store.ClearRuns("normal"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	normal, _ := store.TopRuns("normal", 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal runs after clear, got %d", len(normal))
	}

	hard, _ := store.TopRuns("hard", 10)
	if len(hard) != 1 {
		t.Error("hard runs should not be affected by clearing normal")
	}
}

func TestModeStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.ModeStats("normal")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(RunRecord{Mode: "normal", Score: 10, Ticks: 10, Kills: 2})
	store.SaveRun(RunRecord{Mode: "normal", Score: 30, Ticks: 25, Kills: 3})

	stats, err := store.ModeStats("normal")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalKills != 5 || stats.LongestRun != 25 {
		t.Errorf("kills=%d longest=%d, expected 5 and 25", stats.TotalKills, stats.LongestRun)
	}

	all, err := store.AllModesStats()
	if err != nil {
		t.Fatalf("AllModesStats() failed: %v", err)
	}
	if len(all) != 1 || all["normal"] == nil || all["normal"].RunsCount != 2 {
		t.Errorf("AllModesStats() = %v", all)
	}
}
