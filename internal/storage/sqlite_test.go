package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/core"
)

func openTemp(t *testing.T) *Store {
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
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("match3", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("match3", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("match3", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("match3_endless", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for campaign
	scores, err := store.TopScores("match3", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for endless
	endlessScores, err := store.TopScores("match3_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(endlessScores) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endlessScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("match3", 100)
	store.SaveScore("match3", 300)
	store.SaveScore("match3", 200)

	high, err = store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("match3", 100)
	store.SaveScore("match3", 200)
	store.SaveScore("match3_endless", 300)

	// Clear only campaign scores
	err = store.ClearScores("match3")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Campaign should be empty
	campaignScores, _ := store.TopScores("match3", 10)
	if len(campaignScores) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaignScores))
	}

	// Endless should still have scores
	endlessScores, _ := store.TopScores("match3_endless", 10)
	if len(endlessScores) != 1 {
		t.Errorf("Endless scores should not be affected by clearing campaign")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreLevelResults(t *testing.T) {
	store := openTemp(t)

	results := []core.LevelResult{
		{LevelID: "01-orchard", Score: 120, StepsLeft: 0, Cleared: false},
		{LevelID: "01-orchard", Score: 340, StepsLeft: 4, Cleared: true},
		{LevelID: "01-orchard", Score: 280, StepsLeft: 6, Cleared: true},
		{LevelID: "02-garden", Score: 90, StepsLeft: 0, Cleared: false},
	}
	for _, r := range results {
		if _, err := store.SaveLevelResult("run-1", r); err != nil {
			t.Fatalf("SaveLevelResult() failed: %v", err)
		}
	}

	best, err := store.BestLevelResults()
	if err != nil {
		t.Fatalf("BestLevelResults() failed: %v", err)
	}

	orchard := best["01-orchard"]
	if orchard.Attempts != 3 || orchard.Clears != 2 {
		t.Errorf("orchard attempts/clears = %d/%d, want 3/2", orchard.Attempts, orchard.Clears)
	}
	if orchard.BestScore != 340 {
		t.Errorf("orchard best = %d, want 340", orchard.BestScore)
	}
	if orchard.MostStepsLeft != 6 {
		t.Errorf("orchard most steps left = %d, want 6", orchard.MostStepsLeft)
	}

	garden := best["02-garden"]
	if garden.Clears != 0 || garden.BestScore != 0 {
		t.Errorf("failed-only level should have no best score, got %+v", garden)
	}
	if _, ok := best["03-cross"]; ok {
		t.Error("unplayed level should not appear")
	}
}

func TestStoreRunResults(t *testing.T) {
	store := openTemp(t)

	store.SaveLevelResult("run-a", core.LevelResult{LevelID: "01-orchard", Score: 100, Cleared: true})
	store.SaveLevelResult("run-b", core.LevelResult{LevelID: "01-orchard", Score: 50})
	store.SaveLevelResult("run-a", core.LevelResult{LevelID: "02-garden", Score: 200, StepsLeft: 2, Cleared: true})

	runs, err := store.RunResults("run-a")
	if err != nil {
		t.Fatalf("RunResults() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 results for run-a, got %d", len(runs))
	}
	if runs[0].LevelID != "01-orchard" || runs[1].LevelID != "02-garden" {
		t.Errorf("Results not in play order: %+v", runs)
	}
	if !runs[1].Cleared || runs[1].StepsLeft != 2 {
		t.Errorf("Second result = %+v, want cleared with 2 steps left", runs[1])
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("match3", 100)
	store.SaveScore("match3", 300)
	store.SaveScore("match3_endless", 50)

	stats, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v, want 2 games, high 300, total 400", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 modes, got %d", len(all))
	}

	empty, err := store.GetGameStats("unknown")
	if err != nil {
		t.Fatalf("GetGameStats() on empty mode failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}
