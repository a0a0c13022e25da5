package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func mustSave(t *testing.T, store *Store, r Result) {
	t.Helper()
	if _, err := store.SaveScore(r); err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", r, err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, Result{GameID: "tetris", Score: 700, Lines: 7})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("tetris")
	if err != nil || high != 700 {
		t.Errorf("HighScore() after reopen = %d, %v; expected 700", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "tetris", Player: "ana", Score: 100, Lines: 1})
	mustSave(t, store, Result{GameID: "tetris", Score: 0})
	mustSave(t, store, Result{GameID: "tetris", Player: "bo", Score: 400, Lines: 4})
	mustSave(t, store, Result{GameID: "tetris_fixed", Score: 900, Lines: 9})

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 400 || scores[1].Score != 100 || scores[2].Score != 0 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Player != "bo" || scores[0].Lines != 4 {
		t.Errorf("top entry = %+v, expected bo with 4 lines", scores[0])
	}
	if scores[2].Player != "anonymous" {
		t.Errorf("empty player stored as %q, expected anonymous", scores[2].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	fixed, err := store.TopScores("tetris_fixed", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(fixed) != 1 {
		t.Errorf("Expected 1 fixed-speed score, got %d", len(fixed))
	}
}

func TestStoreSaveRejectsEmptyGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(Result{Score: 10}); err == nil {
		t.Error("SaveScore() with empty game id should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, Result{GameID: "tetris", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10.
	all, err := store.TopScores("tetris", 0)
	if err != nil || len(all) != 5 {
		t.Errorf("TopScores(0) = %d entries, %v; expected 5", len(all), err)
	}
}

func TestStoreTopScoresTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, Result{GameID: "tetris", Player: "first", Score: 200})
	mustSave(t, store, Result{GameID: "tetris", Player: "second", Score: 200})

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatal(err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("tie order = %s, %s", scores[0].Player, scores[1].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, Result{GameID: "tetris", Score: 100})
	mustSave(t, store, Result{GameID: "tetris", Score: 300})
	mustSave(t, store, Result{GameID: "tetris", Score: 200})

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "tetris", Score: 100})
	mustSave(t, store, Result{GameID: "tetris", Score: 200})
	mustSave(t, store, Result{GameID: "tetris_fixed", Score: 300})

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("tetris", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	other, _ := store.TopScores("tetris_fixed", 10)
	if len(other) != 1 {
		t.Errorf("tetris_fixed scores should not be affected by clearing tetris")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Result{GameID: "tetris", Score: 100, Lines: 1})
	mustSave(t, store, Result{GameID: "tetris", Score: 300, Lines: 3})
	mustSave(t, store, Result{GameID: "tetris_fixed", Score: 50})

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalLines != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if time.Since(stats.LastPlayed) > time.Hour {
		t.Errorf("LastPlayed = %v, expected recent", stats.LastPlayed)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["tetris_fixed"].GamesCount != 1 {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.tetris/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".tetris", "scores.db"); got != want {
		t.Errorf("ExpandPath() = %q, expected %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("ExpandPath() changed an absolute path: %q", got)
	}
}

func TestParseTime(t *testing.T) {
	if got := parseTime("2025-03-01 12:30:00"); got.Year() != 2025 || got.Hour() != 12 {
		t.Errorf("parseTime(sqlite text) = %v", got)
	}
	now := time.Now()
	if got := parseTime(now); !got.Equal(now) {
		t.Errorf("parseTime(time.Time) = %v", got)
	}
	if got := parseTime(nil); !got.IsZero() {
		t.Errorf("parseTime(nil) = %v, expected zero", got)
	}
}
