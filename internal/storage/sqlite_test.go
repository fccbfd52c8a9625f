package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreStartsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats != (Stats{}) {
		t.Errorf("Stats() on empty ledger = %+v, expected zero", stats)
	}

	rounds, err := store.TopRounds(5)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("Expected no rounds, got %d", len(rounds))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []RoundResult{
		{Score: 4, Length: 7, Ticks: 120, Duration: 6 * time.Second},
		{Score: 0, Length: 3, Ticks: 22, Duration: 1100 * time.Millisecond},
		{Score: 9, Length: 12, Ticks: 400, Duration: 20 * time.Second},
	}
	for _, r := range results {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Should be sorted descending
	if rounds[0].Score != 9 || rounds[1].Score != 4 || rounds[2].Score != 0 {
		t.Errorf("Rounds not in expected order: %+v", rounds)
	}
	if rounds[0].Length != 12 || rounds[0].Ticks != 400 || rounds[0].Duration != 20*time.Second {
		t.Errorf("Top round fields = %+v", rounds[0].RoundResult)
	}
}

func TestStoreTopRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(RoundResult{Score: i + 1, Length: i + 4})
	}

	rounds, err := store.TopRounds(3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(rounds))
	}
	if rounds[0].Score != 5 || rounds[1].Score != 4 || rounds[2].Score != 3 {
		t.Errorf("Rounds not in expected order: %+v", rounds)
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRound(RoundResult{Score: 2, Length: 5})
	second, _ := store.SaveRound(RoundResult{Score: 2, Length: 5})

	rounds, err := store.TopRounds(2)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if rounds[0].ID != first || rounds[1].ID != second {
		t.Errorf("Tie order = [%d %d], expected [%d %d]", rounds[0].ID, rounds[1].ID, first, second)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundResult{Score: 1, Length: 4, Ticks: 10})
	store.SaveRound(RoundResult{Score: 5, Length: 8, Ticks: 30})
	store.SaveRound(RoundResult{Score: 3, Length: 6, Ticks: 20})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 3 {
		t.Errorf("Rounds = %d, expected 3", stats.Rounds)
	}
	if stats.BestScore != 5 {
		t.Errorf("BestScore = %d, expected 5", stats.BestScore)
	}
	if stats.AvgScore != 3 {
		t.Errorf("AvgScore = %v, expected 3", stats.AvgScore)
	}
	if stats.TotalTicks != 60 {
		t.Errorf("TotalTicks = %d, expected 60", stats.TotalTicks)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveRound(RoundResult{Score: 7, Length: 10})

	stats, err := b.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 0 {
		t.Errorf("Second ledger sees %d rounds, expected 0", stats.Rounds)
	}
}

func TestParseTime(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	if got := parseTime(ts); !got.Equal(ts) {
		t.Errorf("parseTime(time.Time) = %v", got)
	}
	if got := parseTime("2024-03-01 12:30:00"); !got.Equal(ts) {
		t.Errorf("parseTime(string) = %v", got)
	}
	if got := parseTime(nil); !got.IsZero() {
		t.Errorf("parseTime(nil) = %v, expected zero", got)
	}
}
