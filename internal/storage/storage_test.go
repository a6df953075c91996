package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen_AppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion returned error: %v", err)
	}
	if version != 1 {
		t.Errorf("schema version = %d, want 1", version)
	}
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solves.db")

	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopening the database returned error: %v", err)
	}
	defer db.Close()

	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 1 {
		t.Errorf("schema version after reopen = %d, want 1", version)
	}
}

func TestSolveRepository_CreateAndGet(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	s := &Solve{
		Source:      SourceCLI,
		Scramble:    "R U R' U'",
		Solution:    "U R U' R'",
		ScrambleLen: 4,
		SolutionLen: 4,
		DurationMs:  12,

		CornerPlacementTurns:   2,
		CornerOrientationTurns: 0,
		EdgePlacementTurns:     2,
		EdgeOrientationTurns:   0,
	}
	if err := repo.Create(s); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if s.SolveID == "" {
		t.Fatal("Create did not assign a solve ID")
	}
	if s.CreatedAt.IsZero() {
		t.Fatal("Create did not assign a timestamp")
	}

	got, err := repo.Get(s.SolveID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for an existing solve")
	}
	if got.Scramble != s.Scramble || got.Solution != s.Solution {
		t.Errorf("round-tripped solve = %q/%q, want %q/%q", got.Scramble, got.Solution, s.Scramble, s.Solution)
	}
	if got.CornerPlacementTurns != 2 || got.EdgePlacementTurns != 2 {
		t.Errorf("phase turn counts = %d/%d, want 2/2", got.CornerPlacementTurns, got.EdgePlacementTurns)
	}
	if got.Source != SourceCLI {
		t.Errorf("source = %q, want %q", got.Source, SourceCLI)
	}
}

func TestSolveRepository_GetMissing(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	got, err := repo.Get("no-such-id")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != nil {
		t.Errorf("Get returned %+v for a missing solve, want nil", got)
	}
}

func TestSolveRepository_ListAndLast(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s := &Solve{
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			Scramble:    "F",
			Solution:    "f",
			ScrambleLen: 1,
			SolutionLen: 1 + i,
			DurationMs:  int64(10 * (i + 1)),
		}
		if err := repo.Create(s); err != nil {
			t.Fatal(err)
		}
	}

	solves, err := repo.List(10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(solves) != 3 {
		t.Fatalf("List returned %d solves, want 3", len(solves))
	}
	if solves[0].SolutionLen != 3 {
		t.Errorf("newest solve has solution length %d, want 3", solves[0].SolutionLen)
	}

	last, err := repo.GetLast()
	if err != nil {
		t.Fatalf("GetLast returned error: %v", err)
	}
	if last == nil || last.SolveID != solves[0].SolveID {
		t.Error("GetLast disagrees with List ordering")
	}

	limited, err := repo.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d solves", len(limited))
	}
}

func TestSolveRepository_Delete(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	s := &Solve{Scramble: "F", Solution: "f", ScrambleLen: 1, SolutionLen: 1}
	if err := repo.Create(s); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(s.SolveID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	got, err := repo.Get(s.SolveID)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("solve still present after Delete")
	}
}

func TestSolveRepository_Stats(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	st, err := repo.Stats()
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if st.Count != 0 {
		t.Errorf("empty table has count %d", st.Count)
	}

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, n := range []int{10, 20} {
		s := &Solve{
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			Scramble:    "F",
			Solution:    "f",
			ScrambleLen: 1,
			SolutionLen: n,
			DurationMs:  100,
		}
		if err := repo.Create(s); err != nil {
			t.Fatal(err)
		}
	}

	st, err = repo.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Count != 2 {
		t.Errorf("count = %d, want 2", st.Count)
	}
	if st.AvgSolutionLen != 15 {
		t.Errorf("avg solution length = %g, want 15", st.AvgSolutionLen)
	}
	if st.MinSolutionLen != 10 || st.MaxSolutionLen != 20 {
		t.Errorf("min/max = %d/%d, want 10/20", st.MinSolutionLen, st.MaxSolutionLen)
	}
	if st.AvgDurationMs != 100 {
		t.Errorf("avg duration = %g, want 100", st.AvgDurationMs)
	}
}
