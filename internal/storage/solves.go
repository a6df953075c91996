package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve sources.
const (
	SourceCLI = "cli"
	SourceBLE = "ble"
)

// Solve is one recorded solve: the scramble, the solution that was verified
// against it, and how the solution splits across the four pipeline phases.
type Solve struct {
	SolveID     string
	CreatedAt   time.Time
	Source      string
	Scramble    string
	Solution    string
	ScrambleLen int
	SolutionLen int
	DurationMs  int64

	CornerPlacementTurns   int
	CornerOrientationTurns int
	EdgePlacementTurns     int
	EdgeOrientationTurns   int
}

// Stats aggregates the recorded solves.
type Stats struct {
	Count          int
	AvgSolutionLen float64
	MinSolutionLen int
	MaxSolutionLen int
	AvgDurationMs  float64
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create inserts a solve record. A zero SolveID is replaced with a fresh
// UUID and a zero CreatedAt with the current time; both are returned on the
// record.
func (r *SolveRepository) Create(s *Solve) error {
	if s.SolveID == "" {
		s.SolveID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if s.Source == "" {
		s.Source = SourceCLI
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (
			solve_id, created_at, source, scramble, solution,
			scramble_len, solution_len, duration_ms,
			corner_placement_turns, corner_orientation_turns,
			edge_placement_turns, edge_orientation_turns
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.SolveID, s.CreatedAt.Format(time.RFC3339), s.Source, s.Scramble, s.Solution,
		s.ScrambleLen, s.SolutionLen, s.DurationMs,
		s.CornerPlacementTurns, s.CornerOrientationTurns,
		s.EdgePlacementTurns, s.EdgeOrientationTurns)

	if err != nil {
		return fmt.Errorf("failed to create solve: %w", err)
	}

	return nil
}

const solveColumns = `
	solve_id, created_at, source, scramble, solution,
	scramble_len, solution_len, duration_ms,
	corner_placement_turns, corner_orientation_turns,
	edge_placement_turns, edge_orientation_turns
`

func scanSolve(row interface{ Scan(...any) error }) (*Solve, error) {
	var s Solve
	var createdAtStr string

	err := row.Scan(
		&s.SolveID, &createdAtStr, &s.Source, &s.Scramble, &s.Solution,
		&s.ScrambleLen, &s.SolutionLen, &s.DurationMs,
		&s.CornerPlacementTurns, &s.CornerOrientationTurns,
		&s.EdgePlacementTurns, &s.EdgeOrientationTurns,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// Get retrieves a solve by ID. Returns nil without error when no solve with
// that ID exists.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(
		"SELECT "+solveColumns+" FROM solves WHERE solve_id = ?", solveID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent solve.
func (r *SolveRepository) GetLast() (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(
		"SELECT " + solveColumns + " FROM solves ORDER BY created_at DESC, solve_id LIMIT 1"))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}
	return s, nil
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(
		"SELECT "+solveColumns+" FROM solves ORDER BY created_at DESC, solve_id LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}

	return solves, rows.Err()
}

// Delete deletes a solve.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

// Stats aggregates all recorded solves. Returns a zero-count Stats when the
// table is empty.
func (r *SolveRepository) Stats() (*Stats, error) {
	var st Stats
	var avgLen, avgDur sql.NullFloat64
	var minLen, maxLen sql.NullInt64

	err := r.db.QueryRow(`
		SELECT COUNT(*), AVG(solution_len), MIN(solution_len), MAX(solution_len), AVG(duration_ms)
		FROM solves
	`).Scan(&st.Count, &avgLen, &minLen, &maxLen, &avgDur)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate solves: %w", err)
	}

	st.AvgSolutionLen = avgLen.Float64
	st.MinSolutionLen = int(minLen.Int64)
	st.MaxSolutionLen = int(maxLen.Int64)
	st.AvgDurationMs = avgDur.Float64

	return &st, nil
}
