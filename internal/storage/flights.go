package storage

import (
	"fmt"
	"time"
)

// Outcome is how a flight ended.
type Outcome string

const (
	OutcomeLanded  Outcome = "landed"
	OutcomeCrashed Outcome = "crashed"
	OutcomeQuit    Outcome = "quit"
)

// Valid reports whether o is a known outcome.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeLanded, OutcomeCrashed, OutcomeQuit:
		return true
	}
	return false
}

// Flight is one entry of the flight log: a single descent from spawn to
// touchdown, crash or quit.
type Flight struct {
	ID            int64
	GameID        string
	Level         int
	Outcome       Outcome
	Score         int // game score when the flight ended
	FuelLeft      float64
	DurationTicks int
	CreatedAt     time.Time
}

// SaveFlight appends a flight to the log.
// Returns the ID of the inserted record.
func (s *Store) SaveFlight(f Flight) (int64, error) {
	if !f.Outcome.Valid() {
		return 0, fmt.Errorf("storage: invalid flight outcome %q", f.Outcome)
	}

	res, err := s.db.Exec(
		`INSERT INTO flights (game_id, level, outcome, score, fuel_left, duration_ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		f.GameID, f.Level, string(f.Outcome), f.Score, f.FuelLeft, f.DurationTicks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save flight: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentFlights retrieves the most recent flights for a game, newest first.
func (s *Store) RecentFlights(gameID string, limit int) ([]Flight, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level, outcome, score, fuel_left, duration_ticks, created_at
		 FROM flights
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flights: %w", err)
	}
	defer rows.Close()

	var flights []Flight
	for rows.Next() {
		var f Flight
		var outcome string
		var createdAt any
		if err := rows.Scan(&f.ID, &f.GameID, &f.Level, &outcome, &f.Score, &f.FuelLeft, &f.DurationTicks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		f.Outcome = Outcome(outcome)
		f.CreatedAt = parseTime(createdAt)
		flights = append(flights, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return flights, nil
}

// LandingCount returns the number of successful landings for a game.
func (s *Store) LandingCount(gameID string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM flights WHERE game_id = ? AND outcome = ?",
		gameID, string(OutcomeLanded),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count landings: %w", err)
	}
	return n, nil
}
