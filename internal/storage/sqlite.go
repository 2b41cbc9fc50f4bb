// Package storage persists scores: a SQLite score table for the game itself
// and the plain "name;value" scoreboard file for import and export.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id    TEXT    NOT NULL,
	player     TEXT    NOT NULL DEFAULT '',
	score      INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS scores_by_board  ON scores(game_id, score DESC);
CREATE INDEX IF NOT EXISTS scores_by_player ON scores(game_id, player);
`

const (
	insertScore  = `INSERT INTO scores (game_id, player, score) VALUES (?, ?, ?)`
	selectScores = `SELECT id, game_id, player, score, created_at FROM scores
WHERE game_id = ? ORDER BY score DESC, id ASC`
	selectBest  = `SELECT MAX(score) FROM scores WHERE game_id = ?`
	deleteBoard = `DELETE FROM scores WHERE game_id = ?`
	deleteNamed = `DELETE FROM scores WHERE game_id = ? AND player = ?`
	selectStats = `SELECT COUNT(*), COUNT(DISTINCT player), COALESCE(MAX(score), 0),
COALESCE(AVG(score), 0), COALESCE(SUM(score), 0) FROM scores WHERE game_id = ?`
	selectLast = `SELECT created_at FROM scores WHERE game_id = ?
ORDER BY created_at DESC, id DESC LIMIT 1`
)

// sqliteTime is the text layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store is a score table backed by a single SQLite file.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

// Open opens (creating if needed) the database at path. A leading ~ is
// resolved against the user's home directory.
func Open(path string) (*Store, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: resolve home: %w", err)
		}
		path = filepath.Join(home, rest)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: ping %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore appends a result and returns its row id.
func (s *Store) SaveScore(gameID, player string, score int) (int64, error) {
	res, err := s.db.Exec(insertScore, gameID, player, score)
	if err != nil {
		return 0, fmt.Errorf("storage: save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: save score: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit results for a board, highest first.
// Equal scores keep insertion order. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.scores(selectScores+" LIMIT ?", gameID, limit)
}

// AllScores returns every result for a board in TopScores order.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.scores(selectScores, gameID)
}

func (s *Store) scores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e  ScoreEntry
			at any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &at); err != nil {
			return nil, fmt.Errorf("storage: scan score: %w", err)
		}
		e.CreatedAt = toTime(at)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read scores: %w", err)
	}
	return out, nil
}

// toTime accepts either a decoded time or SQLite's timestamp text.
func toTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore is the best result on a board, or 0 for an empty board.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(selectBest, gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores drops every result on a board.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec(deleteBoard, gameID); err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	return nil
}

// RemovePlayer deletes every score a player holds for the given game and
// returns how many were removed.
func (s *Store) RemovePlayer(gameID, player string) (int64, error) {
	res, err := s.db.Exec(deleteNamed, gameID, player)
	if err != nil {
		return 0, fmt.Errorf("storage: remove player %q: %w", player, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: remove player %q: %w", player, err)
	}
	return n, nil
}

// Import stores scoreboard entries for a game in one transaction.
func (s *Store) Import(gameID string, entries []Entry) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: begin import: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	stmt, err := tx.Prepare(insertScore)
	if err != nil {
		return fmt.Errorf("storage: prepare import: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(gameID, e.Name, e.Value); err != nil {
			return fmt.Errorf("storage: import %q: %w", e.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: commit import: %w", err)
	}
	return nil
}

// GameStats aggregates one board's results.
type GameStats struct {
	GameID     string
	GamesCount int
	Players    int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats summarizes a board. LastPlayed stays zero for an empty board.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	st := &GameStats{GameID: gameID}
	err := s.db.QueryRow(selectStats, gameID).
		Scan(&st.GamesCount, &st.Players, &st.HighScore, &st.AvgScore, &st.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: stats for %s: %w", gameID, err)
	}

	var at any
	switch err := s.db.QueryRow(selectLast, gameID).Scan(&at); {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: last played for %s: %w", gameID, err)
	default:
		st.LastPlayed = toTime(at)
	}
	return st, nil
}
