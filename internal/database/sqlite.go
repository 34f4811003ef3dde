package database

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/haryoiro/golha/internal/logger"
	"github.com/haryoiro/golha/internal/structures"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDatabase stores played and downloaded programs plus small app state
type SQLiteDatabase struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates a SQLite database
func OpenSQLite(path string) (*SQLiteDatabase, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = 10000",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	sqliteDB := &SQLiteDatabase{
		db:   db,
		path: path,
	}

	if err := sqliteDB.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sqliteDB, nil
}

func (db *SQLiteDatabase) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS programs (
			media_url TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			source_url TEXT NOT NULL DEFAULT '',
			added_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			file_path TEXT,
			file_size INTEGER DEFAULT 0,
			play_count INTEGER DEFAULT 0,
			last_played DATETIME,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_programs_added_at ON programs(added_at)`,
		`CREATE INDEX IF NOT EXISTS idx_programs_play_count ON programs(play_count)`,

		`CREATE TABLE IF NOT EXISTS listening_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			media_url TEXT NOT NULL,
			played_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (media_url) REFERENCES programs(media_url) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_played_at ON listening_history(played_at)`,

		`CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TRIGGER IF NOT EXISTS update_programs_timestamp
		AFTER UPDATE OF name, source_url, file_path, file_size, play_count ON programs
		BEGIN
			UPDATE programs SET updated_at = CURRENT_TIMESTAMP WHERE media_url = NEW.media_url;
		END`,
	}

	for _, query := range queries {
		if _, err := db.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// Close closes the database
func (db *SQLiteDatabase) Close() error {
	return db.db.Close()
}

// Path returns the database file path
func (db *SQLiteDatabase) Path() string {
	return db.path
}

const selectColumns = `media_url, name, source_url, added_at, file_path, file_size`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (structures.DatabaseEntry, error) {
	var entry structures.DatabaseEntry
	var filePath sql.NullString
	var fileSize sql.NullInt64

	err := row.Scan(
		&entry.Program.MediaURL,
		&entry.Program.Name,
		&entry.Program.SourceURL,
		&entry.AddedAt,
		&filePath,
		&fileSize,
	)
	if err != nil {
		return entry, err
	}

	entry.FilePath = filePath.String
	entry.FileSize = fileSize.Int64
	return entry, nil
}

func (db *SQLiteDatabase) queryEntries(query string, args ...any) []structures.DatabaseEntry {
	rows, err := db.db.Query(query, args...)
	if err != nil {
		logger.Error("Database query failed: %v", err)
		return nil
	}
	defer rows.Close()

	var entries []structures.DatabaseEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			logger.Warn("Skipping unreadable program row: %v", err)
			continue
		}
		entries = append(entries, entry)
	}

	return entries
}

// Add records a downloaded program, keeping its play statistics
func (db *SQLiteDatabase) Add(entry structures.DatabaseEntry) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.db.Exec(`
		INSERT INTO programs (media_url, name, source_url, added_at, file_path, file_size)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(media_url) DO UPDATE SET
			name = excluded.name,
			source_url = excluded.source_url,
			added_at = excluded.added_at,
			file_path = excluded.file_path,
			file_size = excluded.file_size
	`,
		entry.Program.MediaURL,
		entry.Program.Name,
		entry.Program.SourceURL,
		entry.AddedAt,
		entry.FilePath,
		entry.FileSize,
	)
	if err != nil {
		return fmt.Errorf("failed to add program: %w", err)
	}
	return nil
}

// Remove forgets the downloaded file of a program. Play statistics stay.
func (db *SQLiteDatabase) Remove(mediaURL string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.db.Exec(`
		UPDATE programs SET file_path = NULL, file_size = 0
		WHERE media_url = ?
	`, mediaURL)
	return err
}

// Get retrieves a program by media URL
func (db *SQLiteDatabase) Get(mediaURL string) (*structures.DatabaseEntry, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.db.QueryRow(`SELECT `+selectColumns+` FROM programs WHERE media_url = ?`, mediaURL)
	entry, err := scanEntry(row)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Warn("Failed to read program %s: %v", mediaURL, err)
		}
		return nil, false
	}
	return &entry, true
}

// GetAll returns the downloaded programs, newest first
func (db *SQLiteDatabase) GetAll() []structures.DatabaseEntry {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.queryEntries(`
		SELECT ` + selectColumns + `
		FROM programs
		WHERE file_path IS NOT NULL AND file_path != ''
		ORDER BY added_at DESC
	`)
}

// UpdatePlayStats bumps the play count of p and appends to the history
func (db *SQLiteDatabase) UpdatePlayStats(p *structures.Program) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO programs (media_url, name, source_url, play_count, last_played)
		VALUES (?, ?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(media_url) DO UPDATE SET
			play_count = play_count + 1,
			last_played = CURRENT_TIMESTAMP
	`, p.MediaURL, p.Name, p.SourceURL)
	if err != nil {
		return fmt.Errorf("failed to update play count: %w", err)
	}

	if _, err = tx.Exec(`INSERT INTO listening_history (media_url) VALUES (?)`, p.MediaURL); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}

	return tx.Commit()
}

// GetRecentlyPlayed returns the most recently played programs
func (db *SQLiteDatabase) GetRecentlyPlayed(limit int) []structures.DatabaseEntry {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.queryEntries(`
		SELECT p.media_url, p.name, p.source_url, p.added_at, p.file_path, p.file_size
		FROM programs p
		INNER JOIN (
			SELECT media_url, MAX(id) AS last_id
			FROM listening_history
			GROUP BY media_url
		) h ON p.media_url = h.media_url
		ORDER BY h.last_id DESC
		LIMIT ?
	`, limit)
}

// SaveAppState saves application state
func (db *SQLiteDatabase) SaveAppState(key, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.db.Exec(`
		INSERT OR REPLACE INTO app_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`, key, value)
	return err
}

// GetAppState retrieves application state
func (db *SQLiteDatabase) GetAppState(key string) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var value string
	err := db.db.QueryRow("SELECT value FROM app_state WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}
