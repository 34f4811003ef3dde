package database

import "github.com/haryoiro/golha/internal/structures"

// DB is the storage used by the systems. SQLiteDatabase implements it.
type DB interface {
	Add(entry structures.DatabaseEntry) error
	Remove(mediaURL string) error
	Get(mediaURL string) (*structures.DatabaseEntry, bool)
	GetAll() []structures.DatabaseEntry
	UpdatePlayStats(p *structures.Program) error
	GetRecentlyPlayed(limit int) []structures.DatabaseEntry
	SaveAppState(key, value string) error
	GetAppState(key string) (string, bool)
	Close() error
}
