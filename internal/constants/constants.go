package constants

import "time"

// Catalog defaults
const (
	DefaultCatalogSource    = "programs.json"
	DefaultBatchSize        = 13
	DefaultSearchDebounceMs = 300
	StorageKey              = "golha_player_state"
)

// Auto-advance policies applied when a program ends
const (
	AutoAdvanceNext   = "next"
	AutoAdvanceRandom = "random"
	AutoAdvanceOff    = "off"
)

// Queue and worker pool sizes
const (
	DefaultQueueSize       = 100
	DefaultActionQueueSize = 100
)

// Timing constants
const (
	PlayerUpdateInterval = 100 * time.Millisecond
	UIRefreshInterval    = 250 * time.Millisecond
	LoaderTickInterval   = 30 * time.Millisecond
	LoaderSteps          = 50
	StatusMessageTTL     = 4 * time.Second
)

// UI constants
const (
	DefaultPlayerHeight = 5
	DefaultMaxWidth     = 80
	ScrollPadding       = 2
)

// Audio player constants
const (
	SecondsPerMinute = 60
	VolumeStep       = 0.05 // 5% volume change per step
)
