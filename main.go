package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/haryoiro/golha/internal/api"
	"github.com/haryoiro/golha/internal/config"
	"github.com/haryoiro/golha/internal/database"
	"github.com/haryoiro/golha/internal/export"
	"github.com/haryoiro/golha/internal/logger"
	"github.com/haryoiro/golha/internal/structures"
	"github.com/haryoiro/golha/internal/systems"
	"github.com/haryoiro/golha/internal/ui"
	"github.com/haryoiro/golha/internal/version"
)

const appName = "golha"

func main() {
	var args Args
	arg.MustParse(&args)

	if args.Version {
		fmt.Println(version.Info())
		return
	}

	// Get configuration directories
	configDir, cacheDir, dataDir := getDirectories()

	if args.Files {
		fmt.Println("# golha file locations:")
		fmt.Printf("  Config:   %s\n", filepath.Join(configDir, "config.toml"))
		fmt.Printf("  Cache:    %s\n", cacheDir)
		fmt.Printf("  Database: %s\n", filepath.Join(dataDir, "golha.db"))
		fmt.Printf("  Logs:     %s\n", filepath.Join(dataDir, "golha.log"))
		return
	}

	if args.ClearCache {
		clearCache(configDir, cacheDir, dataDir)
		return
	}

	// Initialize logging
	logFile := filepath.Join(dataDir, "golha.log")
	if err := initLogging(logFile, args.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.CloseLogger()

	// Load configuration
	cfg := loadConfiguration(filepath.Join(configDir, "config.toml"))
	if args.Source != "" {
		cfg.CatalogSource = args.Source
	}
	logger.Info("Catalog source: %s", cfg.CatalogSource)

	switch {
	case args.List:
		if err := listCatalog(cfg, args.Query); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	case args.ExportM3U != "":
		if err := exportCatalog(cfg, args.Query, args.ExportM3U); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	// Initialize SQLite database
	db := initializeDatabase(dataDir)
	defer func() {
		logger.Debug("Closing database connection")
		db.Close()
	}()

	if args.Recent > 0 {
		printRecent(db, args.Recent)
		return
	}

	// Initialize and start systems
	appSystems := initializeSystems(cfg, db, cacheDir)
	defer func() {
		logger.Debug("Stopping all application systems...")
		appSystems.Stop()
	}()

	// Run the UI
	logger.Debug("Starting UI")
	if err := ui.RunSimple(appSystems, cfg); err != nil {
		logger.Error("Application error: %v", err)
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		return
	}

	logger.Info("golha application shutdown complete")
}

func getDirectories() (config, cache, data string) {
	// Use XDG Base Directory specification
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		config = filepath.Join(xdgConfig, appName)
	} else if home, err := os.UserHomeDir(); err == nil {
		config = filepath.Join(home, ".config", appName)
	}

	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		cache = filepath.Join(xdgCache, appName)
	} else if home, err := os.UserHomeDir(); err == nil {
		cache = filepath.Join(home, ".cache", appName)
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		data = filepath.Join(xdgData, appName)
	} else if home, err := os.UserHomeDir(); err == nil {
		data = filepath.Join(home, ".local", "share", appName)
	}

	os.MkdirAll(config, 0755)
	os.MkdirAll(cache, 0755)
	os.MkdirAll(data, 0755)

	return
}

func clearCache(configDir, cacheDir, dataDir string) {
	fmt.Println("⚠️  WARNING: This will delete all cached data including:")
	fmt.Println("  - Downloaded programs")
	fmt.Println("  - Database (resume point, listening history)")
	fmt.Println("  - Logs")
	fmt.Println("\nAre you sure you want to continue? (y/N): ")

	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "y" && confirm != "Y" {
		fmt.Println("Cache clearing cancelled.")
		return
	}

	if err := os.RemoveAll(cacheDir); err != nil {
		fmt.Printf("Failed to clear cache directory: %v\n", err)
	} else {
		fmt.Printf("✓ Cleared cache directory: %s\n", cacheDir)
	}

	if err := os.RemoveAll(dataDir); err != nil {
		fmt.Printf("Failed to clear data directory: %v\n", err)
	} else {
		fmt.Printf("✓ Cleared data directory: %s\n", dataDir)
	}

	fmt.Printf("Note: Configuration files in %s were preserved\n", configDir)
}

func initLogging(logFile string, debugMode bool) error {
	logLevel := logger.INFO
	if debugMode {
		logLevel = logger.DEBUG
	}

	if err := logger.InitLogger(logFile, logLevel); err != nil {
		return err
	}

	logger.Info("Logger initialized with debug mode: %v", debugMode)
	return nil
}

func loadConfiguration(configPath string) *structures.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("Failed to load config, using defaults: %v", err)
		cfg = config.Default()

		// Save default config for future use
		if err := config.Save(cfg, configPath); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		} else {
			logger.Info("Created default config at: %s", configPath)
		}
	} else {
		logger.Debug("Configuration loaded successfully from: %s", configPath)
	}
	return cfg
}

func initializeDatabase(dataDir string) database.DB {
	db, err := database.OpenSQLite(filepath.Join(dataDir, "golha.db"))
	if err != nil {
		logger.Fatal("Failed to open SQLite database: %v", err)
	}
	logger.Debug("SQLite database opened successfully")
	return db
}

func initializeSystems(cfg *structures.Config, db database.DB, cacheDir string) *systems.Systems {
	logger.Debug("Initializing application systems...")
	appSystems := systems.New(cfg, db, cacheDir)

	if err := appSystems.Start(); err != nil {
		logger.Fatal("Failed to start systems: %v", err)
	}
	logger.Info("All systems started successfully")

	return appSystems
}

// searchCatalog loads the catalog once and filters it without the UI
func searchCatalog(cfg *structures.Config, query string) ([]*structures.Program, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	catalog := systems.NewCatalogSystem(api.NewClient(nil), cfg.CatalogSource, rng)

	if _, err := catalog.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return catalog.Search(query)
}

func exportCatalog(cfg *structures.Config, query, path string) error {
	view, err := searchCatalog(cfg, query)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	n, err := export.WriteM3U(f, view)
	if err != nil {
		return err
	}
	logger.Info("Exported %d programs to %s", n, path)
	fmt.Printf("✓ Exported %d programs to %s\n", n, path)
	return nil
}
