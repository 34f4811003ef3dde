package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/haryoiro/golha/internal/database"
	"github.com/haryoiro/golha/internal/structures"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Args are the command line arguments
type Args struct {
	Source     string `arg:"positional" help:"catalog URL or path to the programs JSON file"`
	Debug      bool   `arg:"--debug" help:"enable debug logging"`
	Files      bool   `arg:"--files" help:"show file locations"`
	ClearCache bool   `arg:"--clear-cache" help:"delete downloads, database and logs"`
	Version    bool   `arg:"--version" help:"show version"`
	Query      string `arg:"-q,--query" help:"search term used by --list and --export-m3u"`
	List       bool   `arg:"-l,--list" help:"print the matching programs and exit"`
	ExportM3U  string `arg:"--export-m3u" placeholder:"FILE" help:"write the matching programs as an M3U playlist"`
	Recent     int    `arg:"--recent" placeholder:"N" help:"print the N most recently played programs"`
}

// Description is shown at the top of --help
func (Args) Description() string {
	return "golha - browse and play the Golha radio archive from the terminal"
}

// outputWidth is the terminal width, or 0 when stdout is not a terminal
func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func listCatalog(cfg *structures.Config, query string) error {
	view, err := searchCatalog(cfg, query)
	if err != nil {
		return err
	}

	width := outputWidth()
	for i, p := range view {
		line := fmt.Sprintf("%4d. %s\t%s", i+1, p.DisplayName(), p.MediaURL)
		if width > 0 {
			line = runewidth.Truncate(strings.ReplaceAll(line, "\t", "  "), width, "...")
		}
		fmt.Println(line)
	}

	if width > 0 {
		fmt.Printf("\n%s programs\n", humanize.Comma(int64(len(view))))
	}
	return nil
}

func printRecent(db database.DB, limit int) {
	entries := db.GetRecentlyPlayed(limit)
	if len(entries) == 0 {
		fmt.Println("Nothing played yet.")
		return
	}

	for i, entry := range entries {
		fmt.Printf("%3d. %s\n     %s\n", i+1, entry.Program.DisplayName(), entry.Program.MediaURL)
	}
}
