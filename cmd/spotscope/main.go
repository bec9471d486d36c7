// Package main is the entry point for the spotscope terminal application.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oakbery/spotscope-tui/internal/app"
	"github.com/oakbery/spotscope-tui/internal/config"
	"github.com/oakbery/spotscope-tui/internal/logger"
	"github.com/oakbery/spotscope-tui/internal/services"
	"github.com/oakbery/spotscope-tui/internal/ui/tabs/artists"
	"github.com/oakbery/spotscope-tui/internal/ui/tabs/flow"
	"github.com/oakbery/spotscope-tui/internal/ui/tabs/genres"
	"github.com/oakbery/spotscope-tui/internal/ui/tabs/info"
	"github.com/oakbery/spotscope-tui/internal/ui/tabs/tracks"
	"github.com/oakbery/spotscope-tui/internal/version"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Handle help flag
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	// 1. Load configuration from .env files and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Set up file-backed logging; the TUI owns the terminal
	if err := logger.Init(cfg.LogPath); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	// 3. Initialize the service manager, which loads the dataset and starts
	// the file watcher
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	// 4. Create the root Bubble Tea model
	model := app.NewModel(svcManager, cfg)
	defer model.Close()

	// 5. Initialize tabs with shared state
	state := model.GetState()
	tabs := []app.Tab{
		artists.New(state),    // Tab 0: Artists - artist ranking
		genres.New(state),     // Tab 1: Genres - genre treemap
		flow.New(state),       // Tab 2: Flow - popularity flow
		tracks.New(state),     // Tab 3: Tracks - track ranking and scatter
		info.New(state, cfg),  // Tab 4: Info - dataset and app info
	}
	model.SetTabs(tabs)

	// 6. Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// 7. Create and configure the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	// 8. Run the TUI program
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`spotscope - terminal explorer for Spotify-style track datasets

Usage:
  spotscope [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-5             Switch between tabs (Artists, Genres, Flow, Tracks, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  r               Reload the dataset
  e               Export rankings to CSV
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  DATASET_PATH      Track dataset file (.csv, .db, .sqlite)
  LOG_PATH          Log file path (empty disables logging)
  EXPORT_DIR        Directory for CSV exports
  RESIZE_DEBOUNCE   Resize recompute delay (default: 150ms)
  WATCH_DATASET     Reload when the dataset file changes (default: true)
  NOTIFY_ON_RELOAD  Desktop notification on reload (default: false)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/spotscope/.env
  - ~/.spotscope/.env`)
}
