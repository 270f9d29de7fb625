package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rver/flashdeck/internal/app"
	"github.com/rver/flashdeck/internal/config"
	"github.com/rver/flashdeck/internal/deck"
	"github.com/rver/flashdeck/internal/history"
	"github.com/rver/flashdeck/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	log, closeLog := openLogger(dbPath)
	defer closeLog()

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts := app.Options{
		Cards:   deck.NewStore(st, log),
		History: history.NewLog(st, log),
		Gateway: st,
		Log:     log,
		Dark:    resolveDark(st, cfg, log),
	}

	return app.Run(opts)
}

// openLogger writes structured logs to flashdeck.log beside the database.
// Stdout belongs to the TUI, so logging falls back to a discard handler
// rather than failing startup over a log file.
func openLogger(dbPath string) (*slog.Logger, func()) {
	path := filepath.Join(filepath.Dir(dbPath), "flashdeck.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { _ = f.Close() }
}

// resolveDark prefers the theme toggled from inside the app over the config
// file. The gateway value is a string for compatibility with older data.
func resolveDark(gw store.Gateway, cfg *config.Config, log *slog.Logger) bool {
	var saved string
	found, err := gw.Get(store.KeyDarkMode, &saved)
	if err != nil {
		log.Warn("read theme preference", "error", err)
	}
	if found {
		return saved == "true"
	}
	return cfg.Theme != "light"
}
