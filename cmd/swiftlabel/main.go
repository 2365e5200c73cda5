package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ivek1337/swiftlabel/internal/config"
	"github.com/ivek1337/swiftlabel/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	closeLog := setupLogging(cfg)
	defer closeLog()

	log.Info().Str("resource", cfg.Resource.Path).Msg("starting swiftlabel")

	p := tea.NewProgram(tui.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

// setupLogging routes the global logger to the configured file. Without a
// file the logger is discarded: stdout belongs to the TUI.
func setupLogging(cfg config.Settings) func() {
	zerolog.SetGlobalLevel(parseLevel(cfg.Log.Level))
	if cfg.Log.File == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	var w io.Writer = f
	if os.Getenv("SWIFTLABEL_DEBUG") != "" {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return func() { _ = f.Close() }
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
