package main

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/hypertabs/internal/config"
	"github.com/jask/hypertabs/internal/database"
	"github.com/jask/hypertabs/internal/database/repository"
	"github.com/jask/hypertabs/internal/document"
	"github.com/jask/hypertabs/internal/logging"
	"github.com/jask/hypertabs/internal/nav"
	"github.com/jask/hypertabs/internal/render"
	"github.com/jask/hypertabs/internal/tabbar"
)

//go:embed nav.yaml
var defaultManifest []byte

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.ConfigureRuntime()
	if lvl, ok := logging.ParseLevel(cfg.Log.Level); ok {
		zerolog.SetGlobalLevel(lvl)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		log.Fatalf("mkdir log dir: %v", err)
	}
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logFile.Close()
	logger := logging.New(logFile, "hypertabs")

	if err := os.MkdirAll(filepath.Dir(cfg.Cache.Path), 0o755); err != nil {
		log.Fatalf("mkdir cache dir: %v", err)
	}
	db, err := database.Open(cfg.Cache.Path)
	if err != nil {
		log.Fatalf("open cache: %v", err)
	}
	defer db.Close()
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	manifest, err := loadManifest(cfg)
	if err != nil {
		log.Fatalf("manifest: %v", err)
	}
	spec, ok := manifest.Navigator(cfg.Nav.Navigator)
	if !ok {
		log.Fatalf("manifest: no navigator %q", cfg.Nav.Navigator)
	}

	loader := &document.CachedLoader{
		Fetcher:   document.NewHTTPLoader(nil),
		Documents: repository.NewDocumentRepo(db),
		Log:       logging.Component(logger, "document"),
	}
	registry := tabbar.NewRegistry()
	navigator := nav.New(ctx, spec, registry, loader, render.NewTextService(), logging.Component(logger, "tabbar"))

	logger.Info().Str("navigator", spec.ID).Int("screens", len(spec.Screens)).Msg("starting")
	p := tea.NewProgram(navigator, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func loadManifest(cfg config.Config) (nav.Manifest, error) {
	if cfg.Nav.Manifest != "" {
		return nav.LoadManifest(cfg.Nav.Manifest, cfg.Nav.BaseURL)
	}
	return nav.ParseManifest(bytes.NewReader(defaultManifest), cfg.Nav.BaseURL)
}
