package main

import (
	"embed"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jask/hypertabs/internal/config"
	"github.com/jask/hypertabs/internal/document/server"
	"github.com/jask/hypertabs/internal/logging"
)

//go:embed docs/*.xml
var bundled embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.ConfigureRuntime()
	logger := logging.New(os.Stderr, "docserver")

	var docs fs.FS
	if cfg.Server.Root != "" {
		docs = os.DirFS(cfg.Server.Root)
	} else {
		docs, err = fs.Sub(bundled, "docs")
		if err != nil {
			log.Fatalf("docs: %v", err)
		}
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(docs, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info().Str("addr", cfg.Server.Addr).Str("root", cfg.Server.Root).Msg("serving documents")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("serve: %v", err)
	}
}
