package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelierhq/atelier/internal/codec"
	"github.com/atelierhq/atelier/internal/metrics"
	"github.com/atelierhq/atelier/internal/storage"
	"github.com/atelierhq/atelier/internal/store"
)

// app bundles the wired-up pieces every command needs: storage, config,
// the codec and the loaded store.
type app struct {
	storage *storage.Storage
	cfg     *storage.Config
	log     zerolog.Logger
	codec   codec.Codec
	store   *store.Store
	counts  *metrics.Counts
}

// dataDir returns the directory holding .atelier/, honoring ATELIER_DIR.
func dataDir() string {
	if d := os.Getenv("ATELIER_DIR"); d != "" {
		return d
	}
	return "."
}

// newLogger builds the CLI logger writing to stderr.
func newLogger(level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(parseLevel(level))
}

func parseLevel(raw string) zerolog.Level {
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// openApp opens the data directory and builds a store populated from the
// predefined request config and any persisted snapshot. The predefined
// list is installed first, before any runtime mutation; a persisted
// requests file then replaces it via bulk set.
func openApp() (*app, error) {
	st, err := storage.Open(dataDir())
	if err != nil {
		return nil, err
	}

	cfg, err := st.LoadConfig()
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg.LogLevel)
	c := codec.New(log)
	counts := &metrics.Counts{}

	s := store.New(counts, log)
	s.LoadPredefined(cfg.Requests)
	st.LoadSnapshot(c, s)

	return &app{
		storage: st,
		cfg:     cfg,
		log:     log,
		codec:   c,
		store:   s,
		counts:  counts,
	}, nil
}

// save persists both collections to the data directory.
func (a *app) save() {
	a.storage.SaveSnapshot(a.codec, a.store)
}
