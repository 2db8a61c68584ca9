package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/atelierhq/atelier/internal/codec"
	"github.com/atelierhq/atelier/internal/metrics"
	"github.com/atelierhq/atelier/internal/server"
	"github.com/atelierhq/atelier/internal/storage"
	"github.com/atelierhq/atelier/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the collections over HTTP",
	Long: `Serve the record store over HTTP for local tooling.

Endpoints:
  GET  /artworks               all artworks
  GET  /artworks/{id}          one artwork
  POST /artworks/{id}/like     toggle the liked flag
  GET  /requests               all requests
  GET  /requests/active        incomplete requests only
  POST /requests/{id}/complete mark a request completed
  GET  /metrics                prometheus gauges for both counts

Every mutation is persisted to the data directory before the response is
written, via a change observer on the store.`,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	st, err := storage.Open(dataDir())
	if err != nil {
		return err
	}

	cfg, err := st.LoadConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)
	c := codec.New(log)
	reg := prometheus.NewRegistry()

	s := store.New(metrics.NewSink(reg), log)
	s.LoadPredefined(cfg.Requests)
	st.LoadSnapshot(c, s)

	// Persist after every runtime mutation. Registered after loading so
	// the initial snapshot install does not rewrite the files it came from.
	s.Subscribe(func() {
		st.SaveSnapshot(c, s)
	})

	addr := serveAddr
	if addr == "" {
		addr = cfg.ListenAddr
	}

	return server.New(s, reg, log).ListenAndServe(addr)
}
