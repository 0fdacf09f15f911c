package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/dalbodeule/hopgate/internal/adminapi"
	"github.com/dalbodeule/hopgate/internal/audit"
	"github.com/dalbodeule/hopgate/internal/config"
	"github.com/dalbodeule/hopgate/internal/logging"
	"github.com/dalbodeule/hopgate/internal/netutil"
	"github.com/dalbodeule/hopgate/internal/observability"
	"github.com/dalbodeule/hopgate/internal/rendezvous"
)

func main() {
	logger := logging.NewStdJSONLogger("server")

	cfg, err := config.ParseServerConfig(os.Args[1:])
	if err != nil {
		logger.Error("failed to parse server config", logging.Fields{"error": err.Error()})
		os.Exit(1)
	}

	observability.MustRegister()

	recorder, closeRecorder, err := audit.NewRecorderFromEnv(logger)
	if err != nil {
		logger.Error("failed to open audit store", logging.Fields{"error": err.Error()})
		os.Exit(1)
	}
	defer closeRecorder()

	if store, ok := recorder.(*audit.PairingStore); ok {
		startAdminAPI(logger, store)
	}

	listener, err := netutil.ListenerReusingPort(context.Background(), "tcp", net.JoinHostPort("", strconv.Itoa(cfg.Port)))
	if err != nil {
		logger.Error("failed to bind rendezvous listener", logging.Fields{"error": err.Error()})
		os.Exit(1)
	}

	logger.Info("hopgate rendezvous server starting", logging.Fields{
		"port": cfg.Port,
	})

	srv := rendezvous.New(listener, logger, recorder)
	if err := srv.Serve(); err != nil {
		logger.Error("rendezvous server exited with error", logging.Fields{"error": err.Error()})
		os.Exit(1)
	}
}

// startAdminAPI brings up the optional read-only pairing-history HTTP
// API in the background, if both HOPGATE_ADMIN_ADDR and
// HOPGATE_ADMIN_API_KEY are configured.
func startAdminAPI(logger logging.Logger, store *audit.PairingStore) {
	addr := config.AdminAPIAddr()
	apiKey := config.AdminAPIKey()
	if addr == "" || apiKey == "" {
		return
	}

	handler := adminapi.NewHandler(logger, apiKey, store)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	srv := adminapi.NewHTTPServer(addr, mux)

	logger.Info("admin API listening", logging.Fields{"addr": addr})
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			logger.Error("admin API server exited", logging.Fields{"error": err.Error()})
		}
	}()
}
