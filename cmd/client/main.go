package main

import (
	"context"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/dalbodeule/hopgate/internal/config"
	"github.com/dalbodeule/hopgate/internal/logging"
	"github.com/dalbodeule/hopgate/internal/observability"
	"github.com/dalbodeule/hopgate/internal/rendezvous"
)

func main() {
	logger := logging.NewStdJSONLogger("client")

	cfg, err := config.ParseClientConfig(os.Args[1:])
	if err != nil {
		logger.Error("failed to parse client config", logging.Fields{"error": err.Error()})
		os.Exit(1)
	}

	observability.MustRegister()

	logger.Info("hopgate client starting", logging.Fields{
		"host":         cfg.Host,
		"port":         cfg.Port,
		"forward_port": cfg.ForwardPort,
		"timeout_sec":  cfg.Timeout,
	})

	client := &rendezvous.Client{
		ServerAddr:  net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		ForwardPort: cfg.ForwardPort,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		Logger:      logger,
	}

	if err := client.Run(context.Background()); err != nil {
		logger.Error("rendezvous client exited with error", logging.Fields{"error": err.Error()})
		os.Exit(1)
	}

	logger.Info("rendezvous client exited normally", nil)
}
