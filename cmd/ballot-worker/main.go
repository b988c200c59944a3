// Command ballot-worker runs a Temporal worker that decides elections.
//
// Usage:
//
//	ballot-worker [-config path/to/ballot.json]
//
// Configuration is read from the optional JSON file and BALLOT_* environment
// variables; see internal/configuration. A .env file in the working directory
// is loaded into the environment first when present.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
	tlog "go.temporal.io/sdk/log"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-ballot/internal/configuration"
	"github.com/ahrav/go-ballot/internal/logging"
	"github.com/ahrav/go-ballot/internal/worker"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("ballot-worker stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := configuration.Load(configPath)
	if err != nil {
		return err
	}

	logger := logging.Init(cfg.Observability, os.Stderr)

	ctx := context.Background()
	sink, closeSink, err := worker.InitializeEventSink(ctx, cfg.Events)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeSink(); err != nil {
			logger.Warn("event sink close failed", "error", err)
		}
	}()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    tlog.NewStructuredLogger(logger),
	})
	if err != nil {
		return err
	}
	defer c.Close()

	w := sdkworker.New(c, cfg.Temporal.TaskQueue, sdkworker.Options{})
	worker.RegisterAll(w, cfg.Activity, sink)

	logger.Info("ballot-worker starting",
		"host_port", cfg.Temporal.HostPort,
		"namespace", cfg.Temporal.Namespace,
		"task_queue", cfg.Temporal.TaskQueue)

	return w.Run(sdkworker.InterruptCh())
}
