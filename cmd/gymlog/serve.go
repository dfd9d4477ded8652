package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2beens/gymlog/internal"
	"github.com/2beens/gymlog/internal/db"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gymlog HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", true, "apply pending schema migrations before serving")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd, "gymlog-service")
	if err != nil {
		return err
	}

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	redisPassword := os.Getenv("GYMLOG_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use GYMLOG_REDIS_PASS")
	}

	authTokenHash := os.Getenv("GYMLOG_API_TOKEN_HASH")
	if authTokenHash == "" {
		log.Errorf("api token hash not set. use GYMLOG_API_TOKEN_HASH (see: gymlog hash-token)")
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	pgPassword := os.Getenv("GYMLOG_PG_PASS")
	if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
		if err := db.Migrate(dbParams(cfg, pgPassword), db.MigrateUp); err != nil {
			return err
		}
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:                  cfg,
		VersionInfo:             version,
		AuthTokenHash:           authTokenHash,
		PostgresPassword:        pgPassword,
		RedisPassword:           redisPassword,
		HoneycombTracingEnabled: honeycombEnabled,
	})
	if err != nil {
		log.Errorf("new server: %s", err)
		return err
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
	return nil
}
