package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2beens/gymlog/internal/config"
	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:          "gymlog",
	Short:        "Workout logging service",
	Long:         "gymlog runs the active workout engine: plans, sessions, sets and the rest timer, behind an HTTP API.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().String("config", "./config.toml", "path for the TOML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(hashTokenCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config for the --env section and sets up logging.
func loadConfig(cmd *cobra.Command, serverName string) (*config.Config, error) {
	env, _ := cmd.Flags().GetString("env")
	configPath, _ := cmd.Flags().GetString("config")

	log.Warnf("---->> running in [%s] environment", env)

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, err
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: serverName,
	})

	return cfg, nil
}

func dbParams(cfg *config.Config, password string) db.NewDBPoolParams {
	return db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: password,
		MaxConns:   cfg.PostgresMaxConns,
	}
}
