package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldservice/cmd"
	"fieldservice/internal/adapters/out/database"
	"fieldservice/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:   "fieldservice",
	Short: "Route and recurring job scheduling for field service teams",
	Long: `fieldservice keeps the weekly route schedule of field service accounts.

Available commands:
  serve   - Start the HTTP API
  migrate - Create or update the database schema

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Error loading .env file: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap() (cmd.Config, *gorm.DB, *zap.SugaredLogger, error) {
	config, err := cmd.LoadConfig(viper.New())
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}
	logger, err := logging.New(config.LogLevel, config.LogFormat)
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}
	db, err := database.Open(config.Database())
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}
	return config, db, logger, nil
}

func runMigrate(c *cobra.Command, _ []string) error {
	_, db, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err = database.Migrate(c.Context(), db); err != nil {
		return err
	}
	logger.Infow("schema migrated")
	return nil
}

func runServe(c *cobra.Command, _ []string) error {
	config, db, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if config.DBDriver == database.DriverSQLite {
		// The embedded backend has no separate migration step in development.
		if err = database.Migrate(c.Context(), db); err != nil {
			return err
		}
	}

	app := cmd.NewCompositionRoot(config, db, logger)
	startWebServer(&app, config.HTTPPort, logger)
	return nil
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *zap.SugaredLogger) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infow("http server started", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
	logger.Infow("http server stopped")
}
