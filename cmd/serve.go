package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"onboardly/pkg/api"
	"onboardly/pkg/services"
	"onboardly/pkg/store"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Run the lead intake API",
	Long: `Run the lead intake API.

Routes:
  POST /leads   store a lead {"name","email","phone"}
  GET  /leads   list stored leads
  GET  /health  liveness check

The database is chosen by DATABASE_URL: postgres:// URLs use PostgreSQL,
anything else is a SQLite file.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "", "port to listen on (default 5050, or $PORT)")
	serveCmd.Flags().String("database-url", "", "database URL or SQLite path (default onboardly.db)")

	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("database_url", serveCmd.Flags().Lookup("database-url"))
}

func runServe(cmd *cobra.Command, args []string) error {
	// Connect to the database
	db, err := store.Open(cfg.DatabaseURL, cfg.IsProduction())
	if err != nil {
		return err
	}
	defer store.Close(db)

	// Create the lead table if needed
	if err := store.Migrate(db); err != nil {
		return err
	}

	// Initialize services
	submissionService := services.NewLeadSubmissionService(store.NewLeadStore(db), appLogger)

	// Initialize handlers
	handlers := api.NewHandlers(submissionService, appLogger)

	// Set Gin to release mode in production
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := api.NewRouter(handlers, appLogger, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Stop on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the server
	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server starting", zap.String("port", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	appLogger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
