// Package cmd provides the onboardly command line: the lead intake server and two
// front ends (one-shot and interactive) for the lead capture form.
//
// Configuration comes from flags, then ONBOARDLY_* environment variables (a .env file is
// loaded first when present), then defaults. The form endpoint also honours BACKEND_API.
package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"onboardly/pkg/config"
	"onboardly/pkg/logger"
)

var (
	envFile   string
	cfg       *config.Config
	appLogger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "onboardly",
	Short: "Lead capture for the OnBoardly landing page",
	Long: `OnBoardly collects leads (name, email, phone) from the landing page form.

Commands:
  onboardly serve     Run the lead intake API (POST/GET /leads, /health)
  onboardly submit    Submit one lead through the form workflow
  onboardly form      Fill in and submit the form interactively`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appLogger != nil {
			appLogger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	flags.String("endpoint", "", "lead intake endpoint (default "+config.DefaultEndpoint+")")
	flags.StringP("log-level", "l", "", "log level (debug, info, warn, error)")
	flags.String("environment", "", "environment name (development, production)")

	viper.BindPFlag("endpoint", flags.Lookup("endpoint"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("environment", flags.Lookup("environment"))
}

func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg = config.LoadConfig(viper.GetViper())

	l, err := logger.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}
	appLogger = l

	appLogger.Debug("configuration loaded",
		zap.String("environment", cfg.Environment),
		zap.String("endpoint", cfg.Endpoint),
	)
	return nil
}
