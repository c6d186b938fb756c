// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/naka-gawa/github-annual-review/internal/config"
	"github.com/naka-gawa/github-annual-review/internal/gateway"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "github-annual-review",
	Short: "A CLI tool to summarize a year of GitHub activity.",
	Long: `github-annual-review fetches a user's GitHub activity for a calendar year
(contribution calendar, repositories, languages, commit messages) and reduces it
into an annual review: top languages, busiest day, most active repository,
monthly trend and commit-message insights.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		// A missing .env file is fine; the environment is used as-is.
		_ = godotenv.Load()
	})

	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is ./.github-annual-review.yaml or $HOME/.github-annual-review.yaml)")
}

// setup resolves the configuration of cmd and builds the logger.
func setup(cmd *cobra.Command) (*config.Config, *log.Logger) {
	now := time.Now()
	v := config.NewViper(now)
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		fail("Failed to bind flags", err)
	}
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, configFile, now)
	if err != nil {
		fail("Invalid configuration", err)
	}

	logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
	if cfg.Verbose {
		logger.SetOutput(os.Stderr) // If verbose, log to standard error.
	}
	return cfg, logger
}

// newFetcher injects the GitHub gateway matching the configured host.
func newFetcher(cfg *config.Config, logger *log.Logger) gateway.Fetcher {
	if err := cfg.RequireToken(); err != nil {
		fail("Missing token", err)
	}

	var fetcher gateway.Fetcher
	var err error
	if cfg.EnterpriseURL != "" {
		fetcher, err = gateway.NewEnterpriseGateway(cfg.EnterpriseURL, cfg.Token, logger)
	} else {
		fetcher, err = gateway.NewGitHubGateway(cfg.Token, logger)
	}
	if err != nil {
		fail("Failed to create GitHub gateway", err)
	}
	return fetcher
}

// fail prints the error to standard error and exits.
func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
