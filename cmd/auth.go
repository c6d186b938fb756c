package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/naka-gawa/github-annual-review/internal/domain"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Validates the GitHub token",
	Long:  `Validates the configured GitHub token by fetching the authenticated user's profile.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup(cmd)

		profile, err := newFetcher(cfg, logger).FetchProfile(cmd.Context(), "")
		if errors.Is(err, domain.ErrAuthentication) {
			fail("Invalid token. Please check and try again", err)
		}
		if err != nil {
			fail("Failed to validate token", err)
		}
		fmt.Fprintf(os.Stdout, "Token is valid. Authenticated as %s.\n", profile.Login)
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.Flags().String("enterprise-url", "", "Base URL of a GitHub Enterprise Server instance")
}
