package cmd

import (
	"os"

	"github.com/naka-gawa/github-annual-review/internal/render"
	"github.com/naka-gawa/github-annual-review/internal/store"
	"github.com/naka-gawa/github-annual-review/internal/usecase"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Builds the annual review of a GitHub user",
	Long: `Builds the annual review of the authenticated user (or --user) for a calendar year
and prints it as JSON, YAML or a text report. With --save the review is also
archived in the local review store.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg, logger := setup(cmd)

		// Inject dependencies and run the main business logic.
		aggregator := usecase.NewAggregator(newFetcher(cfg, logger), logger)

		review, err := aggregator.Assemble(ctx, cfg.User, cfg.Year)
		if err != nil {
			fail("Failed to build annual review", err)
		}

		if cfg.Save {
			s, err := store.Open(cfg.StorePath)
			if err != nil {
				fail("Failed to open review store", err)
			}
			defer func() { _ = s.Close() }()
			if err := s.Save(ctx, review); err != nil {
				fail("Failed to archive review", err)
			}
			logger.Printf("Archived review of %s for %d in %s", review.User.Login, review.Year, cfg.StorePath)
		}

		if err := render.Write(os.Stdout, review, cfg.Format); err != nil {
			fail("Failed to write review", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.Flags().StringP("user", "u", "", "GitHub user to review (default is the authenticated user)")
	reviewCmd.Flags().IntP("year", "y", 0, "Calendar year to review (default is the current year)")
	reviewCmd.Flags().StringP("format", "f", "json", "Output format: json, yaml or text")
	reviewCmd.Flags().Bool("save", false, "Archive the review in the local review store")
	reviewCmd.Flags().String("store", "", "Path of the review store (default is $HOME/.github-annual-review/reviews.db)")
	reviewCmd.Flags().String("enterprise-url", "", "Base URL of a GitHub Enterprise Server instance")
}
