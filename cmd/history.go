package cmd

import (
	"os"

	"github.com/naka-gawa/github-annual-review/internal/render"
	"github.com/naka-gawa/github-annual-review/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Lists archived annual reviews",
	Long:  `Lists the annual reviews archived with "review --save", newest year first.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _ := setup(cmd)

		s := openStore(cfg.StorePath)
		defer func() { _ = s.Close() }()

		entries, err := s.List(cmd.Context(), cfg.User)
		if err != nil {
			fail("Failed to list reviews", err)
		}
		if err := render.History(os.Stdout, entries); err != nil {
			fail("Failed to write history", err)
		}
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints an archived annual review",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _ := setup(cmd)
		if err := cfg.RequireUser(); err != nil {
			fail("Missing user", err)
		}

		s := openStore(cfg.StorePath)
		defer func() { _ = s.Close() }()

		review, err := s.Load(cmd.Context(), cfg.User, cfg.Year)
		if err != nil {
			fail("Failed to load review", err)
		}
		if err := render.Write(os.Stdout, review, cfg.Format); err != nil {
			fail("Failed to write review", err)
		}
	},
}

func openStore(path string) *store.Store {
	s, err := store.Open(path)
	if err != nil {
		fail("Failed to open review store", err)
	}
	return s
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.PersistentFlags().StringP("user", "u", "", "Only show reviews of this GitHub user")
	historyCmd.PersistentFlags().String("store", "", "Path of the review store (default is $HOME/.github-annual-review/reviews.db)")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().IntP("year", "y", 0, "Year of the review (default is the current year)")
	historyShowCmd.Flags().StringP("format", "f", "json", "Output format: json, yaml or text")
}
