package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/naka-gawa/github-annual-review/internal/domain"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const maxTextWords = 10

var (
	titleColor   = color.New(color.FgHiWhite, color.Bold)
	headingColor = color.New(color.FgCyan, color.Bold)
	valueColor   = color.New(color.FgGreen)
	mutedColor   = color.New(color.FgHiBlack)
)

// writeText renders a human-readable report with one table per section.
func writeText(w io.Writer, r *domain.AnnualReview) error {
	name := r.User.Login
	if r.User.Name != nil && *r.User.Name != "" {
		name = fmt.Sprintf("%s (%s)", *r.User.Name, r.User.Login)
	}
	if _, err := titleColor.Fprintf(w, "%s - %d on GitHub\n\n", name, r.Year); err != nil {
		return err
	}

	highlights := [][]string{
		{"Commits", strconv.Itoa(r.TotalCommits)},
		{"Pull requests", strconv.Itoa(r.TotalPRs)},
		{"Issues", strconv.Itoa(r.TotalIssues)},
		{"Stars received", strconv.Itoa(r.TotalStars)},
		{"Followers", strconv.Itoa(r.NewFollowers)},
		{"Busiest day", busiestDay(r.BusiestDay)},
		{"Most active repository", mostActiveRepo(r.MostActiveRepo)},
	}
	if err := section(w, "Highlights", []string{"Metric", "Value"}, highlights); err != nil {
		return err
	}

	var langs [][]string
	for i, l := range r.TopLanguages {
		langs = append(langs, []string{strconv.Itoa(i + 1), l.Name, fmt.Sprintf("%.1f%%", l.Percentage)})
	}
	if err := section(w, "Top languages", []string{"Rank", "Language", "Share"}, langs); err != nil {
		return err
	}

	var months [][]string
	for _, m := range r.MonthlyContributions {
		months = append(months, []string{m.Month, strconv.Itoa(m.Commits)})
	}
	if err := section(w, "Monthly contributions", []string{"Month", "Contributions"}, months); err != nil {
		return err
	}

	if r.CommitInsights == nil {
		_, err := mutedColor.Fprintln(w, "Commit insights unavailable.")
		return err
	}
	return writeInsights(w, r.CommitInsights)
}

func writeInsights(w io.Writer, ci *domain.CommitInsights) error {
	summary := [][]string{
		{"Commit messages", strconv.Itoa(ci.TotalCommitMessages)},
		{"Average title length", strconv.Itoa(ci.AverageMessageLength)},
		{"Longest title", ci.LongestMessage},
	}
	if err := section(w, "Commit insights", []string{"Metric", "Value"}, summary); err != nil {
		return err
	}

	var types [][]string
	for _, ct := range ci.CommitTypes {
		types = append(types, []string{ct.Type, strconv.Itoa(ct.Count)})
	}
	if err := section(w, "Commit types", []string{"Type", "Count"}, types); err != nil {
		return err
	}

	var words [][]string
	for i, wf := range ci.WordFrequency {
		if i == maxTextWords {
			break
		}
		words = append(words, []string{wf.Word, strconv.Itoa(wf.Count), fmt.Sprintf("%.1f%%", wf.Percentage)})
	}
	return section(w, "Top words", []string{"Word", "Count", "Share"}, words)
}

// section prints a heading followed by a table, or a placeholder when there are no rows.
func section(w io.Writer, heading string, headers []string, rows [][]string) error {
	if _, err := headingColor.Fprintln(w, heading); err != nil {
		return err
	}
	if len(rows) == 0 {
		_, err := mutedColor.Fprintf(w, "  (none)\n\n")
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func busiestDay(d *domain.DayPoint) string {
	if d == nil {
		return "-"
	}
	return valueColor.Sprintf("%s (%d contributions)", d.Date, d.Contributions)
}

func mostActiveRepo(r *domain.Repository) string {
	if r == nil {
		return "-"
	}
	return valueColor.Sprint(r.Name)
}
