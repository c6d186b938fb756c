package render

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/naka-gawa/github-annual-review/internal/store"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// History prints the archived reviews as a table.
func History(w io.Writer, entries []store.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No archived reviews. Run `review --save` to archive one.")
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"User", "Year", "Commits", "Stars", "Generated"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(entries))
	for _, e := range entries {
		data = append(data, []string{
			e.Login,
			strconv.Itoa(e.Year),
			strconv.Itoa(e.TotalCommits),
			strconv.Itoa(e.TotalStars),
			e.GeneratedAt.Local().Format(time.DateTime),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
