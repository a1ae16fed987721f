package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"sweeparr/internal/cleanup"
)

// renderSummary prints the per-series results of a run. On a terminal the
// series land in a table ordered by collated title; everywhere else only the
// footer line is written so the output stays pipe-friendly.
func renderSummary(w io.Writer, summary *cleanup.Summary) {
	if summary == nil {
		return
	}

	mode := "actual run"
	if summary.DryRun {
		mode = "dry run"
	}
	footer := fmt.Sprintf("Processed %d of %d eligible episodes, pruned %d empty directories (%s) in %s",
		summary.Processed, summary.Eligible, summary.PrunedDirs, mode,
		summary.Duration.Round(time.Millisecond))

	if !isTerminal(w) || len(summary.Results) == 0 {
		fmt.Fprintln(w, footer)
		return
	}

	fmt.Fprintln(w, renderSeriesTable(summary.Results))
	fmt.Fprintln(w, footer)
}

func renderSeriesTable(results []cleanup.SeriesResult) string {
	rows := make([]cleanup.SeriesResult, len(results))
	copy(rows, results)

	collator := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(rows, func(i, j int) bool {
		return collator.CompareString(rows[i].Title, rows[j].Title) < 0
	})

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Series", "Eligible", "Processed"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.Title, strconv.Itoa(row.Eligible), strconv.Itoa(row.Processed)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
