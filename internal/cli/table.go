package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"factcloud/internal/domain"
	"factcloud/internal/usecase"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func printFrequencies(w io.Writer, words []domain.WordCount) {
	if len(words) == 0 {
		fmt.Fprintln(w, "No words found.")
		return
	}
	rows := make([][]string, len(words))
	for i, wc := range words {
		rows[i] = []string{strconv.Itoa(i + 1), wc.Word, strconv.Itoa(wc.Count)}
	}
	fmt.Fprintln(w, renderTable([]string{"#", "Word", "Count"}, rows, []columnAlignment{alignRight, alignLeft, alignRight}))
}

func printStats(w io.Writer, res *usecase.StatsResult, maxText int) {
	rows := make([][]string, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = []string{
			strconv.Itoa(i),
			truncate(r.Text, maxText),
			strconv.Itoa(r.CharCount),
			strconv.Itoa(r.WordCount),
			strconv.Itoa(r.KeywordCount),
			fmt.Sprintf("%.3f", r.KeywordRatio),
		}
	}
	fmt.Fprintln(w, "\nSentence-level statistics:")
	fmt.Fprintln(w, renderTable(
		[]string{"#", "Text", "Chars", "Words", "Keywords", "Ratio"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight},
	))

	summary := make([][]string, len(res.Summary))
	for i, s := range res.Summary {
		summary[i] = []string{
			s.Name,
			strconv.Itoa(s.Count),
			formatFloat(s.Mean), formatFloat(s.Std), formatFloat(s.Min),
			formatFloat(s.P25), formatFloat(s.P50), formatFloat(s.P75), formatFloat(s.Max),
		}
	}
	fmt.Fprintln(w, "\nSummary statistics:")
	fmt.Fprintln(w, renderTable(
		[]string{"Column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"},
		summary,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight},
	))

	if res.Skipped > 0 {
		fmt.Fprintf(w, "Skipped %d blank facts.\n", res.Skipped)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
