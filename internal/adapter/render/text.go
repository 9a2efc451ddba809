package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"factcloud/internal/domain"
)

const barWidth = 30

// TextRenderer draws the cloud as a terminal table of weighted bars.
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) Render(req domain.CloudRequest) error {
	if len(req.Words) == 0 {
		_, err := fmt.Fprintln(r.w, "No words to draw.")
		return err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(fmt.Sprintf("Word cloud (%dx%d, %s, top %d)", req.Width, req.Height, req.BackgroundColor, req.MaxWords))
	tw.AppendHeader(table.Row{"Word", "Count", "Weight", ""})
	for _, ww := range req.Words {
		tw.AppendRow(table.Row{ww.Word, ww.Count, fmt.Sprintf("%.2f", ww.Weight), bar(ww.Weight)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	_, err := fmt.Fprintln(r.w, tw.Render())
	return err
}

func bar(weight float64) string {
	n := int(math.Round(weight * barWidth))
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}
