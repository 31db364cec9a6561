package chart

import (
	"io"

	"github.com/ishandutta2007/Tops-of-Github/internal/model"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MermaidPie returns Mermaid pie chart source for the slices.
func MermaidPie(slices []model.Slice, title string) string {
	pc := piechart.NewPieChart(io.Discard,
		piechart.WithTitle(title),
		piechart.WithShowData(true),
	)
	for _, s := range slices {
		pc.LabelAndIntValue(s.Label, uint64(max(s.Count, 0))) //nolint:gosec // clamped to non-negative
	}
	return pc.String()
}
