package chart

import (
	"sort"

	"github.com/ishandutta2007/Tops-of-Github/internal/model"
)

// DefaultThreshold is the share, in percent, below which a country is
// merged into the Other slice.
const DefaultThreshold = 3.0

// Distribution converts counts into chart slices.
//
// Slices are ordered by descending count, ties broken by label. Any entry
// whose share of the total is strictly below threshold percent is merged
// into a single model.OtherLabel slice placed last. An entry already named
// Other is merged too, so the label appears at most once. Zero or negative
// counts are ignored. The result is nil when there is nothing to chart.
func Distribution(counts map[string]int, threshold float64) []model.Slice {
	total := 0
	for _, n := range counts {
		if n > 0 {
			total += n
		}
	}
	if total == 0 {
		return nil
	}

	slices := make([]model.Slice, 0, len(counts))
	other := 0
	for label, n := range counts {
		if n <= 0 {
			continue
		}
		s := model.Slice{Label: label, Count: n}
		if label == model.OtherLabel || s.Percent(total) < threshold {
			other += n
			continue
		}
		slices = append(slices, s)
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Count != slices[j].Count {
			return slices[i].Count > slices[j].Count
		}
		return slices[i].Label < slices[j].Label
	})
	if other > 0 {
		slices = append(slices, model.Slice{Label: model.OtherLabel, Count: other})
	}
	return slices
}
