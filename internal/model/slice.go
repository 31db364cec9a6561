package model

// OtherLabel is the label of the synthetic bucket that absorbs small slices.
const OtherLabel = "Other"

// Slice is one segment of the country distribution chart.
type Slice struct {
	// Label is the country name, or OtherLabel for the merged bucket.
	Label string `json:"label"`

	// Count is the number of rows attributed to this slice.
	Count int `json:"count"`
}

// Percent returns the slice share of total as a percentage.
func (s Slice) Percent(total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(s.Count) * 100 / float64(total)
}

// TotalCount sums the counts of all slices.
func TotalCount(slices []Slice) int {
	total := 0
	for _, s := range slices {
		total += s.Count
	}
	return total
}
