package order

import (
	"github.com/montanaflynn/stats"
)

// Summary aggregates a batch of records for display next to an import or a
// submission.
type Summary struct {
	Count        int            `json:"count"`
	TotalPrice   float64        `json:"totalPrice"`
	AveragePrice float64        `json:"averagePrice"`
	MaxPrice     float64        `json:"maxPrice"`
	ByCategory   map[string]int `json:"byCategory"`
}

// Summarize computes price aggregates and category counts.
func Summarize(records []OrderLineRecord) Summary {
	summary := Summary{
		Count:      len(records),
		ByCategory: make(map[string]int),
	}
	if len(records) == 0 {
		return summary
	}

	prices := make(stats.Float64Data, 0, len(records))
	for _, rec := range records {
		prices = append(prices, rec.TotalPrice)
		summary.ByCategory[rec.Category]++
	}

	// stats only errors on empty input, ruled out above
	sum, _ := prices.Sum()
	mean, _ := prices.Mean()
	summary.TotalPrice, _ = stats.Round(sum, 2)
	summary.AveragePrice, _ = stats.Round(mean, 2)
	summary.MaxPrice, _ = prices.Max()
	return summary
}
