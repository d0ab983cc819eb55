// Package dashboard turns aggregate rows into dashboard payload values:
// trend percentages, market shares, heatmap cells, demographic
// projections. Everything here is a pure function over values already
// fetched by the repository.
package dashboard

import (
	"math"

	"github.com/zedpay/ussd-analytics/internal/models"
)

// TrendPercent computes the percentage change between the current and
// previous period totals, rounded to 1 decimal. The three-way rule is a
// business rule, not a fallback: no history and no current activity reads
// as flat (0); activity appearing from nothing reads as +100%.
func TrendPercent(current, previous int64) float64 {
	if current == 0 {
		return 0
	}
	if previous == 0 {
		return 100.0
	}
	return Round1(float64(current-previous) / float64(previous) * 100)
}

// NetworkShare is a network row with its share of total volume.
type NetworkShare struct {
	Name           string  `json:"name"`
	Total          int64   `json:"totalTransactions"`
	SuccessRatePct float64 `json:"successRate"`
	MarketSharePct float64 `json:"marketShare"`
}

// MarketShares annotates each network with its percentage of the summed
// transaction volume, rounded to 1 decimal. A zero total yields 0 shares.
func MarketShares(networks []models.NetworkRow) []NetworkShare {
	var sum int64
	for _, n := range networks {
		sum += n.Total
	}

	shares := make([]NetworkShare, 0, len(networks))
	for _, n := range networks {
		share := 0.0
		if sum > 0 {
			share = Round1(float64(n.Total) / float64(sum) * 100)
		}
		shares = append(shares, NetworkShare{
			Name:           n.Name,
			Total:          n.Total,
			SuccessRatePct: Round1(n.SuccessRatePct),
			MarketSharePct: share,
		})
	}
	return shares
}

// Round1 rounds to 1 decimal, the precision every percentage in the API
// is reported at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
