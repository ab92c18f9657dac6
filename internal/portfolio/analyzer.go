package portfolio

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"CryptoDCA/internal/model"
)

// Momentum weights: 7d change dominates, 24h change smooths.
var (
	weight7d  = decimal.NewFromFloat(0.7)
	weight24h = decimal.NewFromFloat(0.3)
)

// Analyze combines holdings with live quotes into valuations, current
// allocation fractions and deviations from target. Lines are ordered by
// descending absolute deviation, ties by ascending asset id.
func Analyze(assets []model.Asset, quotes map[string]model.PriceQuote) (*model.Analysis, error) {
	lines := make([]model.PortfolioLine, 0, len(assets))
	total := decimal.Zero

	for _, a := range assets {
		q, ok := quotes[a.ID]
		if !ok {
			return nil, &model.DataError{Detail: fmt.Sprintf("no quote for asset %q", a.ID)}
		}
		qty := a.TotalQty()
		value := qty.Mul(q.PriceUSD)
		total = total.Add(value)
		lines = append(lines, model.PortfolioLine{
			ID:        a.ID,
			Quantity:  qty,
			PriceUSD:  q.PriceUSD,
			Value:     value,
			Target:    a.Target,
			Change24h: q.Change24h,
			Change7d:  q.Change7d,
			Momentum:  weight7d.Mul(q.Change7d).Add(weight24h.Mul(q.Change24h)),
		})
	}

	if total.IsZero() {
		return nil, &model.DataError{Detail: "portfolio value is zero, allocation percentages are undefined"}
	}

	for i := range lines {
		lines[i].Current = lines[i].Value.Div(total)
		lines[i].Deviation = lines[i].Current.Sub(lines[i].Target)
	}

	sort.Slice(lines, func(i, j int) bool {
		di, dj := lines[i].Deviation.Abs(), lines[j].Deviation.Abs()
		if !di.Equal(dj) {
			return di.GreaterThan(dj)
		}
		return lines[i].ID < lines[j].ID
	})

	return &model.Analysis{Lines: lines, TotalValue: total}, nil
}
