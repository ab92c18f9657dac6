package advisor

import (
	"sort"

	"github.com/shopspring/decimal"

	"CryptoDCA/internal/model"
)

// candidate is an under-allocated asset and its deficit (positive fraction
// below target).
type candidate struct {
	id      string
	deficit decimal.Decimal
}

// Recommend splits the daily budget across under-allocated assets in
// proportion to their deficits. Entitlements below the minimum trade size are
// dropped one at a time, smallest first, and the budget is redistributed over
// the survivors with the same proportional rule. An empty recommendation means
// no actionable trade this period.
func Recommend(a *model.Analysis, s model.Settings) *model.Recommendation {
	var under []candidate
	for _, l := range a.Lines {
		if l.Deviation.IsNegative() {
			under = append(under, candidate{id: l.ID, deficit: l.Deviation.Neg()})
		}
	}
	// Most under-allocated first, ties by ascending id.
	sort.Slice(under, func(i, j int) bool {
		if !under[i].deficit.Equal(under[j].deficit) {
			return under[i].deficit.GreaterThan(under[j].deficit)
		}
		return under[i].id < under[j].id
	})

	for len(under) > 0 {
		total := decimal.Zero
		for _, c := range under {
			total = total.Add(c.deficit)
		}

		// Deficits are sorted descending, so the smallest entitlement is last.
		last := len(under) - 1
		smallest := s.DailyBudget.Mul(under[last].deficit).Div(total)
		if smallest.LessThan(s.MinTradeSize) {
			under = under[:last]
			continue
		}

		// Every survivor clears the minimum: fund them all. Amounts are
		// rounded down to cents, with the last line absorbing the remainder
		// so the total spent is exactly the budget.
		lines := make([]model.RecommendationLine, len(under))
		allocated := decimal.Zero
		for i, c := range under[:last] {
			amt := s.DailyBudget.Mul(c.deficit).Div(total).RoundDown(2)
			lines[i] = model.RecommendationLine{ID: c.id, AmountUSD: amt}
			allocated = allocated.Add(amt)
		}
		lines[last] = model.RecommendationLine{
			ID:        under[last].id,
			AmountUSD: s.DailyBudget.Sub(allocated),
		}
		return &model.Recommendation{Lines: lines, TotalUSD: s.DailyBudget}
	}

	return &model.Recommendation{TotalUSD: decimal.Zero}
}
