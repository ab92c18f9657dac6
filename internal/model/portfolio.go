package model

import "github.com/shopspring/decimal"

// Asset is one configured position: holdings split across the trading
// account and cold storage, plus the target allocation fraction (0-1).
type Asset struct {
	ID         string
	TradingQty decimal.Decimal
	ColdQty    decimal.Decimal
	Target     decimal.Decimal
}

// TotalQty returns trading plus cold-storage quantity.
func (a Asset) TotalQty() decimal.Decimal {
	return a.TradingQty.Add(a.ColdQty)
}

// PriceQuote is a single-run market snapshot for one asset.
// Change fields are percent values (e.g. -3.2 means -3.2%).
type PriceQuote struct {
	ID        string
	PriceUSD  decimal.Decimal
	Change24h decimal.Decimal
	Change7d  decimal.Decimal
}

// PortfolioLine is one asset's valuation against its target.
// Current, Target and Deviation are fractions of total portfolio value.
type PortfolioLine struct {
	ID        string
	Quantity  decimal.Decimal
	PriceUSD  decimal.Decimal
	Value     decimal.Decimal
	Current   decimal.Decimal
	Target    decimal.Decimal
	Deviation decimal.Decimal
	Change24h decimal.Decimal
	Change7d  decimal.Decimal
	Momentum  decimal.Decimal
}

// Analysis is the full portfolio valuation, lines ordered by descending
// absolute deviation (ties by ascending asset id).
type Analysis struct {
	Lines      []PortfolioLine
	TotalValue decimal.Decimal
}

// RecommendationLine is a funded purchase for one asset.
type RecommendationLine struct {
	ID        string
	AmountUSD decimal.Decimal
}

// Recommendation is the budget split for this run. An empty Lines slice
// means no actionable trade this period.
type Recommendation struct {
	Lines    []RecommendationLine
	TotalUSD decimal.Decimal
}

// Actionable reports whether any purchase was funded.
func (r *Recommendation) Actionable() bool {
	return len(r.Lines) > 0
}

// Settings are the purchase constraints from the config file.
type Settings struct {
	DailyBudget  decimal.Decimal
	MinTradeSize decimal.Decimal
}
