package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"CryptoDCA/internal/model"
)

const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// Renderer formats the analysis and recommendation as columnar console text.
type Renderer struct {
	w     io.Writer
	color bool
}

// New creates a Renderer. Set color to false when w is not a terminal.
func New(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

// Render writes the portfolio overview table followed by the recommendation.
func (r *Renderer) Render(a *model.Analysis, rec *model.Recommendation, s model.Settings) {
	fmt.Fprintln(r.w, "Portfolio and Market Overview")
	fmt.Fprintf(r.w, "Total portfolio value: %s\n\n", usd(a.TotalValue))

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ASSET\tPRICE\t24H\t7D\tMOMENTUM\tHOLDINGS\tVALUE\tCURRENT\tTARGET\tDIFF")
	for _, l := range a.Lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			strings.ToUpper(l.ID),
			usd(l.PriceUSD),
			signedPct(l.Change24h),
			signedPct(l.Change7d),
			signedPct(l.Momentum),
			l.Quantity.StringFixed(4),
			usd(l.Value),
			pct(l.Current),
			pct(l.Target),
			r.diff(l.Deviation),
		)
	}
	tw.Flush()

	fmt.Fprintln(r.w)
	if !rec.Actionable() {
		fmt.Fprintln(r.w, "No actionable trade this period.")
		return
	}
	fmt.Fprintf(r.w, "Recommended purchases (budget %s, min trade %s):\n", usd(s.DailyBudget), usd(s.MinTradeSize))
	for _, l := range rec.Lines {
		fmt.Fprintf(r.w, "  Buy %s  %s\n", strings.ToUpper(l.ID), usd(l.AmountUSD))
	}
	fmt.Fprintf(r.w, "Total spend: %s\n", usd(rec.TotalUSD))
}

// diff colours the deviation column: green when under target (room to buy),
// red when over.
func (r *Renderer) diff(dev decimal.Decimal) string {
	s := signedPct(dev.Mul(decimal.NewFromInt(100)))
	if !r.color {
		return s
	}
	if dev.IsNegative() {
		return ansiGreen + s + ansiReset
	}
	return ansiRed + s + ansiReset
}

// usd formats a dollar amount, e.g. $1,234.56.
func usd(d decimal.Decimal) string {
	return money.New(d.Shift(2).Round(0).IntPart(), money.USD).Display()
}

// pct formats a fraction as a percentage, e.g. 71.4%.
func pct(frac decimal.Decimal) string {
	return frac.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// signedPct formats a percent value with an explicit sign, e.g. +2.35%.
func signedPct(p decimal.Decimal) string {
	s := p.StringFixed(2)
	if !p.IsNegative() {
		s = "+" + s
	}
	return s + "%"
}
