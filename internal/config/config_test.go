package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CryptoDCA/internal/model"
)

const validYAML = `
trading_portfolio:
  bitcoin: 0.5
  ethereum: 4.0
long_term_portfolio:
  bitcoin: 0.5
allocations:
  bitcoin: 0.5
  ethereum: 0.5
settings:
  daily_budget: 100
  min_trade_size: 20
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assets := cfg.Assets()
	require.Len(t, assets, 2)
	assert.Equal(t, []string{"bitcoin", "ethereum"}, cfg.AssetIDs())

	btc := assets[0]
	assert.Equal(t, "bitcoin", btc.ID)
	assert.True(t, btc.TotalQty().Equal(decimal.NewFromInt(1)), "trading + cold = 1.0, got %s", btc.TotalQty())
	assert.True(t, btc.Target.Equal(decimal.NewFromFloat(0.5)))

	eth := assets[1]
	assert.True(t, eth.TradingQty.Equal(decimal.NewFromInt(4)))
	assert.True(t, eth.ColdQty.IsZero())

	s := cfg.Settings()
	assert.True(t, s.DailyBudget.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.MinTradeSize.Equal(decimal.NewFromInt(20)))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	var cerr *model.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Reason, "cannot read config file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "allocations: [not: a: mapping"))
	var cerr *model.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Reason, "malformed YAML")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantField string
	}{
		{
			name: "allocations do not sum to one",
			yaml: `
allocations:
  bitcoin: 0.5
  ethereum: 0.4
settings: {daily_budget: 100, min_trade_size: 20}
`,
			wantField: "allocations",
		},
		{
			name: "allocation sum outside tolerance",
			yaml: `
allocations:
  bitcoin: 0.5
  ethereum: 0.502
settings: {daily_budget: 100, min_trade_size: 20}
`,
			wantField: "allocations",
		},
		{
			name: "negative allocation",
			yaml: `
allocations:
  bitcoin: 1.2
  ethereum: -0.2
settings: {daily_budget: 100, min_trade_size: 20}
`,
			wantField: "allocations.ethereum",
		},
		{
			name: "negative quantity",
			yaml: `
trading_portfolio:
  bitcoin: -1
allocations:
  bitcoin: 1.0
settings: {daily_budget: 100, min_trade_size: 20}
`,
			wantField: "trading_portfolio.bitcoin",
		},
		{
			name: "holding without allocation",
			yaml: `
long_term_portfolio:
  dogecoin: 100
allocations:
  bitcoin: 1.0
settings: {daily_budget: 100, min_trade_size: 20}
`,
			wantField: "long_term_portfolio.dogecoin",
		},
		{
			name: "no assets",
			yaml: `
settings: {daily_budget: 100, min_trade_size: 20}
`,
			wantField: "allocations",
		},
		{
			name: "zero budget",
			yaml: `
allocations:
  bitcoin: 1.0
settings: {daily_budget: 0, min_trade_size: 20}
`,
			wantField: "settings.daily_budget",
		},
		{
			name: "zero min trade size",
			yaml: `
allocations:
  bitcoin: 1.0
settings: {daily_budget: 100, min_trade_size: 0}
`,
			wantField: "settings.min_trade_size",
		},
		{
			name: "min trade size above budget",
			yaml: `
allocations:
  bitcoin: 1.0
settings: {daily_budget: 100, min_trade_size: 150}
`,
			wantField: "settings.min_trade_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			var cerr *model.ConfigError
			require.True(t, errors.As(err, &cerr), "expected ConfigError, got %v", err)
			assert.Equal(t, tt.wantField, cerr.Field)
		})
	}
}

func TestLoad_AllocationSumWithinTolerance(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
allocations:
  bitcoin: 0.5
  ethereum: 0.5004
settings: {daily_budget: 100, min_trade_size: 20}
`))
	require.NoError(t, err)
	assert.Len(t, cfg.Assets(), 2)
}
