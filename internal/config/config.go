package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"CryptoDCA/internal/model"
)

// allocationTolerance is how far the sum of target fractions may drift from 1.0.
var allocationTolerance = decimal.NewFromFloat(0.001)

// Config is the validated, immutable run configuration.
type Config struct {
	assets   []model.Asset
	settings model.Settings
}

// Assets returns the configured assets sorted by id.
func (c *Config) Assets() []model.Asset {
	out := make([]model.Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

// AssetIDs returns the configured asset ids sorted ascending.
func (c *Config) AssetIDs() []string {
	ids := make([]string, len(c.assets))
	for i, a := range c.assets {
		ids[i] = a.ID
	}
	return ids
}

// Settings returns the purchase constraints.
func (c *Config) Settings() model.Settings {
	return c.settings
}

// rawConfig is the YAML shape before validation and decimal conversion.
type rawConfig struct {
	TradingPortfolio  map[string]float64 `yaml:"trading_portfolio"`
	LongTermPortfolio map[string]float64 `yaml:"long_term_portfolio"`
	Allocations       map[string]float64 `yaml:"allocations"`
	Settings          struct {
		DailyBudget  float64 `yaml:"daily_budget"`
		MinTradeSize float64 `yaml:"min_trade_size"`
	} `yaml:"settings"`
}

// Load reads and validates the YAML config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.ConfigError{Field: path, Reason: fmt.Sprintf("cannot read config file: %v", err)}
	}
	raw := &rawConfig{}
	if err := yaml.Unmarshal(data, raw); err != nil {
		return nil, &model.ConfigError{Field: path, Reason: fmt.Sprintf("malformed YAML: %v", err)}
	}
	return build(raw)
}

// build converts the raw mapping into typed assets, failing on the first
// schema violation.
func build(raw *rawConfig) (*Config, error) {
	if len(raw.Allocations) == 0 {
		return nil, &model.ConfigError{Field: "allocations", Reason: "at least one asset is required"}
	}

	for _, section := range []struct {
		name     string
		holdings map[string]float64
	}{
		{"trading_portfolio", raw.TradingPortfolio},
		{"long_term_portfolio", raw.LongTermPortfolio},
	} {
		for id, qty := range section.holdings {
			if qty < 0 {
				return nil, &model.ConfigError{
					Field:  fmt.Sprintf("%s.%s", section.name, id),
					Reason: fmt.Sprintf("quantity must be non-negative, got %v", qty),
				}
			}
			if _, ok := raw.Allocations[id]; !ok {
				return nil, &model.ConfigError{
					Field:  fmt.Sprintf("%s.%s", section.name, id),
					Reason: "holding has no matching allocations entry",
				}
			}
		}
	}

	sum := decimal.Zero
	assets := make([]model.Asset, 0, len(raw.Allocations))
	for id, frac := range raw.Allocations {
		if frac < 0 {
			return nil, &model.ConfigError{
				Field:  "allocations." + id,
				Reason: fmt.Sprintf("target fraction must be non-negative, got %v", frac),
			}
		}
		target := decimal.NewFromFloat(frac)
		sum = sum.Add(target)
		assets = append(assets, model.Asset{
			ID:         id,
			TradingQty: decimal.NewFromFloat(raw.TradingPortfolio[id]),
			ColdQty:    decimal.NewFromFloat(raw.LongTermPortfolio[id]),
			Target:     target,
		})
	}
	if sum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(allocationTolerance) {
		return nil, &model.ConfigError{
			Field:  "allocations",
			Reason: fmt.Sprintf("target fractions must sum to 1.0 (±%s), got %s", allocationTolerance, sum),
		}
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })

	budget := decimal.NewFromFloat(raw.Settings.DailyBudget)
	minTrade := decimal.NewFromFloat(raw.Settings.MinTradeSize)
	if !budget.IsPositive() {
		return nil, &model.ConfigError{Field: "settings.daily_budget", Reason: "must be a positive number"}
	}
	if !minTrade.IsPositive() {
		return nil, &model.ConfigError{Field: "settings.min_trade_size", Reason: "must be a positive number"}
	}
	if minTrade.GreaterThan(budget) {
		return nil, &model.ConfigError{
			Field:  "settings.min_trade_size",
			Reason: fmt.Sprintf("must not exceed daily_budget (%s > %s)", minTrade, budget),
		}
	}

	return &Config{
		assets:   assets,
		settings: model.Settings{DailyBudget: budget, MinTradeSize: minTrade},
	}, nil
}
