package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"CryptoDCA/internal/advisor"
	"CryptoDCA/internal/config"
	"CryptoDCA/internal/logger"
	"CryptoDCA/internal/portfolio"
	"CryptoDCA/internal/pricing"
	"CryptoDCA/internal/report"
)

func main() {
	_ = godotenv.Load()

	log := logger.New(logger.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Pretty:  isatty.IsTerminal(os.Stderr.Fd()),
		LogFile: os.Getenv("LOG_FILE"),
	})

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	log.Info().
		Int("assets", len(cfg.AssetIDs())).
		Str("daily_budget", cfg.Settings().DailyBudget.String()).
		Msg("configuration loaded")

	fetcher := pricing.NewCoinGeckoFetcher(os.Getenv("COINGECKO_BASE_URL"), os.Getenv("COINGECKO_API_KEY"), log)
	log.Info().Str("source", fetcher.Name()).Msg("fetching quotes")
	quotes, err := fetcher.FetchQuotes(cfg.AssetIDs())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	analysis, err := portfolio.Analyze(cfg.Assets(), quotes)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	rec := advisor.Recommend(analysis, cfg.Settings())

	r := report.New(os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
	r.Render(analysis, rec, cfg.Settings())
}
