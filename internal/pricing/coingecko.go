package pricing

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"CryptoDCA/internal/model"
)

// DefaultBaseURL is the public CoinGecko v3 API.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoFetcher implements Fetcher using the CoinGecko markets endpoint.
// All requested ids are batched into a single request per run.
type CoinGeckoFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	log     zerolog.Logger
}

// NewCoinGeckoFetcher creates a fetcher. An empty baseURL selects the public
// API; apiKey is optional (demo keys raise the rate limit).
func NewCoinGeckoFetcher(baseURL, apiKey string, log zerolog.Logger) *CoinGeckoFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &CoinGeckoFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 30 * time.Second},
		log:     log.With().Str("component", "coingecko").Logger(),
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

// marketRow is the expected JSON shape of one /coins/markets entry.
// Change fields are nullable for assets without enough history.
type marketRow struct {
	ID        string   `json:"id"`
	Price     float64  `json:"current_price"`
	Change24h *float64 `json:"price_change_percentage_24h_in_currency"`
	Change7d  *float64 `json:"price_change_percentage_7d_in_currency"`
}

// FetchQuotes requests current price and 24h/7d change for all ids at once.
// Single attempt; retry with backoff is a possible extension.
func (f *CoinGeckoFetcher) FetchQuotes(ids []string) (map[string]model.PriceQuote, error) {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("ids", strings.Join(sorted, ","))
	q.Set("price_change_percentage", "24h,7d")
	endpoint := f.BaseURL + "/coins/markets?" + q.Encode()

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &model.NetworkError{Op: "build markets request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if f.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", f.APIKey)
	}

	f.log.Debug().Int("assets", len(sorted)).Msg("fetching market quotes")
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &model.NetworkError{Op: "fetch markets", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &model.NetworkError{
			Op:  "fetch markets",
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var rows []marketRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, &model.DataError{Detail: fmt.Sprintf("malformed markets response: %v", err)}
	}

	quotes := make(map[string]model.PriceQuote, len(rows))
	for _, row := range rows {
		quotes[row.ID] = model.PriceQuote{
			ID:        row.ID,
			PriceUSD:  decimal.NewFromFloat(row.Price),
			Change24h: changeDecimal(row.Change24h),
			Change7d:  changeDecimal(row.Change7d),
		}
	}
	for _, id := range sorted {
		if _, ok := quotes[id]; !ok {
			return nil, &model.DataError{Detail: fmt.Sprintf("quote for %q missing from markets response", id)}
		}
	}
	return quotes, nil
}

func changeDecimal(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*v)
}
