package pricing

import "CryptoDCA/internal/model"

// Fetcher defines the interface for fetching market quotes.
type Fetcher interface {
	// FetchQuotes returns one PriceQuote per requested asset id.
	FetchQuotes(ids []string) (map[string]model.PriceQuote, error)
	Name() string
}
