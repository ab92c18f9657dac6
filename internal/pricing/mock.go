package pricing

import (
	"fmt"

	"CryptoDCA/internal/model"
)

// MockFetcher returns controllable fixed quotes for development and testing.
type MockFetcher struct {
	Quotes map[string]model.PriceQuote
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuotes(ids []string) (map[string]model.PriceQuote, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make(map[string]model.PriceQuote, len(ids))
	for _, id := range ids {
		q, ok := m.Quotes[id]
		if !ok {
			return nil, &model.DataError{Detail: fmt.Sprintf("quote for %q missing from mock data", id)}
		}
		out[id] = q
	}
	return out, nil
}
