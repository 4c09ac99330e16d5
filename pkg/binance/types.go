package binance

import "fmt"

// TickerPrice is one element of the /api/v3/ticker/price response.
// Binance encodes prices as decimal strings.
type TickerPrice struct {
	Symbol string `json:"symbol"` // e.g., "BTCUSDT"
	Price  string `json:"price"`  // e.g., "67012.34000000"
}

// APIError is returned when Binance answers with a non-200 status.
// Binance error bodies look like {"code":-1121,"msg":"Invalid symbol."}.
type APIError struct {
	StatusCode int
	Code       int    `json:"code"`
	Msg        string `json:"msg"`
	Body       string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("binance error: status %d: code %d: %s", e.StatusCode, e.Code, e.Msg)
	}
	return fmt.Sprintf("binance error: status %d: %s", e.StatusCode, e.Body)
}
