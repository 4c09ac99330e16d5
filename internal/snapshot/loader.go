package snapshot

import (
	"context"
	"math"
	"time"

	"tickerreport/internal/market"
	"tickerreport/pkg/binance"

	"go.uber.org/zap"
)

// TickerSource is the subset of binance.RESTClient the loader depends on.
type TickerSource interface {
	GetTickerPrices(ctx context.Context) ([]binance.TickerPrice, error)
}

type PriceLoader struct {
	Source  TickerSource
	Timeout time.Duration
	Logger  *zap.Logger
}

func NewPriceLoader(source TickerSource, timeout time.Duration, logger *zap.Logger) *PriceLoader {
	return &PriceLoader{
		Source:  source,
		Timeout: timeout,
		Logger:  logger,
	}
}

// Load fetches the latest price of every trading pair.
// Pairs without a symbol, or whose price is not a finite, non-negative number, are dropped.
// Every failure is returned as a *FetchError.
func (l *PriceLoader) Load(ctx context.Context) ([]market.PricePair, error) {
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	raw, err := l.Source.GetTickerPrices(ctx)
	if err != nil {
		l.Logger.Debug("error fetching crypto prices", zap.Error(err))
		return nil, &FetchError{Err: err}
	}

	pairs := binance.ParsePriceList(raw)

	valid := make([]market.PricePair, 0, len(pairs))
	for i, p := range pairs {
		if p.Symbol == "" {
			l.Logger.Warn("skipping pair without symbol", zap.String("price", raw[i].Price))
			continue
		}
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price < 0 {
			l.Logger.Warn("skipping pair with invalid price",
				zap.String("symbol", p.Symbol), zap.String("price", raw[i].Price))
			continue
		}
		valid = append(valid, p)
	}
	l.Logger.Debug("loaded prices", zap.Int("count", len(valid)), zap.Int("skipped", len(pairs)-len(valid)))

	return valid, nil
}
