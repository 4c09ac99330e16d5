package report

import (
	"context"
	"fmt"
	"io"

	"tickerreport/internal/market"

	"go.uber.org/zap"
)

// DefaultTopCount is how many pairs each ranked section lists.
const DefaultTopCount = 5

// PriceLoader supplies the full list of pairs for one run.
type PriceLoader interface {
	Load(ctx context.Context) ([]market.PricePair, error)
}

// Summary holds everything a report prints.
type Summary struct {
	MostExpensive []market.PricePair
	Cheapest      []market.PricePair
	Average       float64
}

// Summarize ranks pairs in both directions and averages them.
func Summarize(pairs []market.PricePair, topCount int) Summary {
	return Summary{
		MostExpensive: market.TopN(pairs, topCount, market.Descending),
		Cheapest:      market.TopN(pairs, topCount, market.Ascending),
		Average:       market.AveragePrice(pairs),
	}
}

type Reporter struct {
	Loader   PriceLoader
	Out      io.Writer
	Logger   *zap.Logger
	TopCount int
}

func NewReporter(loader PriceLoader, out io.Writer, logger *zap.Logger, topCount int) *Reporter {
	return &Reporter{
		Loader:   loader,
		Out:      out,
		Logger:   logger,
		TopCount: topCount,
	}
}

// Run loads prices and writes the report to Out. Status lines go to the logger.
// A load failure is logged once and returned without writing anything to Out.
func (r *Reporter) Run(ctx context.Context) error {
	r.Logger.Info("Fetching cryptocurrency prices...")

	pairs, err := r.Loader.Load(ctx)
	if err != nil {
		r.Logger.Error("An error occurred", zap.Error(err))
		return err
	}

	r.Logger.Info("Calculating top pairs and average price...", zap.Int("pairs", len(pairs)))
	summary := Summarize(pairs, r.TopCount)

	if err := r.write(summary); err != nil {
		r.Logger.Error("An error occurred", zap.Error(err))
		return err
	}
	return nil
}

func (r *Reporter) write(s Summary) error {
	w := &errWriter{w: r.Out}

	w.printf("Top %d most expensive pairs:\n", r.TopCount)
	for _, p := range s.MostExpensive {
		w.printf("%s: $%s\n", p.Symbol, FormatPrice(p.Price))
	}

	w.printf("\nTop %d cheapest pairs:\n", r.TopCount)
	for _, p := range s.Cheapest {
		w.printf("%s: $%s\n", p.Symbol, FormatPrice(p.Price))
	}

	w.printf("\nAverage price of all pairs: $%s\n", FormatPrice(s.Average))

	if w.err != nil {
		return fmt.Errorf("write report: %w", w.err)
	}
	return nil
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
