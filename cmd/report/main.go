package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"tickerreport/config"
	"tickerreport/internal/report"
	"tickerreport/internal/snapshot"
	"tickerreport/logger"
	"tickerreport/pkg/binance"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	// viper config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		return 1
	}

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		return 1
	}
	defer log.Sync()

	return app(cfg, newLoader(binance.BaseURL, cfg, log), os.Stdout, log)
}

func newLoader(baseURL string, cfg *config.Config, log *zap.Logger) *snapshot.PriceLoader {
	restClient := binance.NewRESTClient(baseURL, cfg.Binance.REST.Timeout)
	return snapshot.NewPriceLoader(restClient, cfg.Binance.REST.Timeout, log)
}

// app runs one report and returns the process exit code.
func app(cfg *config.Config, loader report.PriceLoader, out io.Writer, log *zap.Logger) (code int) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("An unexpected error occurred", zap.Any("panic", r))
			code = 1
		}
	}()

	reporter := report.NewReporter(loader, out, log, cfg.Report.TopCount)
	if err := reporter.Run(context.Background()); err != nil {
		return 1
	}
	return 0
}
