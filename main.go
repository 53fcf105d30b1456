package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KNICEX/surge-monitor/internal/repo"
	"github.com/KNICEX/surge-monitor/internal/schedule"
	"github.com/KNICEX/surge-monitor/internal/service/exchange/binance"
	"github.com/KNICEX/surge-monitor/internal/service/llm/gemini"
	"github.com/KNICEX/surge-monitor/internal/service/monitor"
	"github.com/KNICEX/surge-monitor/ioc"
	"github.com/spf13/pflag"
)

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func main() {
	// --config=./config/config.yaml
	file := pflag.String("config", "", "specify config file")
	pflag.Parse()

	cfg, err := ioc.InitViper(*file)
	if err != nil {
		fatal("invalid configuration", err)
	}
	ioc.InitLogger(cfg.Log.Level)

	settings, err := ioc.InitMonitorSettings(cfg.Monitor)
	if err != nil {
		fatal("invalid monitor configuration", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bian := ioc.InitBinanceCli(cfg.Cex.Binance)
	exchangeSvc := binance.NewService(bian, binance.WithIgnoreBase(settings.IgnoreBase...))
	marketSvc := exchangeSvc.MarketService()

	notifier, err := ioc.InitNotifier(cfg)
	if err != nil {
		fatal("failed to init notifier", err)
	}

	opts := []monitor.Option{
		monitor.WithNotifier(notifier),
		monitor.WithInterval(settings.Interval),
		monitor.WithThresholdUnit(settings.ThresholdUnit),
	}
	if db := ioc.InitDB(cfg.Storage.Sqlite); db != nil {
		opts = append(opts, monitor.WithRepo(repo.NewSurgeRepo(db)))
	}
	if geminiCli := ioc.InitGeminiCli(cfg.Llm.Gemini); geminiCli != nil {
		defer geminiCli.Close()
		llmSvc := gemini.NewService(geminiCli, gemini.WithModel(cfg.Llm.Gemini.Model))
		opts = append(opts, monitor.WithCommentator(monitor.NewLLMCommentator(llmSvc)))
	}

	symbols, err := exchangeSvc.SymbolService().GetAllSymbols(ctx, settings.Quote)
	if err != nil {
		fatal("failed to list symbols", err)
	}
	slog.Info("symbols loaded", "quote", settings.Quote, "count", len(symbols))

	calculator := monitor.NewThresholdCalculator(marketSvc, settings.Interval, settings.Lookback, settings.Sigma)
	state, err := calculator.Build(ctx, symbols)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Info("stopped before monitoring started")
			return
		}
		fatal("failed to compute thresholds", err)
	}

	surgeMonitor := monitor.NewSurgeMonitor(&state, marketSvc, opts...)
	task := monitor.NewSurgeMonitorTask(surgeMonitor)
	if err = schedule.NewRunner(task, settings.PollInterval).Run(ctx); err != nil {
		fatal("monitor stopped", err)
	}
}
