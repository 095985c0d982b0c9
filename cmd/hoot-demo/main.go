// Command hoot-demo runs a small order desk on top of a hoot aggregator: handlers on a worker
// pool and on a UI loop, results routed through the result hook, and a subscriber that is
// dropped without unsubscribing.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/casualjim/hoot"
	"github.com/casualjim/hoot/dispatch"
	"github.com/casualjim/hoot/internal/config"
	"github.com/casualjim/hoot/metrics"
	"github.com/casualjim/hoot/pkg/slogx"
	"github.com/casualjim/hoot/pkg/stdx"
	"github.com/fatih/color"
	"github.com/k0kubun/pp/v3"
	"github.com/phsym/zeroslog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func setupLogging(level slog.Level) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Stamp}
	log := zerolog.New(output).With().Timestamp().Logger()
	slog.SetDefault(slog.New(
		zeroslog.NewHandler(log, &zeroslog.HandlerOptions{Level: level}),
	))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.LogLevel)
	slog.Debug("configured",
		slogx.Stringer("level", cfg.LogLevel),
		slog.Int("workers", cfg.Pool.Workers),
		slog.Int("queue", cfg.Pool.QueueSize),
		slog.Bool("dump", cfg.Dump),
	)

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("demo failed", slogx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	registry := prometheus.NewRegistry()
	var shipments atomic.Int64

	resultHook := hoot.ComposeResultHandlers(
		func(_, result any) {
			if _, ok := result.(*ShipmentRequested); ok {
				shipments.Add(1)
			}
		},
		dumper(cfg.Dump),
	)

	agg := hoot.New(
		hoot.WithObserver(metrics.New(registry)),
		hoot.WithResultHandler(resultHook),
	)

	poolConfig := cfg.Pool
	poolConfig.PanicHandler = func(pe *dispatch.PanicError) {
		slog.Error("handler failed", slogx.Panic(pe.Value))
	}
	pool := dispatch.NewPool(poolConfig)
	ui := dispatch.NewLoop(0)

	wh := newWarehouse()
	books := &ledger{}
	tap := hoot.NewTap(slog.Default())
	for _, sub := range []any{wh, books, tap} {
		if err := agg.Subscribe(sub); err != nil {
			return err
		}
	}

	// The console only sees messages delivered on the UI loop, so it gets its own aggregator.
	screen := hoot.New()
	out := &console{out: os.Stdout}
	stdx.Must0(screen.Subscribe(out))

	subscribeAuditor(agg)
	slog.Info("subscribed", slog.Int("registry", agg.Len()))

	orders := []OrderPlaced{
		{ID: newOrderID(), Customer: "ada", Items: 4, PlacedAt: now()},
		{ID: newOrderID(), Customer: "grace", Items: 1, PlacedAt: now()},
		{ID: newOrderID(), Customer: "linus", Items: 9, PlacedAt: now()},
	}
	for _, order := range orders {
		if err := agg.Publish(order, pool.Marshal); err != nil {
			return err
		}
		if err := screen.Publish(order, ui.Marshal); err != nil {
			return err
		}
		stock := StockChecked{OrderID: order.ID, Available: order.Items < 5}
		if err := screen.Publish(stock, ui.Marshal); err != nil {
			return err
		}
	}

	// Nothing references the auditor anymore; the next publish prunes it.
	runtime.GC()
	runtime.GC()

	cancel := OrderCancelled{ID: orders[1].ID, Reason: "changed my mind", CancelledAt: now()}
	if err := agg.Publish(cancel, pool.Marshal); err != nil {
		return err
	}
	if err := screen.Publish(cancel, ui.Marshal); err != nil {
		return err
	}

	shutdownCtx, done := context.WithTimeout(ctx, 5*time.Second)
	defer done()
	if err := pool.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := ui.Close(shutdownCtx); err != nil {
		return err
	}
	// Subscribers are only weakly referenced; the console has to outlive its deliveries.
	runtime.KeepAlive(out)

	fmt.Printf("\n%s %d shipments requested, %d items reserved, %d ledger entries, %d messages tapped\n\n",
		color.CyanString("summary"), shipments.Load(), wh.Reserved(), books.Len(), tap.Count())

	report, err := renderReport(agg, registry)
	if err != nil {
		return err
	}
	fmt.Print(report)
	return nil
}

func subscribeAuditor(agg *hoot.Aggregator) {
	if err := agg.Subscribe(&auditor{}); err != nil {
		slog.Warn("auditor not subscribed", slogx.Error(err))
	}
}

func dumper(enabled bool) hoot.ResultHandler {
	if !enabled {
		return nil
	}
	return func(subscriber, result any) {
		fmt.Printf("%s from %T\n", color.YellowString("result"), subscriber)
		pp.Println(result)
	}
}
