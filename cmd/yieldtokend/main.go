// Command yieldtokend runs the yield-bearing token's HTTP read surface: it
// periodically re-derives a safe earner rate from the registrar and minter
// gateway, advances the continuous index under that rate, and serves
// /index, /supply, and /account/{address} off a TTL'd snapshot cache.
package main

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/lumera-labs/yieldtoken/internal/cache"
	"github.com/lumera-labs/yieldtoken/internal/clock"
	"github.com/lumera-labs/yieldtoken/internal/config"
	"github.com/lumera-labs/yieldtoken/internal/gateway"
	"github.com/lumera-labs/yieldtoken/internal/httpserver"
	"github.com/lumera-labs/yieldtoken/internal/logging"
	"github.com/lumera-labs/yieldtoken/internal/metrics"
	"github.com/lumera-labs/yieldtoken/internal/raterate"
	"github.com/lumera-labs/yieldtoken/internal/registrar"
	"github.com/lumera-labs/yieldtoken/internal/token"
)

var (
	gitTag    = "dev"
	gitCommit = "unknown"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:   "yieldtokend",
		Short: "Serve the yield-bearing token's index, supply, and account read endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	root.Flags().StringVar(&configPath, "config", os.Getenv("YIELDTOKEN_CONFIG"), "path to a JSON config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = config.ApplyEnv(cfg)

	log := logging.New(cfg.LogLevel, nil)
	log.Info().Str("git_tag", gitTag).Str("git_commit", gitCommit).Msg("starting yieldtokend")

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	reg := registrar.New(cfg.RegistrarURL, httpClient)
	gw := gateway.New(cfg.GatewayURL, httpClient)
	clk := clock.Real{}

	state := token.New(cfg.RegistrarID, clk.Now(), reg.ApprovedEarnerFunc(), logging.NewEventSink(log))

	// The default registerer is what /metrics (promhttp.Handler) serves.
	metricsReg := metrics.New(prometheus.DefaultRegisterer)
	state.SetObserver(metricsReg)

	snapCache := cache.New(state, clk, cache.Options{TTL: cfg.SnapshotTTL})

	srv := httpserver.New(httpserver.Config{
		Cache:      snapCache,
		Metrics:    metricsReg,
		Logger:     logging.Component(log, "httpserver"),
		RatePerMin: cfg.RateLimitPerMin,
		Burst:      cfg.RateLimitBurst,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go runRateUpdater(ctx, state, reg, gw, clk, metricsReg)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Router()}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// runRateUpdater periodically re-derives the safe earner rate and advances
// the index under it, recomputing the confidence-window safety margin
// each tick before the index is allowed to move forward.
func runRateUpdater(ctx context.Context, state *token.State, reg *registrar.Client, gw *gateway.Client, clk clock.Source, m *metrics.Registry) {
	// interval kept well inside the confidence window so the rate never
	// goes stale relative to what it was proven safe for.
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	tick := func() {
		reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		maxEarnerRate, err := reg.MaxEarnerRate(reqCtx)
		if err != nil {
			return
		}
		baseMinterRate, err := reg.BaseMinterRate(reqCtx)
		if err != nil {
			return
		}
		minterRate := raterate.MinterRate(baseMinterRate)

		totalActiveOwed, err := gw.TotalActiveOwed(reqCtx)
		if err != nil {
			return
		}
		now := clk.Now()
		totalEarningSupply, err := state.TotalEarningSupply(now)
		if err != nil {
			return
		}

		safeRate := raterate.Rate(bigFromU32(maxEarnerRate), minterRate, totalActiveOwed, totalEarningSupply)
		if !safeRate.IsUint64() || safeRate.Uint64() > uint64(^uint32(0)) {
			return
		}
		rate := uint32(safeRate.Uint64())

		idx, err := state.UpdateIndexWithExternalRate(rate, now)
		if err != nil {
			return
		}
		if idxFloat, ok := bigAsFloat(idx); ok {
			m.Index.Set(idxFloat)
		}
		m.RateBP.Set(float64(rate))

		if totalSupply, err := state.TotalSupply(now); err == nil {
			if f, ok := bigAsFloat(totalSupply); ok {
				m.TotalSupply.Set(f)
			}
		}
		if earningSupply, err := state.TotalEarningSupply(now); err == nil {
			if f, ok := bigAsFloat(earningSupply); ok {
				m.EarningSupply.Set(f)
			}
		}
	}

	tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick()
		}
	}
}

func bigFromU32(v uint32) *big.Int { return new(big.Int).SetUint64(uint64(v)) }

// bigAsFloat converts a *big.Int into a float64 for a Prometheus gauge.
// Precision loss above 2^53 is acceptable here: the gauge is for
// dashboards, never for accounting.
func bigAsFloat(v *big.Int) (float64, bool) {
	f := new(big.Float).SetInt(v)
	out, _ := f.Float64()
	return out, true
}
