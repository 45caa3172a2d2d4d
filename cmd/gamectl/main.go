package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/mutker/gamectl/internal/apply"
	"codeberg.org/mutker/gamectl/internal/config"
	"codeberg.org/mutker/gamectl/internal/convar"
	"codeberg.org/mutker/gamectl/internal/logger"
	"codeberg.org/mutker/gamectl/internal/manager"
	"codeberg.org/mutker/gamectl/internal/metrics"
	"codeberg.org/mutker/gamectl/internal/persist"
	"codeberg.org/mutker/gamectl/internal/pid"
	"codeberg.org/mutker/gamectl/internal/probe"
	"codeberg.org/mutker/gamectl/internal/settings"
	"codeberg.org/mutker/gamectl/internal/telemetry"
)

var (
	cfg       *config.Config
	mgr       *manager.Manager
	collector metrics.Collector
	vramProbe *probe.NVML
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	applyLogLevel()
	logger.Debug().Msg("Config loaded")
}

func main() {
	pidPath := pid.Path(cfg.SavedDir)
	if err := pid.Acquire(pidPath); err != nil {
		logger.Fatal().Err(err).Msg("another runtime owns this saved directory")
	}

	if err := setup(); err != nil {
		_ = pid.Release(pidPath)
		logger.Fatal().Err(err).Msg("failed to start runtime")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := loop(ctx); err != nil {
		logger.Error().Err(err).Msg("error in frame loop")
	}

	shutdown(context.Background())
	_ = pid.Release(pidPath)
}

// applyLogLevel maps the configured level onto the logger. The --debug and
// --verbose shorthands take precedence.
func applyLogLevel() {
	if cfg.Debug || cfg.Verbose {
		return
	}

	switch config.LogLevel(cfg.LogLevel) {
	case config.LogLevelDebug:
		logger.SetLogLevel(logger.DebugLevel)
	case config.LogLevelInfo:
		logger.SetLogLevel(logger.InfoLevel)
	case config.LogLevelWarning:
		logger.SetLogLevel(logger.WarnLevel)
	case config.LogLevelError:
		logger.SetLogLevel(logger.ErrorLevel)
	}
}

func setup() error {
	historyPath := cfg.HistoryDB
	if historyPath == "" {
		historyPath = metrics.DefaultDBPath(cfg.SavedDir, cfg.Namespace)
	}

	var err error
	collector, err = metrics.NewCollector(metrics.Config{
		Enabled: cfg.History || cfg.Benchmark > 0,
		DBPath:  historyPath,
	}, logger.Default())
	if err != nil {
		return err
	}

	var memProbe telemetry.MemoryProbe
	if vramProbe, err = probe.NewNVML(logger.Default()); err != nil {
		logger.Warn().Err(err).Msg("NVML unavailable, VRAM readings disabled")
		memProbe = probe.Runtime{}
	} else {
		memProbe = vramProbe
	}

	mgr, err = manager.New(manager.Config{
		Path: persist.Path(cfg.SavedDir, cfg.Namespace),
		Sinks: apply.Sinks{
			Vars:    convar.NewRegistry(),
			Display: deviceDisplay{},
			Audio:   deviceAudio{},
		},
		Probe:     memProbe,
		Collector: collector,
	})
	if err != nil {
		return err
	}

	if err := mgr.Initialize(); err != nil {
		return err
	}

	if cfg.PerformanceMode {
		mgr.EnablePerformanceMode(true)
	}

	if cfg.QualityMode {
		mgr.EnableQualityMode(true)
	}

	if cfg.Benchmark > 0 {
		d := mgr.Debug()
		d.BenchmarkMode = true
		mgr.SetDebug(d)
	}

	return nil
}

func loop(ctx context.Context) error {
	ticker := time.NewTicker(cfg.FrameInterval)
	defer ticker.Stop()

	statsTicker := time.NewTicker(cfg.StatsInterval)
	defer statsTicker.Stop()

	var deadline <-chan time.Time
	if cfg.Benchmark > 0 {
		timer := time.NewTimer(cfg.Benchmark)
		defer timer.Stop()
		deadline = timer.C
		logger.Info().Dur("duration", cfg.Benchmark).Msg("Benchmark started")
	}

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-deadline:
			return nil
		case now := <-ticker.C:
			mgr.UpdateMetrics(now.Sub(last))
			last = now
		case <-statsTicker.C:
			logStats()
			if err := mgr.RecordSnapshot(ctx); err != nil {
				logger.Error().Err(err).Msg("failed to record snapshot")
			}
		}
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

// shutdown persists state and closes the backends. Benchmark runs print
// their summary instead of saving, so a measurement pass never rewrites
// the profile.
func shutdown(ctx context.Context) {
	if cfg.Benchmark > 0 {
		benchmarkSummary(ctx)
	} else if err := mgr.Save(); err != nil {
		logger.Error().Err(err).Msg("failed to save settings")
	}

	if err := collector.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close snapshot history")
	}

	if vramProbe != nil {
		if err := vramProbe.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to shut down NVML")
		}
	}

	logger.Info().Msg("Exiting...")
}

func logStats() {
	snap := mgr.PerformanceSnapshot()

	if cfg.Debug {
		logger.Debug().
			Float64("fps", round1(snap.CurrentFPS)).
			Float64("avg_fps", round1(snap.AverageFPS)).
			Float64("min_fps", round1(snap.MinFPS)).
			Float64("max_fps", round1(snap.MaxFPS)).
			Float64("cpu_ms", round2(snap.CPUFrameMs)).
			Float64("gpu_ms", round2(snap.GPUFrameMs)).
			Float64("ram_mb", round1(snap.RAMUsageMB)).
			Float64("vram_mb", round1(snap.VRAMUsageMB)).
			Int("draw_calls", snap.DrawCalls).
			Int("primitives", snap.Primitives).
			Float64("game_load", round2(snap.GameThreadLoad)).
			Float64("render_load", round2(snap.RenderThreadLoad)).
			Float64("rhi_load", round2(snap.RHIThreadLoad)).
			Msg("")

		return
	}

	logger.Info().
		Float64("fps", round1(snap.CurrentFPS)).
		Float64("avg_fps", round1(snap.AverageFPS)).
		Float64("min_fps", round1(snap.MinFPS)).
		Float64("max_fps", round1(snap.MaxFPS)).
		Float64("cpu_ms", round2(snap.CPUFrameMs)).
		Float64("gpu_ms", round2(snap.GPUFrameMs)).
		Float64("ram_mb", round1(snap.RAMUsageMB)).
		Float64("vram_mb", round1(snap.VRAMUsageMB)).
		Msg("")
}

func benchmarkSummary(ctx context.Context) {
	snap := mgr.PerformanceSnapshot()

	fmt.Printf("Benchmark complete (%s)\n", cfg.Benchmark)
	fmt.Printf("  fps: avg %.1f, min %.1f, max %.1f\n", snap.AverageFPS, snap.MinFPS, snap.MaxFPS)
	fmt.Printf("  frame: %.2f ms cpu, %.2f ms gpu\n", snap.CPUFrameMs, snap.GPUFrameMs)
	fmt.Printf("  memory: %.0f MB ram, %.0f MB vram\n", snap.RAMUsageMB, snap.VRAMUsageMB)

	rows, err := collector.Recent(ctx, 1)
	if err != nil || len(rows) == 0 {
		return
	}

	fmt.Printf("  last snapshot recorded %s\n", rows[0].Timestamp.Format(time.RFC3339))
}

// deviceDisplay models the host display backend.
type deviceDisplay struct{}

func (deviceDisplay) SetResolution(width, height int) {
	logger.Debug().Int("width", width).Int("height", height).Msg("display resolution set")
}

func (deviceDisplay) SetWindowMode(mode settings.WindowMode) {
	logger.Debug().Str("mode", mode.String()).Msg("window mode set")
}

func (deviceDisplay) SetVSync(enabled bool) {
	logger.Debug().Bool("enabled", enabled).Msg("vsync set")
}

func (deviceDisplay) SetFrameRateLimit(fps float64) {
	logger.Debug().Float64("fps", fps).Msg("frame rate limit set")
}

// deviceAudio models the host audio mixer.
type deviceAudio struct{}

func (deviceAudio) SetClassVolume(class settings.VolumeClass, level float64) {
	logger.Debug().Str("class", class.String()).Float64("level", level).Msg("mixer level set")
}

// Helper functions
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
