// Package config loads the engine runtime configuration from gamectl.toml,
// GAMECTL_* environment variables and command line flags, in ascending
// precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/mutker/gamectl/internal/errors"
)

const (
	DefaultLogLevel  = "info"
	DefaultNamespace = "gamectl"

	DefaultFrameInterval = 16 * time.Millisecond
	DefaultStatsInterval = 5 * time.Second

	configName       = "gamectl"
	defaultEnvPrefix = "GAMECTL"
)

type Config struct {
	LogLevel        string        `mapstructure:"log_level"`
	Debug           bool          `mapstructure:"debug"`
	Verbose         bool          `mapstructure:"verbose"`
	SavedDir        string        `mapstructure:"saved_dir"`
	Namespace       string        `mapstructure:"namespace"`
	FrameInterval   time.Duration `mapstructure:"frame_interval"`
	StatsInterval   time.Duration `mapstructure:"stats_interval"`
	History         bool          `mapstructure:"history"`
	HistoryDB       string        `mapstructure:"history_db"`
	Benchmark       time.Duration `mapstructure:"benchmark"`
	PerformanceMode bool          `mapstructure:"performance_mode"`
	QualityMode     bool          `mapstructure:"quality_mode"`
}

// Load reads configuration from file, environment and flags. Every call
// parses a fresh flag set, so it is safe to call repeatedly.
func Load(opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := &options{envPrefix: defaultEnvPrefix}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v); err != nil {
		return nil, err
	}

	path := o.configPath
	if path == "" {
		path = os.Getenv(o.envPrefix + "_CONFIG")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gamectl"))
		}
		v.AddConfigPath("/etc/gamectl")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded configuration for values the runtime cannot
// start with.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if c.SavedDir == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "saved directory is required")
	}

	if c.Namespace == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "profile namespace is required")
	}

	if c.FrameInterval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.FrameInterval.String())
	}

	if c.StatsInterval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.StatsInterval.String())
	}

	if c.Benchmark < 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Benchmark.String())
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("saved_dir", defaultSavedDir())
	v.SetDefault("namespace", DefaultNamespace)
	v.SetDefault("frame_interval", DefaultFrameInterval)
	v.SetDefault("stats_interval", DefaultStatsInterval)
	v.SetDefault("history", false)
	v.SetDefault("history_db", "")
	v.SetDefault("benchmark", time.Duration(0))
	v.SetDefault("performance_mode", false)
	v.SetDefault("quality_mode", false)
}

// bindFlags parses a fresh flag set and binds it into v. Unknown flags are
// tolerated so the loader works inside test binaries.
func bindFlags(v *viper.Viper) error {
	errFactory := errors.New()

	fs := pflag.NewFlagSet(filepath.Base(os.Args[0]), pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true

	fs.String("log-level", DefaultLogLevel, "Logging level: debug, info, warning or error")
	fs.Bool("debug", false, "Shorthand for --log-level debug")
	fs.Bool("verbose", false, "Shorthand for --log-level info")
	fs.String("saved-dir", defaultSavedDir(), "Directory holding saved profiles")
	fs.String("namespace", DefaultNamespace, "Profile namespace under the saved directory")
	fs.Bool("history", false, "Record performance snapshots to the history database")
	fs.String("history-db", "", "History database path")
	fs.Duration("benchmark", 0, "Run a fixed benchmark window, then exit")
	fs.Bool("performance-mode", false, "Apply the performance profile on startup")
	fs.Bool("quality-mode", false, "Apply the max quality profile on startup")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return errFactory.Wrap(errors.ErrBindFlags, err)
	}

	// Flag names use dashes, config keys use underscores.
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})

	if bindErr != nil {
		return errFactory.Wrap(errors.ErrBindFlags, bindErr)
	}

	return nil
}

// defaultSavedDir is ~/.local/share/gamectl, falling back to ./saved when
// the home directory cannot be resolved.
func defaultSavedDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "saved"
	}

	return filepath.Join(home, ".local", "share", "gamectl")
}
