package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/colorspace"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg    *Config
	logger *slog.Logger
	ev     *colorspace.Evaluator
	out    *printer
}

// newRootCmd builds the command tree with a fresh viper instance, so
// commands can be executed repeatedly in tests.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "colorconv",
		Short:         "Convert colors between models and check contrast",
		Long:          `colorconv converts colors between RGB, HSL, HSV, HWB, CMYK, hex and packed integers, and reports WCAG contrast between colors.`,
		Version:       colorspace.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/colorconv/colorconv.yaml or ./colorconv.yaml)")

	// Output flags
	flags.String("format", "text", "output format (text, json, yaml)")
	flags.Int("precision", 3, "decimals in text output")
	flags.String("lang", "en", "language tag for number formatting in text output")
	flags.Bool("preview", false, "show color blocks on capable terminals")

	// Logging flags
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	// Cache flags
	flags.Int("cache-capacity", 0, "luminance cache entries per shard (0 = library default)")
	flags.Duration("cache-ttl", 0, "luminance cache entry lifetime (0 = no expiry)")

	_ = a.v.BindPFlag("output.format", flags.Lookup("format"))
	_ = a.v.BindPFlag("output.precision", flags.Lookup("precision"))
	_ = a.v.BindPFlag("output.lang", flags.Lookup("lang"))
	_ = a.v.BindPFlag("output.preview", flags.Lookup("preview"))

	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	_ = a.v.BindPFlag("cache.capacity", flags.Lookup("cache-capacity"))
	_ = a.v.BindPFlag("cache.ttl", flags.Lookup("cache-ttl"))

	root.AddCommand(
		newConvertCmd(a),
		newContrastCmd(a),
		newBestTextCmd(a),
		newValidateCmd(a),
		newSwatchCmd(a),
	)
	return root
}

// init loads the configuration and builds the logger, evaluator and
// printer for the running command.
func (a *app) init(stdout, stderr io.Writer) error {
	cfg, err := LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = newLogger(stderr, cfg.Logging)
	if err != nil {
		return err
	}

	a.out, err = newPrinter(stdout, cfg.Output)
	if err != nil {
		return err
	}

	a.ev = colorspace.NewEvaluator(
		colorspace.WithCacheCapacity(cfg.Cache.Capacity),
		colorspace.WithCacheTTL(cfg.Cache.TTL),
		colorspace.WithLogger(a.logger),
	)

	a.logger.Debug("colorconv: config loaded",
		slog.String("file", a.v.ConfigFileUsed()),
		slog.String("format", cfg.Output.Format),
		slog.Int("precision", cfg.Output.Precision),
		slog.String("lang", cfg.Output.Lang))
	return nil
}

// newLogger builds a slog logger writing to w.
func newLogger(w io.Writer, cfg LoggingConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch cfg.Format {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), nil
}
