// ============================================================================
// textkit - Managed UTF-8 Text
// ============================================================================
//
// Package:     cmd
// Description: Root command, global flags and shared input handling
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/msto63/textkit/foundation/core/config"
	tkerror "github.com/msto63/textkit/foundation/core/error"
	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	tklog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/textbuf"
	"github.com/msto63/textkit/foundation/utils/utf8x"
	"github.com/msto63/textkit/pkg/core/logging"
)

// Configuration keys read by the CLI itself
const (
	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
)

// app holds the global flags and the state built from them before a
// subcommand runs
type app struct {
	cfgFile    string
	logLevel   string
	logFormat  string
	maxBytes   int
	surrogates string

	logger *tklog.Logger
	opts   textbuf.Options
}

// NewRootCommand builds the textkit command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "Inspect and normalise UTF-8 text",
		Long: `textkit validates, measures and trims UTF-8 text with the same
engine the textbuf package provides.

Configuration is read from textkit.toml or textkit.yaml in the current
directory, ./config or /etc/textkit. TEXTKIT_* environment variables
override file values; flags override both.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: discovered textkit.toml/yaml)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "auto", "log format (json, text, logfmt, auto)")
	flags.IntVar(&a.maxBytes, "max-bytes", 0, "allocation budget per run in bytes (0 = unlimited)")
	flags.StringVar(&a.surrogates, "surrogates", "strict", "surrogate policy (strict or lenient)")

	rootCmd.AddCommand(
		newValidateCmd(a),
		newCountCmd(a),
		newTrimCmd(a),
		newInspectCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// setup loads the configuration, applies flag overrides and builds the
// logger and text options shared by all subcommands
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("log-level") {
		a.logLevel = cfg.GetString(keyLogLevel, a.logLevel)
	}
	if !flags.Changed("log-format") {
		a.logFormat = cfg.GetString(keyLogFormat, a.logFormat)
	}

	a.logger = logging.NewLogger(logging.LoggerConfig{
		Name:   "textkit." + cmd.Name(),
		Level:  a.logLevel,
		Format: a.logFormat,
		Output: cmd.ErrOrStderr(),
	})

	a.opts, err = textbuf.OptionsFromConfig(cfg, a.logger)
	if err != nil {
		return err
	}
	if err := a.applyFlags(flags); err != nil {
		return err
	}

	a.logger.Debug("configuration loaded", logging.KV(
		"config", cfg.FilePath(),
		"surrogates", a.opts.Surrogates.String(),
		"locale", a.opts.Locale.String(),
	))
	return nil
}

// applyFlags overrides the options read from file and environment with the
// flags given on the command line
func (a *app) applyFlags(flags *pflag.FlagSet) error {
	if flags.Changed("surrogates") {
		policy, err := utf8x.ParseSurrogatePolicy(a.surrogates)
		if err != nil {
			return tkerror.Wrap(err, "invalid --surrogates").
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("cli.setup")
		}
		a.opts.Surrogates = policy
	}

	if flags.Changed("max-bytes") {
		switch {
		case a.maxBytes < 0:
			return tkerrors.OutOfRange(tkerrors.ModuleCLI, "setup", a.maxBytes, 0, textbuf.MaxAlloc).
				WithCode(tkerror.CodeInvalidConfig)
		case a.maxBytes == 0:
			a.opts.Allocator = textbuf.DefaultAllocator
		default:
			la := textbuf.NewLimitedAllocator(nil, a.maxBytes)
			la.SetLogger(a.logger.WithName("allocator"))
			a.opts.Allocator = la
		}
	}
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile == "" {
		return config.Discover(config.DefaultDiscoveryOptions())
	}
	return config.LoadWithOptions(a.cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: config.DefaultDiscoveryOptions().EnvPrefix,
	})
}

// eachInput reads every named file, or stdin when names is empty, and
// hands it to fn. A name of "-" also selects stdin. Each Text is released
// before the next is read so the allocation budget applies per input.
func (a *app) eachInput(cmd *cobra.Command, names []string, fn func(name string, text *textbuf.Text) error) error {
	if len(names) == 0 {
		names = []string{"-"}
	}

	for _, name := range names {
		text, err := a.readInput(cmd, name)
		if err != nil {
			return err
		}
		err = fn(name, text)
		text.Release()
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *app) readInput(cmd *cobra.Command, name string) (*textbuf.Text, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, tkerrors.NotFound(tkerrors.ModuleCLI, "readInput", name)
		}
		if err != nil {
			return nil, tkerrors.OperationFailed(tkerrors.ModuleCLI, "readInput", err)
		}
		defer f.Close()
		r = f
	}

	text := a.opts.Empty()
	n, err := text.ReadFrom(r)
	if err != nil {
		text.Release()
		return nil, tkerror.Wrap(err, "failed to read input").
			WithOperation("cli.readInput").
			WithDetail("input", name).
			WithDetail("bytes_read", n)
	}

	a.logger.Debug("input read", logging.KV("input", name, "bytes", text.Len()))
	return text, nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
