package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/YoshitsuguKoike/greet/greeting"
	"github.com/YoshitsuguKoike/greet/internal/app/config"
	"github.com/YoshitsuguKoike/greet/internal/domain/model/record"
	"github.com/YoshitsuguKoike/greet/internal/infra/output"
	"github.com/YoshitsuguKoike/greet/internal/pkg/namenorm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// GreetOptions holds the root command flags.
type GreetOptions struct {
	Strict    bool
	Normalize string
	Format    string
	Out       string
	LogLevel  string
}

// withDefaults fills unset flags from cfg. Flags win over settings.
func (o GreetOptions) withDefaults(c *cobra.Command, cfg config.Config) GreetOptions {
	if !c.Flags().Changed("strict") {
		o.Strict = cfg.Strict()
	}
	if !c.Flags().Changed("normalize") {
		o.Normalize = cfg.Normalize()
	}
	if !c.Flags().Changed("format") {
		o.Format = cfg.Format()
	}
	if !c.Flags().Changed("log-level") {
		o.LogLevel = cfg.StderrLevel()
	}
	return o
}

func runGreet(stdout, stderr io.Writer, afs afero.Fs, cfg config.Config, opts GreetOptions, names []string) error {
	level, err := ParseLogLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	mode, err := namenorm.ParseMode(opts.Normalize)
	if err != nil {
		return err
	}
	if opts.Format != "text" && opts.Format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", opts.Format)
	}

	logger := NewLogger(level, stderr)
	logger.Debug("config source=%s path=%s", cfg.ConfigSource(), cfg.SettingPath())
	defaultName := cfg.DefaultName()

	if len(names) == 0 {
		logger.Debug("no names given, using default %q", defaultName)
		names = []string{defaultName}
	}
	names = namenorm.NormalizeAll(names, mode)

	var factory *record.Factory
	if opts.Format == "json" {
		factory = record.NewFactory()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, name := range names {
		var msg string
		if opts.Strict {
			if msg, err = greeting.GreetStrict(name); err != nil {
				logger.Error("rejected name %q: %v", name, err)
				return err
			}
		} else {
			msg = greeting.Greet(name)
		}

		if factory == nil {
			fmt.Fprintln(&buf, msg)
			continue
		}
		rec, err := factory.New(name, msg)
		if err != nil {
			return fmt.Errorf("failed to build record: %w", err)
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	logger.Info("greeted %d name(s)", len(names))

	if opts.Out == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := output.WriteAtomic(afs, opts.Out, buf.Bytes()); err != nil {
		return err
	}
	logger.Info("wrote %s", opts.Out)
	return nil
}
