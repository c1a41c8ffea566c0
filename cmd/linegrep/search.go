package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/praetorian-inc/linegrep/pkg/args"
	"github.com/praetorian-inc/linegrep/pkg/config"
	"github.com/praetorian-inc/linegrep/pkg/enum"
	"github.com/praetorian-inc/linegrep/pkg/logging"
	"github.com/praetorian-inc/linegrep/pkg/matcher"
	"github.com/praetorian-inc/linegrep/pkg/output"
	"github.com/praetorian-inc/linegrep/pkg/pattern"
)

func runSearch(cmd *cobra.Command, argv []string) error {
	stderr := cmd.ErrOrStderr()

	inv, err := args.Parse(argv)
	reportAll(stderr, inv.PatternErrors)
	if err != nil {
		return err
	}
	if inv.Help {
		return cmd.Help()
	}

	cfg, err := config.Load(config.Locate(inv.Overrides.ConfigPath))
	if err != nil {
		return err
	}
	cfg.Apply(inv.Overrides)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closer.Close()

	logger.Debug().
		Str("strategy", inv.Strategy.String()).
		Int("patterns", len(inv.Patterns)).
		Int("files", len(inv.FileTokens)).
		Msg("starting search")

	patterns, err := pattern.NewSet(inv.Patterns, inv.Mode(), pattern.WithLogger(logger))
	if err != nil {
		return err
	}
	m, err := matcher.New(matcher.Config{
		Patterns: patterns,
		Strategy: inv.Strategy,
		Logger:   &logger,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	resolver := enum.NewFileResolver(enum.Config{Jobs: cfg.Jobs, Logger: &logger})
	sources, err := resolver.Resolve(ctx, inv.FileTokens, func(err error) {
		report(stderr, err)
	})
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return nil
	}

	out := cmd.OutOrStdout()
	printer := output.NewPrinter(out, output.ColorEnabled(cfg.Color, out))
	n, err := printer.PrintAll(m.Run(sources))
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Debug().Int("lines", n).Int("sources", len(sources)).Msg("search complete")
	return nil
}

// report writes one diagnostic line to stderr. The run carries on.
func report(w io.Writer, err error) {
	fmt.Fprintln(w, err)
}

func reportAll(w io.Writer, errs []error) {
	for _, err := range errs {
		report(w, err)
	}
}
