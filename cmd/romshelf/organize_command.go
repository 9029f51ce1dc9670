package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"romshelf/internal/config"
	"romshelf/internal/organizer"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var overrides organizeOverrides

	cmd := &cobra.Command{
		Use:   "organize [source] [library]",
		Short: "Organize source archives into the library",
		Long: "Organize walks the source directory, resolves metadata for every zip " +
			"archive, expands the configured path template, and places each game " +
			"into the library. Collisions get a version suffix and every run is " +
			"appended to the organization log. Positional arguments override the " +
			"configured source and library directories.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyPathArgs(cfg, args); err != nil {
				return err
			}
			overrides.apply(cfg)

			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return fmt.Errorf("open game database: %w", err)
			}
			if store != nil {
				defer func() { _ = store.Close() }()
			}

			runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := organizer.New(cfg, store, logger).Run(runCtx)
			if err != nil {
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}

	overrides.register(cmd)
	return cmd
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var overrides organizeOverrides

	cmd := &cobra.Command{
		Use:   "plan [source] [library]",
		Short: "Preview a run without touching the library",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyPathArgs(cfg, args); err != nil {
				return err
			}
			overrides.apply(cfg)

			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return fmt.Errorf("open game database: %w", err)
			}
			if store != nil {
				defer func() { _ = store.Close() }()
			}

			runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := organizer.New(cfg, store, logger).Plan(runCtx)
			if err != nil {
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}

	overrides.register(cmd)
	return cmd
}

// applyPathArgs overlays positional source and library directories onto the
// loaded configuration.
func applyPathArgs(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		expanded, err := config.ExpandPath(args[0])
		if err != nil {
			return fmt.Errorf("resolve source directory: %w", err)
		}
		cfg.Paths.SourceDir = expanded
	}
	if len(args) > 1 {
		expanded, err := config.ExpandPath(args[1])
		if err != nil {
			return fmt.Errorf("resolve library directory: %w", err)
		}
		cfg.Paths.LibraryDir = expanded
	}
	if cfg.Paths.SourceDir == cfg.Paths.LibraryDir {
		return fmt.Errorf("source and library directories must differ")
	}
	return nil
}

// organizeOverrides are per-invocation flag overrides layered on the loaded
// configuration.
type organizeOverrides struct {
	template           string
	moveFiles          bool
	keepZipped         bool
	englishOnly        bool
	includeNoText      bool
	collapsePublishers bool

	cmd *cobra.Command
}

func (o *organizeOverrides) register(cmd *cobra.Command) {
	o.cmd = cmd
	cmd.Flags().StringVar(&o.template, "template", "", "Path template override")
	cmd.Flags().BoolVar(&o.moveFiles, "move", false, "Move archives instead of copying")
	cmd.Flags().BoolVar(&o.keepZipped, "keep-zipped", false, "Place archives without extracting")
	cmd.Flags().BoolVar(&o.englishOnly, "english-only", false, "Only organize English games")
	cmd.Flags().BoolVar(&o.includeNoText, "include-no-text", false, "With --english-only, also accept (No Text) games")
	cmd.Flags().BoolVar(&o.collapsePublishers, "collapse-publishers", false, "Trim publisher names at the first separator")
}

func (o *organizeOverrides) apply(cfg *config.Config) {
	flags := o.cmd.Flags()
	if flags.Changed("template") {
		cfg.Organize.Template = o.template
	}
	if flags.Changed("move") {
		cfg.Organize.MoveFiles = o.moveFiles
	}
	if flags.Changed("keep-zipped") {
		cfg.Organize.KeepZipped = o.keepZipped
	}
	if flags.Changed("english-only") {
		cfg.Organize.EnglishOnly = o.englishOnly
	}
	if flags.Changed("include-no-text") {
		cfg.Organize.IncludeNoText = o.includeNoText
	}
	if flags.Changed("collapse-publishers") {
		cfg.Organize.CollapsePublishers = o.collapsePublishers
	}
}
