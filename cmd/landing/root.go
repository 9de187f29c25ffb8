package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maestrohq/landing/content"
	"github.com/maestrohq/landing/internal/config"
	"github.com/maestrohq/landing/internal/overrides"
	"github.com/maestrohq/landing/internal/site"
	"github.com/maestrohq/landing/sections"
)

// app is the state shared by every command once flags are parsed.
type app struct {
	configPath    string
	logLevel      string
	overridesPath string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "landing",
		Short:         "Warehouse Maestro landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "landing.yaml", "config file (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVarP(&a.overridesPath, "overrides", "o", "", "content override file (YAML, TOML or JSON)")

	root.AddCommand(
		newServeCmd(a),
		newDefaultsCmd(a),
		newAuditCmd(a),
		newExportCmd(a),
		newRoutesCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if cmd.Flags().Changed("overrides") {
		cfg.Overrides.Path = a.overridesPath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

// store loads the configured override file once.
func (a *app) store() (*overrides.Store, error) {
	s := overrides.New(a.cfg.Overrides.Path,
		overrides.WithLogger(a.log),
		overrides.WithSections(sections.Tables()))
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// render renders the whole page with the configured overrides.
func (a *app) render(ctx context.Context, billing string) ([]byte, *content.Manifest, error) {
	s, err := a.store()
	if err != nil {
		return nil, nil, err
	}
	st := sections.State{Billing: sections.ParseBillingCycle(billing)}
	c, m := sections.Page(site.Meta(a.cfg), sections.OverrideMap(s.Snapshot().Sections), st)
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), m, nil
}
