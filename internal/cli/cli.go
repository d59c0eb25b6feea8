package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/prive-edr/dashmock/pkg/buildinfo"
	"github.com/prive-edr/dashmock/pkg/config"
	"github.com/prive-edr/dashmock/pkg/dashboard"
	"github.com/prive-edr/dashmock/pkg/errors"
	"github.com/prive-edr/dashmock/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "dashmock"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// generateFlags holds the overrides the root command accepts on top of
// the configuration file.
type generateFlags struct {
	configPath string
	outputDir  string
	seed       uint64
	dpi        float64
	noTrim     bool
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand it generates dashboards: every kind by default,
// or only the kinds named as arguments.
func (c *CLI) RootCommand() *cobra.Command {
	var flags generateFlags

	root := &cobra.Command{
		Use:   appName + " [soc|hunting|dlp|executive]...",
		Short: "Dashmock renders mockup security dashboards as PNG images",
		Long: `Dashmock renders the four mockup dashboards of the security console
(SOC overview, threat hunting, data loss prevention and executive summary)
from synthetic data, as dark-themed PNG images suitable for documentation.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		ValidArgs:    kindNames(),
		Args:         cobra.OnlyValidArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.generate(cmd, args, flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&flags.configPath, "config", "c", "", "TOML configuration file")
	root.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "directory the images are written to")
	root.Flags().Uint64Var(&flags.seed, "seed", 0, "seed for the sample data (0 picks one from the clock)")
	root.Flags().Float64Var(&flags.dpi, "dpi", 0, "output resolution in dots per inch")
	root.Flags().BoolVar(&flags.noTrim, "no-trim", false, "keep the full canvas instead of trimming to content")

	root.AddCommand(c.listCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Generate
// =============================================================================

func (c *CLI) generate(cmd *cobra.Command, args []string, flags generateFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	kinds, err := parseKinds(args)
	if err != nil {
		return err
	}

	r, err := pipeline.NewRunner(cfg, nil, logger)
	if err != nil {
		return err
	}
	r.Logger.Debug("starting run", "seed", cfg.Seed, "dpi", cfg.DPI, "dashboards", len(kinds))

	prog := newProgress(logger)
	results, err := r.GenerateKinds(ctx, kinds...)
	for _, res := range results {
		if res.OK() {
			printSuccess(out, "%s dashboard", res.Kind)
			printFile(out, res.Path)
			continue
		}
		printError(out, "%s dashboard: %s", res.Kind, errors.UserMessage(res.Err))
	}
	if err != nil {
		return err
	}

	failed := pipeline.Failed(results)
	if failed > 0 {
		return fmt.Errorf("%d of %d dashboards failed", failed, len(results))
	}
	prog.done(fmt.Sprintf("Generated %d dashboards", len(results)))
	return nil
}

// loadConfig reads the configuration file, if any, and applies the flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command, flags generateFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("output-dir") {
		cfg.OutputDir = flags.outputDir
	}
	if fs.Changed("seed") {
		cfg.Seed = flags.seed
	}
	if fs.Changed("dpi") {
		cfg.DPI = flags.dpi
	}
	if flags.noTrim {
		cfg.Trim = false
	}
	return cfg, nil
}

// parseKinds maps arguments to dashboard kinds, dropping duplicates.
// No arguments selects every kind.
func parseKinds(args []string) ([]dashboard.Kind, error) {
	if len(args) == 0 {
		return dashboard.All(), nil
	}
	kinds := make([]dashboard.Kind, 0, len(args))
	for _, a := range args {
		k, err := dashboard.ParseKind(a)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(kinds, k) {
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

func kindNames() []string {
	var names []string
	for _, k := range dashboard.All() {
		names = append(names, string(k))
	}
	return names
}
