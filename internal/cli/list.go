package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prive-edr/dashmock/pkg/config"
	"github.com/prive-edr/dashmock/pkg/dashboard"
	"github.com/prive-edr/dashmock/pkg/sample"
)

// listCommand creates the list command, which shows every dashboard with
// its layout and where it would be written.
func (c *CLI) listCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the dashboards and their output paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			w, h := cfg.PixelSize()
			src := sample.New(1)
			for _, kind := range dashboard.All() {
				d, err := dashboard.Compose(kind, src, float64(w), float64(h))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, StyleTitle.Render(string(kind))+" "+d.Title)
				printKeyValue(out, "  layout", d.String())
				printKeyValue(out, "  output", cfg.OutputPath(kind))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	return cmd
}
