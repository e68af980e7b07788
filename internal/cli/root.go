// Package cli wires the cobra command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/damienborowski/AlphaFinity-v2/config"
)

type rootOptions struct {
	ConfigPath string
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.ConfigPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(o.ConfigPath)
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "alphafinity",
		Short:         "Bar-by-bar strategy backtesting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Path to config file (optional)")

	cmd.AddCommand(
		newRunCmd(opts),
		newServeCmd(opts),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("alphafinity (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
