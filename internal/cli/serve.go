package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/damienborowski/AlphaFinity-v2/api"
	"github.com/damienborowski/AlphaFinity-v2/journal"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the backtest HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			var j journal.Journal
			if cfg.Journal.Enabled {
				sj, err := journal.NewSQLite(cfg.Journal.DBPath)
				if err != nil {
					return err
				}
				defer sj.Close()
				j = sj
			}

			srv := api.NewServer(cfg, j)
			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
			return srv.Router().Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
