package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/CoinToss_Go/internal/bootstrap"
	"github.com/osse101/CoinToss_Go/internal/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			bootstrap.SetupLogger(cfg)

			app, err := bootstrap.Build(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}
}
