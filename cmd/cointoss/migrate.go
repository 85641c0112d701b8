package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/CoinToss_Go/internal/config"
	"github.com/osse101/CoinToss_Go/internal/database"
	"github.com/osse101/CoinToss_Go/internal/database/migrations"
)

var migrateDirections = []string{
	string(migrations.DirectionUp),
	string(migrations.DirectionDown),
	string(migrations.DirectionStatus),
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrateDirections,
		RunE: func(cmd *cobra.Command, args []string) error {
			// migrate needs database settings only, not the API secrets
			cfg, err := config.Parse()
			if err != nil {
				return err
			}

			pool, err := database.NewPool(cmd.Context(), cfg.GetDBConnString(), database.PoolConfig{MaxConns: 1, MinConns: 1})
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := migrations.Run(cmd.Context(), pool, migrations.Direction(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", args[0])
			return nil
		},
	}
}
