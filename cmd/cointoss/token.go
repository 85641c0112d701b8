package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/CoinToss_Go/internal/auth"
	"github.com/osse101/CoinToss_Go/internal/config"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage owner tokens",
	}
	cmd.AddCommand(newTokenIssueCmd())
	return cmd
}

func newTokenIssueCmd() *cobra.Command {
	var (
		owner string
		ttl   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Sign a bearer token for an owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Parse()
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return errors.New(config.ErrMsgJWTSecretMissing)
			}
			if ttl == 0 {
				ttl = cfg.JWTTTL
			}

			issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, ttl)
			if err != nil {
				return err
			}
			token, err := issuer.Issue(owner)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner id to put in the token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_TTL)")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
