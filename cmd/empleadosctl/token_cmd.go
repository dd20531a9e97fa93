package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zykorwx/dapp/pkg/config"
	"github.com/zykorwx/dapp/pkg/jwtutil"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		hours   int
	)

	cmd := &cobra.Command{
		Use:   "token [--subject <name>]",
		Short: "Mint an admin token for the /admin endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load()
			if err != nil {
				return err
			}
			if conf.JWT.SigningKey == "" {
				return errors.New("JWT_SIGNING_KEY is not set")
			}
			if hours > 0 {
				conf.JWT.ExpirationHours = hours
			}

			token, err := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
				SigningKey:      conf.JWT.SigningKey,
				ExpirationHours: conf.JWT.ExpirationHours,
			}).GenerateToken(subject, jwtutil.RoleAdmin)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "operator", "name recorded in the token")
	cmd.Flags().IntVar(&hours, "hours", 0, "expiration in hours; JWT_EXPIRATION_HOURS when 0")

	return cmd
}
