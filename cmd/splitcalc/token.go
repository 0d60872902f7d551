package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fkhayef/expensesplit/pkg/middleware"
)

const defaultTokenTTL = 24 * time.Hour

func tokenCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the API",
		Long: `Sign a token for --user with the secret the API runs with, so that
requests can be made as that user:

  JWT_SECRET=s3cret splitcalc token --user 1
  curl -H "Authorization: Bearer $(JWT_SECRET=s3cret splitcalc token --user 1)" ...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToken(cmd, v)
		},
	}

	cmd.Flags().Int64("user", 0, "user ID the token acts as")
	cmd.Flags().String("jwt-secret", "", "HMAC secret, defaults to $JWT_SECRET")
	cmd.Flags().Duration("ttl", defaultTokenTTL, "token lifetime")

	_ = v.BindPFlag("user", cmd.Flags().Lookup("user"))
	_ = v.BindPFlag("ttl", cmd.Flags().Lookup("ttl"))
	_ = v.BindPFlag("jwt-secret", cmd.Flags().Lookup("jwt-secret"))
	_ = v.BindEnv("jwt-secret", "SPLITCALC_JWT_SECRET", "JWT_SECRET")

	return cmd
}

func runToken(cmd *cobra.Command, v *viper.Viper) error {
	userID := v.GetInt64("user")
	if userID <= 0 {
		return errors.New("--user must be a positive user ID")
	}
	secret := v.GetString("jwt-secret")
	if secret == "" {
		return errors.New("no secret: set --jwt-secret or JWT_SECRET")
	}
	ttl := v.GetDuration("ttl")
	if ttl <= 0 {
		return fmt.Errorf("invalid --ttl %s", ttl)
	}

	token, err := middleware.NewJWTManager(secret, ttl).Generate(userID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
