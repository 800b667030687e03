package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/l10n_addons/internal/utils"
)

var tokenCmd = &cobra.Command{
	Use:     "token",
	Short:   "Mint an API bearer token",
	Long:    `Signs a JWT with JWT_SECRET for the given subject and prints it.`,
	Example: `  l10nctl token --subject pos-terminal-1 --ttl 720h`,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		ttl, _ := cmd.Flags().GetDuration("ttl")
		if subject == "" {
			return fmt.Errorf("--subject is required")
		}
		if ttl <= 0 {
			ttl = cfg.JWTExpiryDuration
		}
		token, err := utils.GenerateJWT(subject, cfg.JWTSecret, ttl)
		if err != nil {
			return fmt.Errorf("failed to sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("subject", "", "User or client id carried by the token")
	tokenCmd.Flags().Duration("ttl", 0, "Token lifetime (default: JWT_EXPIRY_DURATION)")
}
