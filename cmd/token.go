package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token",
		Long: `Sign a bearer token for a user with the configured secret.

Example:
  podcast-api token --user-id 1
  podcast-api token --user-id 1 --creator --ttl 1h`,
		RunE: runToken,
	}

	tokenCmd.Flags().Uint("user-id", 0, "user id the token identifies (required)")
	tokenCmd.Flags().Bool("creator", false, "mark the token as belonging to a creator")
	tokenCmd.Flags().Duration("ttl", 0, "token lifetime (defaults to auth.token_ttl)")
	_ = tokenCmd.MarkFlagRequired("user-id")
	return tokenCmd
}

func runToken(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetUint("user-id")
	creator, _ := cmd.Flags().GetBool("creator")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	if userID == 0 {
		return fmt.Errorf("--user-id must be positive")
	}

	authService, err := newAuthService()
	if err != nil {
		return err
	}

	token, err := authService.IssueToken(userID, creator, ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
