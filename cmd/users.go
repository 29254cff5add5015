package cmd

import (
	"fmt"

	"github.com/killallgit/podcast-api/internal/services/aggregation"
	"github.com/killallgit/podcast-api/internal/services/users"
	"github.com/killallgit/podcast-api/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newUsersCmd groups account administration
func newUsersCmd() *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Long: `Create a user account. With --channel the user also becomes a creator.

Example:
  podcast-api users create --email ana@example.com --name "Ana"
  podcast-api users create --email ana@example.com --name "Ana" --channel "Ana Talks"`,
		RunE: runUsersCreate,
	}
	createCmd.Flags().String("email", "", "email address (required)")
	createCmd.Flags().String("name", "", "display name (required)")
	createCmd.Flags().String("channel", "", "channel name; makes the user a creator")
	_ = createCmd.MarkFlagRequired("email")
	_ = createCmd.MarkFlagRequired("name")

	usersCmd.AddCommand(createCmd)
	return usersCmd
}

func runUsersCreate(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")
	channel, _ := cmd.Flags().GetString("channel")

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	s := store.New(db.DB)
	svc := users.NewService(s, aggregation.New(s), appConfig.Search.HistoryLimit, logrus.StandardLogger())

	ctx := contextOf(cmd)
	user, err := svc.CreateUser(ctx, email, name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created user %d <%s>\n", user.ID, user.Email)

	if channel != "" {
		profile, err := svc.CreateChannel(ctx, user.ID, channel)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Created channel %q\n", profile.ChannelName)
	}
	return nil
}
