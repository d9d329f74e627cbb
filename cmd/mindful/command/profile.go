package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mindfulreader/internal/api"
	"mindfulreader/internal/defaults"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile as the server sees it",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := sess.GetCurrentUserID()
		if userID == "" {
			return errors.New("sign in first with `mindful auth login`")
		}
		user, err := apiClient.GetUser(cmd.Context(), userID)
		if err != nil {
			return err
		}
		fmt.Printf("Name:        %s\n", defaults.Resolve(user.Name, defaults.User.DisplayName))
		fmt.Printf("Email:       %s\n", user.Email)
		fmt.Printf("Role:        %s\n", user.Role)
		fmt.Printf("Nationality: %s\n", defaults.Resolve(user.Nationality, defaults.User.Nationality))
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := sess.GetCurrentUserID()
		if userID == "" {
			return errors.New("sign in first with `mindful auth login`")
		}

		var user api.User
		user.Name, _ = cmd.Flags().GetString("name")
		user.Email, _ = cmd.Flags().GetString("email")
		user.Nationality, _ = cmd.Flags().GetString("nationality")
		if user.Name == "" && user.Email == "" && user.Nationality == "" {
			return errors.New("nothing to update: pass --name, --email, or --nationality")
		}

		saved, err := apiClient.UpdateUser(cmd.Context(), userID, user)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Profile updated for %s.\n", defaults.Resolve(saved.Name, defaults.User.DisplayName))
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)

	profileUpdateCmd.Flags().String("name", "", "Display name")
	profileUpdateCmd.Flags().String("email", "", "Email address")
	profileUpdateCmd.Flags().String("nationality", "", "Nationality")

	rootCmd.AddCommand(profileCmd)
}
