package command

// auth.go handles the account lifecycle: register, login, logout, whoami.
// Tokens live in the session store under the home dir; commands never print
// them.

import (
	"fmt"

	"github.com/spf13/cobra"

	"mindfulreader/internal/api"
	"mindfulreader/internal/defaults"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Account commands",
	Long:  `Sign in to Mindful Reader, create an account, or sign out.`,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Mindful Reader account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var payload api.Signup
		payload.Name, _ = cmd.Flags().GetString("name")
		payload.Email, _ = cmd.Flags().GetString("email")
		payload.Nationality, _ = cmd.Flags().GetString("nationality")
		payload.Password, _ = cmd.Flags().GetString("password")

		if payload.Password == "" {
			var err error
			payload.Password, err = promptPassword("Choose a password")
			if err != nil {
				return err
			}
		}

		user, err := apiClient.SignUp(cmd.Context(), payload)
		if err != nil {
			return err
		}

		fmt.Println("✓ Account created. Sign in with `mindful auth login` to continue.")
		fmt.Printf("UserID: %s\n", user.UserID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var creds api.Credentials
		creds.Email, _ = cmd.Flags().GetString("email")
		creds.Password, _ = cmd.Flags().GetString("password")

		if creds.Password == "" {
			var err error
			creds.Password, err = promptPassword("Password")
			if err != nil {
				return err
			}
		}

		rec, err := apiClient.LoginUser(cmd.Context(), creds)
		if err != nil {
			return err
		}

		sess.Login(&rec, func() {
			fmt.Printf("✓ Welcome back, %s.\n", defaults.Resolve(rec.Name, defaults.User.DisplayName))
		})
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		sess.Logout(func() {
			fmt.Println("✓ Signed out.")
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := sess.GetCurrentUser()
		if user == nil {
			fmt.Println("Not signed in.")
			return nil
		}
		fmt.Printf("Name:  %s\n", defaults.Resolve(user.Name, defaults.User.DisplayName))
		fmt.Printf("Email: %s\n", user.Email)
		fmt.Printf("Role:  %s\n", user.Role)
		if sess.IsTokenExpired() {
			fmt.Println("Session expired — sign in again with `mindful auth login`.")
		}
		return nil
	},
}

func init() {
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)

	registerCmd.Flags().StringP("name", "n", "", "Display name for the new account")
	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	registerCmd.Flags().String("nationality", "", "Nationality (optional)")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")

	loginCmd.Flags().StringP("email", "e", "", "Account email")
	loginCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	loginCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(authCmd)
}
