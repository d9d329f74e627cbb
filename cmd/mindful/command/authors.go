package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"mindfulreader/internal/api"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Browse and manage authors",
}

var authorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List authors, one page at a time",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := listParamsFromFlags(cmd)
		params.Name, _ = cmd.Flags().GetString("name")

		page, err := apiClient.ListAuthors(cmd.Context(), params)
		if err != nil {
			return err
		}
		for _, a := range page.Items {
			printAuthorLine(a)
		}
		if page.HasMore {
			fmt.Printf("\nMore available: rerun with --page %d\n", params.Offset+1)
		}
		return nil
	},
}

var authorsGetCmd = &cobra.Command{
	Use:   "get <author-id>",
	Short: "Show one author in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		author, err := apiClient.GetAuthor(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printAuthorDetail(author)
		return nil
	},
}

var authorsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an author (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		author := authorFromFlags(cmd)
		saved, err := apiClient.AddAuthor(cmd.Context(), author)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Added %q (%s)\n", saved.FullName, saved.AuthorID)
		return nil
	},
}

var authorsUpdateCmd = &cobra.Command{
	Use:   "update <author-id>",
	Short: "Update an author's details (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		author := authorFromFlags(cmd)
		saved, err := apiClient.UpdateAuthor(cmd.Context(), args[0], author)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Updated %q\n", saved.FullName)
		return nil
	},
}

var authorsDeleteCmd = &cobra.Command{
	Use:   "delete <author-id>",
	Short: "Remove an author (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := apiClient.DeleteAuthor(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("✓ Author removed.")
		return nil
	},
}

func authorFromFlags(cmd *cobra.Command) api.Author {
	var a api.Author
	a.FullName, _ = cmd.Flags().GetString("name")
	a.PenName, _ = cmd.Flags().GetString("pen-name")
	a.Bio, _ = cmd.Flags().GetString("bio")
	a.Nationality, _ = cmd.Flags().GetString("nationality")
	a.Gender, _ = cmd.Flags().GetString("gender")
	a.DateOfBirth, _ = cmd.Flags().GetString("born")
	a.ProfilePictureURL, _ = cmd.Flags().GetString("picture-url")
	a.Quote, _ = cmd.Flags().GetString("quote")
	return a
}

func addAuthorFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("pen-name", "", "Pen name")
	cmd.Flags().String("bio", "", "Biography")
	cmd.Flags().String("nationality", "", "Nationality")
	cmd.Flags().String("gender", "", "Gender")
	cmd.Flags().String("born", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().String("picture-url", "", "Profile picture URL")
	cmd.Flags().String("quote", "", "Signature quote")
}

func init() {
	authorsCmd.AddCommand(authorsListCmd)
	authorsCmd.AddCommand(authorsGetCmd)
	authorsCmd.AddCommand(authorsAddCmd)
	authorsCmd.AddCommand(authorsUpdateCmd)
	authorsCmd.AddCommand(authorsDeleteCmd)

	addListFlags(authorsListCmd)
	authorsListCmd.Flags().String("name", "", "Filter by name substring")

	addAuthorFlags(authorsAddCmd)
	authorsAddCmd.MarkFlagRequired("name")
	addAuthorFlags(authorsUpdateCmd)

	rootCmd.AddCommand(authorsCmd)
}
