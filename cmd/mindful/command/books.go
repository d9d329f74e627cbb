package command

// books.go covers catalogue reads available to everyone plus the admin
// mutations. List commands speak the same page-cursor convention as the API:
// --page counts pages of size --limit.

import (
	"fmt"

	"github.com/spf13/cobra"

	"mindfulreader/internal/api"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Browse and manage the book catalogue",
}

var booksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List books, one page at a time",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := listParamsFromFlags(cmd)
		params.Title, _ = cmd.Flags().GetString("title")

		page, err := apiClient.ListBooks(cmd.Context(), params)
		if err != nil {
			return err
		}
		for _, b := range page.Items {
			printBookLine(b)
		}
		if page.HasMore {
			fmt.Printf("\nMore available: rerun with --page %d\n", params.Offset+1)
		}
		return nil
	},
}

var booksGetCmd = &cobra.Command{
	Use:   "get <book-id>",
	Short: "Show one book in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := apiClient.GetBook(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printBookDetail(book)
		return nil
	},
}

var booksByAuthorCmd = &cobra.Command{
	Use:   "by-author <author-id>",
	Short: "List one author's books",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := listParamsFromFlags(cmd)
		page, err := apiClient.ListBooksByAuthor(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}
		for _, b := range page.Items {
			printBookLine(b)
		}
		if page.HasMore {
			fmt.Printf("\nMore available: rerun with --page %d\n", params.Offset+1)
		}
		return nil
	},
}

var booksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the catalogue (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		book := bookFromFlags(cmd)
		saved, err := apiClient.AddBook(cmd.Context(), book)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Added %q (%s)\n", saved.Title, saved.BookID)
		return nil
	},
}

var booksUpdateCmd = &cobra.Command{
	Use:   "update <book-id>",
	Short: "Update a book's details (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		book := bookFromFlags(cmd)
		saved, err := apiClient.UpdateBook(cmd.Context(), args[0], book)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Updated %q\n", saved.Title)
		return nil
	},
}

var booksDeleteCmd = &cobra.Command{
	Use:   "delete <book-id>",
	Short: "Remove a book from the catalogue (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := apiClient.DeleteBook(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("✓ Book removed.")
		return nil
	},
}

// listParamsFromFlags reads the shared pagination flags.
func listParamsFromFlags(cmd *cobra.Command) api.ListParams {
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	orderBy, _ := cmd.Flags().GetString("order-by")
	if limit <= 0 {
		limit = prefs.PageSize
	}
	return api.ListParams{Offset: page, Limit: limit, OrderBy: orderBy}
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 0, "Page number (0 = first page)")
	cmd.Flags().Int("limit", 0, "Items per page (default from preferences)")
	cmd.Flags().String("order-by", "", "Sort field; prefix with '-' for descending (e.g. -title)")
}

func bookFromFlags(cmd *cobra.Command) api.Book {
	var b api.Book
	b.Title, _ = cmd.Flags().GetString("title")
	b.AuthorID, _ = cmd.Flags().GetString("author-id")
	b.Genre, _ = cmd.Flags().GetString("genre")
	b.Mood, _ = cmd.Flags().GetString("mood")
	b.Language, _ = cmd.Flags().GetString("language")
	b.PageCount, _ = cmd.Flags().GetInt("pages")
	b.PublicationDate, _ = cmd.Flags().GetString("published")
	b.CoverImageURL, _ = cmd.Flags().GetString("cover-url")
	b.Quote, _ = cmd.Flags().GetString("quote")
	b.Description, _ = cmd.Flags().GetString("description")
	return b
}

func addBookFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Book title")
	cmd.Flags().String("author-id", "", "Author id")
	cmd.Flags().String("genre", "", "Genre")
	cmd.Flags().String("mood", "", "Mood tag (Stillness, Growth, Joy, ...)")
	cmd.Flags().String("language", "", "Language")
	cmd.Flags().Int("pages", 0, "Page count")
	cmd.Flags().String("published", "", "Publication date (YYYY-MM-DD)")
	cmd.Flags().String("cover-url", "", "Cover image URL")
	cmd.Flags().String("quote", "", "Signature quote")
	cmd.Flags().String("description", "", "Description")
}

func init() {
	booksCmd.AddCommand(booksListCmd)
	booksCmd.AddCommand(booksGetCmd)
	booksCmd.AddCommand(booksByAuthorCmd)
	booksCmd.AddCommand(booksAddCmd)
	booksCmd.AddCommand(booksUpdateCmd)
	booksCmd.AddCommand(booksDeleteCmd)

	addListFlags(booksListCmd)
	booksListCmd.Flags().String("title", "", "Filter by title substring")
	addListFlags(booksByAuthorCmd)

	addBookFlags(booksAddCmd)
	booksAddCmd.MarkFlagRequired("title")
	addBookFlags(booksUpdateCmd)

	rootCmd.AddCommand(booksCmd)
}
