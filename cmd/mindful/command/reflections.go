package command

// reflections.go — reading and sharing reflections. Submitting goes through
// the reflections feed so the one-per-book replace rule and the signed-in
// check behave exactly like the interactive views.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mindfulreader/internal/defaults"
	"mindfulreader/internal/reflections"
)

var reflectionsCmd = &cobra.Command{
	Use:   "reflections",
	Short: "Read and share reflections on books",
}

var reflectionsListCmd = &cobra.Command{
	Use:   "list <book-id>",
	Short: "Show all reflections for a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := apiClient.ListReviewsByBook(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(list.Items) == 0 {
			fmt.Println(defaults.Reflection.NoReviewsMessage)
			return nil
		}
		for _, r := range list.Items {
			printReview(r)
		}
		return nil
	},
}

var reflectionsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Show reflections you have shared",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := sess.GetCurrentUserID()
		if userID == "" {
			return errors.New("sign in first with `mindful auth login`")
		}
		list, err := apiClient.ListReviewsByUser(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if len(list.Items) == 0 {
			fmt.Println("You haven't shared any reflections yet.")
			return nil
		}
		for _, r := range list.Items {
			fmt.Printf("book %s\n", r.BookID)
			fmt.Println(wrap(r.Review, 76))
			fmt.Println()
		}
		return nil
	},
}

var reflectionsSubmitCmd = &cobra.Command{
	Use:   "submit <book-id> <text...>",
	Short: "Share a reflection (replaces your previous one for the book)",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		feed := reflections.NewFeed(apiClient, sess, args[0])
		_, err := feed.Submit(cmd.Context(), strings.Join(args[1:], " "))
		switch {
		case errors.Is(err, reflections.ErrNotSignedIn):
			return errors.New("sign in first with `mindful auth login`")
		case errors.Is(err, reflections.ErrEmptyReview):
			return errors.New(defaults.Reflection.ReviewPlaceholder)
		case err != nil:
			return err
		}
		fmt.Println("✓ Reflection shared.")
		return nil
	},
}

var reflectionsAverageCmd = &cobra.Command{
	Use:   "average <book-id>",
	Short: "Show the reflection count for a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		avg, err := apiClient.AverageRatingByBook(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d reflection(s)\n", avg.Count)
		return nil
	},
}

func init() {
	reflectionsCmd.AddCommand(reflectionsListCmd)
	reflectionsCmd.AddCommand(reflectionsMineCmd)
	reflectionsCmd.AddCommand(reflectionsSubmitCmd)
	reflectionsCmd.AddCommand(reflectionsAverageCmd)

	rootCmd.AddCommand(reflectionsCmd)
}
