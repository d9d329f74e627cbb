package command

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"mindfulreader/internal/api"
	"mindfulreader/internal/defaults"
)

// renderError turns any error into what the user should read. API errors
// carry a calm, friendly message; anything else passes through as-is.
func renderError(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if api.IsOffline(apiErr) {
			return apiErr.FriendlyMessage + " (is the server running at the configured URL?)"
		}
		return apiErr.FriendlyMessage
	}
	return err.Error()
}

// promptPassword reads a password without echo, falling back to plain stdin
// when not attached to a terminal (pipes, tests).
func promptPassword(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return line, nil
}

func printBookLine(b api.Book) {
	title := defaults.Resolve(b.Title, defaults.Book.Title)
	author := defaults.Book.AuthorName
	if b.Author != nil {
		author = defaults.Resolve(b.Author.FullName, defaults.Book.AuthorName)
	}
	mood := ""
	if b.Mood != "" {
		mood = "  [" + b.Mood + "]"
	}
	fmt.Printf("%-36s  %-32s %s%s\n", b.BookID, title, author, mood)
}

func printBookDetail(b api.Book) {
	fmt.Printf("Title:       %s\n", defaults.Resolve(b.Title, defaults.Book.Title))
	if b.Author != nil {
		fmt.Printf("Author:      %s\n", defaults.Resolve(b.Author.FullName, defaults.Book.AuthorName))
	} else {
		fmt.Printf("Author:      %s\n", defaults.Book.AuthorName)
	}
	fmt.Printf("Genre:       %s\n", defaults.Resolve(b.Genre, defaults.Book.Genre))
	fmt.Printf("Language:    %s\n", defaults.Resolve(b.Language, defaults.Book.Language))
	if b.Mood != "" {
		fmt.Printf("Mood:        %s\n", b.Mood)
	}
	if b.PageCount > 0 {
		fmt.Printf("Pages:       %d\n", b.PageCount)
	}
	if b.PublicationDate != "" {
		fmt.Printf("Published:   %s\n", b.PublicationDate)
	}
	if defaults.ValidCoverURL(b.CoverImageURL) {
		fmt.Printf("Cover:       %s\n", b.CoverImageURL)
	}
	fmt.Printf("Quote:       %s\n", defaults.Resolve(b.Quote, defaults.Book.Quote))
	fmt.Println()
	fmt.Println(wrap(defaults.Resolve(b.Description, defaults.Book.Description), 76))
}

func printAuthorLine(a api.Author) {
	name := defaults.Resolve(a.FullName, defaults.Author.FullName)
	if a.PenName != "" {
		name += " (" + a.PenName + ")"
	}
	fmt.Printf("%-36s  %-32s %s\n", a.AuthorID, name, defaults.Resolve(a.Nationality, defaults.Author.Nationality))
}

func printAuthorDetail(a api.Author) {
	fmt.Printf("Name:        %s\n", defaults.Resolve(a.FullName, defaults.Author.FullName))
	if a.PenName != "" {
		fmt.Printf("Pen name:    %s\n", a.PenName)
	}
	fmt.Printf("Nationality: %s\n", defaults.Resolve(a.Nationality, defaults.Author.Nationality))
	if a.DateOfBirth != "" {
		fmt.Printf("Born:        %s\n", a.DateOfBirth)
	}
	fmt.Printf("Quote:       %s\n", defaults.Resolve(a.Quote, defaults.Author.Quote))
	fmt.Println()
	fmt.Println(wrap(defaults.Resolve(a.Bio, defaults.Author.Bio), 76))
}

func printReview(r api.Review) {
	name := defaults.Resolve(r.UserName, defaults.User.DisplayName)
	fmt.Printf("— %s\n", name)
	fmt.Println(wrap(r.Review, 76))
	fmt.Println()
}

// wrap folds text at width on word boundaries.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
