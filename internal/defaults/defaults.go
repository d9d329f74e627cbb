package defaults

// defaults.go holds the display fallbacks used whenever the API returns a
// record with missing fields. Presentation code must route every optional
// field through Resolve before showing it.

import (
	"math/rand"
	"net/url"
)

// IllustrationBase is the path prefix for bundled illustrations.
const IllustrationBase = "/illustrations"

func illustration(filename string) string {
	return IllustrationBase + "/" + filename
}

// User display fallbacks.
var User = struct {
	DisplayName string
	Nationality string
}{
	DisplayName: "Mindful Reader",
	Nationality: "Unknown",
}

// Author display fallbacks.
var Author = struct {
	FullName          string
	Bio               string
	ProfilePictureURL string
	Nationality       string
	Quote             string
}{
	FullName:          "Unknown Author",
	Bio:               "This author prefers to let their words speak for themselves.",
	ProfilePictureURL: illustration("writer.svg"),
	Nationality:       "Unknown",
	Quote:             "“Stories live within those who dare to feel.”",
}

// Book display fallbacks.
var Book = struct {
	Title         string
	AuthorName    string
	Genre         string
	Language      string
	Description   string
	CoverImageURL string
	Quote         string
}{
	Title:         "Untitled Book",
	AuthorName:    "Unknown Author",
	Genre:         "Unknown Genre",
	Language:      "Unknown Language",
	Description:   "This book doesn’t have a description yet — but every page still holds a world to explore.",
	CoverImageURL: illustration("book-placeholder.svg"),
	Quote:         "“Every book teaches us something about ourselves.”",
}

// Reflection copy fallbacks.
var Reflection = struct {
	ReviewPlaceholder string
	NoReviewsMessage  string
}{
	ReviewPlaceholder: "Share your reflection — what did this book make you feel, realize, or remember?",
	NoReviewsMessage:  "No reflections yet. Be the first to share your thoughts.",
}

// Quotes shown when a book or author has no custom quote.
var Quotes = []string{
	"“A book is a dream you hold in your hands.” — Neil Gaiman",
	"“A writer only begins a book. A reader finishes it.” — Samuel Johnson",
	"“We read to know we are not alone.” — C.S. Lewis",
}

// Resolve returns fallback when value is empty, otherwise value unchanged.
// Example: defaults.Resolve(book.Genre, defaults.Book.Genre)
func Resolve(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// RandomQuote picks one of the fallback quotes.
func RandomQuote() string {
	return Quotes[rand.Intn(len(Quotes))]
}

// mockHosts are placeholder domains that must never be fetched as real covers.
var mockHosts = map[string]bool{
	"example.com": true,
}

// ValidCoverURL reports whether raw looks like a fetchable image URL. Empty
// values, relative paths, and known mock domains all fail.
func ValidCoverURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme == "" || u.Host == "" {
		return false
	}
	return !mockHosts[u.Hostname()]
}
