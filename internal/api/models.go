package api

// Wire types for the Mindful Reader API. Ids are opaque strings owned by the
// server; any field may come back empty and must pass through the defaults
// package before display.

// Book is a catalogue entry.
type Book struct {
	BookID          string  `json:"bookId"`
	Title           string  `json:"title"`
	AuthorID        string  `json:"authorId,omitempty"`
	Genre           string  `json:"genre,omitempty"`
	Mood            string  `json:"mood,omitempty"`
	Language        string  `json:"language,omitempty"`
	PageCount       int     `json:"pageCount,omitempty"`
	PublicationDate string  `json:"publicationDate,omitempty"`
	CoverImageURL   string  `json:"coverImageUrl,omitempty"`
	Quote           string  `json:"quote,omitempty"`
	Description     string  `json:"description,omitempty"`
	Author          *Author `json:"author,omitempty"`
}

// Author is a catalogue author.
type Author struct {
	AuthorID          string `json:"authorId"`
	FullName          string `json:"fullName"`
	PenName           string `json:"penName,omitempty"`
	Bio               string `json:"bio,omitempty"`
	Nationality       string `json:"nationality,omitempty"`
	Gender            string `json:"gender,omitempty"`
	DateOfBirth       string `json:"dateOfBirth,omitempty"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	Quote             string `json:"quote,omitempty"`
}

// Review is one reader's reflection on a book. The server keeps at most one
// per (bookId, userId) pair.
type Review struct {
	RatingID  string `json:"ratingId"`
	BookID    string `json:"bookId"`
	UserID    string `json:"userId"`
	Review    string `json:"review"`
	UserName  string `json:"userName,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// User is a reader profile.
type User struct {
	UserID      string `json:"userId"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// PagedBooks is one page of a book listing.
type PagedBooks struct {
	Items   []Book `json:"items"`
	HasMore bool   `json:"hasMore"`
}

// PagedAuthors is one page of an author listing.
type PagedAuthors struct {
	Items   []Author `json:"items"`
	HasMore bool     `json:"hasMore"`
}

// ReviewList is the unpaginated review payload.
type ReviewList struct {
	Items []Review `json:"items"`
}

// AverageRating is the aggregate for one book.
type AverageRating struct {
	BookID  string  `json:"bookId"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ListParams are the pagination and filter knobs shared by list endpoints.
// Offset is a page cursor (0 = first page), not an item index.
type ListParams struct {
	Offset  int
	Limit   int
	OrderBy string
	Title   string // books only
	Name    string // authors only
}
