// Package reflections drives the "reflections from readers" flow: one feed
// per book, and an add-or-replace submission that keeps the writer's own
// (possibly edited) reflection at the top of the list.
package reflections

import (
	"context"
	"errors"
	"strings"
	"sync"

	"mindfulreader/internal/api"
	"mindfulreader/internal/session"
)

var (
	// ErrNotSignedIn is returned when Submit runs without a session. Callers
	// are expected to check first; this is the backstop.
	ErrNotSignedIn = errors.New("reflections: sign in to share a reflection")

	// ErrEmptyReview is returned when the trimmed text is empty.
	ErrEmptyReview = errors.New("reflections: reflection text is empty")
)

// Feed accumulates the reflections for one book.
type Feed struct {
	client  *api.Client
	session *session.Store
	bookID  string

	mu      sync.Mutex
	reviews []api.Review
}

// NewFeed builds a feed for the given book.
func NewFeed(client *api.Client, sess *session.Store, bookID string) *Feed {
	return &Feed{client: client, session: sess, bookID: bookID}
}

// Load replaces the feed with the server's current list.
func (f *Feed) Load(ctx context.Context) error {
	list, err := f.client.ListReviewsByBook(ctx, f.bookID)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.reviews = list.Items
	f.mu.Unlock()
	return nil
}

// Submit sends the user's reflection and merges the saved record into the
// feed: any earlier entry with the same ratingId is dropped and the saved
// one is prepended, so the submitter sees their reflection first without a
// reload. On failure the feed is left untouched.
func (f *Feed) Submit(ctx context.Context, text string) (api.Review, error) {
	user := f.session.GetCurrentUser()
	if user == nil {
		return api.Review{}, ErrNotSignedIn
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return api.Review{}, ErrEmptyReview
	}

	saved, err := f.client.AddOrUpdateReview(ctx, api.Review{
		BookID: f.bookID,
		UserID: user.UserID,
		Review: trimmed,
	})
	if err != nil {
		return api.Review{}, err
	}

	f.mu.Lock()
	merged := make([]api.Review, 0, len(f.reviews)+1)
	merged = append(merged, saved)
	for _, r := range f.reviews {
		if r.RatingID != saved.RatingID {
			merged = append(merged, r)
		}
	}
	f.reviews = merged
	f.mu.Unlock()

	return saved, nil
}

// Reviews returns a copy of the feed in display order.
func (f *Feed) Reviews() []api.Review {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]api.Review, len(f.reviews))
	copy(out, f.reviews)
	return out
}
