package reflections

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindfulreader/internal/api"
	"mindfulreader/internal/session"
)

// reviewBackend is a minimal ratings endpoint with add-or-replace semantics,
// keyed on (bookId, userId) like the real API.
type reviewBackend struct {
	mu      sync.Mutex
	nextID  int
	reviews map[string]api.Review // key bookId|userId
}

func (b *reviewBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /ratings", func(w http.ResponseWriter, r *http.Request) {
		var in api.Review
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		key := in.BookID + "|" + in.UserID
		existing, ok := b.reviews[key]
		if ok {
			existing.Review = in.Review
			b.reviews[key] = existing
		} else {
			b.nextID++
			existing = api.Review{
				RatingID: "r-" + strconv.Itoa(b.nextID),
				BookID:   in.BookID,
				UserID:   in.UserID,
				Review:   in.Review,
			}
			b.reviews[key] = existing
		}
		b.mu.Unlock()
		json.NewEncoder(w).Encode(existing)
	})
	mux.HandleFunc("GET /ratings/book/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		items := make([]api.Review, 0, len(b.reviews))
		for _, rv := range b.reviews {
			items = append(items, rv)
		}
		b.mu.Unlock()
		json.NewEncoder(w).Encode(api.ReviewList{Items: items})
	})
	return mux
}

func newTestFeed(t *testing.T) (*Feed, *session.Store) {
	t.Helper()
	backend := &reviewBackend{reviews: make(map[string]api.Review)}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	sess := session.NewStore(t.TempDir())
	client := api.NewClient(srv.URL, 2*time.Second, sess)
	return NewFeed(client, sess, "b-1"), sess
}

func TestSubmitRequiresSession(t *testing.T) {
	feed, _ := newTestFeed(t)
	_, err := feed.Submit(context.Background(), "lovely")
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestSubmitRejectsEmptyText(t *testing.T) {
	feed, sess := newTestFeed(t)
	sess.Login(&session.Record{Token: "t", UserID: "u-1"}, nil)

	_, err := feed.Submit(context.Background(), "   \n ")
	assert.ErrorIs(t, err, ErrEmptyReview)
}

func TestSubmitTrimsAndPrepends(t *testing.T) {
	feed, sess := newTestFeed(t)
	sess.Login(&session.Record{Token: "t", UserID: "u-1"}, nil)

	saved, err := feed.Submit(context.Background(), "  a quiet, honest book  ")
	require.NoError(t, err)
	assert.Equal(t, "a quiet, honest book", saved.Review)

	reviews := feed.Reviews()
	require.Len(t, reviews, 1)
	assert.Equal(t, saved.RatingID, reviews[0].RatingID)
}

func TestResubmitReplacesOwnEntry(t *testing.T) {
	feed, sess := newTestFeed(t)
	sess.Login(&session.Record{Token: "t", UserID: "u-1"}, nil)

	first, err := feed.Submit(context.Background(), "first thoughts")
	require.NoError(t, err)

	second, err := feed.Submit(context.Background(), "second thoughts")
	require.NoError(t, err)
	assert.Equal(t, first.RatingID, second.RatingID, "same (book,user) pair keeps one id")

	reviews := feed.Reviews()
	require.Len(t, reviews, 1, "exactly one entry per (bookId, userId)")
	assert.Equal(t, "second thoughts", reviews[0].Review)
}

func TestFailedSubmitLeavesFeedUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	sess := session.NewStore(t.TempDir())
	sess.Login(&session.Record{Token: "t", UserID: "u-1"}, nil)
	client := api.NewClient(srv.URL, time.Second, sess)
	feed := NewFeed(client, sess, "b-1")

	_, err := feed.Submit(context.Background(), "will not land")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, feed.Reviews())
}
