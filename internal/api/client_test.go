package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindfulreader/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := session.NewStore(t.TempDir())
	return NewClient(srv.URL, 2*time.Second, sess), sess
}

func TestListBooks(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "meditations", r.URL.Query().Get("title"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Empty(t, r.Header.Get("Authorization"), "public channel carries no credential")

		json.NewEncoder(w).Encode(PagedBooks{
			Items:   []Book{{BookID: "b-1", Title: "Meditations"}},
			HasMore: true,
		})
	}))

	page, err := client.ListBooks(context.Background(), ListParams{Limit: 20, Title: "meditations"})
	require.NoError(t, err)
	assert.True(t, page.HasMore)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Meditations", page.Items[0].Title)
}

func TestPrivateChannelAttachesBearer(t *testing.T) {
	var gotAuth string
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Book{BookID: "b-1"})
	}))

	sess.Login(&session.Record{Token: "tok-abc", UserID: "u-1"}, nil)

	_, err := client.AddBook(context.Background(), Book{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestStatusErrorMapping(t *testing.T) {
	cases := []struct {
		status   int
		friendly string
	}{
		{http.StatusBadRequest, "Please check your input and try again."},
		{http.StatusUnauthorized, "You need to sign in to continue."},
		{http.StatusForbidden, "You don’t have permission to perform this action."},
		{http.StatusNotFound, "We couldn’t find what you were looking for."},
		{http.StatusRequestTimeout, "The request took too long — please try again."},
		{http.StatusInternalServerError, "Our servers are taking a mindful pause. Please try again in a few moments."},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				json.NewEncoder(w).Encode(map[string]string{"message": "server detail"})
			}))

			_, err := client.GetBook(context.Background(), "b-404")
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.friendly, apiErr.FriendlyMessage)
			assert.Equal(t, "server detail", apiErr.Message)
			assert.Equal(t, "fetching book details", apiErr.Context)
		})
	}
}

func TestNetworkErrorMapping(t *testing.T) {
	sess := session.NewStore(t.TempDir())
	// Nothing listens here; the dial fails before any response.
	client := NewClient("http://127.0.0.1:1", time.Second, sess)

	_, err := client.ListBooks(context.Background(), ListParams{})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeNetwork, apiErr.Code)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "No response received from server.", apiErr.Message)
	assert.Equal(t, "We couldn’t connect to the Mindful Reader library. Please check your connection.", apiErr.FriendlyMessage)
	assert.True(t, IsOffline(err))
}

func TestTimeoutMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, 50*time.Millisecond, session.NewStore(t.TempDir()))

	_, err := client.ListBooks(context.Background(), ListParams{})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeTimeout, apiErr.Code)
	assert.Equal(t, "The request took too long — please try again.", apiErr.FriendlyMessage)
	assert.False(t, IsOffline(err))
}

func TestUnauthorizedClearsSession(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	sess.Login(&session.Record{Token: "stale", UserID: "u-1"}, nil)
	require.True(t, sess.IsLoggedIn())

	_, err := client.GetUser(context.Background(), "u-1")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.False(t, sess.IsLoggedIn(), "401 on the private channel logs the user out")
}

func TestUnauthorizedOnPublicChannelKeepsSession(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	sess.Login(&session.Record{Token: "tok", UserID: "u-1"}, nil)

	_, err := client.GetBook(context.Background(), "b-1")
	require.Error(t, err)
	assert.True(t, sess.IsLoggedIn(), "public channel never touches the session")
}
