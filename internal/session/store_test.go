package session

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir())
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	store := newTestStore(t)

	rec := &Record{
		Token:  "tok-123",
		UserID: "u-1",
		Role:   "ADMIN",
		Name:   "Ada",
		Email:  "ada@example.org",
	}

	var nextRan bool
	store.Login(rec, func() { nextRan = true })
	assert.True(t, nextRan, "next must run after login")
	assert.True(t, store.IsLoggedIn())

	got := store.GetCurrentUser()
	require.NotNil(t, got)
	assert.Equal(t, rec, got)
	assert.Equal(t, "tok-123", store.GetToken())
	assert.Equal(t, "u-1", store.GetCurrentUserID())
	assert.Equal(t, "ADMIN", store.GetCurrentUserRole())

	nextRan = false
	store.Logout(func() { nextRan = true })
	assert.True(t, nextRan, "next must run after logout")
	assert.False(t, store.IsLoggedIn())
	assert.Nil(t, store.GetCurrentUser())
	assert.Equal(t, "", store.GetToken())
}

func TestGetCurrentUserMalformedBlob(t *testing.T) {
	store := newTestStore(t)
	store.Login(&Record{UserID: "u-1"}, nil)

	// Corrupt the file behind the store's back.
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))
	assert.Nil(t, store.GetCurrentUser())
	assert.Equal(t, "", store.GetToken())
}

func TestOnAuthChange(t *testing.T) {
	store := newTestStore(t)

	var seen []*Record
	unsubscribe := store.OnAuthChange(func(r *Record) { seen = append(seen, r) })

	store.Login(&Record{UserID: "u-1"}, nil)
	store.Logout(nil)

	require.Len(t, seen, 2)
	assert.Equal(t, "u-1", seen[0].UserID)
	assert.Nil(t, seen[1])

	unsubscribe()
	store.Login(&Record{UserID: "u-2"}, nil)
	assert.Len(t, seen, 2, "unsubscribed listener must not fire")
}

func TestListenerPanicIsIsolated(t *testing.T) {
	store := newTestStore(t)

	var calls int
	store.OnAuthChange(func(*Record) { panic("bad listener") })
	store.OnAuthChange(func(*Record) { calls++ })

	store.Login(&Record{UserID: "u-1"}, nil)
	assert.Equal(t, 1, calls, "healthy listener still fires")
}

func TestWatchSeesForeignWrites(t *testing.T) {
	dir := t.TempDir()
	reader := NewStore(dir)
	writer := NewStore(dir)

	var seen []*Record
	reader.OnAuthChange(func(r *Record) { seen = append(seen, r) })

	writer.Login(&Record{UserID: "u-9", Token: "t"}, nil)
	reader.pollOnce()
	require.Len(t, seen, 1)
	assert.Equal(t, "u-9", seen[0].UserID)

	// No change, no notification.
	reader.pollOnce()
	assert.Len(t, seen, 1)

	writer.Logout(nil)
	reader.pollOnce()
	require.Len(t, seen, 2)
	assert.Nil(t, seen[1])
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestIsTokenExpired(t *testing.T) {
	store := newTestStore(t)

	login := func(token string) {
		store.Login(&Record{UserID: "u-1", Token: token}, nil)
	}

	t.Run("NoSession", func(t *testing.T) {
		store.Logout(nil)
		assert.True(t, store.IsTokenExpired())
	})

	t.Run("ExpiredClaim", func(t *testing.T) {
		login(signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Second).Unix()}))
		assert.True(t, store.IsTokenExpired())
	})

	t.Run("FutureClaim", func(t *testing.T) {
		login(signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}))
		assert.False(t, store.IsTokenExpired())
	})

	t.Run("NoExpClaim", func(t *testing.T) {
		login(signedToken(t, jwt.MapClaims{"sub": "u-1"}))
		assert.False(t, store.IsTokenExpired(), "tokens without exp never expire")
	})

	t.Run("Garbage", func(t *testing.T) {
		login("not-a-jwt")
		assert.True(t, store.IsTokenExpired())
	})
}
