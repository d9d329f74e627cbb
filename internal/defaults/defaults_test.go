package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("EmptyFallsBack", func(t *testing.T) {
		assert.Equal(t, "Untitled Book", Resolve("", "Untitled Book"))
	})

	t.Run("ValuePassesThrough", func(t *testing.T) {
		assert.Equal(t, "The Overstory", Resolve("The Overstory", Book.Title))
	})

	t.Run("WhitespaceIsNotEmpty", func(t *testing.T) {
		// Only the truly empty string falls back; callers trim themselves.
		assert.Equal(t, " ", Resolve(" ", Book.Title))
	})
}

func TestValidCoverURL(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"Empty", "", false},
		{"RelativePath", "/covers/1.jpg", false},
		{"MockDomain", "https://example.com/cover.png", false},
		{"RealURL", "https://covers.openlibrary.org/b/id/240727-L.jpg", true},
		{"NoScheme", "covers.openlibrary.org/x.jpg", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidCoverURL(tc.raw))
		})
	}
}

func TestImageSource(t *testing.T) {
	t.Run("OptimisticThenSwap", func(t *testing.T) {
		img := NewImageSource("https://cdn.books.dev/a.jpg", Book.CoverImageURL)
		assert.Equal(t, "https://cdn.books.dev/a.jpg", img.Current())

		img.MarkFailed()
		assert.Equal(t, Book.CoverImageURL, img.Current())

		// One-shot: once swapped we stay on the fallback.
		img.MarkFailed()
		assert.Equal(t, Book.CoverImageURL, img.Current())
	})

	t.Run("MockURLStartsOnFallback", func(t *testing.T) {
		img := NewImageSource("https://example.com/a.jpg", Book.CoverImageURL)
		assert.Equal(t, Book.CoverImageURL, img.Current())
		assert.True(t, img.Failed())
	})
}

func TestRandomQuote(t *testing.T) {
	assert.Contains(t, Quotes, RandomQuote())
}
