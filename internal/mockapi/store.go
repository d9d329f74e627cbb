package mockapi

// store.go is the in-memory stand-in for the real backend's database. It
// exists so the client is runnable and testable end to end without the
// production API; nothing here survives a restart.

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"mindfulreader/internal/api"
)

var (
	errBookNotFound   = errors.New("book not found")
	errAuthorNotFound = errors.New("author not found")
	errUserNotFound   = errors.New("user not found")
	errEmailInUse     = errors.New("email already in use")
)

// user is the server-side account record; the password hash never leaves
// this package.
type user struct {
	api.User
	PasswordHash string
}

// Store holds all mock data behind one lock.
type Store struct {
	mu      sync.Mutex
	books   map[string]api.Book
	authors map[string]api.Author
	users   map[string]user
	ratings map[string]api.Review // key bookId|userId
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		books:   make(map[string]api.Book),
		authors: make(map[string]api.Author),
		users:   make(map[string]user),
		ratings: make(map[string]api.Review),
	}
}

// paginate slices one page out of items using the page-cursor convention:
// offset counts pages of size limit.
func paginate[T any](items []T, offset, limit int) ([]T, bool) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	start := offset * limit
	if start >= len(items) {
		return []T{}, false
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], end < len(items)
}

/* ---------- books ---------- */

func (s *Store) listBooks(offset, limit int, orderBy, title string) ([]api.Book, bool) {
	s.mu.Lock()
	all := make([]api.Book, 0, len(s.books))
	for _, b := range s.books {
		if title != "" && !strings.Contains(strings.ToLower(b.Title), strings.ToLower(title)) {
			continue
		}
		all = append(all, s.withAuthor(b))
	}
	s.mu.Unlock()

	sortBooks(all, orderBy)
	return paginate(all, offset, limit)
}

func (s *Store) listBooksByAuthor(authorID string, offset, limit int, orderBy string) ([]api.Book, bool) {
	s.mu.Lock()
	all := make([]api.Book, 0)
	for _, b := range s.books {
		if b.AuthorID == authorID {
			all = append(all, s.withAuthor(b))
		}
	}
	s.mu.Unlock()

	sortBooks(all, orderBy)
	return paginate(all, offset, limit)
}

func sortBooks(books []api.Book, orderBy string) {
	field := strings.TrimPrefix(orderBy, "-")
	desc := strings.HasPrefix(orderBy, "-")
	sort.SliceStable(books, func(i, j int) bool {
		var less bool
		switch field {
		case "publicationDate":
			less = books[i].PublicationDate < books[j].PublicationDate
		default:
			less = books[i].Title < books[j].Title
		}
		if desc {
			return !less
		}
		return less
	})
}

// withAuthor embeds the author record the way the real API does. Callers
// must hold s.mu.
func (s *Store) withAuthor(b api.Book) api.Book {
	if a, ok := s.authors[b.AuthorID]; ok {
		b.Author = &a
	}
	return b
}

func (s *Store) getBook(id string) (api.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return api.Book{}, errBookNotFound
	}
	return s.withAuthor(b), nil
}

func (s *Store) createBook(b api.Book) api.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.BookID = uuid.NewString()
	b.Author = nil
	s.books[b.BookID] = b
	return s.withAuthor(b)
}

func (s *Store) updateBook(id string, b api.Book) (api.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return api.Book{}, errBookNotFound
	}
	b.BookID = id
	b.Author = nil
	s.books[id] = b
	return s.withAuthor(b), nil
}

func (s *Store) deleteBook(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return errBookNotFound
	}
	delete(s.books, id)
	return nil
}

/* ---------- authors ---------- */

func (s *Store) listAuthors(offset, limit int, orderBy, name string) ([]api.Author, bool) {
	s.mu.Lock()
	all := make([]api.Author, 0, len(s.authors))
	for _, a := range s.authors {
		if name != "" && !strings.Contains(strings.ToLower(a.FullName), strings.ToLower(name)) {
			continue
		}
		all = append(all, a)
	}
	s.mu.Unlock()

	desc := strings.HasPrefix(orderBy, "-")
	sort.SliceStable(all, func(i, j int) bool {
		less := all[i].FullName < all[j].FullName
		if desc {
			return !less
		}
		return less
	})
	return paginate(all, offset, limit)
}

func (s *Store) getAuthor(id string) (api.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.authors[id]
	if !ok {
		return api.Author{}, errAuthorNotFound
	}
	return a, nil
}

func (s *Store) createAuthor(a api.Author) api.Author {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.AuthorID = uuid.NewString()
	s.authors[a.AuthorID] = a
	return a
}

func (s *Store) updateAuthor(id string, a api.Author) (api.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.authors[id]; !ok {
		return api.Author{}, errAuthorNotFound
	}
	a.AuthorID = id
	s.authors[id] = a
	return a, nil
}

func (s *Store) deleteAuthor(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.authors[id]; !ok {
		return errAuthorNotFound
	}
	delete(s.authors, id)
	return nil
}

/* ---------- ratings ---------- */

// upsertRating enforces the one-review-per-(book,user) rule: a resubmission
// keeps the original ratingId and replaces the text.
func (s *Store) upsertRating(r api.Review) (api.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[r.BookID]; !ok {
		return api.Review{}, errBookNotFound
	}
	key := r.BookID + "|" + r.UserID
	if existing, ok := s.ratings[key]; ok {
		existing.Review = r.Review
		s.ratings[key] = existing
		return existing, nil
	}
	r.RatingID = uuid.NewString()
	if u, ok := s.users[r.UserID]; ok {
		r.UserName = u.Name
	}
	s.ratings[key] = r
	return r, nil
}

func (s *Store) ratingsByBook(bookID string) []api.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Review, 0)
	for _, r := range s.ratings {
		if r.BookID == bookID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RatingID < out[j].RatingID })
	return out
}

func (s *Store) ratingsByUser(userID string) []api.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Review, 0)
	for _, r := range s.ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RatingID < out[j].RatingID })
	return out
}

func (s *Store) averageRating(bookID string) api.AverageRating {
	// Reflections carry no numeric score yet; the aggregate reports count
	// only, with average pinned at zero until scores return.
	return api.AverageRating{BookID: bookID, Count: len(s.ratingsByBook(bookID))}
}

/* ---------- users ---------- */

func (s *Store) createUser(name, email, nationality, passwordHash, role string) (user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return user{}, errEmailInUse
		}
	}
	u := user{
		User: api.User{
			UserID:      uuid.NewString(),
			Name:        name,
			Email:       email,
			Role:        role,
			Nationality: nationality,
		},
		PasswordHash: passwordHash,
	}
	s.users[u.UserID] = u
	return u, nil
}

func (s *Store) userByEmail(email string) (user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user{}, errUserNotFound
}

func (s *Store) getUser(id string) (user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return user{}, errUserNotFound
	}
	return u, nil
}

func (s *Store) updateUser(id string, in api.User) (user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return user{}, errUserNotFound
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if in.Nationality != "" {
		u.Nationality = in.Nationality
	}
	s.users[id] = u
	return u, nil
}
