package session

// store.go owns the persisted session blob. All mutation goes through Login
// and Logout; every other component only reads. The blob lives in a single
// JSON file so independently running commands (and the browse TUI) share one
// identity, the same way browser tabs share one localStorage key.

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// StorageKey is the well-known name of the session blob.
const StorageKey = "mindful_user"

// Record is the authenticated user's session as returned by the login
// endpoint and persisted locally.
type Record struct {
	Token       string `json:"token"`
	UserID      string `json:"userId"`
	Role        string `json:"role"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// Listener receives the new session record on every change, or nil after a
// logout.
type Listener func(*Record)

// Store reads and writes the session file and fans out change notifications.
type Store struct {
	path string

	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int
	lastRaw   []byte // last content written or observed, used by Watch
}

// NewStore creates a store around the session file at dir/<StorageKey>.json.
func NewStore(dir string) *Store {
	path := filepath.Join(dir, StorageKey+".json")
	// Snapshot whatever is already on disk so Watch only reports changes made
	// after this store was created.
	raw, _ := os.ReadFile(path)
	return &Store{
		path:      path,
		listeners: make(map[int]Listener),
		lastRaw:   raw,
	}
}

// Path returns the location of the session file.
func (s *Store) Path() string {
	return s.path
}

// IsLoggedIn reports whether a session blob exists.
func (s *Store) IsLoggedIn() bool {
	info, err := os.Stat(s.path)
	return err == nil && info.Size() > 0
}

// Login persists the record, notifies listeners, then runs next. Storage
// failures are logged and swallowed; next still runs so navigation is never
// blocked on a broken disk.
func (s *Store) Login(rec *Record, next func()) {
	if rec == nil {
		rec = &Record{}
	}
	data, err := json.Marshal(rec)
	if err != nil {
		log.Printf("session: marshal error: %v", err)
		data = []byte("{}")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Printf("session: storage error: %v", err)
	} else if err := os.WriteFile(s.path, data, 0o600); err != nil {
		log.Printf("session: storage error: %v", err)
	}

	s.mu.Lock()
	s.lastRaw = data
	s.mu.Unlock()

	s.emit(rec)
	if next != nil {
		next()
	}
}

// Logout removes the session blob, notifies listeners with nil, then runs
// next.
func (s *Store) Logout(next func()) {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		log.Printf("session: storage error: %v", err)
	}

	s.mu.Lock()
	s.lastRaw = nil
	s.mu.Unlock()

	s.emit(nil)
	if next != nil {
		next()
	}
}

// GetCurrentUser returns the stored record, or nil when the blob is missing
// or malformed. Never returns an error; a corrupt file reads as signed out.
func (s *Store) GetCurrentUser() *Record {
	raw, err := os.ReadFile(s.path)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil
	}
	return &rec
}

// GetToken returns the bearer token, or "" when signed out.
func (s *Store) GetToken() string {
	if u := s.GetCurrentUser(); u != nil {
		return u.Token
	}
	return ""
}

// GetCurrentUserID returns the signed-in user's id, or "".
func (s *Store) GetCurrentUserID() string {
	if u := s.GetCurrentUser(); u != nil {
		return u.UserID
	}
	return ""
}

// GetCurrentUserRole returns the signed-in user's role, or "".
func (s *Store) GetCurrentUserRole() string {
	if u := s.GetCurrentUser(); u != nil {
		return u.Role
	}
	return ""
}

// OnAuthChange registers cb for login/logout/foreign-write notifications and
// returns an unsubscribe func. A panicking listener is logged and isolated
// so it cannot break the others.
func (s *Store) OnAuthChange(cb Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = cb
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) emit(rec *Record) {
	s.mu.Lock()
	cbs := make([]Listener, 0, len(s.listeners))
	for _, cb := range s.listeners {
		cbs = append(cbs, cb)
	}
	s.mu.Unlock()

	for _, cb := range cbs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("session: auth listener error: %v", r)
				}
			}()
			cb(rec)
		}()
	}
}
