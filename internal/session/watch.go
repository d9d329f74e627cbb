package session

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"time"
)

// DefaultWatchInterval is how often Watch polls the session file.
const DefaultWatchInterval = 500 * time.Millisecond

// Watch polls the session file until ctx is done and notifies listeners when
// another process changed it. This is the stand-in for the browser's storage
// event: a write in one process becomes visible to listeners in every other
// live process sharing the file. Readers may see a stale value between the
// foreign write and the next tick; that window is accepted.
func (s *Store) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pollOnce()
		}
	}
}

func (s *Store) pollOnce() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		raw = nil
	}

	s.mu.Lock()
	changed := !bytes.Equal(raw, s.lastRaw)
	if changed {
		s.lastRaw = raw
	}
	s.mu.Unlock()

	if !changed {
		return
	}

	if len(raw) == 0 {
		s.emit(nil)
		return
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.emit(nil)
		return
	}
	s.emit(&rec)
}
