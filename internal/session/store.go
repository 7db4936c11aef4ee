// Package session keeps in-progress dialog sessions in memory. The store
// is TTL-bounded so abandoned sessions are evicted instead of leaking,
// and hands out a per-session lock so concurrent messages for the same
// session cannot lose updates.
package session

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/momorit/mein-formularprojekt/internal/entity"
)

type Store struct {
	sessions *gocache.Cache
	ttl      time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: gocache.New(ttl, 10*time.Minute),
		ttl:      ttl,
		locks:    map[string]*sync.Mutex{},
	}
}

// Put stores the session and refreshes its TTL.
func (s *Store) Put(session *entity.DialogSession) {
	s.sessions.Set(session.ID, session, s.ttl)
}

func (s *Store) Get(id string) (*entity.DialogSession, bool) {
	value, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	return value.(*entity.DialogSession), true
}

// Lock returns the mutex guarding one session. The lock map is not
// evicted with the sessions; a handful of small mutexes per study run is
// an acceptable footprint.
func (s *Store) Lock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

func (s *Store) Count() int {
	return s.sessions.ItemCount()
}
