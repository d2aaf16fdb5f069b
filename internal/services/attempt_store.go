package services

import (
	"sync"
	"time"
)

// AttemptRecord tracks consecutive failed logins for one username. While
// LockedUntil is in the future no credential check may succeed for that
// username, regardless of password correctness.
type AttemptRecord struct {
	Count       int
	LockedUntil time.Time
}

// Locked reports whether the record is still locked at the given instant.
func (r AttemptRecord) Locked(now time.Time) bool {
	return !r.LockedUntil.IsZero() && now.Before(r.LockedUntil)
}

// AttemptStore holds failed-login records keyed by username. The in-memory
// implementation is the single-instance default; a shared store can be
// injected when running multiple instances, otherwise lockout counts are
// per-instance and an attacker can spread attempts across replicas.
type AttemptStore interface {
	Get(key string) (AttemptRecord, bool)
	Put(key string, rec AttemptRecord)
	Delete(key string)
}

// MemoryAttemptStore is a process-local AttemptStore. Records are lost on
// restart, which is acceptable: the consequence is a reset failure counter,
// never a bypass of the credential check itself.
type MemoryAttemptStore struct {
	mu      sync.Mutex
	records map[string]AttemptRecord
}

func NewMemoryAttemptStore() *MemoryAttemptStore {
	return &MemoryAttemptStore{records: make(map[string]AttemptRecord)}
}

func (s *MemoryAttemptStore) Get(key string) (AttemptRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[key]
	return rec, ok
}

func (s *MemoryAttemptStore) Put(key string, rec AttemptRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = rec
}

func (s *MemoryAttemptStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
}
