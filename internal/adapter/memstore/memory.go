package memstore

import (
	"math/rand/v2"
	"sync"
)

// FactStore holds the facts loaded during one session. Nothing is persisted.
type FactStore struct {
	mu    sync.RWMutex
	facts []string
	rng   *rand.Rand
}

// NewFactStore creates an empty store whose sampling is driven by seed.
func NewFactStore(seed uint64) *FactStore {
	return &FactStore{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Replace swaps the stored facts for a copy of facts.
func (s *FactStore) Replace(facts []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts = append([]string(nil), facts...)
}

// Append adds facts after the ones already stored.
func (s *FactStore) Append(facts []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts = append(s.facts, facts...)
}

// Facts returns a copy of the stored facts.
func (s *FactStore) Facts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.facts...)
}

func (s *FactStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.facts)
}

// Clear drops every stored fact.
func (s *FactStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts = nil
}

// Sample returns up to n distinct facts chosen without replacement.
func (s *FactStore) Sample(n int) []string {
	// Lock, not RLock: the generator is mutated.
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || len(s.facts) == 0 {
		return nil
	}
	if n > len(s.facts) {
		n = len(s.facts)
	}
	out := make([]string, 0, n)
	for _, i := range s.rng.Perm(len(s.facts))[:n] {
		out = append(out, s.facts[i])
	}
	return out
}
