// Package answers holds collected answers and keeps them consistent
// with the live question schema.
package answers

import (
	"sync"

	"go.uber.org/zap"

	"quoteforge/core/sharedvar"
	"quoteforge/core/types"
	"quoteforge/internal/logging"
)

// Store is the answer set for one quoting session. Answers are
// created or overwritten as the user responds and garbage collected
// when their backing question disappears from a refreshed schema.
type Store struct {
	mu      sync.RWMutex
	answers types.AnswerSet
	phases  []types.Phase
	vars    *sharedvar.Resolver
}

// NewStore creates an empty answer store. The resolver receives
// write-through values whenever a defining question is answered.
func NewStore(vars *sharedvar.Resolver) *Store {
	if vars == nil {
		vars = sharedvar.NewResolver()
	}
	return &Store{
		answers: make(types.AnswerSet),
		vars:    vars,
	}
}

// Variables exposes the shared-variable resolver.
func (s *Store) Variables() *sharedvar.Resolver {
	return s.vars
}

// SetPhases installs a freshly built schema and prunes answers whose
// question id no longer exists, so a configuration reload cannot leave
// ghost priced items behind.
func (s *Store) SetPhases(phases []types.Phase) {
	s.mu.Lock()
	s.phases = phases
	s.mu.Unlock()

	if pruned := s.Prune(types.QuestionIDs(phases)); pruned > 0 {
		logging.Info("pruned stale answers after schema refresh", zap.Int("count", pruned))
	}
}

// Set records an answer. When the question defines a shared variable
// the value writes through to the resolver, propagating to every
// referencing question at once.
func (s *Store) Set(questionID string, value types.AnswerValue) {
	s.mu.Lock()
	s.answers[questionID] = types.Answer{QuestionID: questionID, Value: value}
	phases := s.phases
	s.mu.Unlock()

	if q, ok := types.FindQuestion(phases, questionID); ok && q.SharedVar.Defines() {
		s.vars.Set(q.SharedVar.Name, value)
	}
}

// Remove deletes an answer. When the question defined a shared
// variable its value is cleared too, so referencing questions stop
// resolving against a retracted answer.
func (s *Store) Remove(questionID string) {
	s.mu.Lock()
	delete(s.answers, questionID)
	phases := s.phases
	s.mu.Unlock()

	if q, ok := types.FindQuestion(phases, questionID); ok && q.SharedVar.Defines() {
		s.vars.Delete(q.SharedVar.Name)
	}
}

// Get returns an answer, if present.
func (s *Store) Get(questionID string) (types.Answer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ans, ok := s.answers[questionID]
	return ans, ok
}

// Snapshot returns a copy of the current answer set.
func (s *Store) Snapshot() types.AnswerSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(types.AnswerSet, len(s.answers))
	for id, ans := range s.answers {
		snap[id] = ans
	}
	return snap
}

// Effective returns the answer set with shared variables applied:
// referencing questions resolve to the defining question's value and
// unsatisfied references are suppressed.
func (s *Store) Effective() types.AnswerSet {
	s.mu.RLock()
	phases := s.phases
	s.mu.RUnlock()
	return s.vars.Apply(s.Snapshot(), phases)
}

// Prune removes answers whose question id is not in validIDs and
// returns how many were removed.
func (s *Store) Prune(validIDs map[string]struct{}) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	pruned := 0
	for id := range s.answers {
		if _, ok := validIDs[id]; !ok {
			delete(s.answers, id)
			pruned++
		}
	}
	return pruned
}
