// Package sharedvar - Variable value resolution
package sharedvar

import (
	"sort"
	"sync"

	"quoteforge/core/types"
)

// Resolver is the single source of truth for shared-variable values.
// There is exactly one value per variable name; referencing questions
// resolve it by lookup rather than by copying.
type Resolver struct {
	mu     sync.RWMutex
	values map[string]types.AnswerValue
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{values: make(map[string]types.AnswerValue)}
}

// Set stores a variable value. Editing a value propagates to every
// referencing question on the next Apply.
func (r *Resolver) Set(name string, value types.AnswerValue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[name] = value
}

// Get returns a variable value, if set.
func (r *Resolver) Get(name string) (types.AnswerValue, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[name]
	return v, ok
}

// Delete removes a variable value.
func (r *Resolver) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, name)
}

// Names returns the set variable names, sorted.
func (r *Resolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.values))
	for name := range r.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CollectDefinitions seeds variable values from the answers of defining
// questions. The defining question's answer wins over a previously
// collected value for the same name.
func (r *Resolver) CollectDefinitions(phases []types.Phase, answers types.AnswerSet) {
	for _, phase := range phases {
		for _, q := range phase.Questions {
			if !q.SharedVar.Defines() {
				continue
			}
			if ans, ok := answers[q.ID]; ok {
				r.Set(q.SharedVar.Name, ans.Value)
			}
		}
	}
}

// Visible reports whether a question should be presented for answering.
// A question referencing a variable with no value yet is suppressed
// until the defining question is answered; once the value exists the
// question renders read-only, outside the answer-input surface.
func (r *Resolver) Visible(q types.Question) bool {
	if !q.SharedVar.References() {
		return true
	}
	_, ok := r.Get(q.SharedVar.Name)
	return ok
}

// Apply normalizes an answer set against the variable values:
//   - referencing questions resolve to the variable's value, replacing
//     any stale answer of their own; unset references are removed
//   - defining questions resolve to the variable's value when one has
//     been set through an explicit editor, keeping a single source of
//     truth per name
//
// The input snapshot is not mutated.
func (r *Resolver) Apply(answers types.AnswerSet, phases []types.Phase) types.AnswerSet {
	effective := make(types.AnswerSet, len(answers))
	for id, ans := range answers {
		effective[id] = ans
	}

	for _, phase := range phases {
		for _, q := range phase.Questions {
			switch {
			case q.SharedVar.References():
				if v, ok := r.Get(q.SharedVar.Name); ok {
					effective[q.ID] = types.Answer{QuestionID: q.ID, Value: v}
				} else {
					delete(effective, q.ID)
				}
			case q.SharedVar.Defines():
				if v, ok := r.Get(q.SharedVar.Name); ok {
					effective[q.ID] = types.Answer{QuestionID: q.ID, Value: v}
				}
			}
		}
	}

	return effective
}
