// Package types - Question schema types
package types

import "github.com/shopspring/decimal"

// QuestionOption is one choice of a select question.
type QuestionOption struct {
	// Value is the stable option identifier stored in answers
	Value string `json:"value"`

	// Label is the display text
	Label string `json:"label"`

	// Tier links the option to a pricing tier, when the option was
	// synthesized from tier magnitudes
	Tier Tier `json:"tier,omitempty"`

	// Price is a per-option price, when the options cell carried one
	Price *decimal.Decimal `json:"price,omitempty"`

	// IsAddOn reports the option separately from its phase subtotal
	IsAddOn bool `json:"is_add_on,omitempty"`
}

// Question is the typed schema derived from a PricingItem.
type Question struct {
	// ID is a deterministic slug of phase order and label
	ID string `json:"id"`

	// Label is the source item name; resolving a question back to its
	// pricing row matches on this
	Label string `json:"label"`

	Type    QuestionType `json:"type"`
	PhaseID string       `json:"phase_id"`

	Options []QuestionOption `json:"options,omitempty"`

	// Default is the pre-populated value
	Default AnswerValue `json:"default"`

	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Step *float64 `json:"step,omitempty"`

	HelpText   string `json:"help_text,omitempty"`
	Validation string `json:"validation,omitempty"`
	Required   bool   `json:"required,omitempty"`
	IsAddOn    bool   `json:"is_add_on,omitempty"`

	// SharedVar is the question's shared-variable binding
	SharedVar VariableBinding `json:"shared_var"`
}

// Option returns the option with the given value.
func (q Question) Option(value string) (QuestionOption, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return QuestionOption{}, false
}

// Phase is an ordered group of questions.
type Phase struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Order is 1-based; the first phase is always required
	Order      int  `json:"order"`
	IsRequired bool `json:"is_required"`

	Questions []Question `json:"questions"`
}

// Answer is a user response to a question.
type Answer struct {
	QuestionID string      `json:"question_id"`
	Value      AnswerValue `json:"value"`
}

// AnswerSet maps question ids to answers. The engine treats it as a
// pure input snapshot.
type AnswerSet map[string]Answer

// QuestionIDs collects the ids of every question across phases. The
// result is the live id set answers are pruned against after a
// configuration reload.
func QuestionIDs(phases []Phase) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, phase := range phases {
		for _, q := range phase.Questions {
			ids[q.ID] = struct{}{}
		}
	}
	return ids
}

// FindQuestion locates a question by id across phases.
func FindQuestion(phases []Phase, id string) (Question, bool) {
	for _, phase := range phases {
		for _, q := range phase.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}
