// Package types contains the shared domain types for the quoting engine.
package types

// QuestionType identifies how a question is asked and answered.
type QuestionType string

const (
	// QuestionBinary is a yes/no question
	QuestionBinary QuestionType = "binary"

	// QuestionSelect is a single-choice question with fixed options
	QuestionSelect QuestionType = "select"

	// QuestionNumber is a free numeric quantity
	QuestionNumber QuestionType = "number"

	// QuestionRange is a numeric quantity priced against quantity brackets
	QuestionRange QuestionType = "range"

	// QuestionText is a free-text question
	QuestionText QuestionType = "text"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionBinary, QuestionSelect, QuestionNumber, QuestionRange, QuestionText:
		return true
	}
	return false
}

// Tier is one of the three pricing/service levels.
type Tier string

const (
	TierEssential      Tier = "essential"
	TierRefresh        Tier = "refresh"
	TierTransformation Tier = "transformation"
)

// AllTiers lists the tiers in ascending order of service level.
func AllTiers() []Tier {
	return []Tier{TierEssential, TierRefresh, TierTransformation}
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierEssential, TierRefresh, TierTransformation:
		return true
	}
	return false
}

// String returns the string representation.
func (t Tier) String() string {
	return string(t)
}

// ProjectType identifies the kind of project being quoted.
type ProjectType string

const (
	ProjectWebDev   ProjectType = "web-dev"
	ProjectBrand    ProjectType = "brand"
	ProjectCampaign ProjectType = "campaign"
)

// BindingKind tags how a question relates to a shared variable.
type BindingKind int

const (
	// BindingNone means the question has no shared-variable relationship
	BindingNone BindingKind = iota

	// BindingDefines means answering the question sets the named variable
	BindingDefines

	// BindingReferences means the question reads the named variable
	BindingReferences
)

// VariableBinding is the shared-variable relationship of a question.
// Exactly one of the three kinds holds per question.
type VariableBinding struct {
	Kind BindingKind `json:"kind"`
	Name string      `json:"name,omitempty"`
}

// Defines reports whether the binding defines a variable.
func (b VariableBinding) Defines() bool { return b.Kind == BindingDefines }

// References reports whether the binding reads a variable.
func (b VariableBinding) References() bool { return b.Kind == BindingReferences }
