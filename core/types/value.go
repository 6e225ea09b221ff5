// Package types - Answer value union
package types

import (
	"strconv"

	json "github.com/goccy/go-json"
)

// ValueKind tags the dynamic type of an AnswerValue.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueNumber
	ValueBool
)

// AnswerValue is the loosely-typed value of an answer: a string, a number,
// or a boolean. The zero value is the empty string.
type AnswerValue struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

// StringValue wraps a string.
func StringValue(s string) AnswerValue {
	return AnswerValue{Kind: ValueString, Str: s}
}

// NumberValue wraps a number.
func NumberValue(n float64) AnswerValue {
	return AnswerValue{Kind: ValueNumber, Num: n}
}

// BoolValue wraps a boolean.
func BoolValue(b bool) AnswerValue {
	return AnswerValue{Kind: ValueBool, Bool: b}
}

// IsZero reports whether the value is unset/empty.
func (v AnswerValue) IsZero() bool {
	return v.Kind == ValueString && v.Str == ""
}

// Truthy reports whether the value counts as "selected" for binary
// questions: true booleans, non-zero numbers, and non-empty strings
// other than "false".
func (v AnswerValue) Truthy() bool {
	switch v.Kind {
	case ValueBool:
		return v.Bool
	case ValueNumber:
		return v.Num != 0
	default:
		return v.Str != "" && v.Str != "false"
	}
}

// Quantity converts the value to a numeric quantity. Numbers convert
// directly, numeric strings are parsed, and anything else is zero.
func (v AnswerValue) Quantity() float64 {
	switch v.Kind {
	case ValueNumber:
		return v.Num
	case ValueString:
		n, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Equal reports whether two values are identical in kind and content.
func (v AnswerValue) Equal(o AnswerValue) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueBool:
		return v.Bool == o.Bool
	case ValueNumber:
		return v.Num == o.Num
	default:
		return v.Str == o.Str
	}
}

// String renders the value for display and select-option matching.
func (v AnswerValue) String() string {
	switch v.Kind {
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return v.Str
	}
}

// MarshalJSON encodes the value as its underlying JSON type.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueBool:
		return json.Marshal(v.Bool)
	case ValueNumber:
		return json.Marshal(v.Num)
	default:
		return json.Marshal(v.Str)
	}
}

// UnmarshalJSON decodes a JSON string, number, or boolean.
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case bool:
		*v = BoolValue(t)
	case float64:
		*v = NumberValue(t)
	case string:
		*v = StringValue(t)
	default:
		*v = AnswerValue{}
	}
	return nil
}
