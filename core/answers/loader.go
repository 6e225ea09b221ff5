// Package answers - Loosely-typed answer import
package answers

import (
	"github.com/tidwall/gjson"

	"quoteforge/core/types"
	"quoteforge/internal/errors"
)

// ParseJSON reads an answer snapshot from JSON. The document is an
// object mapping question ids to values; values may be strings,
// numbers or booleans, or objects carrying a "value" field (the shape
// quote persistence writes). Unknown value shapes are dropped.
func ParseJSON(data []byte) (types.AnswerSet, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New(errors.TypeParsing, "answers document is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New(errors.TypeParsing, "answers document must be a JSON object")
	}

	set := make(types.AnswerSet)
	root.ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() {
			value = value.Get("value")
		}
		if v, ok := answerValue(value); ok {
			set[key.String()] = types.Answer{QuestionID: key.String(), Value: v}
		}
		return true
	})

	return set, nil
}

func answerValue(r gjson.Result) (types.AnswerValue, bool) {
	switch r.Type {
	case gjson.True:
		return types.BoolValue(true), true
	case gjson.False:
		return types.BoolValue(false), true
	case gjson.Number:
		return types.NumberValue(r.Num), true
	case gjson.String:
		return types.StringValue(r.Str), true
	default:
		return types.AnswerValue{}, false
	}
}
