// Package sharedvar resolves shared variables: named values entered
// once and reused by reference across questions and phases.
package sharedvar

import (
	"strings"

	"quoteforge/core/types"
)

// ParseBinding classifies a shared-variable cell. A bare name defines
// the variable; a {name}-wrapped cell references it; an empty cell is
// no binding. The classification happens once at schema build time so
// the rest of the engine never string-sniffs the cell.
func ParseBinding(cell string) types.VariableBinding {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return types.VariableBinding{Kind: types.BindingNone}
	}

	if strings.HasPrefix(cell, "{") && strings.HasSuffix(cell, "}") {
		name := strings.TrimSpace(cell[1 : len(cell)-1])
		if name == "" {
			return types.VariableBinding{Kind: types.BindingNone}
		}
		return types.VariableBinding{Kind: types.BindingReferences, Name: name}
	}

	return types.VariableBinding{Kind: types.BindingDefines, Name: cell}
}
