package sharedvar

import (
	"testing"

	"quoteforge/core/types"
)

func TestParseBinding(t *testing.T) {
	cases := []struct {
		cell string
		kind types.BindingKind
		name string
	}{
		{"", types.BindingNone, ""},
		{"   ", types.BindingNone, ""},
		{"components", types.BindingDefines, "components"},
		{" seats ", types.BindingDefines, "seats"},
		{"{components}", types.BindingReferences, "components"},
		{"{ seats }", types.BindingReferences, "seats"},
		{"{}", types.BindingNone, ""},
	}

	for _, tc := range cases {
		got := ParseBinding(tc.cell)
		if got.Kind != tc.kind || got.Name != tc.name {
			t.Errorf("ParseBinding(%q) = %+v, want kind=%v name=%q", tc.cell, got, tc.kind, tc.name)
		}
	}
}
