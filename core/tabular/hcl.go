// Package tabular - HCL row source
//
// An HCL pricing document is an alternative to spreadsheet exports for
// hand-maintained tables:
//
//	item "Workshop" {
//	  phase     = "Discovery"
//	  unit_cost = 1000
//	  essential = 1
//	}
package tabular

import (
	"strconv"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"quoteforge/internal/errors"
)

type hclDocument struct {
	Items []hclItem `hcl:"item,block"`
}

type hclItem struct {
	Name           string   `hcl:"name,label"`
	Phase          string   `hcl:"phase"`
	UnitCost       *float64 `hcl:"unit_cost,optional"`
	Essential      *float64 `hcl:"essential,optional"`
	Refresh        *float64 `hcl:"refresh,optional"`
	Transformation *float64 `hcl:"transformation,optional"`
	Ranges         *string  `hcl:"ranges,optional"`
	Type           *string  `hcl:"type,optional"`
	Options        *string  `hcl:"options,optional"`
	Description    *string  `hcl:"description,optional"`
	Min            *float64 `hcl:"min,optional"`
	Max            *float64 `hcl:"max,optional"`
	Required       *bool    `hcl:"required,optional"`
	Validation     *string  `hcl:"validation,optional"`
	SharedVariable *string  `hcl:"shared_variable,optional"`
	AddOn          *bool    `hcl:"add_on,optional"`
}

// DecodeHCL decodes an HCL pricing document into table rows. The rows
// feed the same parsing pipeline as CSV exports, so both sources share
// the cell-level grammar and tolerances.
func DecodeHCL(src []byte, filename string) ([]Row, error) {
	var doc hclDocument
	if err := hclsimple.Decode(filename, src, nil, &doc); err != nil {
		return nil, errors.Parsing("failed to decode HCL pricing document", err)
	}

	rows := make([]Row, 0, len(doc.Items))
	for _, item := range doc.Items {
		row := Row{}
		row.Set("Phase", item.Phase)
		row.Set("Item", item.Name)
		setFloat(row, "Unit Cost", item.UnitCost)
		setFloat(row, "Essential", item.Essential)
		setFloat(row, "Refresh", item.Refresh)
		setFloat(row, "Transformation", item.Transformation)
		setString(row, "Ranges", item.Ranges)
		setString(row, "Question Type", item.Type)
		setString(row, "Options", item.Options)
		setString(row, "Description", item.Description)
		setFloat(row, "Min", item.Min)
		setFloat(row, "Max", item.Max)
		setBool(row, "Required", item.Required)
		setString(row, "Validation", item.Validation)
		setString(row, "Shared Variable", item.SharedVariable)
		setBool(row, "Add On", item.AddOn)
		rows = append(rows, row)
	}

	return rows, nil
}

func setFloat(row Row, name string, v *float64) {
	if v != nil {
		row.Set(name, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

func setString(row Row, name string, v *string) {
	if v != nil {
		row.Set(name, *v)
	}
}

func setBool(row Row, name string, v *bool) {
	if v != nil {
		row.Set(name, strconv.FormatBool(*v))
	}
}
