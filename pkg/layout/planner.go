package layout

import (
	"time"

	"github.com/GlibAI/GenXL/pkg/document"
)

// PlannedCell is one cell before style resolution: position, value, and the
// role/type pair the resolver needs.
type PlannedCell struct {
	Row      int
	Col      int
	Value    interface{}
	Role     Role
	DataType document.DataType
}

// dateLayouts are the formats a string table column may use and still be
// treated as a Date column for alignment.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	time.RFC3339,
}

// PlanSections walks the normalized sections and assigns every value a row
// and column. The row cursor only moves forward:
//
//	row 1            title
//	rows 2..         one block per scalar section (header + label/value rows)
//	following rows   one block per table field (header + column header + records)
//
// Exactly one blank row separates consecutive blocks. No blank row is
// emitted directly under the title, so a document whose first block is a
// table starts it at row 2.
func PlanSections(title string, sections []Section) []PlannedCell {
	cells := []PlannedCell{{
		Row: 1, Col: 1, Value: title, Role: RoleTitle, DataType: document.TypeString,
	}}

	row := 2
	emitted := false // true once any section block exists, gates blank separators

	for _, sec := range sections {
		if len(sec.Scalars) == 0 {
			continue
		}
		if emitted {
			row++ // blank separator, consumes the row number without a mapping
		}
		cells = append(cells, PlannedCell{
			Row: row, Col: 1, Value: sec.Name, Role: RoleSectionHeader, DataType: document.TypeString,
		})
		row++

		for _, f := range sec.Scalars {
			cells = append(cells,
				PlannedCell{Row: row, Col: 1, Value: f.Name, Role: RoleFieldLabel, DataType: f.DataType},
				PlannedCell{Row: row, Col: 2, Value: scalarValue(f.Value), Role: RoleFieldValue, DataType: f.DataType},
			)
			row++
		}
		emitted = true
	}

	for _, sec := range sections {
		for _, f := range sec.Tables {
			// A table with no columns has no header row to emit; skipping the
			// whole block keeps the occupied rows contiguous.
			if f.Table == nil || len(f.Table.Columns) == 0 {
				continue
			}
			if emitted {
				row++
			}
			cells = append(cells, PlannedCell{
				Row: row, Col: 1, Value: sec.Name, Role: RoleSectionHeader, DataType: document.TypeString,
			})
			row++

			colTypes := make([]document.DataType, len(f.Table.Columns))
			for i, name := range f.Table.Columns {
				colTypes[i] = inferColumnType(f.Table, i)
				cells = append(cells, PlannedCell{
					Row: row, Col: i + 1, Value: name, Role: RoleTableHeader, DataType: colTypes[i],
				})
			}
			row++

			for _, record := range f.Table.Rows {
				for i := range f.Table.Columns {
					var v interface{}
					if i < len(record) {
						v = record[i]
					}
					cells = append(cells, PlannedCell{
						Row: row, Col: i + 1, Value: scalarValue(v), Role: RoleTableCell, DataType: colTypes[i],
					})
				}
				row++
			}
			emitted = true
		}
	}

	return cells
}

// scalarValue maps null to the empty string; everything else passes through
// unchanged so numbers stay numeric in the workbook.
func scalarValue(v interface{}) interface{} {
	if v == nil {
		return ""
	}
	return v
}

// inferColumnType decides how a table column aligns. The input model does
// not declare per-column types, so the column is classified from its values:
// all-numeric columns count as Number, all-date strings as Date, anything
// else as String. Null cells are ignored; an all-null column is String.
func inferColumnType(t *document.Table, col int) document.DataType {
	sawValue := false
	numeric := true
	dated := true

	for _, record := range t.Rows {
		if col >= len(record) || record[col] == nil {
			continue
		}
		sawValue = true
		switch v := record[col].(type) {
		case float64, float32, int, int64:
			dated = false
		case string:
			numeric = false
			if !parsesAsDate(v) {
				dated = false
			}
		default:
			numeric = false
			dated = false
		}
		if !numeric && !dated {
			return document.TypeString
		}
	}

	switch {
	case !sawValue:
		return document.TypeString
	case numeric:
		return document.TypeNumber
	case dated:
		return document.TypeDate
	}
	return document.TypeString
}

func parsesAsDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
