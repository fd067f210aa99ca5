// Package layout plans the cell grid for an extracted document: which row
// and column every value lands on, what structural role it plays, and the
// style that role implies. The output is the canonical layout mapping
// consumed by the renderer.
package layout

import (
	"bytes"
	"encoding/json"
)

// Role is the structural category of a cell. It drives style resolution.
type Role int

const (
	RoleTitle Role = iota
	RoleSectionHeader
	RoleFieldLabel
	RoleTableHeader
	RoleFieldValue
	RoleTableCell
)

func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleSectionHeader:
		return "section_header"
	case RoleFieldLabel:
		return "field_label"
	case RoleTableHeader:
		return "table_header"
	case RoleFieldValue:
		return "field_value"
	case RoleTableCell:
		return "table_cell"
	}
	return "unknown"
}

// HexColor is a 6-character hex color. The empty value means "no color" and
// serializes as JSON null, matching the producer contract for fills.
type HexColor string

func (c HexColor) MarshalJSON() ([]byte, error) {
	if c == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(c))
}

func (c *HexColor) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = HexColor(s)
	return nil
}

// CellStyle is the complete visual attribute set of one cell. All fields are
// value types so styles compare with == and can key a cache.
type CellStyle struct {
	FontSize        int      `json:"font_size"`
	FontColor       string   `json:"font_color"`
	BackgroundColor HexColor `json:"background_color"`
	Bold            bool     `json:"is_bold"`
	Italic          bool     `json:"is_italic"`
	HAlign          string   `json:"horizontal_alignment"`
	VAlign          string   `json:"vertical_alignment"`
	BorderTop       string   `json:"border_top"`
	BorderBottom    string   `json:"border_bottom"`
	BorderLeft      string   `json:"border_left"`
	BorderRight     string   `json:"border_right"`
	BorderColor     string   `json:"border_color"`
}

// CellMapping is one occupied cell: coordinate, value, and full style.
type CellMapping struct {
	Coordinate string      `json:"cell_coordinate"`
	Value      interface{} `json:"cell_value"`
	CellStyle
}

// Sheet is one worksheet worth of cell mappings, in emission order.
type Sheet struct {
	Name  string
	Cells []CellMapping
}

// LayoutOutput is the canonical layout mapping: an ordered list of sheets.
// Order is part of the contract; identical input must serialize to identical
// bytes.
type LayoutOutput struct {
	Sheets []Sheet
}

// MarshalJSON writes the producer wire shape, {sheetName: [cells...]},
// preserving sheet order.
func (o LayoutOutput) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sheet := range o.Sheets {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(sheet.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		cells, err := json.Marshal(sheet.Cells)
		if err != nil {
			return nil, err
		}
		buf.Write(cells)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
