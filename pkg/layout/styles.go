package layout

import "github.com/GlibAI/GenXL/pkg/document"

// Fixed palette. The hierarchy is five priority levels; within a level the
// only data-dependent attribute is horizontal alignment.
const (
	colorText        = "000000"
	colorTitleFill   = "FFD2BF"
	colorSectionFill = "B6C2DB"
	colorLabelFill   = "F0EFE8"
	colorCellBorder  = "D3D3D3"
)

// Resolve returns the style for a role/data-type pair. It is a pure lookup:
// the same pair always yields the same style, so a sheet never varies
// visually row to row.
func Resolve(role Role, dataType document.DataType) CellStyle {
	switch role {
	case RoleTitle:
		return CellStyle{
			FontSize:        12,
			FontColor:       colorText,
			BackgroundColor: colorTitleFill,
			Bold:            true,
			HAlign:          "left",
			VAlign:          "center",
			BorderTop:       "medium",
			BorderBottom:    "medium",
			BorderLeft:      "medium",
			BorderRight:     "medium",
			BorderColor:     colorText,
		}
	case RoleSectionHeader:
		return CellStyle{
			FontSize:        11,
			FontColor:       colorText,
			BackgroundColor: colorSectionFill,
			Bold:            true,
			HAlign:          "left",
			VAlign:          "center",
			BorderTop:       "medium",
			BorderBottom:    "medium",
			BorderLeft:      "thin",
			BorderRight:     "thin",
			BorderColor:     colorText,
		}
	case RoleFieldLabel, RoleTableHeader:
		// Headers stay left-aligned whatever the column type holds.
		return CellStyle{
			FontSize:        10,
			FontColor:       colorText,
			BackgroundColor: colorLabelFill,
			Bold:            true,
			HAlign:          "left",
			VAlign:          "center",
			BorderTop:       "thin",
			BorderBottom:    "thin",
			BorderLeft:      "thin",
			BorderRight:     "thin",
			BorderColor:     colorText,
		}
	default: // RoleFieldValue, RoleTableCell
		return CellStyle{
			FontSize:     10,
			FontColor:    colorText,
			HAlign:       valueAlignment(dataType),
			VAlign:       "center",
			BorderTop:    "thin",
			BorderBottom: "thin",
			BorderLeft:   "thin",
			BorderRight:  "thin",
			BorderColor:  colorCellBorder,
		}
	}
}

func valueAlignment(dataType document.DataType) string {
	switch dataType {
	case document.TypeNumber:
		return "right"
	case document.TypeDate:
		return "center"
	}
	return "left"
}
