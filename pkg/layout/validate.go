package layout

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/GlibAI/GenXL/pkg/cellref"
)

var hexColorRe = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

var (
	borderStyles = map[string]bool{"thin": true, "medium": true, "thick": true, "none": true}
	hAligns      = map[string]bool{"left": true, "center": true, "right": true}
	vAligns      = map[string]bool{"top": true, "center": true, "bottom": true}
)

// Validate checks a layout mapping against the structural invariants:
// unique decodable coordinates, rows starting at 1 with gaps of at most one
// blank separator row, distinct sheet names, and complete well-formed style
// attributes. The returned error wraps ErrInvalidLayoutMapping (or
// ErrAmbiguousSheetName for name collisions) and names the first violation.
func Validate(out LayoutOutput) error {
	seenNames := make(map[string]string, len(out.Sheets))

	for _, sheet := range out.Sheets {
		normalized := strings.Join(strings.Fields(sheet.Name), " ")
		if normalized == "" {
			return fmt.Errorf("%w: empty sheet name", ErrInvalidLayoutMapping)
		}
		if prev, dup := seenNames[normalized]; dup {
			return fmt.Errorf("%w: %q and %q normalize to the same sheet", ErrAmbiguousSheetName, prev, sheet.Name)
		}
		seenNames[normalized] = sheet.Name

		if err := validateSheet(sheet); err != nil {
			return err
		}
	}
	return nil
}

func validateSheet(sheet Sheet) error {
	if len(sheet.Cells) == 0 {
		return fmt.Errorf("%w: sheet %q has no cells", ErrInvalidLayoutMapping, sheet.Name)
	}

	seenCoords := make(map[string]bool, len(sheet.Cells))
	rowSet := make(map[int]bool)

	for _, cell := range sheet.Cells {
		row, _, err := cellref.Parse(cell.Coordinate)
		if err != nil {
			return fmt.Errorf("%w: sheet %q: coordinate %q is not a valid address",
				ErrInvalidLayoutMapping, sheet.Name, cell.Coordinate)
		}
		if seenCoords[cell.Coordinate] {
			return fmt.Errorf("%w: sheet %q: coordinate %q assigned twice",
				ErrInvalidLayoutMapping, sheet.Name, cell.Coordinate)
		}
		seenCoords[cell.Coordinate] = true
		rowSet[row] = true

		if err := validateStyle(cell.CellStyle); err != nil {
			return fmt.Errorf("%w: sheet %q cell %s: %v",
				ErrInvalidLayoutMapping, sheet.Name, cell.Coordinate, err)
		}
	}

	rows := make([]int, 0, len(rowSet))
	for r := range rowSet {
		rows = append(rows, r)
	}
	sort.Ints(rows)

	if rows[0] != 1 {
		return fmt.Errorf("%w: sheet %q: first occupied row is %d, want 1",
			ErrInvalidLayoutMapping, sheet.Name, rows[0])
	}
	for i := 1; i < len(rows); i++ {
		// A gap of 2 is a single blank separator row; anything wider is a hole.
		if rows[i]-rows[i-1] > 2 {
			return fmt.Errorf("%w: sheet %q: rows jump from %d to %d",
				ErrInvalidLayoutMapping, sheet.Name, rows[i-1], rows[i])
		}
	}
	return nil
}

func validateStyle(s CellStyle) error {
	if s.FontSize <= 0 {
		return fmt.Errorf("font_size %d must be positive", s.FontSize)
	}
	if !hexColorRe.MatchString(s.FontColor) {
		return fmt.Errorf("font_color %q is not a 6-char hex color", s.FontColor)
	}
	if s.BackgroundColor != "" && !hexColorRe.MatchString(string(s.BackgroundColor)) {
		return fmt.Errorf("background_color %q is not a 6-char hex color", s.BackgroundColor)
	}
	if !hAligns[s.HAlign] {
		return fmt.Errorf("horizontal_alignment %q is not one of left|center|right", s.HAlign)
	}
	if !vAligns[s.VAlign] {
		return fmt.Errorf("vertical_alignment %q is not one of top|center|bottom", s.VAlign)
	}
	for side, style := range map[string]string{
		"border_top": s.BorderTop, "border_bottom": s.BorderBottom,
		"border_left": s.BorderLeft, "border_right": s.BorderRight,
	} {
		if !borderStyles[style] {
			return fmt.Errorf("%s %q is not one of thin|medium|thick|none", side, style)
		}
	}
	if !hexColorRe.MatchString(s.BorderColor) {
		return fmt.Errorf("border_color %q is not a 6-char hex color", s.BorderColor)
	}
	return nil
}
