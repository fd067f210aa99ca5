// Package xlrender materializes a layout mapping into an xlsx workbook.
package xlrender

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/GlibAI/GenXL/pkg/cellref"
	"github.com/GlibAI/GenXL/pkg/layout"
)

var (
	// ErrEmptyLayout is returned for a mapping with zero sheets.
	ErrEmptyLayout = errors.New("layout mapping has no sheets")

	// ErrBadCoordinate is returned when a mapping coordinate does not decode.
	ErrBadCoordinate = errors.New("bad cell coordinate")
)

// borderWeights maps the mapping border styles to excelize border style IDs.
var borderWeights = map[string]int{"thin": 1, "medium": 2, "thick": 5}

// Render builds an in-memory workbook from the mapping: one sheet per entry,
// every cell written with its value and full style. The caller owns closing
// the returned file.
func Render(out layout.LayoutOutput) (*excelize.File, error) {
	if len(out.Sheets) == 0 {
		return nil, ErrEmptyLayout
	}

	f := excelize.NewFile()
	styleIDs := make(map[layout.CellStyle]int)

	for _, sheet := range out.Sheets {
		if _, err := f.NewSheet(sheet.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("creating sheet %q: %w", sheet.Name, err)
		}

		for _, cell := range sheet.Cells {
			if _, _, err := cellref.Parse(cell.Coordinate); err != nil {
				f.Close()
				return nil, fmt.Errorf("%w: sheet %q coordinate %q", ErrBadCoordinate, sheet.Name, cell.Coordinate)
			}

			if err := f.SetCellValue(sheet.Name, cell.Coordinate, cell.Value); err != nil {
				f.Close()
				return nil, fmt.Errorf("setting %s!%s: %w", sheet.Name, cell.Coordinate, err)
			}

			styleID, ok := styleIDs[cell.CellStyle]
			if !ok {
				var err error
				styleID, err = createStyle(f, cell.CellStyle)
				if err != nil {
					f.Close()
					return nil, fmt.Errorf("creating style for %s!%s: %w", sheet.Name, cell.Coordinate, err)
				}
				styleIDs[cell.CellStyle] = styleID
			}
			if err := f.SetCellStyle(sheet.Name, cell.Coordinate, cell.Coordinate, styleID); err != nil {
				f.Close()
				return nil, fmt.Errorf("styling %s!%s: %w", sheet.Name, cell.Coordinate, err)
			}
		}
	}

	// Drop the workbook's default sheet unless a mapping claimed the name.
	defaultClaimed := false
	for _, sheet := range out.Sheets {
		if sheet.Name == "Sheet1" {
			defaultClaimed = true
			break
		}
	}
	if !defaultClaimed {
		f.DeleteSheet("Sheet1")
	}
	if idx, err := f.GetSheetIndex(out.Sheets[0].Name); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	return f, nil
}

// WriteTo renders the mapping and streams the workbook to w.
func WriteTo(out layout.LayoutOutput, w io.Writer) error {
	f, err := Render(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// ToBytes renders the mapping into an in-memory xlsx byte slice.
func ToBytes(out layout.LayoutOutput) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTo(out, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveFile renders the mapping and writes it to path. The workbook is built
// fully in memory first, so a failed mapping never leaves a partial file.
func SaveFile(out layout.LayoutOutput, path string) error {
	data, err := ToBytes(out)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// createStyle translates a mapping style into an excelize style.
func createStyle(f *excelize.File, style layout.CellStyle) (int, error) {
	xs := &excelize.Style{
		Font: &excelize.Font{
			Size:   float64(style.FontSize),
			Color:  style.FontColor,
			Bold:   style.Bold,
			Italic: style.Italic,
		},
		Alignment: &excelize.Alignment{
			Horizontal: style.HAlign,
			Vertical:   verticalAlign(style.VAlign),
			WrapText:   true,
		},
	}

	if style.BackgroundColor != "" {
		xs.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{string(style.BackgroundColor)},
		}
	}

	for _, side := range []struct {
		name  string
		style string
	}{
		{"top", style.BorderTop},
		{"bottom", style.BorderBottom},
		{"left", style.BorderLeft},
		{"right", style.BorderRight},
	} {
		weight, ok := borderWeights[side.style]
		if !ok {
			continue // "none" and anything unrecognized draw no border
		}
		xs.Border = append(xs.Border, excelize.Border{
			Type:  side.name,
			Color: style.BorderColor,
			Style: weight,
		})
	}

	return f.NewStyle(xs)
}

// verticalAlign maps the mapping vocabulary onto excelize's, where bottom is
// the unnamed default.
func verticalAlign(v string) string {
	if v == "bottom" {
		return ""
	}
	return v
}
