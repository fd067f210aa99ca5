package layout

import (
	"fmt"

	"github.com/GlibAI/GenXL/pkg/cellref"
	"github.com/GlibAI/GenXL/pkg/document"
)

// Assemble runs the normalize/plan/resolve pipeline for one document and
// produces its sheet. The sheet name equals the derived document title.
func Assemble(doc document.Document) (Sheet, error) {
	sections := Normalize(doc.Fields)
	if len(sections) == 0 {
		return Sheet{}, fmt.Errorf("%w: document %q", ErrEmptyDocument, doc.FileName)
	}

	title := doc.Title()
	if title == "" {
		title = "Document"
	}

	planned := PlanSections(title, sections)
	sheet := Sheet{Name: title, Cells: make([]CellMapping, 0, len(planned))}
	for _, pc := range planned {
		coord, err := cellref.Format(pc.Row, pc.Col)
		if err != nil {
			return Sheet{}, fmt.Errorf("sheet %q: %w", title, err)
		}
		sheet.Cells = append(sheet.Cells, CellMapping{
			Coordinate: coord,
			Value:      pc.Value,
			CellStyle:  Resolve(pc.Role, pc.DataType),
		})
	}
	return sheet, nil
}

// AssembleAll assembles every document into one layout mapping, in input
// order. When two documents derive the same sheet name the later one gets a
// numeric suffix (" 2", " 3", ...), so the result is deterministic for a
// given input order.
func AssembleAll(docs []document.Document) (LayoutOutput, error) {
	var out LayoutOutput
	seen := make(map[string]bool, len(docs))

	for _, doc := range docs {
		sheet, err := Assemble(doc)
		if err != nil {
			return LayoutOutput{}, err
		}
		if seen[sheet.Name] {
			base := sheet.Name
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s %d", base, n)
				if !seen[candidate] {
					sheet.Name = candidate
					break
				}
			}
		}
		seen[sheet.Name] = true
		out.Sheets = append(out.Sheets, sheet)
	}
	return out, nil
}
