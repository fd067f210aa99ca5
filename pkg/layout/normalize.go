package layout

import "github.com/GlibAI/GenXL/pkg/document"

// Section is a named field group split into its scalar and table members,
// each in original relative order.
type Section struct {
	Name    string
	Scalars []document.Field
	Tables  []document.Field
}

// Normalize groups a flat field list by section name. Sections keep
// first-seen order; a section name reappearing later in the input is merged
// into its first occurrence rather than starting a new block. Whether two
// same-named groups are genuinely one section is an open product question;
// merging is the behavior carried over from the source system.
func Normalize(fields []document.Field) []Section {
	index := make(map[string]int, len(fields))
	var sections []Section

	for _, f := range fields {
		i, ok := index[f.Section]
		if !ok {
			i = len(sections)
			index[f.Section] = i
			sections = append(sections, Section{Name: f.Section})
		}
		if f.DataType == document.TypeTable {
			sections[i].Tables = append(sections[i].Tables, f)
		} else {
			sections[i].Scalars = append(sections[i].Scalars, f)
		}
	}
	return sections
}
