// Package prompt builds the instruction text for an external generative
// layout producer. The producer's reply is expected to be a layout mapping
// and goes back in through the ingest package; the rules spelled out here
// mirror what the deterministic planner and resolver do, so either path
// yields the same workbook shape.
package prompt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GlibAI/GenXL/pkg/document"
)

// ErrEmptyInput is returned when there are no documents to lay out.
var ErrEmptyInput = errors.New("input documents are empty")

// Build renders the producer prompt around the JSON-encoded documents.
func Build(docs []document.Document) (string, error) {
	if len(docs) == 0 {
		return "", ErrEmptyInput
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode input documents: %w", err)
	}

	return fmt.Sprintf(promptTemplate, string(data)), nil
}

const promptTemplate = `You are a deterministic JSON-to-Excel layout engine with styling capabilities.

You receive extracted document data as JSON and must produce a structured JSON
output that maps every piece of data to exact Excel cell coordinates WITH
styling properties.

────────────────────────
INPUT DATA
────────────────────────

%s

Each document has:
- "file_name": name of the source document
- "classified_file_type": document category (e.g. "bank_statement")
- "fields": list of extracted fields, each with:
    - "field_name": human-readable label
    - "field_key": machine identifier
    - "section": logical grouping (e.g. "Account Information")
    - "data_type": one of "String", "Number", "Date", "Table"
    - "value": the extracted value (null, a scalar, or an array of objects
      for Table types)

────────────────────────
YOUR TASK
────────────────────────

Produce a JSON object where each root key is an Excel SHEET NAME derived from
the document's classified_file_type (e.g. "Bank Statement"), and each value
is a list of cell objects:

    {
        "cell_coordinate": "<column_letter><row_number>",
        "cell_value": "<string or number>",
        "font_size": <integer>,
        "font_color": "<6-char hex color>",
        "background_color": "<6-char hex color or null>",
        "is_bold": <boolean>,
        "is_italic": <boolean>,
        "horizontal_alignment": "<left|center|right>",
        "vertical_alignment": "<top|center|bottom>",
        "border_top": "<thin|medium|thick|none>",
        "border_bottom": "<thin|medium|thick|none>",
        "border_left": "<thin|medium|thick|none>",
        "border_right": "<thin|medium|thick|none>",
        "border_color": "<6-char hex color>"
    }

────────────────────────
LAYOUT RULES
────────────────────────

1. DOCUMENT TITLE: A1 holds the title derived from classified_file_type.

2. SCALAR FIELDS: group String/Number/Date fields by "section". For each
   section emit a section header row (section name in column A), then one row
   per field: field_name in column A, value in column B ("" when null).
   Leave exactly one empty row between sections.

3. TABLE FIELDS: after all scalar sections and one empty row, emit per table
   a section header row, then a column header row (headers from the record
   keys, starting at column A, original order preserved), then one row per
   record. Use "" for null values.

4. COORDINATES: rows are sequential from 1 with no gaps except the single
   empty separator rows. Columns follow Excel convention A..Z, AA, AB, ...
   Every cell_coordinate must be unique within its sheet.

────────────────────────
STYLING RULES (PRIORITY-BASED)
────────────────────────

PRIORITY 1 - DOCUMENT TITLE: font_size 12, font_color "000000",
background_color "FFD2BF", bold, left/center aligned, all borders "medium",
border_color "000000".

PRIORITY 2 - SECTION HEADERS: font_size 11, font_color "000000",
background_color "B6C2DB", bold, left/center aligned, border top/bottom
"medium", left/right "thin", border_color "000000".

PRIORITY 3 - FIELD LABELS & TABLE COLUMN HEADERS: font_size 10, font_color
"000000", background_color "F0EFE8", bold, left/center aligned, all borders
"thin", border_color "000000".

PRIORITY 4 - FIELD VALUES: font_size 10, font_color "000000",
background_color null, not bold, vertical_alignment "center", all borders
"thin", border_color "D3D3D3". horizontal_alignment: "right" for Number,
"center" for Date, "left" otherwise.

PRIORITY 5 - TABLE DATA CELLS: same as field values; numeric columns align
"right", date columns "center", everything else "left".

Use these exact colors for every sheet; do NOT vary colors per row.

────────────────────────
OUTPUT REQUIREMENTS
────────────────────────

- Output raw, valid JSON only: no code fences, markdown, or commentary.
- The first character MUST be "{" and the last MUST be "}".
- Sheet names use only alphanumeric characters and spaces.
- cell_value is a string or number; keep numbers numeric and dates in their
  original string format.
- Every cell object carries all 12 styling fields; background_color may be
  null.
- Output must be deterministic and repeatable. Never invent data that is not
  in the input; a null field value becomes "".
`
