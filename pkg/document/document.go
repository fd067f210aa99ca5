// Package document defines the extracted-document input model: typed fields
// grouped into logical sections, as produced by an upstream extraction step.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// DataType classifies a field value.
type DataType string

const (
	TypeString DataType = "String"
	TypeNumber DataType = "Number"
	TypeDate   DataType = "Date"
	TypeTable  DataType = "Table"
)

// Field is a single extracted value with its display label and section.
// Scalar fields carry Value (string, float64, or nil); Table fields carry
// Table instead.
type Field struct {
	Name     string
	Key      string
	Section  string
	DataType DataType
	Value    interface{}
	Table    *Table
}

// Table holds tabular field data. Columns keeps the source column order;
// Rows are aligned to Columns, with nil entries for null cells.
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// Document is one source file worth of extracted fields.
type Document struct {
	FileName       string  `json:"file_name"`
	ClassifiedType string  `json:"classified_file_type"`
	Fields         []Field `json:"fields"`
}

// Title derives the sheet/title text from the classified type: words are
// split on non-alphanumeric runs and title-cased, e.g. "bank_statement"
// becomes "Bank Statement". Only alphanumerics and spaces survive.
func (d Document) Title() string {
	words := strings.FieldsFunc(d.ClassifiedType, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

type fieldJSON struct {
	Name     string          `json:"field_name"`
	Key      string          `json:"field_key"`
	Section  string          `json:"section"`
	DataType DataType        `json:"data_type"`
	Value    json.RawMessage `json:"value"`
}

// UnmarshalJSON decodes a field, parsing Table values with a token walk so
// that column order is taken from the source text rather than map iteration.
func (f *Field) UnmarshalJSON(data []byte) error {
	var aux fieldJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	f.Name = aux.Name
	f.Key = aux.Key
	f.Section = aux.Section
	f.DataType = aux.DataType
	f.Value = nil
	f.Table = nil

	if len(aux.Value) == 0 || bytes.Equal(bytes.TrimSpace(aux.Value), []byte("null")) {
		return nil
	}

	if aux.DataType == TypeTable {
		tbl, err := parseTable(aux.Value)
		if err != nil {
			return fmt.Errorf("field %q: %w", aux.Name, err)
		}
		f.Table = tbl
		return nil
	}

	return json.Unmarshal(aux.Value, &f.Value)
}

// MarshalJSON re-encodes the field in the upstream wire shape.
func (f Field) MarshalJSON() ([]byte, error) {
	var value json.RawMessage
	switch {
	case f.DataType == TypeTable && f.Table != nil:
		raw, err := f.Table.MarshalJSON()
		if err != nil {
			return nil, err
		}
		value = raw
	case f.Value != nil:
		raw, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		value = raw
	default:
		value = json.RawMessage("null")
	}

	return json.Marshal(fieldJSON{
		Name:     f.Name,
		Key:      f.Key,
		Section:  f.Section,
		DataType: f.DataType,
		Value:    value,
	})
}

// MarshalJSON writes the table back as an array of objects in column order.
func (t Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range t.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, col := range t.Columns {
			if j > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(col)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			var cell interface{}
			if j < len(row) {
				cell = row[j]
			}
			val, err := json.Marshal(cell)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// parseTable reads an array of records, collecting column names in the order
// they first appear. Records are expected to share one column set; a missing
// key yields nil in that row.
func parseTable(raw json.RawMessage) (*Table, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse table value: %w", err)
	}
	if tok != json.Delim('[') {
		return nil, fmt.Errorf("table value must be an array, got %v", tok)
	}

	tbl := &Table{}
	var records []map[string]interface{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse table record: %w", err)
		}
		if tok != json.Delim('{') {
			return nil, fmt.Errorf("table record must be an object, got %v", tok)
		}

		record := make(map[string]interface{})
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("parse table record key: %w", err)
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("table record key must be a string, got %v", keyTok)
			}

			var val interface{}
			if err := dec.Decode(&val); err != nil {
				return nil, fmt.Errorf("parse table cell %q: %w", key, err)
			}

			if _, seen := record[key]; !seen {
				if !containsColumn(tbl.Columns, key) {
					tbl.Columns = append(tbl.Columns, key)
				}
			}
			record[key] = val
		}
		if _, err := dec.Token(); err != nil { // closing }
			return nil, err
		}
		records = append(records, record)
	}
	if _, err := dec.Token(); err != nil { // closing ]
		return nil, err
	}

	for _, record := range records {
		row := make([]interface{}, len(tbl.Columns))
		for i, col := range tbl.Columns {
			row[i] = record[col]
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}

func containsColumn(cols []string, name string) bool {
	for _, c := range cols {
		if c == name {
			return true
		}
	}
	return false
}

// Decode reads one document or a list of documents from r. A single object
// is returned as a one-element slice.
func Decode(r io.Reader) ([]Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decode documents: empty input")
	}

	if trimmed[0] == '[' {
		var docs []Document
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, fmt.Errorf("decode document list: %w", err)
		}
		return docs, nil
	}

	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return []Document{doc}, nil
}

// LoadFile reads documents from a JSON or YAML file, chosen by extension.
func LoadFile(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return Decode(f)
	}
}
