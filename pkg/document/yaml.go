package document

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads one document or a list of documents from YAML. The walk
// goes through yaml.Node so that table column order follows the source text;
// a plain map decode would lose it.
func DecodeYAML(r io.Reader) ([]Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("decode yaml: empty document")
		}
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		docs := make([]Document, 0, len(node.Content))
		for _, item := range node.Content {
			doc, err := decodeDocumentNode(item)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
		return docs, nil
	case yaml.MappingNode:
		doc, err := decodeDocumentNode(node)
		if err != nil {
			return nil, err
		}
		return []Document{doc}, nil
	default:
		return nil, fmt.Errorf("decode yaml: expected mapping or sequence at top level")
	}
}

func decodeDocumentNode(n *yaml.Node) (Document, error) {
	var doc Document
	if n.Kind != yaml.MappingNode {
		return doc, fmt.Errorf("decode yaml document: expected mapping, got %v", n.Kind)
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "file_name":
			doc.FileName = val.Value
		case "classified_file_type":
			doc.ClassifiedType = val.Value
		case "fields":
			if val.Kind != yaml.SequenceNode {
				return doc, fmt.Errorf("decode yaml document: fields must be a sequence")
			}
			for _, fn := range val.Content {
				field, err := decodeFieldNode(fn)
				if err != nil {
					return doc, err
				}
				doc.Fields = append(doc.Fields, field)
			}
		}
	}
	return doc, nil
}

func decodeFieldNode(n *yaml.Node) (Field, error) {
	var field Field
	if n.Kind != yaml.MappingNode {
		return field, fmt.Errorf("decode yaml field: expected mapping, got %v", n.Kind)
	}

	var valueNode *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "field_name":
			field.Name = val.Value
		case "field_key":
			field.Key = val.Value
		case "section":
			field.Section = val.Value
		case "data_type":
			field.DataType = DataType(val.Value)
		case "value":
			valueNode = val
		}
	}

	if valueNode == nil || valueNode.Tag == "!!null" {
		return field, nil
	}

	if field.DataType == TypeTable {
		tbl, err := decodeTableNode(valueNode)
		if err != nil {
			return field, fmt.Errorf("field %q: %w", field.Name, err)
		}
		field.Table = tbl
		return field, nil
	}

	if err := valueNode.Decode(&field.Value); err != nil {
		return field, fmt.Errorf("field %q: decode value: %w", field.Name, err)
	}
	return field, nil
}

func decodeTableNode(n *yaml.Node) (*Table, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("table value must be a sequence")
	}

	tbl := &Table{}
	var records []map[string]interface{}

	for _, rec := range n.Content {
		if rec.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("table record must be a mapping")
		}
		record := make(map[string]interface{})
		for i := 0; i+1 < len(rec.Content); i += 2 {
			key := rec.Content[i].Value
			var val interface{}
			if err := rec.Content[i+1].Decode(&val); err != nil {
				return nil, fmt.Errorf("decode table cell %q: %w", key, err)
			}
			if !containsColumn(tbl.Columns, key) {
				tbl.Columns = append(tbl.Columns, key)
			}
			record[key] = val
		}
		records = append(records, record)
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
