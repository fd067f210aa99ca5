// Package sqlsource turns SQL query results into document table fields, so
// database-resident data can flow through the same layout pipeline as
// extracted documents. Result column order is preserved.
package sqlsource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/GlibAI/GenXL/pkg/document"
)

// DB abstracts the query surface so tests can stub it and both *sql.DB and
// *sql.Tx satisfy it.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Source reads tabular data out of a database.
type Source struct {
	db DB
}

// New creates a Source over db.
func New(db DB) *Source {
	return &Source{db: db}
}

// TableField executes the query and shapes the result set as a Table field
// named name under section. Columns follow the result set order.
func (s *Source) TableField(ctx context.Context, name, section, query string, args ...interface{}) (document.Field, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return document.Field{}, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return document.Field{}, fmt.Errorf("getting columns: %w", err)
	}

	tbl := &document.Table{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return document.Field{}, fmt.Errorf("scanning row: %w", err)
		}

		row := make([]interface{}, len(columns))
		for i, v := range values {
			row[i] = cellValue(v)
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return document.Field{}, fmt.Errorf("iterating rows: %w", err)
	}

	return document.Field{
		Name:     name,
		Key:      fieldKey(name),
		Section:  section,
		DataType: document.TypeTable,
		Table:    tbl,
	}, nil
}

// Document wraps one query result as a single-table document. classifiedType
// drives the sheet name the usual way.
func (s *Source) Document(ctx context.Context, classifiedType, section, query string, args ...interface{}) (document.Document, error) {
	field, err := s.TableField(ctx, section, section, query, args...)
	if err != nil {
		return document.Document{}, err
	}
	return document.Document{
		FileName:       classifiedType,
		ClassifiedType: classifiedType,
		Fields:         []document.Field{field},
	}, nil
}

// cellValue converts driver values into the document model's scalars. Byte
// slices become strings, timestamps become date strings the layout planner
// recognizes, and NULL stays nil.
func cellValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(t)
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format(time.RFC3339)
	default:
		return v
	}
}

func fieldKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
