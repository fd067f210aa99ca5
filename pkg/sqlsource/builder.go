package sqlsource

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// QueryBuilder constructs the narrow class of queries the export surface
// accepts: SELECT of named columns from one table with an optional LIMIT.
// Identifiers are quoted, so table and column names from a request body
// cannot smuggle SQL in.
type QueryBuilder struct {
	table   string
	columns []string
	limit   int
}

// NewQueryBuilder creates an empty builder.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// From sets the source table, optionally schema-qualified ("schema.table").
func (b *QueryBuilder) From(table string) *QueryBuilder {
	b.table = table
	return b
}

// Select sets the columns to fetch. Without it the query selects *.
func (b *QueryBuilder) Select(cols ...string) *QueryBuilder {
	b.columns = cols
	return b
}

// Limit caps the number of rows. Zero means no limit.
func (b *QueryBuilder) Limit(n int) *QueryBuilder {
	b.limit = n
	return b
}

// Build renders the SQL text.
func (b *QueryBuilder) Build() (string, error) {
	if b.table == "" {
		return "", fmt.Errorf("query builder: table is required")
	}

	cols := "*"
	if len(b.columns) > 0 {
		quoted := make([]string, len(b.columns))
		for i, c := range b.columns {
			quoted[i] = pq.QuoteIdentifier(c)
		}
		cols = strings.Join(quoted, ", ")
	}

	query := fmt.Sprintf("SELECT %s FROM %s", cols, quoteQualified(b.table))
	if b.limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, b.limit)
	}
	return query, nil
}

func quoteQualified(table string) string {
	parts := strings.Split(table, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}
