package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlibAI/GenXL/pkg/document"
)

func TestBuildEmptyInput(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Build([]document.Document{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestBuildEmbedsDocuments(t *testing.T) {
	docs := []document.Document{{
		FileName:       "statement_march.pdf",
		ClassifiedType: "bank_statement",
		Fields: []document.Field{
			{Name: "Account Number", Key: "account_number", Section: "Account Information",
				DataType: document.TypeString, Value: "12345"},
		},
	}}

	text, err := Build(docs)
	require.NoError(t, err)

	assert.Contains(t, text, `"statement_march.pdf"`)
	assert.Contains(t, text, `"account_number"`)
	assert.Contains(t, text, `"Account Information"`)
}

func TestBuildStatesTheContract(t *testing.T) {
	text, err := Build([]document.Document{{ClassifiedType: "invoice", Fields: []document.Field{{Name: "Total"}}}})
	require.NoError(t, err)

	// The producer must hear the same rules the deterministic path enforces.
	for _, rule := range []string{
		"cell_coordinate",
		"background_color",
		"FFD2BF",
		"B6C2DB",
		"F0EFE8",
		"D3D3D3",
		`"right" for Number`,
		"raw, valid JSON only",
	} {
		assert.Contains(t, text, rule)
	}
	assert.Equal(t, 1, strings.Count(text, "INPUT DATA"))
}

func TestBuildDeterministic(t *testing.T) {
	docs := []document.Document{{ClassifiedType: "invoice", Fields: []document.Field{{Name: "Total", DataType: document.TypeNumber, Value: 9.5}}}}
	a, err := Build(docs)
	require.NoError(t, err)
	b, err := Build(docs)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
