package xlrender

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/GlibAI/GenXL/pkg/document"
	"github.com/GlibAI/GenXL/pkg/layout"
)

func bankLayout(t *testing.T) layout.LayoutOutput {
	t.Helper()
	out, err := layout.AssembleAll([]document.Document{{
		FileName:       "statement_march.pdf",
		ClassifiedType: "bank_statement",
		Fields: []document.Field{
			{Name: "Account Number", Key: "account_number", Section: "Account Information",
				DataType: document.TypeString, Value: "12345"},
			{Name: "Balance", Key: "balance", Section: "Account Information",
				DataType: document.TypeNumber, Value: float64(1000)},
			{Name: "Transactions", Key: "transactions", Section: "Transaction History",
				DataType: document.TypeTable, Table: &document.Table{
					Columns: []string{"Date", "Description", "Amount"},
					Rows: [][]interface{}{
						{"2024-03-01", "Coffee", 4.5},
					},
				}},
		},
	}})
	require.NoError(t, err)
	return out
}

func reopen(t *testing.T, out layout.LayoutOutput) *excelize.File {
	t.Helper()
	data, err := ToBytes(out)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestRenderBankStatement(t *testing.T) {
	f := reopen(t, bankLayout(t))

	assert.Equal(t, []string{"Bank Statement"}, f.GetSheetList(),
		"default Sheet1 is dropped when unclaimed")

	v, err := f.GetCellValue("Bank Statement", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Bank Statement", v)

	v, err = f.GetCellValue("Bank Statement", "B3")
	require.NoError(t, err)
	assert.Equal(t, "12345", v)

	v, err = f.GetCellValue("Bank Statement", "A7")
	require.NoError(t, err)
	assert.Equal(t, "Date", v)

	// Blank separator row stays blank.
	v, err = f.GetCellValue("Bank Statement", "A5")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestRenderAppliesStyles(t *testing.T) {
	f := reopen(t, bankLayout(t))

	style := func(cell string) *excelize.Style {
		id, err := f.GetCellStyle("Bank Statement", cell)
		require.NoError(t, err)
		s, err := f.GetStyle(id)
		require.NoError(t, err)
		return s
	}

	title := style("A1")
	require.NotNil(t, title.Font)
	assert.Equal(t, float64(12), title.Font.Size)
	assert.True(t, title.Font.Bold)

	// Numeric value cell aligns right, date table cell centers.
	balance := style("B4")
	require.NotNil(t, balance.Alignment)
	assert.Equal(t, "right", balance.Alignment.Horizontal)

	date := style("A8")
	require.NotNil(t, date.Alignment)
	assert.Equal(t, "center", date.Alignment.Horizontal)
}

func TestRenderStyleCacheSharesIDs(t *testing.T) {
	out := bankLayout(t)
	f, err := Render(out)
	require.NoError(t, err)
	defer f.Close()

	// Both table headers carry the identical style, so they must share one ID.
	a7, err := f.GetCellStyle("Bank Statement", "A7")
	require.NoError(t, err)
	b7, err := f.GetCellStyle("Bank Statement", "B7")
	require.NoError(t, err)
	assert.Equal(t, a7, b7)
}

func TestRenderKeepsDefaultSheetWhenClaimed(t *testing.T) {
	style := layout.Resolve(layout.RoleFieldValue, document.TypeString)
	out := layout.LayoutOutput{Sheets: []layout.Sheet{
		{Name: "Sheet1", Cells: []layout.CellMapping{
			{Coordinate: "A1", Value: "x", CellStyle: style},
		}},
	}}

	f := reopen(t, out)
	assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())
}

func TestRenderMultipleSheets(t *testing.T) {
	style := layout.Resolve(layout.RoleTitle, document.TypeString)
	out := layout.LayoutOutput{Sheets: []layout.Sheet{
		{Name: "First", Cells: []layout.CellMapping{{Coordinate: "A1", Value: "a", CellStyle: style}}},
		{Name: "Second", Cells: []layout.CellMapping{{Coordinate: "A1", Value: "b", CellStyle: style}}},
	}}

	f := reopen(t, out)
	assert.Equal(t, []string{"First", "Second"}, f.GetSheetList())
}

func TestRenderEmptyLayout(t *testing.T) {
	_, err := Render(layout.LayoutOutput{})
	assert.ErrorIs(t, err, ErrEmptyLayout)
}

func TestRenderBadCoordinate(t *testing.T) {
	style := layout.Resolve(layout.RoleTitle, document.TypeString)
	out := layout.LayoutOutput{Sheets: []layout.Sheet{
		{Name: "S", Cells: []layout.CellMapping{{Coordinate: "1A", Value: "x", CellStyle: style}}},
	}}
	_, err := Render(out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadCoordinate)
}

func TestSaveFile(t *testing.T) {
	path := t.TempDir() + "/out.xlsx"
	require.NoError(t, SaveFile(bankLayout(t), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Bank Statement", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Bank Statement", v)
}

func TestSaveFileNoPartialOutput(t *testing.T) {
	path := t.TempDir() + "/out.xlsx"
	err := SaveFile(layout.LayoutOutput{}, path)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}
