package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const documentPayload = `{
  "file_name": "statement_march.pdf",
  "classified_file_type": "bank_statement",
  "fields": [
    {"field_name": "Account Number", "field_key": "account_number", "section": "Account Information", "data_type": "String", "value": "12345"},
    {"field_name": "Transactions", "field_key": "transactions", "section": "Transaction History", "data_type": "Table", "value": [
      {"Date": "2024-03-01", "Amount": 4.5}
    ]}
  ]
}`

func invoke(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestRenderDocumentHandler(t *testing.T) {
	h := NewRenderHandler(nil, 100)
	rec := invoke(t, h.RenderDocumentHandler, http.MethodPost, "/render", documentPayload)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="export.xlsx"`, rec.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Bank Statement", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Bank Statement", v)
}

func TestRenderDocumentHandlerFilenameParam(t *testing.T) {
	h := NewRenderHandler(nil, 100)
	rec := invoke(t, h.RenderDocumentHandler, http.MethodPost, "/render?filename=march.xlsx", documentPayload)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="march.xlsx"`, rec.Header().Get("Content-Disposition"))
}

func TestRenderDocumentHandlerBadPayload(t *testing.T) {
	h := NewRenderHandler(nil, 100)
	rec := invoke(t, h.RenderDocumentHandler, http.MethodPost, "/render", "not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid document payload", resp["message"])
}

func TestRenderDocumentHandlerEmptyDocument(t *testing.T) {
	h := NewRenderHandler(nil, 100)
	payload := `{"file_name": "x.pdf", "classified_file_type": "report", "fields": []}`
	rec := invoke(t, h.RenderDocumentHandler, http.MethodPost, "/render", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderMappingHandler(t *testing.T) {
	mapping := `{"Report": [
	  {"cell_coordinate": "A1", "cell_value": "Report", "font_size": 12,
	   "font_color": "000000", "background_color": "FFD2BF", "is_bold": true,
	   "is_italic": false, "horizontal_alignment": "left",
	   "vertical_alignment": "center", "border_top": "medium",
	   "border_bottom": "medium", "border_left": "medium",
	   "border_right": "medium", "border_color": "000000"}
	]}`

	h := NewRenderHandler(nil, 100)
	rec := invoke(t, h.RenderMappingHandler, http.MethodPost, "/render/mapping",
		"```json\n"+mapping+"\n```")

	require.Equal(t, http.StatusOK, rec.Code)

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Report", v)
}

func TestRenderMappingHandlerBadInput(t *testing.T) {
	h := NewRenderHandler(nil, 100)
	rec := invoke(t, h.RenderMappingHandler, http.MethodPost, "/render/mapping", "no json at all")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPromptHandler(t *testing.T) {
	h := NewRenderHandler(nil, 100)
	rec := invoke(t, h.PromptHandler, http.MethodPost, "/prompt", documentPayload)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "statement_march.pdf")
	assert.Contains(t, rec.Body.String(), "cell_coordinate")
}

func TestPromptHandlerBadPayload(t *testing.T) {
	h := NewRenderHandler(nil, 100)
	rec := invoke(t, h.PromptHandler, http.MethodPost, "/prompt", "{broken")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderQueryHandlerNoDatabase(t *testing.T) {
	h := NewRenderHandler(nil, 100)
	rec := invoke(t, h.RenderQueryHandler, http.MethodPost, "/render/query",
		`{"table": "users"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
