package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/GlibAI/GenXL/internal/logger"
	"github.com/GlibAI/GenXL/internal/service/serviceutils"
	"github.com/GlibAI/GenXL/pkg/document"
	"github.com/GlibAI/GenXL/pkg/ingest"
	"github.com/GlibAI/GenXL/pkg/layout"
	"github.com/GlibAI/GenXL/pkg/prompt"
	"github.com/GlibAI/GenXL/pkg/sqlsource"
	"github.com/GlibAI/GenXL/pkg/xlrender"
)

// RenderHandler serves workbook generation over HTTP.
type RenderHandler struct {
	source       *sqlsource.Source // nil when no query database is configured
	maxQueryRows int
}

func NewRenderHandler(source *sqlsource.Source, maxQueryRows int) *RenderHandler {
	return &RenderHandler{source: source, maxQueryRows: maxQueryRows}
}

// RenderDocumentHandler accepts a document (or list) as JSON and responds
// with the rendered workbook.
func (h *RenderHandler) RenderDocumentHandler(c echo.Context) error {
	docs, err := document.Decode(c.Request().Body)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid document payload", err)
	}

	out, err := layout.AssembleAll(docs)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, layout.ErrEmptyDocument) {
			code = http.StatusBadRequest
		}
		return serviceutils.ResponseError(c, code, "Failed to assemble layout", err)
	}

	return h.writeWorkbook(c, out)
}

// RenderMappingHandler accepts raw producer text containing a layout mapping
// and responds with the rendered workbook.
func (h *RenderHandler) RenderMappingHandler(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Failed to read request body", err)
	}

	out, err := ingest.Parse(string(body))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid layout mapping", err)
	}

	return h.writeWorkbook(c, out)
}

// PromptHandler accepts a document (or list) and returns the producer prompt
// for it.
func (h *RenderHandler) PromptHandler(c echo.Context) error {
	docs, err := document.Decode(c.Request().Body)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid document payload", err)
	}

	text, err := prompt.Build(docs)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Failed to build prompt", err)
	}
	return c.String(http.StatusOK, text)
}

// QueryRenderRequest describes a table export: one table, optional column
// list, optional row cap.
type QueryRenderRequest struct {
	Table        string   `json:"table"`
	Columns      []string `json:"columns"`
	Limit        int      `json:"limit"`
	Section      string   `json:"section"`
	DocumentType string   `json:"document_type"`
}

// RenderQueryHandler pulls rows from the configured database and renders
// them as a single-table workbook.
func (h *RenderHandler) RenderQueryHandler(c echo.Context) error {
	if h.source == nil {
		return serviceutils.ResponseError(c, http.StatusServiceUnavailable, "No query database configured", nil)
	}

	var req QueryRenderRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if req.Section == "" {
		req.Section = req.Table
	}
	if req.DocumentType == "" {
		req.DocumentType = req.Table
	}
	if req.Limit <= 0 || req.Limit > h.maxQueryRows {
		req.Limit = h.maxQueryRows
	}

	query, err := sqlsource.NewQueryBuilder().
		From(req.Table).
		Select(req.Columns...).
		Limit(req.Limit).
		Build()
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid query parameters", err)
	}

	ctx := c.Request().Context()
	doc, err := h.source.Document(ctx, req.DocumentType, req.Section, query)
	if err != nil {
		logger.ErrorLog(ctx, "Query export failed", err)
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to query export data", err)
	}

	out, err := layout.AssembleAll([]document.Document{doc})
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to assemble layout", err)
	}
	return h.writeWorkbook(c, out)
}

func (h *RenderHandler) writeWorkbook(c echo.Context, out layout.LayoutOutput) error {
	data, err := xlrender.ToBytes(out)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to render workbook", err)
	}

	filename := c.QueryParam("filename")
	if filename == "" {
		filename = "export.xlsx"
	}

	c.Response().Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Response().Header().Set("Content-Length", strconv.Itoa(len(data)))

	_, err = c.Response().Write(data)
	return err
}
