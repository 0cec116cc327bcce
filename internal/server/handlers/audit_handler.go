package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/domain/models"
	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/service/audit"
)

// AuditHandler exposes the audit trail gateway over a single endpoint with
// action-based dispatch, mirroring the dashboard's original wire contract:
// every response is HTTP 200 JSON with a status field, and failures degrade to
// {status:"error", message} instead of distinct status codes.
type AuditHandler struct {
	svc    audit.Gateway
	logger *zap.Logger
}

// NewAuditHandler constructs the HTTP handler adapter.
func NewAuditHandler(svc audit.Gateway, logger *zap.Logger) *AuditHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditHandler{svc: svc, logger: logger}
}

// auditRequest is the wire shape of POST bodies. The action field doubles as
// the dispatch discriminator ("delete" routes to delete; anything else is a
// create and the value is stored as the entry's action label). RowNumber and
// Value stay untyped so clients sending strings where the original page sent
// numbers still resolve.
type auditRequest struct {
	Action      string      `json:"action"`
	Timestamp   string      `json:"timestamp"`
	AssetCode   string      `json:"assetCode"`
	Description string      `json:"description"`
	User        string      `json:"user"`
	Location    string      `json:"location"`
	Notes       string      `json:"notes"`
	Value       interface{} `json:"value"`
	RowNumber   interface{} `json:"rowNumber"`
}

// Get serves GET requests; the only recognized action is "read".
func (h *AuditHandler) Get(c *gin.Context) {
	action := c.Query("action")
	if action != "read" {
		h.respondError(c, &audit.UnknownActionError{Action: action})
		return
	}

	entries, err := h.svc.ReadEntries(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"entries": entries,
		"count":   len(entries),
	})
}

// Post serves POST requests, dispatching on the body's action field.
func (h *AuditHandler) Post(c *gin.Context) {
	var req auditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, fmt.Errorf("invalid JSON body: %w", err))
		return
	}

	if req.Action == "delete" {
		h.deleteEntry(c, req)
		return
	}

	h.createEntry(c, req)
}

func (h *AuditHandler) createEntry(c *gin.Context, req auditRequest) {
	entry := models.Entry{
		Timestamp:   req.Timestamp,
		AssetCode:   req.AssetCode,
		Description: req.Description,
		Action:      req.Action,
		User:        req.User,
		Location:    req.Location,
		Notes:       req.Notes,
		Value:       coerceValue(req.Value),
	}

	rowNumber, err := h.svc.CreateEntry(c.Request.Context(), entry)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "Entry added successfully",
		"rowNumber": rowNumber,
	})
}

func (h *AuditHandler) deleteEntry(c *gin.Context, req auditRequest) {
	rowNumber, err := coerceRowNumber(req.RowNumber)
	if err != nil {
		h.respondError(c, err)
		return
	}

	deleted, err := h.svc.DeleteEntry(c.Request.Context(), rowNumber)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"message":    fmt.Sprintf("Row %d deleted", rowNumber),
		"deletedRow": rowNumber,
		"assetCode":  deleted.AssetCode,
	})
}

func (h *AuditHandler) respondError(c *gin.Context, err error) {
	h.logger.Warn("audit request failed",
		zap.String("method", c.Request.Method),
		zap.Error(err))

	c.JSON(http.StatusOK, gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

// coerceRowNumber accepts JSON numbers and numeric strings; anything else is
// an invalid identifier.
func coerceRowNumber(value interface{}) (int, error) {
	if value == nil {
		return 0, &audit.InvalidIdentifierError{Value: "", LastRow: -1}
	}

	raw := fmt.Sprint(value)
	rowNumber, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &audit.InvalidIdentifierError{Value: strconv.Quote(raw), LastRow: -1}
	}

	return rowNumber, nil
}

// coerceValue mirrors the permissive value handling of the original page:
// non-numeric input falls back to 0 rather than failing the create.
func coerceValue(value interface{}) float64 {
	if value == nil {
		return 0
	}

	parsed, err := strconv.ParseFloat(fmt.Sprint(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}
