package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/detailing-scheduler/internal/audit"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

type AuditLogStore interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store AuditLogStore
}

func NewAuditLogsHandler(store AuditLogStore) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		From:   parseDay(c.Query("from")),
		To:     parseDay(c.Query("to")),
		Page:   page,
		Limit:  limit,
	}.Normalize()

	logs, total, err := h.store.List(c.Request.Context(), f)
	if err != nil {
		_ = c.Error(err)
		httperr.Internal(c, "audit_list_failed", "Failed to list audit logs.")
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	httpresp.OK(c, gin.H{
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
		"logs":  logs,
	})
}

// parseDay ignores malformed filters.
func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
