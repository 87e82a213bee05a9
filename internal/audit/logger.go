package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

// Logger persists audit rows synchronously. Request paths go through the
// Dispatcher instead.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		RequestID: ev.RequestID,
		Metadata:  metaJSON,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

// ======================================================
// QUERY
// ======================================================

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Normalize clamps paging to sane values.
func (f Filter) Normalize() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxPageSize {
		f.Limit = defaultPageSize
	}
	return f
}

func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f = f.Normalize()

	scoped := func() *gorm.DB {
		q := l.db.WithContext(ctx).Model(&models.AuditLog{})
		if f.Action != "" {
			q = q.Where("action = ?", f.Action)
		}
		if f.Entity != "" {
			q = q.Where("entity = ?", f.Entity)
		}
		if f.From != nil {
			q = q.Where("created_at >= ?", *f.From)
		}
		if f.To != nil {
			q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	var logs []models.AuditLog
	if err := scoped().
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}

	return logs, total, nil
}
