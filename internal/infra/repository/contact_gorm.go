package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/detailing-scheduler/internal/domain/contact"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

type ContactGormRepository struct {
	db *gorm.DB
}

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) CreateContact(ctx context.Context, c *models.Contact) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (r *ContactGormRepository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

var _ contact.Repository = (*ContactGormRepository)(nil)
