package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/detailing-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// GetUser and GetUserByUsername return gorm.ErrRecordNotFound unwrapped so
// callers can tell a missing user from a broken store.
func (r *UserGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

var _ user.Repository = (*UserGormRepository)(nil)
