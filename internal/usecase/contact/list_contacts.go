package contact

import (
	"context"

	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/contact"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

type ListContacts struct {
	repo domain.Repository
}

func NewListContacts(repo domain.Repository) *ListContacts {
	return &ListContacts{repo: repo}
}

func (uc *ListContacts) Execute(ctx context.Context) ([]models.Contact, error) {
	return uc.repo.ListContacts(ctx)
}
