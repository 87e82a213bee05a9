package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

type ListAllAppointments struct {
	repo domain.Repository
}

func NewListAllAppointments(repo domain.Repository) *ListAllAppointments {
	return &ListAllAppointments{repo: repo}
}

func (uc *ListAllAppointments) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAllAppointments(ctx)
}
