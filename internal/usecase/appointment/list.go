package appointment

import (
	"context"

	domain "github.com/berberbook/booking-api/internal/domain/appointment"
	"github.com/berberbook/booking-api/internal/httperr"
	"github.com/berberbook/booking-api/internal/models"
)

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

// Execute returns the caller's side of the ledger: customers see the
// appointments they booked, barbers the ones booked with them.
func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	userID uint,
	role models.Role,
) ([]models.Appointment, error) {

	switch role {
	case models.RoleCustomer:
		return uc.repo.ListAppointmentsForCustomer(ctx, userID)
	case models.RoleBarber:
		return uc.repo.ListAppointmentsForBarber(ctx, userID)
	default:
		return nil, httperr.ErrBusiness("forbidden")
	}
}
