package appointment

import (
	"context"
	"time"

	"github.com/berberbook/booking-api/internal/audit"
	domain "github.com/berberbook/booking-api/internal/domain/appointment"
	"github.com/berberbook/booking-api/internal/httperr"
	"github.com/berberbook/booking-api/internal/models"
)

// DateTimeLayout is the fixed wire format for appointment date-times.
const DateTimeLayout = "2006-01-02T15:04"

type CreateAppointmentInput struct {
	CustomerID  uint
	BarberID    uint
	Date        string
	ServiceType string
}

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// The target must exist and actually be a barber; role is never
	// trusted from the request.
	barber, err := uc.repo.GetUserByID(ctx, in.BarberID)
	if err != nil || barber.Role != models.RoleBarber {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	start, err := time.Parse(DateTimeLayout, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// Overlapping bookings for the same barber are allowed.
	ap := &models.Appointment{
		CustomerID:      in.CustomerID,
		BarberID:        in.BarberID,
		AppointmentDate: start,
		ServiceType:     in.ServiceType,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.CustomerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
