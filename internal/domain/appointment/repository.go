package appointment

import (
	"context"

	"github.com/berberbook/booking-api/internal/models"
)

// Repository is the persistence surface for the booking domain: users,
// services and appointments all live behind it so handlers and usecases
// never touch the store directly.
type Repository interface {
	// -------- Users --------
	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	ListUsersByRole(
		ctx context.Context,
		role models.Role,
	) ([]models.User, error)

	// DeleteBarberCascade removes the barber together with all of their
	// services and appointments in a single transaction.
	DeleteBarberCascade(
		ctx context.Context,
		barberID uint,
	) error

	// -------- Services --------
	CreateService(
		ctx context.Context,
		svc *models.Service,
	) error

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	UpdateService(
		ctx context.Context,
		svc *models.Service,
	) error

	ListServicesForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Service, error)

	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)
}
