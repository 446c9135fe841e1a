package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	domain "github.com/berberbook/booking-api/internal/domain/appointment"
	"github.com/berberbook/booking-api/internal/httperr"
	"github.com/berberbook/booking-api/internal/models"
)

// BookingMemoryRepository is an in-memory Repository used as the test
// backend. Misses surface as gorm.ErrRecordNotFound so callers behave the
// same against either implementation.
type BookingMemoryRepository struct {
	mu sync.Mutex

	users        map[uint]models.User
	services     map[uint]models.Service
	appointments map[uint]models.Appointment

	nextUserID        uint
	nextServiceID     uint
	nextAppointmentID uint
}

func NewBookingMemoryRepository() *BookingMemoryRepository {
	return &BookingMemoryRepository{
		users:        make(map[uint]models.User),
		services:     make(map[uint]models.Service),
		appointments: make(map[uint]models.Appointment),
	}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingMemoryRepository) CreateUser(
	_ context.Context,
	user *models.User,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	for _, u := range r.users {
		if u.Email == user.Email {
			return httperr.ErrBusiness("duplicate_email")
		}
	}

	r.nextUserID++
	user.ID = r.nextUserID
	r.users[user.ID] = *user
	return nil
}

func (r *BookingMemoryRepository) GetUserByID(
	_ context.Context,
	id uint,
) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *BookingMemoryRepository) GetUserByEmail(
	_ context.Context,
	email string,
) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *BookingMemoryRepository) ListUsersByRole(
	_ context.Context,
	role models.Role,
) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]models.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *BookingMemoryRepository) DeleteBarberCascade(
	_ context.Context,
	barberID uint,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[barberID]; !ok {
		return gorm.ErrRecordNotFound
	}

	for id, ap := range r.appointments {
		if ap.BarberID == barberID {
			delete(r.appointments, id)
		}
	}
	for id, svc := range r.services {
		if svc.BarberID == barberID {
			delete(r.services, id)
		}
	}
	delete(r.users, barberID)
	return nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingMemoryRepository) CreateService(
	_ context.Context,
	svc *models.Service,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextServiceID++
	svc.ID = r.nextServiceID
	r.services[svc.ID] = *svc
	return nil
}

func (r *BookingMemoryRepository) GetServiceByID(
	_ context.Context,
	id uint,
) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &svc, nil
}

func (r *BookingMemoryRepository) UpdateService(
	_ context.Context,
	svc *models.Service,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[svc.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.services[svc.ID] = *svc
	return nil
}

func (r *BookingMemoryRepository) ListServicesForBarber(
	_ context.Context,
	barberID uint,
) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	services := make([]models.Service, 0)
	for _, svc := range r.services {
		if svc.BarberID == barberID {
			services = append(services, svc)
		}
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingMemoryRepository) CreateAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextAppointmentID++
	ap.ID = r.nextAppointmentID
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *BookingMemoryRepository) GetAppointmentByID(
	_ context.Context,
	id uint,
) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ap, nil
}

func (r *BookingMemoryRepository) UpdateAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *BookingMemoryRepository) ListAppointmentsForCustomer(
	_ context.Context,
	customerID uint,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	aps := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.CustomerID == customerID {
			aps = append(aps, ap)
		}
	}
	sort.Slice(aps, func(i, j int) bool {
		return aps[i].AppointmentDate.Before(aps[j].AppointmentDate)
	})
	return aps, nil
}

func (r *BookingMemoryRepository) ListAppointmentsForBarber(
	_ context.Context,
	barberID uint,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	aps := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.BarberID == barberID {
			aps = append(aps, ap)
		}
	}
	sort.Slice(aps, func(i, j int) bool {
		return aps[i].AppointmentDate.Before(aps[j].AppointmentDate)
	})
	return aps, nil
}

var _ domain.Repository = (*BookingMemoryRepository)(nil)
