package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/berberbook/booking-api/internal/httperr"
	"github.com/berberbook/booking-api/internal/models"
)

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	first := &models.User{FirstName: "Ayse", LastName: "Yildiz", Email: "ayse@example.com", PasswordHash: "h1", Role: models.RoleCustomer}
	require.NoError(t, repo.CreateUser(ctx, first))

	dup := &models.User{FirstName: "Other", LastName: "User", Email: "AYSE@example.com", PasswordHash: "h2", Role: models.RoleCustomer}
	err := repo.CreateUser(ctx, dup)
	assert.True(t, httperr.IsBusiness(err, "duplicate_email"))

	// The original record is untouched.
	stored, err := repo.GetUserByEmail(ctx, "ayse@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "h1", stored.PasswordHash)
}

func TestGetMissingRecordsReturnNotFound(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetUserByID(ctx, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.GetServiceByID(ctx, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.GetAppointmentByID(ctx, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteBarberCascade(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	barber := &models.User{FirstName: "Baran", LastName: "Demir", Email: "baran@example.com", PasswordHash: "h", Role: models.RoleBarber}
	other := &models.User{FirstName: "Onur", LastName: "Sahin", Email: "onur@example.com", PasswordHash: "h", Role: models.RoleBarber}
	customer := &models.User{FirstName: "Cem", LastName: "Yilmaz", Email: "cem@example.com", PasswordHash: "h", Role: models.RoleCustomer}
	require.NoError(t, repo.CreateUser(ctx, barber))
	require.NoError(t, repo.CreateUser(ctx, other))
	require.NoError(t, repo.CreateUser(ctx, customer))

	for _, name := range []string{"Haircut", "Shave"} {
		require.NoError(t, repo.CreateService(ctx, &models.Service{BarberID: barber.ID, Name: name, Price: 50, DurationMin: 30}))
	}
	require.NoError(t, repo.CreateService(ctx, &models.Service{BarberID: other.ID, Name: "Trim", Price: 20, DurationMin: 15}))

	when := time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
			CustomerID:      customer.ID,
			BarberID:        barber.ID,
			AppointmentDate: when.Add(time.Duration(i) * time.Hour),
			ServiceType:     "Haircut",
			Status:          "pending",
		}))
	}

	require.NoError(t, repo.DeleteBarberCascade(ctx, barber.ID))

	services, err := repo.ListServicesForBarber(ctx, barber.ID)
	require.NoError(t, err)
	assert.Empty(t, services)

	aps, err := repo.ListAppointmentsForBarber(ctx, barber.ID)
	require.NoError(t, err)
	assert.Empty(t, aps)

	_, err = repo.GetUserByID(ctx, barber.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The other barber's catalog survives.
	remaining, err := repo.ListServicesForBarber(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestListAppointmentsSplitByParty(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	barber := &models.User{FirstName: "Baran", LastName: "Demir", Email: "b@example.com", PasswordHash: "h", Role: models.RoleBarber}
	customer := &models.User{FirstName: "Cem", LastName: "Yilmaz", Email: "c@example.com", PasswordHash: "h", Role: models.RoleCustomer}
	require.NoError(t, repo.CreateUser(ctx, barber))
	require.NoError(t, repo.CreateUser(ctx, customer))

	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		CustomerID:      customer.ID,
		BarberID:        barber.ID,
		AppointmentDate: time.Now().Add(24 * time.Hour),
		ServiceType:     "Haircut",
		Status:          "pending",
	}))

	asCustomer, err := repo.ListAppointmentsForCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Len(t, asCustomer, 1)

	asBarber, err := repo.ListAppointmentsForBarber(ctx, barber.ID)
	require.NoError(t, err)
	assert.Len(t, asBarber, 1)

	asOther, err := repo.ListAppointmentsForCustomer(ctx, barber.ID)
	require.NoError(t, err)
	assert.Empty(t, asOther)
}
