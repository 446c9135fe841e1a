package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berberbook/booking-api/internal/models"
)

func bookAppointment(t *testing.T, e *env, customer, barber *models.User) uint {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/appointments", e.token(t, customer), map[string]any{
		"barber_id":        barber.ID,
		"appointment_date": "2026-09-15T14:30",
		"service_type":     "Haircut",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return uint(decode(t, w)["id"].(float64))
}

func TestBookingFlow(t *testing.T) {
	e := newEnv(t)
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")

	id := bookAppointment(t, e, customer, barber)

	// Visible in the customer's list.
	mine := e.do(t, http.MethodGet, "/api/appointments", e.token(t, customer), nil)
	require.Equal(t, http.StatusOK, mine.Code)
	data := decode(t, mine)["data"].([]any)
	require.Len(t, data, 1)
	ap := data[0].(map[string]any)
	assert.Equal(t, float64(id), ap["id"])
	assert.Equal(t, "pending", ap["status"])

	// And in the barber's schedule.
	schedule := e.do(t, http.MethodGet, "/api/appointments", e.token(t, barber), nil)
	require.Equal(t, http.StatusOK, schedule.Code)
	assert.Len(t, decode(t, schedule)["data"].([]any), 1)
}

func TestCreateAppointmentRequiresCustomerRole(t *testing.T) {
	e := newEnv(t)
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")

	w := e.do(t, http.MethodPost, "/api/appointments", e.token(t, barber), map[string]any{
		"barber_id":        barber.ID,
		"appointment_date": "2026-09-15T14:30",
		"service_type":     "Haircut",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateAppointmentRejectsMalformedDate(t *testing.T) {
	e := newEnv(t)
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")

	w := e.do(t, http.MethodPost, "/api/appointments", e.token(t, customer), map[string]any{
		"barber_id":        barber.ID,
		"appointment_date": "next tuesday",
		"service_type":     "Haircut",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", errorCode(t, w))
}

func TestCreateAppointmentRejectsUnknownBarber(t *testing.T) {
	e := newEnv(t)
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")

	w := e.do(t, http.MethodPost, "/api/appointments", e.token(t, customer), map[string]any{
		"barber_id":        999,
		"appointment_date": "2026-09-15T14:30",
		"service_type":     "Haircut",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "barber_not_found", errorCode(t, w))
}

func TestCancelByOwningCustomer(t *testing.T) {
	e := newEnv(t)
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")
	id := bookAppointment(t, e, customer, barber)

	w := e.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/cancel", id), e.token(t, customer), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", decode(t, w)["status"])
}

func TestCancelByAnotherCustomerIsForbidden(t *testing.T) {
	e := newEnv(t)
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")
	other := e.addUser(t, models.RoleCustomer, "derya@example.com")
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")
	id := bookAppointment(t, e, customer, barber)

	w := e.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/cancel", id), e.token(t, other), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	mine := e.do(t, http.MethodGet, "/api/appointments", e.token(t, customer), nil)
	ap := decode(t, mine)["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "pending", ap["status"])
}

func TestCancelMissingAppointment(t *testing.T) {
	e := newEnv(t)
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")

	w := e.do(t, http.MethodPatch, "/api/appointments/999/cancel", e.token(t, customer), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompleteByOwningBarber(t *testing.T) {
	e := newEnv(t)
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")
	id := bookAppointment(t, e, customer, barber)

	w := e.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/complete", id), e.token(t, barber), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", decode(t, w)["status"])
}

func TestCompleteByAnotherBarberIsForbidden(t *testing.T) {
	e := newEnv(t)
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")
	other := e.addUser(t, models.RoleBarber, "onur@example.com")
	id := bookAppointment(t, e, customer, barber)

	w := e.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/complete", id), e.token(t, other), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCustomerCannotCompleteOwnAppointment(t *testing.T) {
	e := newEnv(t)
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")
	id := bookAppointment(t, e, customer, barber)

	// Role gate fires before any ownership check.
	w := e.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/complete", id), e.token(t, customer), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	mine := e.do(t, http.MethodGet, "/api/appointments", e.token(t, customer), nil)
	ap := decode(t, mine)["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "pending", ap["status"])
}

func TestCancelAfterCompleteIsRejected(t *testing.T) {
	e := newEnv(t)
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")
	id := bookAppointment(t, e, customer, barber)

	require.Equal(t, http.StatusOK,
		e.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/complete", id), e.token(t, barber), nil).Code)

	w := e.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/cancel", id), e.token(t, customer), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_state", errorCode(t, w))
}
