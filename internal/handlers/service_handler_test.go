package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berberbook/booking-api/internal/models"
)

func addService(t *testing.T, e *env, barber *models.User, name string, price float64) uint {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/services", e.token(t, barber), map[string]any{
		"name":         name,
		"price":        price,
		"duration_min": 30,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return uint(decode(t, w)["id"].(float64))
}

func TestAddService(t *testing.T) {
	e := newEnv(t)
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")

	id := addService(t, e, barber, "Haircut", 50)
	assert.NotZero(t, id)

	w := e.do(t, http.MethodGet, "/api/services", e.token(t, barber), nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].([]any)
	require.Len(t, data, 1)
	svc := data[0].(map[string]any)
	assert.Equal(t, "Haircut", svc["name"])
	assert.Equal(t, float64(50), svc["price"])
	assert.Equal(t, float64(30), svc["duration_min"])
}

func TestAddServiceRequiresBarberRole(t *testing.T) {
	e := newEnv(t)
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")

	w := e.do(t, http.MethodPost, "/api/services", e.token(t, customer), map[string]any{
		"name":         "Haircut",
		"price":        50,
		"duration_min": 30,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddServiceValidatesInput(t *testing.T) {
	e := newEnv(t)
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")
	token := e.token(t, barber)

	// Missing duration.
	w := e.do(t, http.MethodPost, "/api/services", token, map[string]any{
		"name":  "Haircut",
		"price": 50,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative price.
	w = e.do(t, http.MethodPost, "/api/services", token, map[string]any{
		"name":         "Haircut",
		"price":        -5,
		"duration_min": 30,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Zero duration.
	w = e.do(t, http.MethodPost, "/api/services", token, map[string]any{
		"name":         "Haircut",
		"price":        50,
		"duration_min": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateServicePrice(t *testing.T) {
	e := newEnv(t)
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")
	id := addService(t, e, barber, "Haircut", 50)

	w := e.do(t, http.MethodPatch, fmt.Sprintf("/api/services/%d/price", id), e.token(t, barber), map[string]any{
		"new_price": 75,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(75), decode(t, w)["price"])

	// The browse surface reflects the new price.
	browse := e.do(t, http.MethodGet, fmt.Sprintf("/api/barbers/%d/services", barber.ID), e.token(t, customer), nil)
	require.Equal(t, http.StatusOK, browse.Code)
	svc := decode(t, browse)["data"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(75), svc["price"])
}

func TestUpdateServicePriceByAnotherBarberIsForbidden(t *testing.T) {
	e := newEnv(t)
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")
	other := e.addUser(t, models.RoleBarber, "onur@example.com")
	id := addService(t, e, barber, "Haircut", 50)

	w := e.do(t, http.MethodPatch, fmt.Sprintf("/api/services/%d/price", id), e.token(t, other), map[string]any{
		"new_price": 75,
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Price unchanged.
	own := e.do(t, http.MethodGet, "/api/services", e.token(t, barber), nil)
	svc := decode(t, own)["data"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(50), svc["price"])
}

func TestUpdateServicePriceValidation(t *testing.T) {
	e := newEnv(t)
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")
	id := addService(t, e, barber, "Haircut", 50)
	token := e.token(t, barber)

	w := e.do(t, http.MethodPatch, fmt.Sprintf("/api/services/%d/price", id), token, map[string]any{
		"new_price": -10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(t, http.MethodPatch, fmt.Sprintf("/api/services/%d/price", id), token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateServicePriceMissingService(t *testing.T) {
	e := newEnv(t)
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")

	w := e.do(t, http.MethodPatch, "/api/services/999/price", e.token(t, barber), map[string]any{
		"new_price": 75,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "service_not_found", errorCode(t, w))
}

func TestBrowseBarbersAndServices(t *testing.T) {
	e := newEnv(t)
	customer := e.addUser(t, models.RoleCustomer, "cem@example.com")
	barber := e.addUser(t, models.RoleBarber, "baran@example.com")
	e.addUser(t, models.RoleBarber, "onur@example.com")
	addService(t, e, barber, "Haircut", 50)

	token := e.token(t, customer)

	barbers := e.do(t, http.MethodGet, "/api/barbers", token, nil)
	require.Equal(t, http.StatusOK, barbers.Code)
	assert.Equal(t, float64(2), decode(t, barbers)["total"])

	services := e.do(t, http.MethodGet, fmt.Sprintf("/api/barbers/%d/services", barber.ID), token, nil)
	require.Equal(t, http.StatusOK, services.Code)
	assert.Equal(t, float64(1), decode(t, services)["total"])
}
