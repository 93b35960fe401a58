package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAllReservationsSeed(t *testing.T) {
	client := newTestClient(t)

	w := client.do("GET", "/reservations", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["restaurant_id"])
	assert.Equal(t, "Confirmed", first["status"])
}

func TestCreateReservationViaRestaurantFlow(t *testing.T) {
	client := newTestClient(t)

	w := client.do("POST", "/flow/reserve/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = client.do("POST", "/reservations", map[string]interface{}{
		"date":       tomorrow(),
		"time":       "20:30",
		"party_size": 2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	reservation := decodeResponse(t, w)["data"].(map[string]interface{})
	// Seed reservations hold ids 1 and 2.
	assert.Equal(t, float64(3), reservation["id"])
	assert.Equal(t, float64(1), reservation["restaurant_id"])
	assert.Equal(t, float64(2), reservation["party_size"])
	assert.Equal(t, "Confirmed", reservation["status"])
	assert.Equal(t, "", reservation["dishes"])
	assert.Equal(t, "20:30", reservation["time_of_day"])

	// The flow returns to idle after the commit.
	w = client.do("GET", "/flow", nil)
	flow := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "idle", flow["kind"])
}

func TestCreateReservationViaGenericFlow(t *testing.T) {
	client := newTestClient(t)

	w := client.do("POST", "/flow/new", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = client.do("POST", "/reservations", map[string]interface{}{
		"restaurant_id": 3,
		"date":          tomorrow(),
		"time":          "21:00",
		"party_size":    4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	reservation := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), reservation["restaurant_id"])
}

func TestCreateReservationWithoutFlowConflicts(t *testing.T) {
	client := newTestClient(t)

	w := client.do("POST", "/reservations", map[string]interface{}{
		"restaurant_id": 1,
		"date":          tomorrow(),
		"time":          "20:00",
		"party_size":    2,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGenericFlowRequiresRestaurantSelection(t *testing.T) {
	client := newTestClient(t)

	client.do("POST", "/flow/new", nil)
	w := client.do("POST", "/reservations", map[string]interface{}{
		"date":       tomorrow(),
		"time":       "20:00",
		"party_size": 2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReservationPartySizeRejected(t *testing.T) {
	client := newTestClient(t)

	client.do("POST", "/flow/reserve/1", nil)
	w := client.do("POST", "/reservations", map[string]interface{}{
		"date":       tomorrow(),
		"time":       "20:00",
		"party_size": 25,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Store unchanged: still only the two seed reservations.
	w = client.do("GET", "/reservations", nil)
	data := decodeResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestStartReserveFlowUnknownRestaurant(t *testing.T) {
	client := newTestClient(t)

	w := client.do("POST", "/flow/reserve/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModifyReservation(t *testing.T) {
	client := newTestClient(t)

	w := client.do("POST", "/flow/modify/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = client.do("PATCH", "/reservations/2", map[string]interface{}{
		"date":       tomorrow(),
		"time":       "22:15",
		"party_size": 6,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	reservation := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(6), reservation["party_size"])
	assert.Equal(t, "22:15", reservation["time_of_day"])
	// Seed reservation 2 keeps its restaurant, dishes and status.
	assert.Equal(t, float64(3), reservation["restaurant_id"])
	assert.Equal(t, "Pasta carbonara, Pizza margarita, Tiramisú", reservation["dishes"])
	assert.Equal(t, "Pending", reservation["status"])
}

func TestModifyWithoutFlowConflicts(t *testing.T) {
	client := newTestClient(t)

	w := client.do("PATCH", "/reservations/2", map[string]interface{}{
		"date":       tomorrow(),
		"time":       "22:15",
		"party_size": 6,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelReservation(t *testing.T) {
	client := newTestClient(t)

	w := client.do("DELETE", "/reservations/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = client.do("GET", "/reservations", nil)
	data := decodeResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 1)

	// A second cancel of the same id is a 404, not a silent success.
	w = client.do("DELETE", "/reservations/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlowResetOnNavigateAway(t *testing.T) {
	client := newTestClient(t)

	client.do("POST", "/flow/reserve/1", nil)
	w := client.do("POST", "/flow/reset", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = client.do("GET", "/flow", nil)
	flow := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "idle", flow["kind"])
}

func TestGetStateSnapshot(t *testing.T) {
	client := newTestClient(t)

	client.do("POST", "/flow/reserve/2", nil)
	w := client.do("GET", "/state", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Len(t, data["restaurants"].([]interface{}), 5)
	assert.Len(t, data["reservations"].([]interface{}), 2)

	dishes := data["dishes"].(map[string]interface{})
	assert.Len(t, dishes, 5)
	assert.Len(t, dishes["1"].([]interface{}), 3)

	flow := data["flow"].(map[string]interface{})
	assert.Equal(t, "creating_for_restaurant", flow["kind"])
	assert.Equal(t, float64(2), flow["restaurant_id"])
}
