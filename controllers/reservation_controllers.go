package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lacuchara/reservation-app/events"
	"github.com/lacuchara/reservation-app/models"
	"github.com/lacuchara/reservation-app/services"
	"github.com/lacuchara/reservation-app/session"
	"github.com/lacuchara/reservation-app/utils"
)

var ErrNoActiveFlow = errors.New("no reservation flow is active")

type reservationForm struct {
	RestaurantID uint   `json:"restaurant_id"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	PartySize    int    `json:"party_size" binding:"required"`
}

// GetAllReservations -> the session's reservation list
func GetAllReservations(c *gin.Context) {
	sess := session.FromContext(c)
	reservations, err := services.NewReservationService(sess.DB).List()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationByID -> detail of one reservation
func GetReservationByID(c *gin.Context) {
	sess := session.FromContext(c)
	id, ok := pathID(c, "reservation_id")
	if !ok {
		return
	}

	reservation, err := services.NewReservationService(sess.DB).Get(id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// CreateReservation -> submit of an open create flow. The target restaurant
// comes from the flow when it was started on a restaurant card, or from the
// form when the generic new-reservation flow is open. A validation failure
// leaves the flow and the store untouched.
func CreateReservation(c *gin.Context) {
	sess := session.FromContext(c)

	var req reservationForm
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	flow := sess.Flow()
	var target uint
	switch flow.Kind {
	case models.FlowCreatingForRestaurant:
		target = flow.RestaurantID
	case models.FlowCreatingGeneric:
		target = req.RestaurantID
	default:
		utils.RespondError(c, http.StatusConflict, ErrNoActiveFlow)
		return
	}

	date, _, err := services.CombineDateTime(req.Date, req.Time)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	reservation, err := services.NewReservationService(sess.DB).Create(target, date, req.PartySize)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	sess.ResetFlow()
	events.BroadcastReservationCreate(sess.ID, reservation)

	utils.InfoLogger.Printf("Reservation %d created for restaurant %d (%d people)",
		reservation.ID, reservation.RestaurantID, reservation.PartySize)
	utils.RespondJSON(c, http.StatusCreated, "Reservation confirmed", reservation)
}

// ModifyReservation -> submit of an open modify flow. Only date, display
// time and party size change; restaurant, dish list and status stay as they
// were.
func ModifyReservation(c *gin.Context) {
	sess := session.FromContext(c)
	id, ok := pathID(c, "reservation_id")
	if !ok {
		return
	}

	flow := sess.Flow()
	if flow.Kind != models.FlowModifying || flow.ReservationID != id {
		utils.RespondError(c, http.StatusConflict, ErrNoActiveFlow)
		return
	}

	var req struct {
		Date      string `json:"date" binding:"required"`
		Time      string `json:"time" binding:"required"`
		PartySize int    `json:"party_size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	date, _, err := services.CombineDateTime(req.Date, req.Time)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	reservation, err := services.NewReservationService(sess.DB).Modify(id, date, req.PartySize)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	sess.ResetFlow()
	events.BroadcastReservationUpdate(sess.ID, reservation)

	utils.InfoLogger.Printf("Reservation %d modified", reservation.ID)
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// CancelReservation -> immediate delete from the list view, independent of
// any open flow. Cancelling an unknown id is a 404, not a silent no-op.
func CancelReservation(c *gin.Context) {
	sess := session.FromContext(c)
	id, ok := pathID(c, "reservation_id")
	if !ok {
		return
	}

	if err := services.NewReservationService(sess.DB).Cancel(id); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	// Cancelling the reservation that is being modified abandons that flow.
	if flow := sess.Flow(); flow.Kind == models.FlowModifying && flow.ReservationID == id {
		sess.ResetFlow()
	}

	events.BroadcastReservationCancel(sess.ID, id)

	utils.InfoLogger.Printf("Reservation %d cancelled", id)
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", gin.H{"id": id})
}
