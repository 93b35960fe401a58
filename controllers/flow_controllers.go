package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lacuchara/reservation-app/models"
	"github.com/lacuchara/reservation-app/services"
	"github.com/lacuchara/reservation-app/session"
	"github.com/lacuchara/reservation-app/utils"
)

// StartReserveFlow -> "reserve a table" on a restaurant card
func StartReserveFlow(c *gin.Context) {
	sess := session.FromContext(c)
	id, ok := pathID(c, "restaurant_id")
	if !ok {
		return
	}

	if _, err := services.NewCatalogService(sess.DB).GetRestaurant(id); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	sess.SetFlow(models.FlowState{Kind: models.FlowCreatingForRestaurant, RestaurantID: id})
	utils.RespondJSON(c, http.StatusOK, "Reservation flow started", sess.Flow())
}

// StartNewReservationFlow -> "new reservation" on the reservations page,
// restaurant chosen later on the form
func StartNewReservationFlow(c *gin.Context) {
	sess := session.FromContext(c)
	sess.SetFlow(models.FlowState{Kind: models.FlowCreatingGeneric})
	utils.RespondJSON(c, http.StatusOK, "Reservation flow started", sess.Flow())
}

// StartModifyFlow -> "modify" on an existing reservation
func StartModifyFlow(c *gin.Context) {
	sess := session.FromContext(c)
	id, ok := pathID(c, "reservation_id")
	if !ok {
		return
	}

	if _, err := services.NewReservationService(sess.DB).Get(id); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	sess.SetFlow(models.FlowState{Kind: models.FlowModifying, ReservationID: id})
	utils.RespondJSON(c, http.StatusOK, "Modify flow started", sess.Flow())
}

// ResetFlow -> the user navigated away without submitting
func ResetFlow(c *gin.Context) {
	sess := session.FromContext(c)
	sess.ResetFlow()
	utils.RespondJSON(c, http.StatusOK, "Flow reset", sess.Flow())
}

// GetFlow -> current workflow state
func GetFlow(c *gin.Context) {
	sess := session.FromContext(c)
	utils.RespondJSON(c, http.StatusOK, "Current flow", sess.Flow())
}

// GetState -> read-only page snapshot for the rendering surface:
// restaurants, their dishes, reservations and the workflow state in one
// response.
func GetState(c *gin.Context) {
	sess := session.FromContext(c)

	catalog := services.NewCatalogService(sess.DB)
	restaurants, err := catalog.ListRestaurants()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	dishes := make(map[uint][]models.Dish, len(restaurants))
	for _, restaurant := range restaurants {
		list, err := catalog.ListDishes(restaurant.ID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		dishes[restaurant.ID] = list
	}

	reservations, err := services.NewReservationService(sess.DB).List()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Session state", gin.H{
		"restaurants":  restaurants,
		"dishes":       dishes,
		"reservations": reservations,
		"flow":         sess.Flow(),
	})
}
