package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lacuchara/reservation-app/models"
	"github.com/lacuchara/reservation-app/services"
	"github.com/lacuchara/reservation-app/session"
	"github.com/lacuchara/reservation-app/utils"
)

type reviewEntry struct {
	DishID  *uint  `json:"dish_id,omitempty"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// CreateReviews -> the ratings page submits the restaurant rating plus the
// per-dish ratings in one batch.
func CreateReviews(c *gin.Context) {
	sess := session.FromContext(c)

	var req struct {
		RestaurantID uint          `json:"restaurant_id" binding:"required"`
		Reviews      []reviewEntry `json:"reviews" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	// "reviews": [] binds fine but there is nothing to store.
	if len(req.Reviews) == 0 {
		utils.RespondServiceError(c, utils.Validationf("at least one review is required"))
		return
	}

	catalog := services.NewCatalogService(sess.DB)
	if _, err := catalog.GetRestaurant(req.RestaurantID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	reviews := make([]models.Review, 0, len(req.Reviews))
	for _, entry := range req.Reviews {
		if entry.Rating < 1 || entry.Rating > 5 {
			utils.RespondServiceError(c, utils.Validationf("rating must be between 1 and 5"))
			return
		}
		if entry.DishID != nil {
			dish, err := catalog.GetDish(*entry.DishID)
			if err != nil {
				utils.RespondServiceError(c, err)
				return
			}
			if dish.RestaurantID != req.RestaurantID {
				utils.RespondServiceError(c, utils.Validationf("dish %d does not belong to restaurant %d", dish.ID, req.RestaurantID))
				return
			}
		}
		reviews = append(reviews, models.Review{
			RestaurantID: req.RestaurantID,
			DishID:       entry.DishID,
			Rating:       entry.Rating,
			Comment:      entry.Comment,
			CreatedAt:    time.Now(),
		})
	}

	if err := sess.DB.Create(&reviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("%d reviews stored for restaurant %d", len(reviews), req.RestaurantID)
	utils.RespondJSON(c, http.StatusCreated, "Reviews saved", reviews)
}

// GetReviews -> reviews left in this session, optionally per restaurant
func GetReviews(c *gin.Context) {
	sess := session.FromContext(c)

	query := sess.DB.Order("id")
	if raw := c.Query("restaurant_id"); raw != "" {
		query = query.Where("restaurant_id = ?", parseID(raw))
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reviews", reviews)
}
