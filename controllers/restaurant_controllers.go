package controllers

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lacuchara/reservation-app/events"
	"github.com/lacuchara/reservation-app/models"
	"github.com/lacuchara/reservation-app/services"
	"github.com/lacuchara/reservation-app/session"
	"github.com/lacuchara/reservation-app/utils"
)

// GetAllRestaurants -> full catalog in catalog order
func GetAllRestaurants(c *gin.Context) {
	sess := session.FromContext(c)
	restaurants, err := services.NewCatalogService(sess.DB).ListRestaurants()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// SearchRestaurants -> catalog filtered by the search form criteria.
// Dietary tags and the dish/location text inputs are accepted here but do
// not narrow the result; that matches the live search page.
func SearchRestaurants(c *gin.Context) {
	sess := session.FromContext(c)

	var criteria services.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurants, err := services.NewCatalogService(sess.DB).ListRestaurants()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filtered := services.FilterRestaurants(restaurants, criteria)
	utils.RespondJSON(c, http.StatusOK, "Search results", filtered)
}

// GetRestaurantByID -> detail of one restaurant
func GetRestaurantByID(c *gin.Context) {
	sess := session.FromContext(c)
	id, ok := pathID(c, "restaurant_id")
	if !ok {
		return
	}

	restaurant, err := services.NewCatalogService(sess.DB).GetRestaurant(id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

// GetRestaurantDishes -> a restaurant's dish list, possibly empty
func GetRestaurantDishes(c *gin.Context) {
	sess := session.FromContext(c)
	id, ok := pathID(c, "restaurant_id")
	if !ok {
		return
	}

	catalog := services.NewCatalogService(sess.DB)
	if _, err := catalog.GetRestaurant(id); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	dishes, err := catalog.ListDishes(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of dishes", dishes)
}

// CreateRestaurant -> add-restaurant form, multipart with an optional menu
// PDF. The new restaurant is only visible to this session.
func CreateRestaurant(c *gin.Context) {
	sess := session.FromContext(c)

	rating, _ := strconv.ParseFloat(c.PostForm("rating"), 64)
	priceMin, _ := strconv.ParseFloat(c.PostForm("price_min"), 64)
	priceMax, _ := strconv.ParseFloat(c.PostForm("price_max"), 64)

	restaurant := models.Restaurant{
		Name:           c.PostForm("name"),
		Rating:         rating,
		Address:        c.PostForm("address"),
		CuisineType:    c.PostForm("cuisine_type"),
		PriceMin:       priceMin,
		PriceMax:       priceMax,
		Promoted:       parseBool(c.PostForm("promoted")),
		DailyMenu:      parseBool(c.PostForm("daily_menu")),
		CeliacMenu:     parseBool(c.PostForm("celiac_menu")),
		VegetarianMenu: parseBool(c.PostForm("vegetarian_menu")),
		VeganMenu:      parseBool(c.PostForm("vegan_menu")),
		Description:    c.PostForm("description"),
	}

	created, err := services.NewCatalogService(sess.DB).AddRestaurant(restaurant)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	// Optional menu PDF uploaded together with the form.
	if file, err := c.FormFile("menu_pdf"); err == nil {
		src, err := file.Open()
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}

		asset := models.MenuAsset{
			RestaurantID: created.ID,
			ContentType:  "application/pdf",
			Data:         data,
			UpdatedAt:    time.Now(),
		}
		if err := sess.DB.Save(&asset).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	events.BroadcastRestaurantCreate(sess.ID, created)

	utils.InfoLogger.Printf("Restaurant %q added with id %d", created.Name, created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created successfully", created)
}

func parseID(raw string) uint {
	id, _ := strconv.ParseUint(raw, 10, 32)
	return uint(id)
}

// pathID reads a numeric path parameter. A malformed value is the caller's
// mistake, so it answers 400 itself and tells the handler to stop.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.RespondServiceError(c, utils.Validationf("invalid %s %q", name, raw))
		return 0, false
	}
	return uint(id), true
}

func parseBool(raw string) bool {
	b, _ := strconv.ParseBool(raw)
	return b
}
