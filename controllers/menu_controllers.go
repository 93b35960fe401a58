package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lacuchara/reservation-app/events"
	"github.com/lacuchara/reservation-app/models"
	"github.com/lacuchara/reservation-app/services"
	"github.com/lacuchara/reservation-app/session"
	"github.com/lacuchara/reservation-app/utils"
)

// UploadMenuAsset -> store a menu PDF for a restaurant, replacing any
// previous upload for that id.
func UploadMenuAsset(c *gin.Context) {
	sess := session.FromContext(c)
	id, ok := pathID(c, "restaurant_id")
	if !ok {
		return
	}

	if _, err := services.NewCatalogService(sess.DB).GetRestaurant(id); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	file, err := c.FormFile("menu_pdf")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("menu_pdf file is required"))
		return
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("only PDF menus are accepted"))
		return
	}

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
		RestaurantID: id,
		ContentType:  "application/pdf",
		Data:         data,
		UpdatedAt:    time.Now(),
	}
	if err := sess.DB.Save(&asset).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastMenuUpdate(sess.ID, id)

	utils.InfoLogger.Printf("Menu PDF stored for restaurant %d (%d bytes)", id, len(data))
	utils.RespondJSON(c, http.StatusCreated, "Menu uploaded", gin.H{"restaurant_id": id})
}

// GetMenu -> the uploaded menu PDF when one exists, otherwise a PDF
// synthesized from the dish list.
func GetMenu(c *gin.Context) {
	sess := session.FromContext(c)
	id, ok := pathID(c, "restaurant_id")
	if !ok {
		return
	}

	catalog := services.NewCatalogService(sess.DB)
	restaurant, err := catalog.GetRestaurant(id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	var asset models.MenuAsset
	err = sess.DB.First(&asset, "restaurant_id = ?", id).Error
	if err == nil {
		c.Data(http.StatusOK, asset.ContentType, asset.Data)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	dishes, err := catalog.ListDishes(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	pdfBytes, err := services.BuildMenuPDF(restaurant, dishes)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GetMenuPreview -> textual menu fallback. No uploaded PDF and no dishes is
// still a 200 with a "no dishes" notice, never an error or an empty render.
func GetMenuPreview(c *gin.Context) {
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

	if len(dishes) == 0 {
		utils.RespondJSON(c, http.StatusOK, "No dishes found for this restaurant", []interface{}{})
		return
	}

	type menuItem struct {
		Name   string  `json:"name"`
		Price  string  `json:"price"`
		Course string  `json:"course"`
		Rating float64 `json:"rating"`
	}
	items := make([]menuItem, 0, len(dishes))
	for _, dish := range dishes {
		items = append(items, menuItem{
			Name:   dish.Name,
			Price:  utils.FormatPrice(dish.Price),
			Course: dish.Course,
			Rating: dish.Rating,
		})
	}
	utils.RespondJSON(c, http.StatusOK, "Simulated menu", items)
}
