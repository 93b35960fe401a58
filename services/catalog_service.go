package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lacuchara/reservation-app/models"
	"github.com/lacuchara/reservation-app/utils"
)

// CatalogService reads and extends the session's restaurant/dish catalog.
// Restaurants are immutable once created; dishes are read-only seed data.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ListRestaurants returns the catalog in stable catalog order.
func (cs *CatalogService) ListRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := cs.DB.Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (cs *CatalogService) GetRestaurant(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := cs.DB.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, utils.NotFound("restaurant", id)
		}
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

// ListDishes returns a restaurant's dishes, possibly empty.
func (cs *CatalogService) ListDishes(restaurantID uint) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := cs.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (cs *CatalogService) GetDish(id uint) (models.Dish, error) {
	var dish models.Dish
	if err := cs.DB.First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Dish{}, utils.NotFound("dish", id)
		}
		return models.Dish{}, err
	}
	return dish, nil
}

// AddRestaurant stores a new restaurant with id max(existing)+1, or 1 when
// the catalog is empty. There is no update or delete operation.
func (cs *CatalogService) AddRestaurant(restaurant models.Restaurant) (models.Restaurant, error) {
	if restaurant.Name == "" {
		return models.Restaurant{}, utils.Validationf("restaurant name is required")
	}
	if restaurant.Rating < 0 || restaurant.Rating > 5 {
		return models.Restaurant{}, utils.Validationf("rating must be between 0 and 5")
	}
	if restaurant.PriceMin <= 0 || restaurant.PriceMax <= 0 {
		return models.Restaurant{}, utils.Validationf("prices must be positive")
	}
	if restaurant.PriceMin > restaurant.PriceMax {
		return models.Restaurant{}, utils.Validationf("minimum price exceeds maximum price")
	}

	var maxID int64
	if err := cs.DB.Model(&models.Restaurant{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return models.Restaurant{}, err
	}
	restaurant.ID = uint(maxID) + 1

	if err := cs.DB.Create(&restaurant).Error; err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}
