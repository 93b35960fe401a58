package database

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/lacuchara/reservation-app/models"
)

// CatalogSource supplies the read-only catalog rows used to seed every
// session store.
type CatalogSource interface {
	Restaurants() ([]models.Restaurant, error)
	Dishes() ([]models.Dish, error)
}

// OpenCatalogSource returns the built-in demo catalog, or a MySQL-backed
// source when a DSN is configured.
func OpenCatalogSource(dsn string) (CatalogSource, error) {
	if dsn == "" {
		return builtinSource{}, nil
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return &mysqlSource{db: db}, nil
}

type builtinSource struct{}

func (builtinSource) Restaurants() ([]models.Restaurant, error) {
	return seedRestaurants(), nil
}

func (builtinSource) Dishes() ([]models.Dish, error) {
	return seedDishes(), nil
}

type mysqlSource struct {
	db *gorm.DB
}

func (s *mysqlSource) Restaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *mysqlSource) Dishes() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := s.db.Order("id").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}
