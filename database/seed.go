package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/lacuchara/reservation-app/models"
)

// Migrate creates the session schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Restaurant{},
		&models.Dish{},
		&models.Reservation{},
		&models.MenuAsset{},
		&models.Review{},
	)
}

// Seed loads the catalog from src plus the two starter reservations every
// session begins with.
func Seed(db *gorm.DB, src CatalogSource) error {
	restaurants, err := src.Restaurants()
	if err != nil {
		return err
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	dishes, err := src.Dishes()
	if err != nil {
		return err
	}
	if err := db.Create(&dishes).Error; err != nil {
		return err
	}

	reservations := seedReservations(time.Now())
	return db.Create(&reservations).Error
}

func seedRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: 1, Name: "El Rincón Mediterráneo", Rating: 4.8, Address: "Calle Gran Vía, 34", CuisineType: "Mediterráneo", PriceMin: 15, PriceMax: 25, Promoted: true, DailyMenu: true, CeliacMenu: true, VegetarianMenu: true, VeganMenu: false},
		{ID: 2, Name: "Sabores de Asia", Rating: 4.5, Address: "Calle Serrano, 45", CuisineType: "Asiático", PriceMin: 12, PriceMax: 20, Promoted: false, DailyMenu: true, CeliacMenu: false, VegetarianMenu: true, VeganMenu: false},
		{ID: 3, Name: "La Trattoria", Rating: 4.3, Address: "Plaza Mayor, 12", CuisineType: "Italiano", PriceMin: 10, PriceMax: 18, Promoted: false, DailyMenu: true, CeliacMenu: true, VegetarianMenu: true, VeganMenu: false},
		{ID: 4, Name: "El Asador", Rating: 4.7, Address: "Avenida de la Constitución, 78", CuisineType: "Español", PriceMin: 18, PriceMax: 30, Promoted: true, DailyMenu: false, CeliacMenu: true, VegetarianMenu: false, VeganMenu: false},
		{ID: 5, Name: "Veggie Garden", Rating: 4.2, Address: "Calle Velázquez, 23", CuisineType: "Vegetariano", PriceMin: 12, PriceMax: 16, Promoted: false, DailyMenu: true, CeliacMenu: true, VegetarianMenu: true, VeganMenu: true},
	}
}

func seedDishes() []models.Dish {
	return []models.Dish{
		{ID: 1, RestaurantID: 1, Name: "Gazpacho andaluz", Course: models.CourseStarter, Rating: 4.7, Price: 6, OnTodaysMenu: true, Promoted: false, Celiac: true, Vegetarian: true, Vegan: true},
		{ID: 2, RestaurantID: 1, Name: "Paella valenciana", Course: models.CourseMain, Rating: 4.9, Price: 12, OnTodaysMenu: true, Promoted: true, Celiac: true, Vegetarian: false, Vegan: false},
		{ID: 3, RestaurantID: 1, Name: "Tarta de queso", Course: models.CourseDessert, Rating: 4.6, Price: 5, OnTodaysMenu: true, Promoted: false, Celiac: false, Vegetarian: true, Vegan: false},
		{ID: 4, RestaurantID: 2, Name: "Gyozas de pollo", Course: models.CourseStarter, Rating: 4.4, Price: 7, OnTodaysMenu: true, Promoted: false, Celiac: false, Vegetarian: false, Vegan: false},
		{ID: 5, RestaurantID: 2, Name: "Pad Thai", Course: models.CourseMain, Rating: 4.6, Price: 10, OnTodaysMenu: true, Promoted: true, Celiac: true, Vegetarian: true, Vegan: false},
		{ID: 6, RestaurantID: 2, Name: "Helado de té verde", Course: models.CourseDessert, Rating: 4.3, Price: 4, OnTodaysMenu: true, Promoted: false, Celiac: true, Vegetarian: true, Vegan: true},
		{ID: 7, RestaurantID: 3, Name: "Pasta carbonara", Course: models.CourseMain, Rating: 4.5, Price: 9, OnTodaysMenu: true, Promoted: false, Celiac: false, Vegetarian: false, Vegan: false},
		{ID: 8, RestaurantID: 3, Name: "Pizza margarita", Course: models.CourseMain, Rating: 4.8, Price: 11, OnTodaysMenu: true, Promoted: false, Celiac: false, Vegetarian: true, Vegan: false},
		{ID: 9, RestaurantID: 3, Name: "Tiramisú", Course: models.CourseDessert, Rating: 4.7, Price: 6, OnTodaysMenu: true, Promoted: false, Celiac: false, Vegetarian: true, Vegan: false},
		{ID: 10, RestaurantID: 4, Name: "Chuletón a la brasa", Course: models.CourseMain, Rating: 4.9, Price: 22, OnTodaysMenu: false, Promoted: true, Celiac: true, Vegetarian: false, Vegan: false},
		{ID: 11, RestaurantID: 4, Name: "Cochinillo asado", Course: models.CourseMain, Rating: 4.8, Price: 18, OnTodaysMenu: false, Promoted: true, Celiac: true, Vegetarian: false, Vegan: false},
		{ID: 12, RestaurantID: 5, Name: "Ensalada de quinoa", Course: models.CourseStarter, Rating: 4.2, Price: 7, OnTodaysMenu: true, Promoted: false, Celiac: true, Vegetarian: true, Vegan: true},
		{ID: 13, RestaurantID: 5, Name: "Hamburguesa vegana", Course: models.CourseMain, Rating: 4.4, Price: 10, OnTodaysMenu: true, Promoted: true, Celiac: false, Vegetarian: true, Vegan: true},
		{ID: 14, RestaurantID: 5, Name: "Curry de garbanzos", Course: models.CourseMain, Rating: 4.6, Price: 9, OnTodaysMenu: true, Promoted: false, Celiac: true, Vegetarian: true, Vegan: true},
		{ID: 15, RestaurantID: 5, Name: "Brownie sin gluten", Course: models.CourseDessert, Rating: 4.3, Price: 5, OnTodaysMenu: true, Promoted: false, Celiac: true, Vegetarian: true, Vegan: false},
	}
}

func seedReservations(now time.Time) []models.Reservation {
	first := time.Date(now.Year(), now.Month(), now.Day(), 14, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	second := time.Date(now.Year(), now.Month(), now.Day(), 21, 0, 0, 0, now.Location()).AddDate(0, 0, 3)

	return []models.Reservation{
		{ID: 1, RestaurantID: 1, Date: first, TimeOfDay: "14:00", PartySize: 2, Dishes: "Gazpacho andaluz, Paella valenciana, Tarta de queso", Status: models.ReservationConfirmed},
		{ID: 2, RestaurantID: 3, Date: second, TimeOfDay: "21:00", PartySize: 4, Dishes: "Pasta carbonara, Pizza margarita, Tiramisú", Status: models.ReservationPending},
	}
}
