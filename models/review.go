package models

import "time"

type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	DishID       *uint     `gorm:"index" json:"dish_id,omitempty"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
