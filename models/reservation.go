package models

import "time"

const (
	ReservationPending   = "Pending"
	ReservationConfirmed = "Confirmed"
)

type Reservation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	Date         time.Time `gorm:"not null" json:"date"`
	// TimeOfDay duplicates the time portion of Date for display ("HH:MM").
	// Every write keeps it in sync.
	TimeOfDay string `gorm:"type:varchar(5);not null" json:"time_of_day"`
	PartySize int    `gorm:"not null" json:"party_size"`
	Dishes    string `gorm:"type:text" json:"dishes"`
	Status    string `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
}
