package models

import "time"

// MenuAsset is an uploaded menu PDF keyed by restaurant. Uploading again
// overwrites the previous blob; absence is a valid state.
type MenuAsset struct {
	RestaurantID uint      `gorm:"primaryKey" json:"restaurant_id"`
	ContentType  string    `gorm:"type:varchar(100);not null;default:'application/pdf'" json:"content_type"`
	Data         []byte    `gorm:"type:blob" json:"-"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
