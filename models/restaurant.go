package models

type Restaurant struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"type:varchar(255);not null" json:"name"`
	Rating         float64 `gorm:"not null;default:0" json:"rating"`
	Address        string  `gorm:"type:varchar(255)" json:"address"`
	CuisineType    string  `gorm:"type:varchar(100);not null" json:"cuisine_type"`
	PriceMin       float64 `gorm:"not null" json:"price_min"`
	PriceMax       float64 `gorm:"not null" json:"price_max"`
	Promoted       bool    `gorm:"not null;default:false" json:"promoted"`
	DailyMenu      bool    `gorm:"not null;default:false" json:"daily_menu"`
	CeliacMenu     bool    `gorm:"not null;default:false" json:"celiac_menu"`
	VegetarianMenu bool    `gorm:"not null;default:false" json:"vegetarian_menu"`
	VeganMenu      bool    `gorm:"not null;default:false" json:"vegan_menu"`
	Description    string  `gorm:"type:text" json:"description"`
}
