package models

// Course values as they appear in the seed catalog.
const (
	CourseStarter = "Entrante"
	CourseMain    = "Principal"
	CourseDessert = "Postre"
)

type Dish struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Course       string     `gorm:"type:varchar(50);not null" json:"course"`
	Rating       float64    `gorm:"not null;default:0" json:"rating"`
	Price        float64    `gorm:"not null" json:"price"`
	OnTodaysMenu bool       `gorm:"not null;default:true" json:"on_todays_menu"`
	Promoted     bool       `gorm:"not null;default:false" json:"promoted"`
	Celiac       bool       `gorm:"not null;default:false" json:"celiac"`
	Vegetarian   bool       `gorm:"not null;default:false" json:"vegetarian"`
	Vegan        bool       `gorm:"not null;default:false" json:"vegan"`
}
