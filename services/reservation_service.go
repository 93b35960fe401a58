package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lacuchara/reservation-app/models"
	"github.com/lacuchara/reservation-app/utils"
)

const (
	MinPartySize = 1
	MaxPartySize = 20
)

// ReservationService manages the session's reservation table.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

func (rs *ReservationService) List() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := rs.DB.Order("id").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (rs *ReservationService) Get(id uint) (models.Reservation, error) {
	var reservation models.Reservation
	if err := rs.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reservation{}, utils.NotFound("reservation", id)
		}
		return models.Reservation{}, err
	}
	return reservation, nil
}

// CombineDateTime parses the form's separate date ("2006-01-02") and time
// ("15:04") fields into one timestamp plus the display time string.
func CombineDateTime(dateStr, timeStr string) (time.Time, string, error) {
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, "", utils.Validationf("invalid date %q, expected YYYY-MM-DD", dateStr)
	}
	clock, err := time.Parse("15:04", timeStr)
	if err != nil {
		return time.Time{}, "", utils.Validationf("invalid time %q, expected HH:MM", timeStr)
	}
	combined := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
	return combined, combined.Format("15:04"), nil
}

func (rs *ReservationService) validate(restaurantID uint, date time.Time, partySize int) error {
	if partySize < MinPartySize || partySize > MaxPartySize {
		return utils.Validationf("party size must be between %d and %d", MinPartySize, MaxPartySize)
	}
	if date.Before(time.Now()) {
		return utils.Validationf("reservation date must not be in the past")
	}
	if restaurantID != 0 {
		if _, err := NewCatalogService(rs.DB).GetRestaurant(restaurantID); err != nil {
			return err
		}
	}
	return nil
}

// Create appends a new reservation. The id is max(existing)+1, or 1 when the
// store is empty, computed at commit time: the store may have changed (a
// cancel, for instance) between opening the form and submitting it.
func (rs *ReservationService) Create(restaurantID uint, date time.Time, partySize int) (models.Reservation, error) {
	if restaurantID == 0 {
		return models.Reservation{}, utils.Validationf("restaurant selection is required")
	}
	if err := rs.validate(restaurantID, date, partySize); err != nil {
		return models.Reservation{}, err
	}

	var maxID int64
	if err := rs.DB.Model(&models.Reservation{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return models.Reservation{}, err
	}

	reservation := models.Reservation{
		ID:           uint(maxID) + 1,
		RestaurantID: restaurantID,
		Date:         date,
		TimeOfDay:    date.Format("15:04"),
		PartySize:    partySize,
		Dishes:       "",
		Status:       models.ReservationConfirmed,
	}
	if err := rs.DB.Create(&reservation).Error; err != nil {
		return models.Reservation{}, err
	}
	return reservation, nil
}

// Modify updates date, display time and party size of an existing
// reservation. Restaurant, dish list and status never change here.
func (rs *ReservationService) Modify(id uint, date time.Time, partySize int) (models.Reservation, error) {
	reservation, err := rs.Get(id)
	if err != nil {
		return models.Reservation{}, err
	}
	if err := rs.validate(0, date, partySize); err != nil {
		return models.Reservation{}, err
	}

	updates := map[string]interface{}{
		"date":        date,
		"time_of_day": date.Format("15:04"),
		"party_size":  partySize,
	}
	if err := rs.DB.Model(&reservation).Updates(updates).Error; err != nil {
		return models.Reservation{}, err
	}
	return rs.Get(id)
}

// Cancel deletes a reservation. Cancelling an id that is already gone is a
// NotFoundError, not a silent no-op.
func (rs *ReservationService) Cancel(id uint) error {
	result := rs.DB.Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFound("reservation", id)
	}
	return nil
}
