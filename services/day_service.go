package services

import (
	"errors"

	"github.com/grandonbarcia/health-tracker/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var mealBuckets = []string{"breakfast", "lunch", "dinner"}

// DayService owns the per-(user, date) day records and their line items.
// Days are created lazily on first access; items are only ever replaced
// wholesale, never patched.
type DayService struct {
	db *gorm.DB
}

func NewDayService(db *gorm.DB) *DayService {
	return &DayService{db: db}
}

func (s *DayService) GetOrCreateDay(userID uint, dateISO string) (*models.UserDay, error) {
	var day models.UserDay
	err := s.db.Where("user_id = ? AND day_date = ?", userID, dateISO).First(&day).Error
	if err == nil {
		return &day, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	day = models.UserDay{
		PublicID: uuid.NewString(),
		UserID:   userID,
		DayDate:  dateISO,
	}
	if err := s.db.Create(&day).Error; err != nil {
		return nil, err
	}
	return &day, nil
}

// DayMeals loads a day's items grouped into the three buckets. Items with
// an unrecognized bucket land in dinner, matching how legacy flat logs were
// migrated.
func (s *DayService) DayMeals(dayID uint) (DayMeals, error) {
	var items []models.UserDayItem
	err := s.db.
		Where("user_day_id = ?", dayID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return EmptyDayMeals(), err
	}
	return groupItems(items), nil
}

func groupItems(items []models.UserDayItem) DayMeals {
	meals := EmptyDayMeals()
	for _, it := range items {
		entry := ItemWithQty{FoodID: it.FoodID, Qty: it.Qty}
		switch it.Meal {
		case "breakfast":
			meals.Breakfast = append(meals.Breakfast, entry)
		case "lunch":
			meals.Lunch = append(meals.Lunch, entry)
		default:
			meals.Dinner = append(meals.Dinner, entry)
		}
	}
	return meals
}

// ReplaceItems overwrites a day's entire item set: delete all, insert all,
// in one transaction.
func (s *DayService) ReplaceItems(dayID uint, meals DayMeals) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_day_id = ?", dayID).Delete(&models.UserDayItem{}).Error; err != nil {
			return err
		}

		var rows []models.UserDayItem
		appendBucket := func(bucket string, items []ItemWithQty) {
			for _, it := range items {
				rows = append(rows, models.UserDayItem{
					UserDayID: dayID,
					FoodID:    it.FoodID,
					Qty:       it.Qty,
					Meal:      bucket,
				})
			}
		}
		appendBucket("breakfast", meals.Breakfast)
		appendBucket("lunch", meals.Lunch)
		appendBucket("dinner", meals.Dinner)

		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

type DayRecord struct {
	ID      string `json:"id"`
	DayDate string `json:"day_date"`
}

// ListDays returns the user's logged dates, newest first.
func (s *DayService) ListDays(userID uint, limit int) ([]DayRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var days []models.UserDay
	err := s.db.
		Where("user_id = ?", userID).
		Order("day_date DESC").
		Limit(limit).
		Find(&days).Error
	if err != nil {
		return nil, err
	}

	records := make([]DayRecord, 0, len(days))
	for _, d := range days {
		records = append(records, DayRecord{ID: d.PublicID, DayDate: d.DayDate})
	}
	return records, nil
}

// AllDaysWithMeals loads every logged day of the user keyed by date.
func (s *DayService) AllDaysWithMeals(userID uint, limit int) (map[string]DayMeals, error) {
	if limit <= 0 {
		limit = 100
	}
	var days []models.UserDay
	err := s.db.
		Where("user_id = ?", userID).
		Order("day_date DESC").
		Limit(limit).
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return map[string]DayMeals{}, nil
	}

	ids := make([]uint, 0, len(days))
	for _, d := range days {
		ids = append(ids, d.ID)
	}
	var items []models.UserDayItem
	if err := s.db.Where("user_day_id IN ?", ids).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	byDay := make(map[uint][]models.UserDayItem)
	for _, it := range items {
		byDay[it.UserDayID] = append(byDay[it.UserDayID], it)
	}

	result := make(map[string]DayMeals, len(days))
	for _, d := range days {
		result[d.DayDate] = groupItems(byDay[d.ID])
	}
	return result, nil
}
