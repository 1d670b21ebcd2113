package services

import (
	"errors"
	"strings"

	"github.com/grandonbarcia/health-tracker/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FoodService is the nutrient profile store: id lookup, substring search
// and the full catalog for the recommendation scorer. Read failures degrade
// to empty results so display paths always have something to show.
type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

type FoodSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Serving string `json:"serving,omitempty"`
}

// Lookup resolves a food id to its profile, nil when unknown. Ids are
// matched case-insensitively.
func (s *FoodService) Lookup(foodID string) *models.Food {
	var food models.Food
	err := s.db.Where("LOWER(food_id) = ?", strings.ToLower(foodID)).First(&food).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("food_id", foodID).Msg("food lookup failed")
		}
		return nil
	}
	return &food
}

// Search does a case-insensitive substring match on food names. Results are
// ordered by name so identical queries return identical orderings.
func (s *FoodService) Search(query string, limit int) ([]FoodSummary, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []FoodSummary{}, nil
	}
	if limit <= 0 {
		limit = 8
	}

	var foods []models.Food
	err := s.db.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%").
		Order("name ASC").
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		log.Warn().Err(err).Str("query", q).Msg("food search failed")
		return []FoodSummary{}, nil
	}

	results := make([]FoodSummary, 0, len(foods))
	for _, f := range foods {
		results = append(results, FoodSummary{ID: f.FoodID, Name: f.Name, Serving: f.Serving})
	}
	return results, nil
}

// Catalog returns every food ordered by id, the candidate list the
// recommendation scorer iterates. Stable order keeps equal-score ties
// deterministic.
func (s *FoodService) Catalog() []CatalogFood {
	var foods []models.Food
	if err := s.db.Order("food_id ASC").Find(&foods).Error; err != nil {
		log.Warn().Err(err).Msg("food catalog load failed")
		return nil
	}
	catalog := make([]CatalogFood, 0, len(foods))
	for i := range foods {
		catalog = append(catalog, NewCatalogFood(&foods[i]))
	}
	return catalog
}

// Upsert creates or updates one catalog entry by food id.
func (s *FoodService) Upsert(food *models.Food) error {
	var existing models.Food
	err := s.db.Where("food_id = ?", food.FoodID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(food).Error
	}
	if err != nil {
		return err
	}
	food.ID = existing.ID
	food.CreatedAt = existing.CreatedAt
	return s.db.Save(food).Error
}
