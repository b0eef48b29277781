package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/courtlab/backend/internal/models"
	"gorm.io/gorm"
)

type FavoritesService struct {
	DB *gorm.DB
}

func NewFavoritesService(db *gorm.DB) *FavoritesService {
	return &FavoritesService{DB: db}
}

func (s *FavoritesService) List(userID uint) ([]string, error) {
	var favorites []models.Favorite
	err := s.DB.
		Where("user_id = ?", userID).
		Order("position ASC, created_at ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}

	drillIDs := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		drillIDs = append(drillIDs, favorite.DrillID)
	}
	return drillIDs, nil
}

// ReplaceAll swaps the whole list: empties are dropped, duplicates keep their
// first-seen position, and the stored rows get dense zero-based positions.
func (s *FavoritesService) ReplaceAll(userID uint, proposed []string) ([]string, error) {
	deduped := make([]string, 0, len(proposed))
	seen := map[string]bool{}
	for _, drillID := range proposed {
		drillID = strings.TrimSpace(drillID)
		if drillID == "" || seen[drillID] {
			continue
		}
		seen[drillID] = true
		deduped = append(deduped, drillID)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		for position, drillID := range deduped {
			favorite := models.Favorite{
				UserID:   userID,
				DrillID:  drillID,
				Position: position,
			}
			if err := tx.Create(&favorite).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deduped, nil
}

// Toggle removes the drill when it is already favorited, otherwise appends it
// after the current highest position. An empty drill id is a no-op.
func (s *FavoritesService) Toggle(userID uint, drillID string) ([]string, error) {
	drillID = strings.TrimSpace(drillID)
	if drillID == "" {
		return s.List(userID)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Favorite
		err := tx.Where("user_id = ? AND drill_id = ?", userID, drillID).First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var maxPosition sql.NullInt64
		if err := tx.Model(&models.Favorite{}).
			Where("user_id = ?", userID).
			Select("MAX(position)").
			Scan(&maxPosition).Error; err != nil {
			return err
		}

		next := 0
		if maxPosition.Valid {
			next = int(maxPosition.Int64) + 1
		}

		favorite := models.Favorite{
			UserID:   userID,
			DrillID:  drillID,
			Position: next,
		}
		return tx.Create(&favorite).Error
	})
	if err != nil {
		return nil, err
	}

	return s.List(userID)
}
