// services/charity_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"charity-gaming-system/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type CharityService struct {
	DB *gorm.DB
}

func NewCharityService(db *gorm.DB) *CharityService {
	return &CharityService{DB: db}
}

// NormalizeCharityName is the canonical form charities are stored and looked
// up under: lowercase with all spaces removed.
func NormalizeCharityName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// CharityInfo carries the optional descriptive fields for a new charity.
type CharityInfo struct {
	Description  string
	Category     string
	Location     string
	FoundingYear string
}

// Add inserts a new charity unless one with the same normalized name exists.
// The sequential charity_id is assigned inside the insert transaction so two
// concurrent adds can't claim the same number.
func (s *CharityService) Add(name string, info CharityInfo) (*models.Charity, error) {
	normalized := NormalizeCharityName(name)
	if normalized == "" {
		return nil, fmt.Errorf("%w: charity name is required", ErrValidation)
	}

	var charity models.Charity
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Charity
		err := tx.Where("name = ?", normalized).First(&existing).Error
		if err == nil {
			return fmt.Errorf("%w: %s", ErrDuplicateCharity, normalized)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var maxID int
		if err := tx.Model(&models.Charity{}).Select("COALESCE(MAX(charity_id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}

		charity = models.Charity{
			ID:           uuid.NewString(),
			Name:         normalized,
			Slug:         slug.Make(name),
			Description:  info.Description,
			Category:     info.Category,
			Location:     info.Location,
			FoundingYear: info.FoundingYear,
			CharityID:    maxID + 1,
		}
		return tx.Create(&charity).Error
	})
	if err != nil {
		return nil, err
	}
	return &charity, nil
}

// SetForUser points the session user at an existing charity. Unknown names
// fail with ErrCharityNotFound and leave the user untouched.
func (s *CharityService) SetForUser(session Session, name string) error {
	normalized := NormalizeCharityName(name)
	if normalized == "" {
		return fmt.Errorf("%w: charity name is required", ErrValidation)
	}

	var charity models.Charity
	if err := s.DB.Where("name = ?", normalized).First(&charity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrCharityNotFound, normalized)
		}
		return err
	}

	return s.DB.Model(&models.User{}).
		Where("id = ?", session.UserID).
		Update("charity_id", charity.ID).Error
}

// List returns every charity ordered by its sequential number.
func (s *CharityService) List() ([]models.Charity, error) {
	var charities []models.Charity
	if err := s.DB.Order("charity_id ASC").Find(&charities).Error; err != nil {
		return nil, err
	}
	return charities, nil
}
