package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "targetrack/internal/errors"
	"targetrack/internal/models"
)

// achievementService handles achievement-related business logic.
type achievementService struct {
	db *gorm.DB
}

// NewAchievementService creates a new AchievementServicer.
func NewAchievementService(db *gorm.DB) AchievementServicer {
	return &achievementService{db: db}
}

func (s *achievementService) findByTarget(targetID string) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := s.db.Where("target_id = ?", targetID).First(&achievement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAchievementNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &achievement, nil
}

// CreateAchievement records the achievement for an existing target. A
// target holds at most one achievement.
func (s *achievementService) CreateAchievement(targetID string, nominal int64) (*models.Achievement, error) {
	if err := validateNominal(nominal); err != nil {
		return nil, err
	}

	var targets int64
	if err := s.db.Model(&models.Target{}).Where("id = ?", targetID).Count(&targets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if targets == 0 {
		return nil, apperrors.ErrTargetNotFound
	}

	if _, err := s.findByTarget(targetID); err == nil {
		return nil, apperrors.ErrAchievementExists
	} else if !errors.Is(err, apperrors.ErrAchievementNotFound) {
		return nil, err
	}

	achievement := &models.Achievement{TargetID: targetID, Nominal: nominal}
	if err := s.db.Create(achievement).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return achievement, nil
}

// GetAchievements returns every achievement with its target, employee and product.
func (s *achievementService) GetAchievements() ([]*models.Achievement, error) {
	var achievements []*models.Achievement
	if err := s.db.
		Preload("Target.Employee", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Target.Product.Category").
		Order("created_at").
		Find(&achievements).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return achievements, nil
}

// UpdateAchievement replaces the nominal of the target's achievement.
func (s *achievementService) UpdateAchievement(targetID string, nominal int64) (*models.Achievement, error) {
	if err := validateNominal(nominal); err != nil {
		return nil, err
	}

	achievement, err := s.findByTarget(targetID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(achievement).Update("nominal", nominal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	achievement.Nominal = nominal
	return achievement, nil
}

// DeleteAchievement removes the target's achievement.
func (s *achievementService) DeleteAchievement(targetID string) error {
	achievement, err := s.findByTarget(targetID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(achievement).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
