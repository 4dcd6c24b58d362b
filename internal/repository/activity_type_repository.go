package repository

import (
	"github.com/Q-Tify/inno-trackify/internal/models"
	"gorm.io/gorm"
)

// GormActivityTypeRepository is a GORM implementation of ActivityTypeRepository
type GormActivityTypeRepository struct {
	db *gorm.DB
}

// NewActivityTypeRepository creates a new ActivityTypeRepository
func NewActivityTypeRepository(db *gorm.DB) ActivityTypeRepository {
	return &GormActivityTypeRepository{db: db}
}

// FindByID finds an activity type by ID
func (r *GormActivityTypeRepository) FindByID(id uint64) (*models.ActivityType, error) {
	var activityType models.ActivityType
	if err := r.db.First(&activityType, id).Error; err != nil {
		return nil, err
	}
	return &activityType, nil
}

// List retrieves all activity types
func (r *GormActivityTypeRepository) List() ([]models.ActivityType, error) {
	var types []models.ActivityType
	if err := r.db.Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
