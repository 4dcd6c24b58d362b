package repository

import (
	"github.com/Q-Tify/inno-trackify/internal/database"
	"github.com/Q-Tify/inno-trackify/internal/models"
	"gorm.io/gorm"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Create creates a new activity
func (r *GormActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// FindByID finds an activity by ID with optional preloading
func (r *GormActivityRepository) FindByID(id uint64, preload ...string) (*models.Activity, error) {
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	var activity models.Activity
	if err := query.First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// List retrieves activities matching the filter
func (r *GormActivityRepository) List(filter ActivityFilter) ([]models.Activity, error) {
	query := r.db.Preload("Type")

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.TypeID != nil {
		query = query.Where("type_id = ?", *filter.TypeID)
	}

	query = query.Order("id")
	if filter.Pagination.Limit > 0 {
		query = query.Scopes(database.Paginate(filter.Pagination))
	}

	var activities []models.Activity
	err := query.Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// Update persists changes to an activity
func (r *GormActivityRepository) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

// Delete removes an activity by ID. Deleting a missing row is a no-op.
func (r *GormActivityRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Activity{}, id).Error
}
