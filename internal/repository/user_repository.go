package repository

import (
	"fmt"

	"github.com/Q-Tify/inno-trackify/internal/database"
	"github.com/Q-Tify/inno-trackify/internal/models"
	"github.com/Q-Tify/inno-trackify/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users in insertion order
func (r *GormUserRepository) List(params utils.PaginationParams) ([]models.User, error) {
	query := r.db.Order("id")
	if params.Limit > 0 {
		query = query.Scopes(database.Paginate(params))
	}

	var users []models.User
	err := query.Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update persists changes to a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user and any activities still referencing it within a
// single transaction, so the delete cannot trip the activities foreign key
// on drivers that enforce it. Deleting a missing row is a no-op.
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
			return fmt.Errorf("failed to delete owned activities: %w", err)
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
