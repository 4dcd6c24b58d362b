package repository

import (
	"github.com/Q-Tify/inno-trackify/internal/models"
	"github.com/Q-Tify/inno-trackify/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List retrieves users in insertion order
	List(params utils.PaginationParams) ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// Delete removes a user by ID; deleting an absent ID is not an error
	Delete(id uint64) error
}

// ActivityTypeRepository defines the interface for the activity type catalog
type ActivityTypeRepository interface {
	// FindByID finds an activity type by ID
	FindByID(id uint64) (*models.ActivityType, error)

	// List retrieves all activity types
	List() ([]models.ActivityType, error)
}

// ActivityFilter holds filtering options for listing activities
type ActivityFilter struct {
	UserID     *uint64
	TypeID     *uint64
	Pagination utils.PaginationParams
}

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	// Create creates a new activity
	Create(activity *models.Activity) error

	// FindByID finds an activity by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Activity, error)

	// List retrieves activities matching the filter
	List(filter ActivityFilter) ([]models.Activity, error)

	// Update persists changes to an activity
	Update(activity *models.Activity) error

	// Delete removes an activity by ID; deleting an absent ID is not an error
	Delete(id uint64) error
}
