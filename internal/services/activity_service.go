package services

import (
	"errors"
	"fmt"

	"github.com/Q-Tify/inno-trackify/internal/models"
	"github.com/Q-Tify/inno-trackify/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	// ErrInvalidReference is returned when user_id or type_id does not resolve
	// to an existing row at write time.
	ErrInvalidReference = errors.New("referenced user or activity type does not exist")
	ErrNotActivityOwner = errors.New("only the owner can modify this activity")
)

// ActivityService owns Activity rows. It reads User and ActivityType rows
// by reference but never writes them.
type ActivityService struct {
	activityRepo repository.ActivityRepository
	userRepo     repository.UserRepository
	typeRepo     repository.ActivityTypeRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(activityRepo repository.ActivityRepository, userRepo repository.UserRepository, typeRepo repository.ActivityTypeRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		userRepo:     userRepo,
		typeRepo:     typeRepo,
	}
}

// CreateActivityInput represents input for creating an activity.
type CreateActivityInput struct {
	Name        string
	TypeID      uint64
	UserID      uint64
	StartTime   string
	EndTime     string
	Duration    string
	Description string
}

// Create persists a new activity after checking that both references resolve.
func (s *ActivityService) Create(input CreateActivityInput) (*models.Activity, error) {
	if err := s.checkReferences(&input.UserID, &input.TypeID); err != nil {
		return nil, err
	}

	activity := &models.Activity{
		Name:        input.Name,
		TypeID:      input.TypeID,
		UserID:      input.UserID,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Duration:    input.Duration,
		Description: input.Description,
	}

	if err := s.activityRepo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return s.activityRepo.FindByID(activity.ID, "Type")
}

// Get returns an activity with its type preloaded.
func (s *ActivityService) Get(id uint64) (*models.Activity, error) {
	activity, err := s.activityRepo.FindByID(id, "Type")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}

	return activity, nil
}

// List returns activities matching the filter.
func (s *ActivityService) List(filter repository.ActivityFilter) ([]models.Activity, error) {
	activities, err := s.activityRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// UpdateActivityInput represents a partial update; nil fields are left untouched.
type UpdateActivityInput struct {
	Name        *string
	TypeID      *uint64
	UserID      *uint64
	StartTime   *string
	EndTime     *string
	Duration    *string
	Description *string
}

// Update overwrites the provided fields on an existing activity. The actor
// must own the row; changed references are re-checked before the write.
func (s *ActivityService) Update(id, actorID uint64, input UpdateActivityInput) (*models.Activity, error) {
	activity, err := s.activityRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}

	if activity.UserID != actorID {
		return nil, ErrNotActivityOwner
	}

	if err := s.checkReferences(input.UserID, input.TypeID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		activity.Name = *input.Name
	}
	if input.TypeID != nil {
		activity.TypeID = *input.TypeID
	}
	if input.UserID != nil {
		activity.UserID = *input.UserID
	}
	if input.StartTime != nil {
		activity.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		activity.EndTime = *input.EndTime
	}
	if input.Duration != nil {
		activity.Duration = *input.Duration
	}
	if input.Description != nil {
		activity.Description = *input.Description
	}

	if err := s.activityRepo.Update(activity); err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	return s.activityRepo.FindByID(activity.ID, "Type")
}

// Delete removes an activity owned by the actor. Deleting an absent ID is
// not an error.
func (s *ActivityService) Delete(id, actorID uint64) error {
	activity, err := s.activityRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find activity: %w", err)
	}

	if activity.UserID != actorID {
		return ErrNotActivityOwner
	}

	if err := s.activityRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// ListTypes returns the seeded activity type catalog.
func (s *ActivityService) ListTypes() ([]models.ActivityType, error) {
	types, err := s.typeRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list activity types: %w", err)
	}
	return types, nil
}

// checkReferences verifies that the given user and type IDs resolve to
// existing rows. Nil IDs are skipped.
func (s *ActivityService) checkReferences(userID, typeID *uint64) error {
	if userID != nil {
		if _, err := s.userRepo.FindByID(*userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidReference
			}
			return fmt.Errorf("failed to check user reference: %w", err)
		}
	}
	if typeID != nil {
		if _, err := s.typeRepo.FindByID(*typeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidReference
			}
			return fmt.Errorf("failed to check activity type reference: %w", err)
		}
	}
	return nil
}
