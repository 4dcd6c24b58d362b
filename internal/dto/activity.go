package dto

import (
	"github.com/Q-Tify/inno-trackify/internal/models"
)

// ActivityTypeDTO represents an activity type in API responses
type ActivityTypeDTO struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	IconName string `json:"icon_name"`
}

// ActivityDTO represents an activity in API responses
type ActivityDTO struct {
	ID          uint64           `json:"id"`
	Name        string           `json:"name"`
	UserID      uint64           `json:"user_id"`
	TypeID      uint64           `json:"type_id"`
	Duration    string           `json:"duration"`
	StartTime   string           `json:"start_time"`
	EndTime     string           `json:"end_time"`
	Description string           `json:"description"`
	Type        *ActivityTypeDTO `json:"type,omitempty"`
}

// ToActivityTypeDTO converts an ActivityType model to ActivityTypeDTO
func ToActivityTypeDTO(activityType models.ActivityType) ActivityTypeDTO {
	return ActivityTypeDTO{
		ID:       activityType.ID,
		Name:     activityType.Name,
		IconName: activityType.IconName,
	}
}

// ToActivityTypeDTOs converts a slice of ActivityType models to DTOs
func ToActivityTypeDTOs(types []models.ActivityType) []ActivityTypeDTO {
	dtos := make([]ActivityTypeDTO, len(types))
	for i, t := range types {
		dtos[i] = ToActivityTypeDTO(t)
	}
	return dtos
}

// ToActivityDTO converts an Activity model to ActivityDTO
func ToActivityDTO(activity models.Activity) ActivityDTO {
	dto := ActivityDTO{
		ID:          activity.ID,
		Name:        activity.Name,
		UserID:      activity.UserID,
		TypeID:      activity.TypeID,
		Duration:    activity.Duration,
		StartTime:   activity.StartTime,
		EndTime:     activity.EndTime,
		Description: activity.Description,
	}

	// Include type if preloaded
	if activity.Type.ID != 0 {
		activityType := ToActivityTypeDTO(activity.Type)
		dto.Type = &activityType
	}

	return dto
}

// ToActivityDTOs converts a slice of Activity models to DTOs
func ToActivityDTOs(activities []models.Activity) []ActivityDTO {
	dtos := make([]ActivityDTO, len(activities))
	for i, activity := range activities {
		dtos[i] = ToActivityDTO(activity)
	}
	return dtos
}
