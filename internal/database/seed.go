package database

import (
	"fmt"
	"log"

	"github.com/Q-Tify/inno-trackify/internal/models"
	"gorm.io/gorm/clause"
)

const iconBaseURL = "https://raw.githubusercontent.com/Wild-Queue/inno-trackify-icons/main"

var activityTypes = []models.ActivityType{
	{ID: 1, Name: "Sport", IconName: iconBaseURL + "/Sport.jpg"},
	{ID: 2, Name: "Health", IconName: iconBaseURL + "/Health.jpg"},
	{ID: 3, Name: "Sleep", IconName: iconBaseURL + "/Sleep.jpg"},
	{ID: 4, Name: "Study", IconName: iconBaseURL + "/Study.jpg"},
	{ID: 5, Name: "Rest", IconName: iconBaseURL + "/Rest.jpg"},
	{ID: 6, Name: "Eat", IconName: iconBaseURL + "/Eat.jpg"},
	{ID: 7, Name: "Coding", IconName: iconBaseURL + "/Coding.jpg"},
	{ID: 8, Name: "Other", IconName: iconBaseURL + "/Other.jpg"},
}

// Seed upserts the fixed activity type catalog, keyed by id.
// Safe to run on every startup.
func Seed() error {
	types := make([]models.ActivityType, len(activityTypes))
	copy(types, activityTypes)

	err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&types).Error
	if err != nil {
		return fmt.Errorf("failed to seed activity types: %w", err)
	}

	log.Printf("Seeded %d activity types", len(types))
	return nil
}
