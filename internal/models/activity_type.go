package models

// ActivityType is fixed lookup data seeded at startup, never written via the API.
type ActivityType struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	Name     string `gorm:"type:varchar(50);not null" json:"name"`
	IconName string `gorm:"type:varchar(200)" json:"icon_name"`
}
