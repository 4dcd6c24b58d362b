package models

import (
	"time"
)

// Activity records a tracked activity. Duration and the time bounds are
// stored as opaque strings; the client decides their format.
type Activity struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	TypeID      uint64    `gorm:"not null;index" json:"type_id"`
	Duration    string    `gorm:"type:varchar(50)" json:"duration"`
	StartTime   string    `gorm:"type:varchar(50)" json:"start_time"`
	EndTime     string    `gorm:"type:varchar(50)" json:"end_time"`
	Description string    `gorm:"type:varchar(2000)" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User User         `gorm:"foreignKey:UserID" json:"-"`
	Type ActivityType `gorm:"foreignKey:TypeID" json:"type,omitempty"`
}
