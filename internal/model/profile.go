package model

import "time"

// Profile holds per-user daily generation quota state. One row per user.
//
// DailyGenerationsCount is only meaningful when LastGenerationDate equals the
// current UTC calendar date; an older date implies an effective count of zero
// (the counter resets lazily at read time, there is no midnight job).
type Profile struct {
	UserID                uint      `json:"user_id" gorm:"primaryKey"`
	DailyGenerationsCount int       `json:"daily_generations_count" gorm:"not null;default:0"`
	LastGenerationDate    string    `json:"last_generation_date" gorm:"size:10"` // ISO date, no time component
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
