package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

const (
	PainLevelMin = 0
	PainLevelMax = 10

	StressLevelMin = 0
	StressLevelMax = 10
)

// Factors carries the contextual flags of an entry. Detail fields hold a
// value only while their flag is set; clearing a flag drops its detail.
type Factors struct {
	Period           bool   `json:"period"`
	PeriodFlow       string `json:"period_flow,omitempty"`
	BirthControl     bool   `json:"birth_control"`
	BirthControlType string `json:"birth_control_type,omitempty"`
	Sick             bool   `json:"sick"`
	SickType         string `json:"sick_type,omitempty"`
}

// JournalEntry is one user's health record for a single calendar date.
// The (user_id, entry_date) pair is the upsert key.
type JournalEntry struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_user_entry_date"`
	EntryDate   time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_entry_date"`
	Text        string
	PainLevel   *int
	StressLevel *int
	Mood        string
	Symptoms    []string `gorm:"serializer:json"`
	Factors     Factors  `gorm:"serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
