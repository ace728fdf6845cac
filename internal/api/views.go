package api

import (
	"time"

	"github.com/solhaven/sana/internal/models"
	"github.com/solhaven/sana/internal/services"
)

type entryView struct {
	ID          uint           `json:"id"`
	UserID      uint           `json:"user_id"`
	EntryDate   string         `json:"entry_date"`
	Text        string         `json:"text"`
	PainLevel   *int           `json:"pain_level"`
	StressLevel *int           `json:"stress_level"`
	Mood        string         `json:"mood"`
	Symptoms    []string       `json:"symptoms"`
	Factors     models.Factors `json:"factors"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type userView struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
}

func toEntryView(entry models.JournalEntry) entryView {
	symptoms := entry.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	return entryView{
		ID:          entry.ID,
		UserID:      entry.UserID,
		EntryDate:   services.FormatEntryDate(entry.EntryDate),
		Text:        entry.Text,
		PainLevel:   entry.PainLevel,
		StressLevel: entry.StressLevel,
		Mood:        entry.Mood,
		Symptoms:    symptoms,
		Factors:     entry.Factors,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}

func toEntryViews(entries []models.JournalEntry) []entryView {
	views := make([]entryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, toEntryView(entry))
	}
	return views
}

func toUserView(user *models.User) userView {
	return userView{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.DisplayName,
		Age:   user.Age,
	}
}
