package services

import (
	"errors"
	"time"

	"github.com/solhaven/sana/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEntryLoadFailed      = errors.New("load entry failed")
	ErrEntryCreateFailed    = errors.New("create entry failed")
	ErrEntryUpdateFailed    = errors.New("update entry failed")
	ErrEntryDeleteFailed    = errors.New("delete entry failed")
	ErrEntryListFailed      = errors.New("list entries failed")
	ErrUserLookupFailed     = errors.New("user lookup failed")
	ErrInvalidEntriesWindow = errors.New("invalid entries window")
)

const (
	DefaultRecentEntriesLimit = 30
	MaxRecentEntriesLimit     = 365
)

type EntryLogRepository interface {
	ListRecentByUser(userID uint, limit int) ([]models.JournalEntry, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.JournalEntry, bool, error)
	Create(entry *models.JournalEntry) error
	Save(entry *models.JournalEntry) error
	DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) error
}

type EntryUserRepository interface {
	ExistsByID(userID uint) (bool, error)
}

type EntryService struct {
	entries EntryLogRepository
	users   EntryUserRepository
}

func NewEntryService(entries EntryLogRepository, users EntryUserRepository) *EntryService {
	return &EntryService{
		entries: entries,
		users:   users,
	}
}

// SaveEntry applies upsert semantics keyed on (user, entry date): the
// first save for a date creates the record, later saves replace its
// mutable fields wholesale. Symptoms and factors absent from the new
// payload are dropped, not merged.
func (service *EntryService) SaveEntry(userID uint, input EntryInput, location *time.Location) (models.JournalEntry, error) {
	input, err := NormalizeEntryInput(input)
	if err != nil {
		return models.JournalEntry{}, err
	}

	day, err := ParseEntryDate(input.EntryDate, location)
	if err != nil {
		return models.JournalEntry{}, err
	}

	exists, err := service.users.ExistsByID(userID)
	if err != nil {
		return models.JournalEntry{}, ErrUserLookupFailed
	}
	if !exists {
		return models.JournalEntry{}, ErrUserNotFound
	}

	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.JournalEntry{}, ErrEntryLoadFailed
	}

	if found {
		entry.Text = input.Text
		entry.PainLevel = input.PainLevel
		entry.StressLevel = input.StressLevel
		entry.Mood = input.Mood
		entry.Symptoms = input.Symptoms
		entry.Factors = input.Factors
		if err := service.entries.Save(&entry); err != nil {
			return models.JournalEntry{}, ErrEntryUpdateFailed
		}
		return entry, nil
	}

	entry = models.JournalEntry{
		UserID:      userID,
		EntryDate:   dayStart,
		Text:        input.Text,
		PainLevel:   input.PainLevel,
		StressLevel: input.StressLevel,
		Mood:        input.Mood,
		Symptoms:    input.Symptoms,
		Factors:     input.Factors,
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.JournalEntry{}, ErrEntryCreateFailed
	}
	return entry, nil
}

// FetchEntryByDate reports found=false instead of an error when no
// entry exists for the date.
func (service *EntryService) FetchEntryByDate(userID uint, day time.Time, location *time.Location) (models.JournalEntry, bool, error) {
	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.JournalEntry{}, false, ErrEntryLoadFailed
	}
	return entry, found, nil
}

// ListRecentEntries returns the most recent limit entries ordered by
// entry date descending. The limit bounds row count, not a trailing
// date window.
func (service *EntryService) ListRecentEntries(userID uint, limit int) ([]models.JournalEntry, error) {
	limit, err := ClampRecentEntriesLimit(limit)
	if err != nil {
		return nil, err
	}
	entries, err := service.entries.ListRecentByUser(userID, limit)
	if err != nil {
		return nil, ErrEntryListFailed
	}
	return entries, nil
}

func (service *EntryService) DeleteEntry(userID uint, day time.Time, location *time.Location) error {
	dayStart, dayEnd := DayRange(day, location)
	if err := service.entries.DeleteByUserAndDayRange(userID, dayStart, dayEnd); err != nil {
		return ErrEntryDeleteFailed
	}
	return nil
}

func ClampRecentEntriesLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultRecentEntriesLimit, nil
	}
	if limit < 0 {
		return 0, ErrInvalidEntriesWindow
	}
	if limit > MaxRecentEntriesLimit {
		return MaxRecentEntriesLimit, nil
	}
	return limit, nil
}
