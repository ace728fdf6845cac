package services

import (
	"sort"

	"github.com/solhaven/sana/internal/models"
)

const (
	DefaultTopSymptomCount = 5
	DefaultPainTrendDays   = 14
)

type SymptomFrequency struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type PainTrendPoint struct {
	Date      string `json:"date"`
	PainLevel *int   `json:"pain_level"`
}

// AveragePain is the arithmetic mean of recorded pain levels. Entries
// without a pain level do not count toward the mean; no levels at all
// yields 0.
func AveragePain(entries []models.JournalEntry) float64 {
	sum := 0
	counted := 0
	for _, entry := range entries {
		if entry.PainLevel == nil {
			continue
		}
		sum += *entry.PainLevel
		counted++
	}
	if counted == 0 {
		return 0
	}
	return float64(sum) / float64(counted)
}

// AveragePeriodPain restricts the mean to entries logged with the
// period factor active.
func AveragePeriodPain(entries []models.JournalEntry) float64 {
	periodEntries := make([]models.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Factors.Period {
			periodEntries = append(periodEntries, entry)
		}
	}
	return AveragePain(periodEntries)
}

// TopSymptoms ranks symptom tags by occurrence count across entries.
// Ties keep the order the tags were first encountered in the input.
func TopSymptoms(entries []models.JournalEntry, k int) []SymptomFrequency {
	if k <= 0 {
		return []SymptomFrequency{}
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, entry := range entries {
		for _, tag := range entry.Symptoms {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	ranked := make([]SymptomFrequency, 0, len(order))
	for _, tag := range order {
		ranked = append(ranked, SymptomFrequency{Name: tag, Count: counts[tag]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// PainTrend projects the first n entries of an already date-descending
// sequence to date/pain pairs, preserving input order.
func PainTrend(entries []models.JournalEntry, n int) []PainTrendPoint {
	if n <= 0 {
		return []PainTrendPoint{}
	}
	if n > len(entries) {
		n = len(entries)
	}

	points := make([]PainTrendPoint, 0, n)
	for _, entry := range entries[:n] {
		points = append(points, PainTrendPoint{
			Date:      FormatEntryDate(entry.EntryDate),
			PainLevel: entry.PainLevel,
		})
	}
	return points
}
