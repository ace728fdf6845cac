package services

import (
	"errors"
	"strings"

	"github.com/solhaven/sana/internal/models"
)

var (
	ErrPainLevelOutOfRange   = errors.New("pain level out of range")
	ErrStressLevelOutOfRange = errors.New("stress level out of range")
	ErrInvalidFlowValue      = errors.New("invalid flow value")
)

// EntryInput is the normalized write payload for one journal entry.
// EntryDate stays a string until SaveEntry parses it against the
// configured location.
type EntryInput struct {
	EntryDate   string
	Text        string
	PainLevel   *int
	StressLevel *int
	Mood        string
	Symptoms    []string
	Factors     models.Factors
}

// NormalizeEntryInput validates level bounds and factor consistency.
// Out-of-range levels are rejected, never clamped. Factor detail fields
// are dropped whenever their flag is off.
func NormalizeEntryInput(input EntryInput) (EntryInput, error) {
	input.EntryDate = strings.TrimSpace(input.EntryDate)
	input.Text = strings.TrimSpace(input.Text)
	input.Mood = strings.TrimSpace(input.Mood)
	input.Symptoms = normalizeSymptomTags(input.Symptoms)

	if input.PainLevel != nil {
		if *input.PainLevel < models.PainLevelMin || *input.PainLevel > models.PainLevelMax {
			return EntryInput{}, ErrPainLevelOutOfRange
		}
	}
	if input.StressLevel != nil {
		if *input.StressLevel < models.StressLevelMin || *input.StressLevel > models.StressLevelMax {
			return EntryInput{}, ErrStressLevelOutOfRange
		}
	}

	factors, err := normalizeFactors(input.Factors)
	if err != nil {
		return EntryInput{}, err
	}
	input.Factors = factors

	return input, nil
}

func normalizeSymptomTags(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	tags := make([]string, 0, len(raw))
	for _, value := range raw {
		tag := strings.ToLower(strings.TrimSpace(value))
		if tag == "" {
			continue
		}
		if _, duplicate := seen[tag]; duplicate {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func normalizeFactors(factors models.Factors) (models.Factors, error) {
	factors.PeriodFlow = strings.ToLower(strings.TrimSpace(factors.PeriodFlow))
	factors.BirthControlType = strings.TrimSpace(factors.BirthControlType)
	factors.SickType = strings.TrimSpace(factors.SickType)

	// Flow is an optional detail: the period flag alone is a valid entry.
	if factors.Period {
		if factors.PeriodFlow != "" && !isValidFlow(factors.PeriodFlow) {
			return models.Factors{}, ErrInvalidFlowValue
		}
	} else {
		factors.PeriodFlow = ""
	}

	if !factors.BirthControl {
		factors.BirthControlType = ""
	}
	if !factors.Sick {
		factors.SickType = ""
	}

	return factors, nil
}

func isValidFlow(flow string) bool {
	switch flow {
	case models.FlowLight, models.FlowMedium, models.FlowHeavy:
		return true
	default:
		return false
	}
}
