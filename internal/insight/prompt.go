package insight

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/solhaven/sana/internal/models"
	"github.com/solhaven/sana/internal/services"
)

const maxPromptEntries = 60
const maxNoteLength = 200

// BuildPatternPrompt renders a bounded plain-text summary of the
// entries followed by the analysis instructions. Pure function so the
// prompt shape is testable without network access.
func BuildPatternPrompt(entries []models.JournalEntry) string {
	if len(entries) > maxPromptEntries {
		entries = entries[:maxPromptEntries]
	}

	var builder strings.Builder
	builder.WriteString("Analyze these health journal entries and provide insights:\n\n")
	for _, entry := range entries {
		builder.WriteString(summarizeEntry(entry))
		builder.WriteString("\n")
	}
	builder.WriteString("\nPlease provide:\n")
	builder.WriteString("1. Key patterns observed\n")
	builder.WriteString("2. Correlations with period/stress\n")
	builder.WriteString("3. Red flags if any\n")
	builder.WriteString("4. Summary for doctor discussion\n")
	return builder.String()
}

func summarizeEntry(entry models.JournalEntry) string {
	parts := make([]string, 0, 6)
	if entry.PainLevel != nil {
		parts = append(parts, fmt.Sprintf("pain %d/10", *entry.PainLevel))
	}
	if entry.StressLevel != nil {
		parts = append(parts, fmt.Sprintf("stress %d/10", *entry.StressLevel))
	}
	if entry.Mood != "" {
		parts = append(parts, "mood "+entry.Mood)
	}
	if len(entry.Symptoms) > 0 {
		parts = append(parts, "symptoms "+strings.Join(entry.Symptoms, ", "))
	}
	if factors := summarizeFactors(entry.Factors); factors != "" {
		parts = append(parts, factors)
	}
	if note := truncateNote(entry.Text); note != "" {
		parts = append(parts, "notes: "+note)
	}

	line := services.FormatEntryDate(entry.EntryDate) + ":"
	if len(parts) == 0 {
		return line + " no details recorded"
	}
	return line + " " + strings.Join(parts, "; ")
}

func summarizeFactors(factors models.Factors) string {
	parts := make([]string, 0, 3)
	if factors.Period {
		flow := factors.PeriodFlow
		if flow == "" {
			parts = append(parts, "period active")
		} else {
			parts = append(parts, "period active ("+flow+" flow)")
		}
	}
	if factors.BirthControl {
		detail := factors.BirthControlType
		if detail == "" {
			parts = append(parts, "on birth control")
		} else {
			parts = append(parts, "on birth control ("+detail+")")
		}
	}
	if factors.Sick {
		detail := factors.SickType
		if detail == "" {
			parts = append(parts, "sick")
		} else {
			parts = append(parts, "sick ("+detail+")")
		}
	}
	return strings.Join(parts, ", ")
}

// truncateNote bounds the note by rune count so multibyte text is never
// cut mid-character.
func truncateNote(text string) string {
	note := strings.TrimSpace(text)
	if utf8.RuneCountInString(note) <= maxNoteLength {
		return note
	}
	return string([]rune(note)[:maxNoteLength]) + "…"
}
