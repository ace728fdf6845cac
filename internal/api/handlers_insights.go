package api

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/solhaven/sana/internal/services"
)

const insightWindowEntries = 30

const notEnoughDataNarrative = "Not enough data to generate insights yet. Keep journaling and check back soon."

// GetInsights builds the numeric aggregates locally and asks the
// generative-language adapter for the narrative. The adapter degrades
// to a fixed fallback on failure, so this endpoint never surfaces a
// remote AI error.
func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.entryService.ListRecentEntries(user.ID, insightWindowEntries)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}

	analysis := notEnoughDataNarrative
	if len(entries) > 0 {
		analysis = handler.insights.GeneratePatternAnalysis(c.UserContext(), entries)
	}

	return c.JSON(fiber.Map{
		"analysis": analysis,
		"stats": fiber.Map{
			"total_entries":        len(entries),
			"avg_pain":             roundToTenth(services.AveragePain(entries)),
			"avg_period_pain":      roundToTenth(services.AveragePeriodPain(entries)),
			"most_common_symptoms": services.TopSymptoms(entries, services.DefaultTopSymptomCount),
			"pain_trend":           services.PainTrend(entries, services.DefaultPainTrendDays),
		},
	})
}

func roundToTenth(value float64) float64 {
	return math.Round(value*10) / 10
}
