package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/solhaven/sana/internal/services"
)

func (handler *Handler) ListEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days := c.QueryInt("days", 0)
	entries, err := handler.entryService.ListRecentEntries(user.ID, days)
	if err != nil {
		if err == services.ErrInvalidEntriesWindow {
			return apiError(c, fiber.StatusBadRequest, "invalid days value")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}

	return c.JSON(toEntryViews(entries))
}

func (handler *Handler) GetTodayEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	today := services.DateAtLocation(time.Now(), handler.location)
	return handler.respondWithEntryForDate(c, user.ID, today)
}

func (handler *Handler) GetEntryByDate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	return handler.respondWithEntryForDate(c, user.ID, day)
}

func (handler *Handler) respondWithEntryForDate(c *fiber.Ctx, userID uint, day time.Time) error {
	entry, found, err := handler.entryService.FetchEntryByDate(userID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entry")
	}
	if !found {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(toEntryView(entry))
}

func (handler *Handler) UpsertEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := parseEntryPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.entryService.SaveEntry(user.ID, input, handler.location)
	if err != nil {
		status, message := saveEntryErrorResponse(err)
		return apiError(c, status, message)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"entry_id": entry.ID,
	})
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.entryService.DeleteEntry(user.ID, day, handler.location); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
