package api

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Transcribe(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := transcribeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	encoded := strings.TrimSpace(input.Audio)
	if encoded == "" {
		return apiError(c, fiber.StatusBadRequest, "no audio data provided")
	}
	// Browser recorders often prefix a data URL; strip it before decoding.
	if index := strings.Index(encoded, ","); index != -1 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[index+1:]
	}

	audio, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(audio) == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid audio data")
	}

	transcript, ok := handler.speech.Transcribe(c.UserContext(), audio)
	if !ok {
		return apiError(c, fiber.StatusInternalServerError, "transcription failed")
	}

	return c.JSON(fiber.Map{"transcript": transcript})
}
