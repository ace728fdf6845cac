package api

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/solhaven/sana/internal/models"
	"github.com/solhaven/sana/internal/services"
)

var passwordLengthRegex = regexp.MustCompile(`^.{8,}$`)
var passwordUpperRegex = regexp.MustCompile(`\p{Lu}`)
var passwordLowerRegex = regexp.MustCompile(`\p{Ll}`)
var passwordDigitRegex = regexp.MustCompile(`\d`)

const maxSignupAge = 120

type signupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type factorsPayload struct {
	Period           bool   `json:"period"`
	PeriodFlow       string `json:"period_flow"`
	BirthControl     bool   `json:"birth_control"`
	BirthControlType string `json:"birth_control_type"`
	Sick             bool   `json:"sick"`
	SickType         string `json:"sick_type"`
}

type entryPayload struct {
	EntryDate   string         `json:"entry_date"`
	Text        string         `json:"text"`
	PainLevel   *int           `json:"pain_level"`
	StressLevel *int           `json:"stress_level"`
	Mood        string         `json:"mood"`
	Symptoms    []string       `json:"symptoms"`
	Factors     factorsPayload `json:"factors"`
}

type transcribeInput struct {
	Audio string `json:"audio"`
}

func parseSignupInput(c *fiber.Ctx) (signupInput, error) {
	input := signupInput{}
	if err := c.BodyParser(&input); err != nil {
		return signupInput{}, err
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Password = strings.TrimSpace(input.Password)
	input.Name = strings.TrimSpace(input.Name)

	if input.Email == "" || input.Password == "" {
		return signupInput{}, errors.New("missing credentials")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return signupInput{}, errors.New("invalid email")
	}
	if input.Name == "" {
		return signupInput{}, errors.New("name is required")
	}
	if input.Age < 0 || input.Age > maxSignupAge {
		return signupInput{}, errors.New("invalid age")
	}

	return input, nil
}

func parseLoginInput(c *fiber.Ctx) (loginInput, error) {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return loginInput{}, err
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Password = strings.TrimSpace(input.Password)

	if input.Email == "" || input.Password == "" {
		return loginInput{}, errors.New("missing credentials")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return loginInput{}, errors.New("invalid email")
	}

	return input, nil
}

func validatePasswordStrength(password string) error {
	if !passwordLengthRegex.MatchString(password) {
		return errors.New("password too short")
	}

	if passwordUpperRegex.MatchString(password) &&
		passwordLowerRegex.MatchString(password) &&
		passwordDigitRegex.MatchString(password) {
		return nil
	}
	return errors.New("weak password")
}

func parseEntryPayload(c *fiber.Ctx) (services.EntryInput, error) {
	payload := entryPayload{Symptoms: []string{}}
	if err := c.BodyParser(&payload); err != nil {
		return services.EntryInput{}, err
	}

	return services.EntryInput{
		EntryDate:   payload.EntryDate,
		Text:        payload.Text,
		PainLevel:   payload.PainLevel,
		StressLevel: payload.StressLevel,
		Mood:        payload.Mood,
		Symptoms:    payload.Symptoms,
		Factors: models.Factors{
			Period:           payload.Factors.Period,
			PeriodFlow:       payload.Factors.PeriodFlow,
			BirthControl:     payload.Factors.BirthControl,
			BirthControlType: payload.Factors.BirthControlType,
			Sick:             payload.Factors.Sick,
			SickType:         payload.Factors.SickType,
		},
	}, nil
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	return services.ParseEntryDate(strings.TrimSpace(raw), location)
}

// saveEntryErrorResponse maps the entry service error taxonomy onto
// HTTP statuses; store failures stay generic so upstream error text
// never leaks to the client.
func saveEntryErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrEntryDateRequired):
		return fiber.StatusBadRequest, "entry date is required"
	case errors.Is(err, services.ErrInvalidEntryDate):
		return fiber.StatusBadRequest, "invalid entry date"
	case errors.Is(err, services.ErrPainLevelOutOfRange):
		return fiber.StatusBadRequest, "pain level out of range"
	case errors.Is(err, services.ErrStressLevelOutOfRange):
		return fiber.StatusBadRequest, "stress level out of range"
	case errors.Is(err, services.ErrInvalidFlowValue):
		return fiber.StatusBadRequest, "invalid flow value"
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound, "user not found"
	default:
		return fiber.StatusInternalServerError, "failed to save entry"
	}
}
