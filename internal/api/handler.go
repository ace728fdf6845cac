package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/solhaven/sana/internal/db"
	"github.com/solhaven/sana/internal/models"
	"github.com/solhaven/sana/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName = "sana_auth"
	contextUserKey = "current_user"

	authTokenTTL = 7 * 24 * time.Hour
)

// InsightGenerator produces a narrative analysis over an entry history.
// Implementations must degrade to a fallback string instead of failing.
type InsightGenerator interface {
	GeneratePatternAnalysis(ctx context.Context, entries []models.JournalEntry) string
}

// Transcriber converts recorded audio to text, reporting absence
// instead of an error when no transcript is available.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, bool)
}

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	authService  *services.AuthService
	entryService *services.EntryService
	insights     InsightGenerator
	speech       Transcriber
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool, insights InsightGenerator, speech Transcriber) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if insights == nil {
		return nil, errors.New("insight generator is required")
	}
	if speech == nil {
		return nil, errors.New("transcriber is required")
	}
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		authService:  services.NewAuthService(repositories.Users),
		entryService: services.NewEntryService(repositories.Entries, repositories.Users),
		insights:     insights,
		speech:       speech,
	}, nil
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
