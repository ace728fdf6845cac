package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/solhaven/sana/internal/db"
	"github.com/solhaven/sana/internal/models"
)

const testSecretKey = "test-secret-key-0123456789abcdef"

type stubInsightGenerator struct {
	calls    int
	analysis string
}

func (stub *stubInsightGenerator) GeneratePatternAnalysis(_ context.Context, _ []models.JournalEntry) string {
	stub.calls++
	return stub.analysis
}

type stubTranscriber struct {
	calls      int
	transcript string
	available  bool
}

func (stub *stubTranscriber) Transcribe(_ context.Context, _ []byte) (string, bool) {
	stub.calls++
	if !stub.available {
		return "", false
	}
	return stub.transcript, true
}

type testApp struct {
	app     *fiber.App
	insight *stubInsightGenerator
	speech  *stubTranscriber
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})

	insight := &stubInsightGenerator{analysis: "Stub analysis."}
	speech := &stubTranscriber{transcript: "stub transcript", available: true}

	handler, err := NewHandler(database, testSecretKey, time.UTC, false, insight, speech)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return &testApp{app: app, insight: insight, speech: speech}
}

func (harness *testApp) request(t *testing.T, method string, path string, body any, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := harness.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
	return decoded
}

func decodeList(t *testing.T, response *http.Response) []map[string]any {
	t.Helper()
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	decoded := []map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
	return decoded
}

func authCookie(t *testing.T, response *http.Response) string {
	t.Helper()
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return fmt.Sprintf("%s=%s", cookie.Name, cookie.Value)
		}
	}
	t.Fatal("response carries no auth cookie")
	return ""
}

func (harness *testApp) signupUser(t *testing.T, email string) string {
	t.Helper()
	response := harness.request(t, fiber.MethodPost, "/api/auth/signup", map[string]any{
		"email":    email,
		"password": "Str0ngPass",
		"name":     "Test User",
		"age":      28,
	}, "")
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("signup status = %d", response.StatusCode)
	}
	return authCookie(t, response)
}

func apiErrorMessage(t *testing.T, response *http.Response) string {
	t.Helper()
	body := decodeBody(t, response)
	message, _ := body["error"].(string)
	if message == "" {
		t.Fatalf("response has no error message: %v", body)
	}
	return message
}

func entryBody(date string, mutate func(map[string]any)) map[string]any {
	body := map[string]any{"entry_date": date}
	if mutate != nil {
		mutate(body)
	}
	return body
}
