package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSignupCreatesAccountAndSession(t *testing.T) {
	harness := newTestApp(t)

	response := harness.request(t, fiber.MethodPost, "/api/auth/signup", map[string]any{
		"email":    "ana@example.com",
		"password": "Str0ngPass",
		"name":     "Ana",
		"age":      31,
	}, "")

	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d", response.StatusCode)
	}
	cookie := authCookie(t, response)
	body := decodeBody(t, response)
	if body["success"] != true {
		t.Fatalf("body = %v", body)
	}

	me := decodeBody(t, harness.request(t, fiber.MethodGet, "/api/auth/me", nil, cookie))
	user, ok := me["user"].(map[string]any)
	if !ok {
		t.Fatalf("me body = %v", me)
	}
	if user["email"] != "ana@example.com" || user["name"] != "Ana" {
		t.Fatalf("user = %v", user)
	}
}

func TestSignupRejectsWeakPassword(t *testing.T) {
	harness := newTestApp(t)

	for _, password := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		response := harness.request(t, fiber.MethodPost, "/api/auth/signup", map[string]any{
			"email":    "ana@example.com",
			"password": password,
			"name":     "Ana",
			"age":      31,
		}, "")
		if response.StatusCode != fiber.StatusBadRequest {
			t.Errorf("password %q: status = %d", password, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestSignupRejectsInvalidInput(t *testing.T) {
	harness := newTestApp(t)

	cases := []map[string]any{
		{"email": "not-an-email", "password": "Str0ngPass", "name": "Ana", "age": 31},
		{"email": "", "password": "Str0ngPass", "name": "Ana", "age": 31},
		{"email": "ana@example.com", "password": "Str0ngPass", "name": "", "age": 31},
		{"email": "ana@example.com", "password": "Str0ngPass", "name": "Ana", "age": -1},
		{"email": "ana@example.com", "password": "Str0ngPass", "name": "Ana", "age": 121},
	}
	for index, payload := range cases {
		response := harness.request(t, fiber.MethodPost, "/api/auth/signup", payload, "")
		if response.StatusCode != fiber.StatusBadRequest {
			t.Errorf("case %d: status = %d", index, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	harness := newTestApp(t)
	harness.signupUser(t, "ana@example.com")

	response := harness.request(t, fiber.MethodPost, "/api/auth/signup", map[string]any{
		"email":    "Ana@Example.com",
		"password": "Str0ngPass",
		"name":     "Ana Again",
		"age":      31,
	}, "")
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d", response.StatusCode)
	}
	if message := apiErrorMessage(t, response); message != "email already exists" {
		t.Fatalf("error = %q", message)
	}
}

func TestLoginWithValidCredentials(t *testing.T) {
	harness := newTestApp(t)
	harness.signupUser(t, "ana@example.com")

	response := harness.request(t, fiber.MethodPost, "/api/auth/login", map[string]any{
		"email":    "ana@example.com",
		"password": "Str0ngPass",
	}, "")

	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", response.StatusCode)
	}
	cookie := authCookie(t, response)
	if cookie == "" {
		t.Fatal("login set no session cookie")
	}
	body := decodeBody(t, response)
	user, ok := body["user"].(map[string]any)
	if !ok || user["email"] != "ana@example.com" {
		t.Fatalf("body = %v", body)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	harness := newTestApp(t)
	harness.signupUser(t, "ana@example.com")

	cases := []map[string]any{
		{"email": "ana@example.com", "password": "WrongPass1"},
		{"email": "nobody@example.com", "password": "Str0ngPass"},
	}
	for index, payload := range cases {
		response := harness.request(t, fiber.MethodPost, "/api/auth/login", payload, "")
		if response.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("case %d: status = %d", index, response.StatusCode)
		}
		if message := apiErrorMessage(t, response); message != "invalid credentials" {
			t.Errorf("case %d: error = %q", index, message)
		}
	}
}

func TestMeWithoutSession(t *testing.T) {
	harness := newTestApp(t)

	response := harness.request(t, fiber.MethodGet, "/api/auth/me", nil, "")
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", response.StatusCode)
	}
	body := decodeBody(t, response)
	if body["user"] != nil {
		t.Fatalf("body = %v", body)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	harness := newTestApp(t)
	cookie := harness.signupUser(t, "ana@example.com")

	response := harness.request(t, fiber.MethodPost, "/api/auth/logout", nil, cookie)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", response.StatusCode)
	}

	cleared := false
	for _, setCookie := range response.Cookies() {
		if setCookie.Name == authCookieName && setCookie.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("logout did not clear the auth cookie")
	}
}

func TestAuthRequiredRejectsTamperedToken(t *testing.T) {
	harness := newTestApp(t)
	cookie := harness.signupUser(t, "ana@example.com")

	tampered := cookie[:len(cookie)-2] + "xx"
	response := harness.request(t, fiber.MethodGet, "/api/entries", nil, tampered)
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d", response.StatusCode)
	}
}
