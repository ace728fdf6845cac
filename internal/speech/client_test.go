package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranscribeEmptyInput(t *testing.T) {
	client := NewClient("http://localhost:1", "test-key")
	if _, ok := client.Transcribe(context.Background(), nil); ok {
		t.Fatal("expected no transcript for empty audio")
	}
}

func TestTranscribeReturnsText(t *testing.T) {
	var gotKey string
	var gotModelID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/speech-to-text" {
			t.Errorf("request path = %q", r.URL.Path)
		}
		gotKey = r.Header.Get("xi-api-key")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart form: %v", err)
		}
		gotModelID = r.FormValue("model_id")
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Errorf("read audio part: %v", err)
		} else {
			file.Close()
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"felt dizzy this morning"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	transcript, ok := client.Transcribe(context.Background(), []byte("webm-bytes"))
	if !ok {
		t.Fatal("expected a transcript")
	}
	if transcript != "felt dizzy this morning" {
		t.Fatalf("transcript = %q", transcript)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key header = %q", gotKey)
	}
	if gotModelID != "scribe_v1" {
		t.Fatalf("model_id = %q", gotModelID)
	}
}

func TestTranscribeTrimsWhitespace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text":"  short memo \n"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	transcript, ok := client.Transcribe(context.Background(), []byte("webm-bytes"))
	if !ok || transcript != "short memo" {
		t.Fatalf("transcript = %q, ok = %v", transcript, ok)
	}
}

func TestTranscribeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "wrong-key")
	if _, ok := client.Transcribe(context.Background(), []byte("webm-bytes")); ok {
		t.Fatal("expected failure on API error")
	}
}

func TestTranscribeBlankTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text":"   "}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	if _, ok := client.Transcribe(context.Background(), []byte("webm-bytes")); ok {
		t.Fatal("expected failure on blank transcript")
	}
}

func TestTranscribeUnreachableService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-key")
	if _, ok := client.Transcribe(context.Background(), []byte("webm-bytes")); ok {
		t.Fatal("expected failure when service is unreachable")
	}
}
