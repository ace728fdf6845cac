package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const defaultRequestTimeout = 60 * time.Second
const defaultModelID = "scribe_v1"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	modelID    string
}

func NewClient(baseURL string, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		modelID:    defaultModelID,
	}
}

// Transcribe converts recorded audio to text. The second return value
// reports whether a transcript is available: empty input, a timeout,
// a non-2xx response, and a blank transcript all yield false. Callers
// treat false as a retryable condition, never a crash.
func (client *Client) Transcribe(ctx context.Context, audio []byte) (string, bool) {
	if len(audio) == 0 {
		return "", false
	}

	transcript, err := client.convert(ctx, audio)
	if err != nil {
		log.Printf("transcription failed: %v", err)
		return "", false
	}
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return "", false
	}
	return transcript, true
}

func (client *Client) convert(ctx context.Context, audio []byte) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	filePart, err := writer.CreateFormFile("file", "memo.webm")
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := filePart.Write(audio); err != nil {
		return "", fmt.Errorf("write audio data: %w", err)
	}
	if err := writer.WriteField("model_id", client.modelID); err != nil {
		return "", fmt.Errorf("write model field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	endpoint := client.baseURL + "/v1/speech-to-text"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("xi-api-key", client.apiKey)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error (status %d)", response.StatusCode)
	}

	parsed := struct {
		Text string `json:"text"`
	}{}
	if err := json.Unmarshal(responseBody, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	return parsed.Text, nil
}
