package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/solhaven/sana/internal/models"
)

// FallbackNarrative replaces the remote analysis whenever the
// generative-language service cannot be reached. Insight generation is
// best effort and must never fail the insights response.
const FallbackNarrative = "Unable to generate insights at this moment. Please try again later."

const defaultRequestTimeout = 60 * time.Second

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(baseURL string, apiKey string, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeneratePatternAnalysis asks the remote model for a narrative over
// the entry history. Every failure path degrades to FallbackNarrative.
func (client *Client) GeneratePatternAnalysis(ctx context.Context, entries []models.JournalEntry) string {
	prompt := BuildPatternPrompt(entries)

	text, err := client.generateContent(ctx, prompt)
	if err != nil {
		log.Printf("insight generation failed: %v", err)
		return FallbackNarrative
	}
	if strings.TrimSpace(text) == "" {
		log.Printf("insight generation returned empty analysis")
		return FallbackNarrative
	}
	return text
}

func (client *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	payload := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", client.baseURL, client.model)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-goog-api-key", client.apiKey)

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

	parsed := generateContentResponse{}
	if err := json.Unmarshal(responseBody, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
