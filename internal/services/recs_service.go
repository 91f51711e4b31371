package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tripplanner/internal/utils"
)

// FallbackTips is returned whenever the recommendation endpoint is not
// configured, unreachable, or answers garbage. The itinerary never depends
// on it.
const FallbackTips = "recommendations unavailable"

const recsTimeout = 20 * time.Second

// RecsService asks an OpenAI-compatible chat endpoint for short local tips
// about one city.
type RecsService struct {
	BaseURL   string
	APIKey    string
	Model     string
	Client    *http.Client
	RequestID string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// CityTips returns local tips for a city, or FallbackTips on any failure.
func (s RecsService) CityTips(ctx context.Context, city string, interests []string) string {
	tips, err := s.fetchTips(ctx, city, interests)
	if err != nil {
		utils.LogEvent(s.RequestID, "recs", "fallback", fmt.Sprintf("city=%s err=%v", city, err))
		return FallbackTips
	}
	return tips
}

func (s RecsService) fetchTips(ctx context.Context, city string, interests []string) (string, error) {
	url := strings.TrimSpace(s.BaseURL)
	if url == "" {
		return "", fmt.Errorf("recommendations endpoint not configured")
	}

	prompt := fmt.Sprintf(
		"Give three short practical local tips for a traveler spending a day in %s.",
		utils.TitleCity(city),
	)
	if len(interests) > 0 {
		prompt += fmt.Sprintf(" They are mostly interested in %s.", utils.NormalizeSpace(strings.Join(interests, ", ")))
	}

	body, err := json.Marshal(chatRequest{
		Model: s.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a concise local travel guide. Answer in plain text."},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, recsTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if key := strings.TrimSpace(s.APIKey); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := s.client().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("recommendations endpoint returned %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}

	tips := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if tips == "" {
		return "", fmt.Errorf("blank completion")
	}
	return tips, nil
}

func (s RecsService) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{Timeout: recsTimeout}
}
