package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/internal/utils"
)

// TextGenerator is the capability the reel-meta service depends on. The
// concrete provider is swappable, so handlers can be tested with a fake.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiGenerator() TextGenerator {
	return &geminiGenerator{
		apiKey:     utils.GetConfig("GEMINI_API_KEY"),
		model:      utils.GetConfig("GEMINI_MODEL"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateText issues a single generateContent call. No retry and no
// streaming; failures surface directly to the caller.
func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not configured")
	}
	if g.model == "" {
		return "", fmt.Errorf("GEMINI_MODEL not configured")
	}

	geminiURL := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model, g.apiKey,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiProcessingFailed
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
