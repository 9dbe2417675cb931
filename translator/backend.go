package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Backend translates a single piece of text. Implementations return an
// error on failure; the batch layer decides how a failed call surfaces
// (the text falls back to the original and the leaf is marked failed).
type Backend interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// DefaultMaxTextLength bounds the size of a single request. Longer input
// is truncated with a trailing ellipsis before submission; this is a lossy
// cost-bounding policy, not an error.
const DefaultMaxTextLength = 1000

// OpenAIBackend calls an OpenAI-compatible chat-completions endpoint and
// asks the model to reply with a strict JSON object carrying the
// translation (and the detected language when sourceLang is "auto").
type OpenAIBackend struct {
	BaseURL       string
	APIKey        string
	Model         string
	MaxTextLength int
	Client        *http.Client
}

func NewOpenAIBackend(baseURL, apiKey, model string) *OpenAIBackend {
	return &OpenAIBackend{
		BaseURL:       baseURL,
		APIKey:        apiKey,
		Model:         model,
		MaxTextLength: DefaultMaxTextLength,
		Client:        &http.Client{Timeout: 20 * time.Second},
	}
}

type aiRequest struct {
	Model    string      `json:"model"`
	Messages []aiMessage `json:"messages"`
	Stream   bool        `json:"stream"`
}

type aiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type aiResponse struct {
	Choices []struct {
		Message aiMessage `json:"message"`
	} `json:"choices"`
}

func (b *OpenAIBackend) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if b.APIKey == "" {
		return "", fmt.Errorf("no api key provided")
	}
	text = b.truncate(text)

	automode := strings.ToLower(strings.TrimSpace(sourceLang)) == "auto"
	var prompt string
	if automode {
		prompt = fmt.Sprintf(`Please detect the source language of the text and translate it to %s.
Return ONLY a single JSON object and nothing else, in this exact shape:
{"detected_language":"<language_code>","translation":"<translated_text>"}
Do NOT add any commentary, labels, or extra text. Preserve original formatting inside "translation". Here is the text to translate:%s`,
			targetLang, text)
	} else {
		prompt = fmt.Sprintf(`Translate the following text from %s to %s.
Return ONLY a single JSON object and nothing else, in this exact shape:
{"translation":"<translated_text>"}
Do NOT add any commentary, labels, or extra text. Preserve original formatting inside "translation". Here is the text to translate:%s`,
			sourceLang, targetLang, text)
	}

	reqBody, err := json.Marshal(aiRequest{
		Model: b.Model,
		Messages: []aiMessage{
			{Role: "system", Content: "You are a professional translator. Translate the given text accurately while preserving the original meaning and tone."},
			{Role: "user", Content: prompt},
		},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	reqURL := strings.TrimRight(b.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+b.APIKey)

	client := b.Client
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("translation request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var aiResp aiResponse
	if err := json.Unmarshal(body, &aiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(aiResp.Choices) == 0 {
		return "", fmt.Errorf("no translation result returned")
	}

	content := strings.TrimSpace(aiResp.Choices[0].Message.Content)
	var parsed struct {
		DetectedLanguage string `json:"detected_language,omitempty"`
		Translation      string `json:"translation"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return "", fmt.Errorf("parse translation json: %w", err)
	}
	if parsed.Translation == "" {
		return "", fmt.Errorf("empty translation in response")
	}
	return parsed.Translation, nil
}

func (b *OpenAIBackend) truncate(text string) string {
	max := b.MaxTextLength
	if max <= 0 {
		max = DefaultMaxTextLength
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
