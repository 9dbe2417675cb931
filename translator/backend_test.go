package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// completionReply builds the chat-completions body the backend expects,
// with content as the single choice's message text.
func completionReply(t *testing.T, content string) string {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	if err != nil {
		t.Fatalf("marshal reply: %v", err)
	}
	return string(body)
}

func serveCompletions(t *testing.T, status int, body string, captured *aiRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("request path = %s, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want the bearer key", got)
		}
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("decode request body: %v", err)
			}
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func newTestBackend(url string) *OpenAIBackend {
	b := NewOpenAIBackend(url, "test-key", "test-model")
	return b
}

func TestOpenAIBackend_Translate(t *testing.T) {
	var req aiRequest
	srv := serveCompletions(t, http.StatusOK, completionReply(t, `{"translation":"Hola"}`), &req)
	defer srv.Close()

	got, err := newTestBackend(srv.URL).Translate(context.Background(), "Hello", "en", "es")
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if got != "Hola" {
		t.Errorf("translation = %q, want Hola", got)
	}

	if req.Model != "test-model" {
		t.Errorf("model = %q, want test-model", req.Model)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Fatalf("messages = %+v, want system then user", req.Messages)
	}
	user := req.Messages[1].Content
	if !strings.Contains(user, "from en to es") {
		t.Errorf("prompt %q does not name the language pair", user)
	}
	if strings.Contains(user, "detected_language") {
		t.Errorf("non-auto prompt should not ask for language detection: %q", user)
	}
	if !strings.Contains(user, "Hello") {
		t.Errorf("prompt does not carry the text: %q", user)
	}
}

func TestOpenAIBackend_AutoModePrompt(t *testing.T) {
	var req aiRequest
	srv := serveCompletions(t, http.StatusOK,
		completionReply(t, `{"detected_language":"ja","translation":"Hello"}`), &req)
	defer srv.Close()

	got, err := newTestBackend(srv.URL).Translate(context.Background(), "こんにちは", "auto", "en")
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if got != "Hello" {
		t.Errorf("translation = %q, want Hello", got)
	}
	user := req.Messages[1].Content
	if !strings.Contains(user, "detect the source language") {
		t.Errorf("auto prompt missing the detection instruction: %q", user)
	}
	if !strings.Contains(user, "detected_language") {
		t.Errorf("auto prompt missing the detected_language shape: %q", user)
	}
}

func TestOpenAIBackend_TruncatesLongText(t *testing.T) {
	var req aiRequest
	srv := serveCompletions(t, http.StatusOK, completionReply(t, `{"translation":"ok"}`), &req)
	defer srv.Close()

	b := newTestBackend(srv.URL)
	b.MaxTextLength = 10

	// Multibyte runes: truncation must cut on rune boundaries.
	long := strings.Repeat("あ", 25)
	if _, err := b.Translate(context.Background(), long, "ja", "en"); err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	user := req.Messages[1].Content
	want := strings.Repeat("あ", 10) + "..."
	if !strings.Contains(user, want) {
		t.Errorf("prompt does not carry the truncated text %q", want)
	}
	if strings.Contains(user, strings.Repeat("あ", 11)) {
		t.Errorf("prompt carries more than %d runes of the input", 10)
	}

	// At the limit, the text passes through untouched.
	exact := strings.Repeat("x", 10)
	if _, err := b.Translate(context.Background(), exact, "en", "es"); err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if got := req.Messages[1].Content; !strings.Contains(got, exact) || strings.Contains(got, exact+"...") {
		t.Errorf("text at the limit was truncated: %q", got)
	}
}

func TestOpenAIBackend_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		content   string // reply content; empty means send rawBody instead
		rawBody   string
		wantInErr string
	}{
		{
			name:      "non-200 status",
			status:    http.StatusTooManyRequests,
			rawBody:   `{"error":{"message":"rate limit exceeded"}}`,
			wantInErr: "429",
		},
		{
			name:      "empty choices",
			status:    http.StatusOK,
			rawBody:   `{"choices":[]}`,
			wantInErr: "no translation result",
		},
		{
			name:      "content is not JSON",
			status:    http.StatusOK,
			content:   "Hola, sin JSON",
			wantInErr: "parse translation json",
		},
		{
			name:      "empty translation field",
			status:    http.StatusOK,
			content:   `{"translation":""}`,
			wantInErr: "empty translation",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.rawBody
			if tt.content != "" {
				body = completionReply(t, tt.content)
			}
			srv := serveCompletions(t, tt.status, body, nil)
			defer srv.Close()

			_, err := newTestBackend(srv.URL).Translate(context.Background(), "Hello", "en", "es")
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantInErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantInErr)
			}
		})
	}
}

func TestOpenAIBackend_MissingAPIKey(t *testing.T) {
	srv := serveCompletions(t, http.StatusOK, completionReply(t, `{"translation":"x"}`), nil)
	defer srv.Close()

	b := newTestBackend(srv.URL)
	b.APIKey = ""
	if _, err := b.Translate(context.Background(), "Hello", "en", "es"); err == nil {
		t.Fatal("want error without an api key")
	}
}
