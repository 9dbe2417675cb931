package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/germannapsix/Json-translate-app/config"
	"github.com/germannapsix/Json-translate-app/global"
	"github.com/germannapsix/Json-translate-app/jsontree"
	"github.com/germannapsix/Json-translate-app/log"
	"github.com/germannapsix/Json-translate-app/models"
	"github.com/germannapsix/Json-translate-app/store"
	"github.com/germannapsix/Json-translate-app/translator"
	"github.com/germannapsix/Json-translate-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TranslateJSONRequest is the POST /translate body. JSONData accepts either
// a JSON object directly or a string containing serialized JSON.
type TranslateJSONRequest struct {
	JSONData   json.RawMessage `json:"jsonData" binding:"required"`
	SourceLang string          `json:"sourceLang"`
	TargetLang string          `json:"targetLang" binding:"required"`
}

// TranslateJSONResponse mirrors what the browser UI consumes.
type TranslateJSONResponse struct {
	Success        bool                `json:"success"`
	TranslationID  uint                `json:"translationId"`
	SessionID      string              `json:"sessionId"`
	TranslatedJSON json.RawMessage     `json:"translatedJson"`
	Statistics     translator.Stats    `json:"statistics"`
	Details        []translator.Detail `json:"details"`
	Warning        string              `json:"warning,omitempty"`
}

var (
	// Concurrency budget for simultaneous translation runs.
	translationSemaphore = make(chan struct{}, 100)
	historyLimit         = 50
)

// decodeDocument accepts both forms of jsonData and parses it into the
// ordered tree, returning the canonical serialized original alongside.
func decodeDocument(raw json.RawMessage) (*jsontree.Node, string, error) {
	data := []byte(strings.TrimSpace(string(raw)))
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, "", err
		}
		data = []byte(inner)
	}
	root, err := jsontree.Parse(data)
	if err != nil {
		return nil, "", err
	}
	return root, string(data), nil
}

func sessionID(c *gin.Context) string {
	if id, err := c.Cookie(utils.SessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	utils.SetSessionCookie(c, id)
	return id
}

func looksRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests") ||
		strings.Contains(msg, "429")
}

// TranslateJSON godoc
// @Summary     Translate a JSON document key by key
// @Description Walks the document, translates every string leaf through the configured backend and returns the rebuilt document with per-key details
// @Tags        Translation
// @Accept      json
// @Produce     json
// @Param       request  body      TranslateJSONRequest   true  "document and language pair"
// @Success     200      {object}  TranslateJSONResponse
// @Failure     400      {object}  map[string]string  "missing fields, invalid JSON or over the key cap"
// @Failure     408      {object}  map[string]string  "run exceeded its deadline"
// @Failure     429      {object}  map[string]string  "service busy or backend rate limited"
// @Failure     500      {object}  map[string]string  "backend failure"
// @Router      /translate [post]
func TranslateJSON(c *gin.Context) {
	select {
	case translationSemaphore <- struct{}{}:
		defer func() { <-translationSemaphore }()
	case <-c.Request.Context().Done():
		c.JSON(http.StatusRequestTimeout, gin.H{"message": "client canceled"})
		return
	case <-time.After(300 * time.Millisecond):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"message":    "The server is busy, try later",
			"suggestion": "Wait a moment and retry",
		})
		return
	}

	var req TranslateJSONRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	req.SourceLang = strings.TrimSpace(req.SourceLang)
	req.TargetLang = strings.TrimSpace(req.TargetLang)
	if req.SourceLang == "" {
		req.SourceLang = "auto"
	}

	root, original, err := decodeDocument(req.JSONData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON data: " + err.Error()})
		return
	}

	session := sessionID(c)
	history := store.NewHistory(global.DB)

	run := &models.TranslationRun{
		SessionID:    session,
		SourceLang:   req.SourceLang,
		TargetLang:   req.TargetLang,
		OriginalJSON: original,
	}
	if userID := c.GetUint("user_id"); userID != 0 {
		run.UserID = &userID
	}
	runID, err := history.Begin(c.Request.Context(), run)
	if err != nil {
		log.L().Error("begin translation run error:", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record translation run"})
		return
	}

	cfg := config.AppConfig
	backend := translator.NewOpenAIBackend(cfg.Translation_Api.BaseURL, cfg.Translation_Api.ApiKey, cfg.Translation_Api.Model)
	backend.MaxTextLength = cfg.Pipeline.MaxTextLength

	pipe := translator.NewPipeline(backend, translator.Limits{
		MaxKeys:      cfg.Pipeline.MaxKeys,
		MaxTranslate: cfg.Pipeline.MaxTranslateKey,
		BatchSize:    cfg.Pipeline.BatchSize,
		BatchDelay:   config.BatchDelay(),
		Timeout:      config.RunTimeout(),
	})
	pipe.Progress = func(done, total int) {
		progressHub.Publish(session, ProgressEvent{Done: done, Total: total})
	}

	res, err := pipe.Run(c.Request.Context(), root, req.SourceLang, req.TargetLang)
	if err != nil {
		status := http.StatusInternalServerError
		suggestion := ""
		var sizeErr *translator.SizeLimitError
		var timeoutErr *translator.TimeoutError
		switch {
		case errors.As(err, &sizeErr):
			status = http.StatusBadRequest
			suggestion = "Reduce the number of strings in the JSON document"
		case errors.As(err, &timeoutErr):
			status = http.StatusRequestTimeout
			suggestion = "Try a smaller document"
		case looksRateLimited(err):
			status = http.StatusTooManyRequests
			suggestion = "Wait a moment and retry"
		}
		log.L().Error("translation run failed:",
			zap.Uint("translation_id", runID),
			zap.Int("status", status),
			zap.Error(err))
		body := gin.H{"message": err.Error()}
		if suggestion != "" {
			body["suggestion"] = suggestion
		}
		c.JSON(status, body)
		return
	}

	translated, err := res.Root.MarshalJSON()
	if err != nil {
		log.L().Error("marshal translated document error:", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to serialize translated document"})
		return
	}

	details := make([]models.TranslationDetail, 0, len(res.Details))
	for _, d := range res.Details {
		details = append(details, models.TranslationDetail{
			KeyPath:        d.Path,
			OriginalText:   d.OriginalText,
			TranslatedText: d.TranslatedText,
			Status:         d.Status,
			ErrorMessage:   d.ErrorMessage,
			ProcessTimeMs:  d.ElapsedMs,
		})
	}
	// Persist with a short deadline so a slow database cannot stall the
	// response long after the translation itself finished.
	dbctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	err = history.Complete(dbctx, runID, store.RunResult{
		TranslatedJSON: string(translated),
		TotalKeys:      res.Stats.TotalKeys,
		TranslatedKeys: res.Stats.TranslatedKeys,
		FailedKeys:     res.Stats.FailedKeys + res.Stats.SkippedKeys,
		ProcessTimeMs:  res.Stats.TotalTimeMs,
		Details:        details,
	})
	if err != nil {
		// The translation succeeded; log and keep going.
		log.L().Error("complete translation run error:", zap.Error(err))
	} else {
		delCache(config.CacheKeyRecentRuns)
		log.L().Info("translation run stored",
			zap.Uint("translation_id", runID),
			zap.String("session_id", session),
			zap.String("source_lang", req.SourceLang),
			zap.String("target_lang", req.TargetLang),
			zap.Int("total_keys", res.Stats.TotalKeys))
	}

	c.JSON(http.StatusOK, TranslateJSONResponse{
		Success:        true,
		TranslationID:  runID,
		SessionID:      session,
		TranslatedJSON: translated,
		Statistics:     res.Stats,
		Details:        res.Details,
		Warning:        res.Warning,
	})
}
