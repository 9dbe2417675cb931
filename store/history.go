// Package store wraps the persistence of translation runs behind the
// begin/complete interface used by the HTTP layer: a run row is inserted
// up front with a placeholder translated document, then finalized together
// with its per-key details when the pipeline returns.
package store

import (
	"context"

	"github.com/germannapsix/Json-translate-app/models"

	"gorm.io/gorm"
)

type History struct {
	db *gorm.DB
}

func NewHistory(db *gorm.DB) *History {
	return &History{db: db}
}

// RunResult carries everything Complete writes in one transaction.
type RunResult struct {
	TranslatedJSON string
	TotalKeys      int
	TranslatedKeys int
	FailedKeys     int // failed + skipped combined
	ProcessTimeMs  int64
	Details        []models.TranslationDetail
}

// Begin inserts the run row with an empty translated document and returns
// its id. History readers see the row as in-progress until Complete.
func (h *History) Begin(ctx context.Context, run *models.TranslationRun) (uint, error) {
	run.TranslatedJSON = ""
	if err := h.db.WithContext(ctx).Create(run).Error; err != nil {
		return 0, err
	}
	return run.ID, nil
}

// Complete finalizes the run and bulk-inserts its details. Details are
// written once and never updated afterwards.
func (h *History) Complete(ctx context.Context, id uint, res RunResult) error {
	return h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"translated_json": res.TranslatedJSON,
			"total_keys":      res.TotalKeys,
			"translated_keys": res.TranslatedKeys,
			"failed_keys":     res.FailedKeys,
			"process_time_ms": res.ProcessTimeMs,
		}
		if err := tx.Model(&models.TranslationRun{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if len(res.Details) == 0 {
			return nil
		}
		for i := range res.Details {
			res.Details[i].TranslationID = id
		}
		return tx.Create(&res.Details).Error
	})
}

// Summary is one row of the history listing; the serialized documents are
// omitted to keep the payload small.
type Summary struct {
	ID             uint   `json:"id"`
	CreatedAt      string `json:"created_at"`
	SessionID      string `json:"session_id"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
	TotalKeys      int    `json:"total_keys"`
	TranslatedKeys int    `json:"translated_keys"`
	FailedKeys     int    `json:"failed_keys"`
	ProcessTimeMs  int64  `json:"process_time_ms"`
}

// Recent returns the newest runs first, up to limit.
func (h *History) Recent(ctx context.Context, limit int) ([]Summary, error) {
	var runs []models.TranslationRun
	err := h.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(runs))
	for _, r := range runs {
		out = append(out, Summary{
			ID:             r.ID,
			CreatedAt:      r.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			SessionID:      r.SessionID,
			SourceLang:     r.SourceLang,
			TargetLang:     r.TargetLang,
			TotalKeys:      r.TotalKeys,
			TranslatedKeys: r.TranslatedKeys,
			FailedKeys:     r.FailedKeys,
			ProcessTimeMs:  r.ProcessTimeMs,
		})
	}
	return out, nil
}

// Get loads one run and its full detail list, ordered the way the leaves
// were extracted. Returns gorm.ErrRecordNotFound for unknown ids.
func (h *History) Get(ctx context.Context, id uint) (*models.TranslationRun, []models.TranslationDetail, error) {
	var run models.TranslationRun
	if err := h.db.WithContext(ctx).First(&run, id).Error; err != nil {
		return nil, nil, err
	}
	var details []models.TranslationDetail
	err := h.db.WithContext(ctx).
		Where("translation_id = ?", id).
		Order("id ASC").
		Find(&details).Error
	if err != nil {
		return nil, nil, err
	}
	return &run, details, nil
}
