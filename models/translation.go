package models

import (
	"gorm.io/gorm"
)

// TranslationRun is one end-to-end translate-and-reconstruct invocation.
// The row is inserted at the start of a run with an empty TranslatedJSON
// and updated once when the pipeline completes, so the history view can
// show in-progress runs.
type TranslationRun struct {
	gorm.Model
	SessionID      string `json:"session_id" gorm:"size:64;not null;index"`
	User           *Users `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	UserID         *uint  `json:"user_id,omitempty" gorm:"index"`
	SourceLang     string `json:"source_lang" gorm:"size:10;not null"`
	TargetLang     string `json:"target_lang" gorm:"size:10;not null"`
	OriginalJSON   string `json:"original_json" gorm:"type:text;not null"`
	TranslatedJSON string `json:"translated_json" gorm:"type:text;not null"`
	TotalKeys      int    `json:"total_keys" gorm:"not null;default:0"`
	TranslatedKeys int    `json:"translated_keys" gorm:"not null;default:0"`
	// FailedKeys counts failed and skipped leaves combined.
	FailedKeys    int   `json:"failed_keys" gorm:"not null;default:0"`
	ProcessTimeMs int64 `json:"process_time_ms" gorm:"not null;default:0"`
}

// TableName 指定表名
func (TranslationRun) TableName() string {
	return "translations"
}
