package models

import (
	"gorm.io/gorm"
)

// Per-leaf statuses stored in translation_details.status.
const (
	DetailStatusSuccess = "success"
	DetailStatusFailed  = "failed"
	DetailStatusSkipped = "skipped"
)

// TranslationDetail is the outcome of one extracted string leaf. Exactly
// one row exists per leaf of the run it belongs to; rows are immutable
// once written.
type TranslationDetail struct {
	gorm.Model
	Translation    *TranslationRun `json:"-" gorm:"foreignKey:TranslationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TranslationID  uint            `json:"translation_id" gorm:"not null;index"`
	KeyPath        string          `json:"key_path" gorm:"size:255;not null"`
	OriginalText   string          `json:"original_text" gorm:"type:text;not null"`
	TranslatedText *string         `json:"translated_text" gorm:"type:text"`
	Status         string          `json:"status" gorm:"size:10;not null"` // success, failed, skipped
	ErrorMessage   string          `json:"error_message,omitempty" gorm:"size:500"`
	ProcessTimeMs  int64           `json:"process_time_ms" gorm:"not null;default:0"`
}

// TableName 指定表名
func (TranslationDetail) TableName() string {
	return "translation_details"
}
