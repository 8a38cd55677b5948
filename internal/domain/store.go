package domain

import (
	"time"

	"github.com/google/uuid"
)

// Keys of the per-profile persistent store.
const (
	KeyDiaryEntries         = "diaryEntries"
	KeyLastAssessmentResult = "lastAssessmentResult"
	KeyTherapyProgress      = "therapyProgress"
)

// StoreEntry is one JSON value in a profile's key-value store. A put
// always replaces the whole value.
type StoreEntry struct {
	ProfileID uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Key       string    `gorm:"column:store_key;type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (StoreEntry) TableName() string {
	return "store_entries"
}
