package models

import (
	"time"

	"gorm.io/gorm"
)

// Summary stores an AI-generated condensation of a clause together with the
// original text. Records are immutable once created.
type Summary struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	ContractID   uint64         `gorm:"not null;index" json:"contractId"`
	UserID       uint64         `gorm:"not null;index" json:"userId"`
	OriginalText string         `gorm:"type:text;not null" json:"originalText"`
	SummaryText  string         `gorm:"type:text;not null" json:"summaryText"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Contract Contract `gorm:"foreignKey:ContractID" json:"-"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
}
