package models

import (
	"time"

	"gorm.io/gorm"
)

// Annotation anchors a user comment to a character-offset range in a
// contract's text. Offsets are stored as given; no ordering or bounds
// checks are applied.
type Annotation struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	ContractID  uint64         `gorm:"not null;index" json:"contractId"`
	UserID      uint64         `gorm:"not null;index" json:"userId"`
	StartOffset int            `gorm:"not null" json:"startOffset"`
	EndOffset   int            `gorm:"not null" json:"endOffset"`
	Comment     string         `gorm:"type:text" json:"comment"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Contract Contract `gorm:"foreignKey:ContractID" json:"-"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
}
