package models

import (
	"time"

	"gorm.io/gorm"
)

// Contract is the primary document entity. The tsv full-text column lives
// only in the Postgres schema (added by a raw migration) so the struct
// stays portable across drivers.
type Contract struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	Text      string         `gorm:"type:text" json:"text"`
	Status    string         `gorm:"type:varchar(50);not null;default:'draft'" json:"status"`
	FileURL   *string        `gorm:"type:text" json:"fileUrl"`
	UserID    uint64         `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User        User         `gorm:"foreignKey:UserID" json:"-"`
	Annotations []Annotation `gorm:"foreignKey:ContractID" json:"annotations,omitempty"`
	Summaries   []Summary    `gorm:"foreignKey:ContractID" json:"summaries,omitempty"`
}
