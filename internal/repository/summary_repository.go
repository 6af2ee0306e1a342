package repository

import (
	"github.com/clauselens/contract-review-api/internal/database"
	"github.com/clauselens/contract-review-api/internal/models"
	"gorm.io/gorm"
)

// GormSummaryRepository is a GORM implementation of SummaryRepository
type GormSummaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new SummaryRepository
func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &GormSummaryRepository{db: db}
}

// Create creates a new summary
func (r *GormSummaryRepository) Create(summary *models.Summary) error {
	return r.db.Create(summary).Error
}

// ListByContract lists a contract's summaries, newest first
func (r *GormSummaryRepository) ListByContract(userID, contractID uint64) ([]models.Summary, error) {
	var summaries []models.Summary
	err := r.db.Scopes(database.OwnedBy(userID)).
		Where("contract_id = ?", contractID).
		Order("created_at DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// DeleteOwned deletes an owned summary
func (r *GormSummaryRepository) DeleteOwned(userID, contractID, id uint64) error {
	result := r.db.Scopes(database.OwnedBy(userID)).
		Where("id = ? AND contract_id = ?", id, contractID).
		Delete(&models.Summary{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
