package repository

import (
	"github.com/clauselens/contract-review-api/internal/database"
	"github.com/clauselens/contract-review-api/internal/models"
	"gorm.io/gorm"
)

// GormAnnotationRepository is a GORM implementation of AnnotationRepository
type GormAnnotationRepository struct {
	db *gorm.DB
}

// NewAnnotationRepository creates a new AnnotationRepository
func NewAnnotationRepository(db *gorm.DB) AnnotationRepository {
	return &GormAnnotationRepository{db: db}
}

// Create creates a new annotation
func (r *GormAnnotationRepository) Create(annotation *models.Annotation) error {
	return r.db.Create(annotation).Error
}

// ListByContract lists a contract's annotations, oldest first, so they read
// in the order they were made.
func (r *GormAnnotationRepository) ListByContract(userID, contractID uint64) ([]models.Annotation, error) {
	var annotations []models.Annotation
	err := r.db.Scopes(database.OwnedBy(userID)).
		Where("contract_id = ?", contractID).
		Order("created_at ASC").
		Find(&annotations).Error
	if err != nil {
		return nil, err
	}
	return annotations, nil
}

// UpdateOwned replaces the offsets and comment of an owned annotation.
// A zero-row update means the annotation is missing or not the caller's.
func (r *GormAnnotationRepository) UpdateOwned(userID, contractID, id uint64, startOffset, endOffset int, comment string) error {
	result := r.db.Model(&models.Annotation{}).
		Scopes(database.OwnedBy(userID)).
		Where("id = ? AND contract_id = ?", id, contractID).
		Updates(map[string]interface{}{
			"start_offset": startOffset,
			"end_offset":   endOffset,
			"comment":      comment,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned deletes an owned annotation
func (r *GormAnnotationRepository) DeleteOwned(userID, contractID, id uint64) error {
	result := r.db.Scopes(database.OwnedBy(userID)).
		Where("id = ? AND contract_id = ?", id, contractID).
		Delete(&models.Annotation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
