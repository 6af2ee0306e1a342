package repository

import (
	"github.com/clauselens/contract-review-api/internal/database"
	"github.com/clauselens/contract-review-api/internal/models"
	"gorm.io/gorm"
)

// GormContractRepository is a GORM implementation of ContractRepository and
// SearchRepository.
type GormContractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new ContractRepository
func NewContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// Create creates a new contract
func (r *GormContractRepository) Create(contract *models.Contract) error {
	return r.db.Create(contract).Error
}

// ListByOwner lists a user's contracts, newest first
func (r *GormContractRepository) ListByOwner(userID uint64) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.Scopes(database.OwnedBy(userID)).
		Order("created_at DESC").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

// FindOwned finds a contract by ID within the user's scope. A contract
// owned by another user yields gorm.ErrRecordNotFound, same as a missing
// one.
func (r *GormContractRepository) FindOwned(userID, id uint64) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// UpdateFields applies a partial field update within the user's scope.
// An empty field set degrades to an existence check.
func (r *GormContractRepository) UpdateFields(userID, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		_, err := r.FindOwned(userID, id)
		return err
	}

	result := r.db.Model(&models.Contract{}).
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCascade deletes a contract and all of its annotations and summaries
// in one transaction. The contract row goes first so the owner check can
// abort before any child rows are touched.
func (r *GormContractRepository) DeleteCascade(userID, id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Scopes(database.OwnedBy(userID)).
			Where("id = ?", id).
			Delete(&models.Contract{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("contract_id = ?", id).Delete(&models.Annotation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contract_id = ?", id).Delete(&models.Summary{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// SetFileURL overwrites the contract's file reference
func (r *GormContractRepository) SetFileURL(userID, id uint64, url string) error {
	return r.UpdateFields(userID, id, map[string]interface{}{"file_url": url})
}

// SearchContracts runs Postgres full-text search over the user's contracts.
// ts_headline produces the highlighted snippet; ranking and snippet
// extraction are entirely database-side.
func (r *GormContractRepository) SearchContracts(userID uint64, query string, limit int) ([]SearchResult, error) {
	var results []SearchResult
	err := r.db.Raw(`
		SELECT id,
		       title,
		       ts_headline('english', text, plainto_tsquery('english', ?)) AS snippet
		FROM contracts
		WHERE user_id = ?
		  AND deleted_at IS NULL
		  AND tsv @@ plainto_tsquery('english', ?)
		ORDER BY ts_rank(tsv, plainto_tsquery('english', ?)) DESC
		LIMIT ?`,
		query, userID, query, query, limit,
	).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
