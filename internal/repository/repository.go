package repository

import (
	"github.com/clauselens/contract-review-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// ContractRepository defines the interface for contract data access.
// Every method is scoped to an owning user; a row that exists but belongs
// to someone else behaves exactly like a missing row.
type ContractRepository interface {
	// Create creates a new contract
	Create(contract *models.Contract) error

	// ListByOwner lists a user's contracts, newest first
	ListByOwner(userID uint64) ([]models.Contract, error)

	// FindOwned finds a contract by ID within the user's scope
	FindOwned(userID, id uint64) (*models.Contract, error)

	// UpdateFields applies a partial field update within the user's scope
	UpdateFields(userID, id uint64, fields map[string]interface{}) error

	// DeleteCascade deletes a contract together with its annotations and
	// summaries in a single transaction
	DeleteCascade(userID, id uint64) error

	// SetFileURL overwrites the contract's file reference
	SetFileURL(userID, id uint64, url string) error
}

// SearchResult is one ranked full-text search hit. Snippet may contain
// highlight markup emitted by the database.
type SearchResult struct {
	ID      uint64 `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// SearchRepository defines the full-text search capability over a user's
// contracts.
type SearchRepository interface {
	// SearchContracts returns up to limit hits ordered by descending rank
	SearchContracts(userID uint64, query string, limit int) ([]SearchResult, error)
}

// AnnotationRepository defines the interface for annotation data access,
// scoped by both owner and parent contract.
type AnnotationRepository interface {
	// Create creates a new annotation
	Create(annotation *models.Annotation) error

	// ListByContract lists a contract's annotations, oldest first
	ListByContract(userID, contractID uint64) ([]models.Annotation, error)

	// UpdateOwned replaces the offsets and comment of an owned annotation
	UpdateOwned(userID, contractID, id uint64, startOffset, endOffset int, comment string) error

	// DeleteOwned deletes an owned annotation
	DeleteOwned(userID, contractID, id uint64) error
}

// SummaryRepository defines the interface for summary data access.
type SummaryRepository interface {
	// Create creates a new summary
	Create(summary *models.Summary) error

	// ListByContract lists a contract's summaries, newest first
	ListByContract(userID, contractID uint64) ([]models.Summary, error)

	// DeleteOwned deletes an owned summary
	DeleteOwned(userID, contractID, id uint64) error
}
