package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/clauselens/contract-review-api/internal/constants"
	"github.com/clauselens/contract-review-api/internal/models"
	"github.com/clauselens/contract-review-api/internal/repository"
	"github.com/clauselens/contract-review-api/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrQueryRequired    = errors.New("query parameter required")
	ErrNoFileProvided   = errors.New("no file provided")
)

// ContractService handles contract business logic, including full-text
// search and file attachment.
type ContractService struct {
	contractRepo repository.ContractRepository
	searchRepo   repository.SearchRepository
	fileStore    storage.Storage
}

// NewContractService creates a new ContractService.
func NewContractService(contractRepo repository.ContractRepository, searchRepo repository.SearchRepository, fileStore storage.Storage) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		searchRepo:   searchRepo,
		fileStore:    fileStore,
	}
}

// CreateContractInput represents input for creating a contract
type CreateContractInput struct {
	Title  string
	Text   string
	Status string
	UserID uint64
}

// Create creates a contract; status defaults to draft when omitted.
func (s *ContractService) Create(input CreateContractInput) (*models.Contract, error) {
	status := input.Status
	if status == "" {
		status = constants.DefaultContractStatus
	}

	contract := &models.Contract{
		Title:  input.Title,
		Text:   input.Text,
		Status: status,
		UserID: input.UserID,
	}

	if err := s.contractRepo.Create(contract); err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	return contract, nil
}

// List returns all of a user's contracts, newest first.
func (s *ContractService) List(userID uint64) ([]models.Contract, error) {
	contracts, err := s.contractRepo.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return contracts, nil
}

// Get returns one owned contract.
func (s *ContractService) Get(userID, id uint64) (*models.Contract, error) {
	contract, err := s.contractRepo.FindOwned(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to find contract: %w", err)
	}
	return contract, nil
}

// UpdateContractInput represents a partial field update. Nil pointers leave
// the field untouched.
type UpdateContractInput struct {
	Title  *string
	Text   *string
	Status *string
}

// Update applies a partial field update to an owned contract.
func (s *ContractService) Update(userID, id uint64, input UpdateContractInput) error {
	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Text != nil {
		fields["text"] = *input.Text
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}

	if err := s.contractRepo.UpdateFields(userID, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContractNotFound
		}
		return fmt.Errorf("failed to update contract: %w", err)
	}
	return nil
}

// Delete removes an owned contract together with its annotations and
// summaries.
func (s *ContractService) Delete(userID, id uint64) error {
	if err := s.contractRepo.DeleteCascade(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContractNotFound
		}
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	return nil
}

// Search runs full-text search over the user's contracts.
func (s *ContractService) Search(userID uint64, query string) ([]repository.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}

	results, err := s.searchRepo.SearchContracts(userID, query, constants.SearchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search contracts: %w", err)
	}
	return results, nil
}

// AttachFile stores an uploaded file in the object store and persists its
// URL on the contract, replacing any previous file reference.
func (s *ContractService) AttachFile(ctx context.Context, userID, contractID uint64, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", ErrNoFileProvided
	}
	if s.fileStore == nil {
		return "", fmt.Errorf("file storage not configured")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("contracts/%d/%d-%s", contractID, time.Now().UnixMilli(), file.Filename)

	err = s.fileStore.Put(ctx, key, src, storage.PutObjectOptions{
		Size:        file.Size,
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}

	url := s.fileStore.PublicURL(key)
	if err := s.contractRepo.SetFileURL(userID, contractID, url); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrContractNotFound
		}
		return "", fmt.Errorf("failed to persist file url: %w", err)
	}

	return url, nil
}
