package services

import (
	"errors"
	"fmt"

	"github.com/clauselens/contract-review-api/internal/models"
	"github.com/clauselens/contract-review-api/internal/repository"
	"gorm.io/gorm"
)

var ErrAnnotationNotFound = errors.New("annotation not found")

// AnnotationService handles annotation business logic. Every operation is
// scoped by both the owner and the parent contract.
type AnnotationService struct {
	annotationRepo repository.AnnotationRepository
	contractRepo   repository.ContractRepository
}

// NewAnnotationService creates a new AnnotationService.
func NewAnnotationService(annotationRepo repository.AnnotationRepository, contractRepo repository.ContractRepository) *AnnotationService {
	return &AnnotationService{
		annotationRepo: annotationRepo,
		contractRepo:   contractRepo,
	}
}

// CreateAnnotationInput represents input for creating an annotation.
// Offsets are taken as given; ordering and bounds are not validated.
type CreateAnnotationInput struct {
	ContractID  uint64
	UserID      uint64
	StartOffset int
	EndOffset   int
	Comment     string
}

// Create validates that the parent contract exists within the caller's
// scope, then inserts the annotation.
func (s *AnnotationService) Create(input CreateAnnotationInput) (*models.Annotation, error) {
	if _, err := s.contractRepo.FindOwned(input.UserID, input.ContractID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to find contract: %w", err)
	}

	annotation := &models.Annotation{
		ContractID:  input.ContractID,
		UserID:      input.UserID,
		StartOffset: input.StartOffset,
		EndOffset:   input.EndOffset,
		Comment:     input.Comment,
	}

	if err := s.annotationRepo.Create(annotation); err != nil {
		return nil, fmt.Errorf("failed to create annotation: %w", err)
	}

	return annotation, nil
}

// List returns a contract's annotations in the order they were made.
func (s *AnnotationService) List(userID, contractID uint64) ([]models.Annotation, error) {
	annotations, err := s.annotationRepo.ListByContract(userID, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to list annotations: %w", err)
	}
	return annotations, nil
}

// UpdateAnnotationInput replaces all mutable annotation fields.
type UpdateAnnotationInput struct {
	StartOffset int
	EndOffset   int
	Comment     string
}

// Update replaces the offsets and comment of an owned annotation.
func (s *AnnotationService) Update(userID, contractID, id uint64, input UpdateAnnotationInput) error {
	err := s.annotationRepo.UpdateOwned(userID, contractID, id, input.StartOffset, input.EndOffset, input.Comment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnotationNotFound
		}
		return fmt.Errorf("failed to update annotation: %w", err)
	}
	return nil
}

// Delete removes an owned annotation.
func (s *AnnotationService) Delete(userID, contractID, id uint64) error {
	if err := s.annotationRepo.DeleteOwned(userID, contractID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnotationNotFound
		}
		return fmt.Errorf("failed to delete annotation: %w", err)
	}
	return nil
}
