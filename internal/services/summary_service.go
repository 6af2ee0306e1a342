package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/clauselens/contract-review-api/internal/models"
	"github.com/clauselens/contract-review-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSummaryNotFound      = errors.New("summary not found")
	ErrOriginalTextRequired = errors.New("original text is required")
	ErrAINoText             = errors.New("AI did not return any text")
)

// SummaryService handles AI clause summaries. Creation calls the summarizer
// synchronously and persists the original and generated text together, or
// nothing at all.
type SummaryService struct {
	summaryRepo  repository.SummaryRepository
	contractRepo repository.ContractRepository
	summarizer   ClauseSummarizer
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(summaryRepo repository.SummaryRepository, contractRepo repository.ContractRepository, summarizer ClauseSummarizer) *SummaryService {
	return &SummaryService{
		summaryRepo:  summaryRepo,
		contractRepo: contractRepo,
		summarizer:   summarizer,
	}
}

// Create summarizes the supplied clause and stores the result as one
// immutable record.
func (s *SummaryService) Create(ctx context.Context, userID, contractID uint64, originalText string) (*models.Summary, error) {
	if originalText == "" {
		return nil, ErrOriginalTextRequired
	}

	if _, err := s.contractRepo.FindOwned(userID, contractID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to find contract: %w", err)
	}

	if s.summarizer == nil {
		return nil, ErrAINoText
	}

	summaryText, err := s.summarizer.SummarizeClause(ctx, originalText)
	if err != nil || summaryText == "" {
		return nil, ErrAINoText
	}

	summary := &models.Summary{
		ContractID:   contractID,
		UserID:       userID,
		OriginalText: originalText,
		SummaryText:  summaryText,
	}

	if err := s.summaryRepo.Create(summary); err != nil {
		return nil, fmt.Errorf("failed to create summary: %w", err)
	}

	return summary, nil
}

// List returns a contract's summaries, newest first. The parent contract
// must be within the caller's scope.
func (s *SummaryService) List(userID, contractID uint64) ([]models.Summary, error) {
	if _, err := s.contractRepo.FindOwned(userID, contractID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to find contract: %w", err)
	}

	summaries, err := s.summaryRepo.ListByContract(userID, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	return summaries, nil
}

// Delete removes an owned summary.
func (s *SummaryService) Delete(userID, contractID, id uint64) error {
	if err := s.summaryRepo.DeleteOwned(userID, contractID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSummaryNotFound
		}
		return fmt.Errorf("failed to delete summary: %w", err)
	}
	return nil
}
