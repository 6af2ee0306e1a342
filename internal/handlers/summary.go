package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clauselens/contract-review-api/internal/dto"
	apierrors "github.com/clauselens/contract-review-api/internal/errors"
	"github.com/clauselens/contract-review-api/internal/middleware"
	"github.com/clauselens/contract-review-api/internal/services"
)

// SummaryHandler coordinates AI summary endpoints under a contract.
type SummaryHandler struct {
	summaryService *services.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// CreateSummary summarizes the supplied clause text via the AI collaborator
// and stores the result alongside the original.
func (h *SummaryHandler) CreateSummary(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	contract, ok := middleware.GetContract(c)
	if !ok {
		apierrors.InternalError(c, "Contract not found in context")
		return
	}

	type CreateSummaryRequest struct {
		OriginalText string `json:"originalText"`
	}

	var req CreateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	summary, err := h.summaryService.Create(c.Request.Context(), userID, contract.ID, req.OriginalText)
	if err != nil {
		respondSummaryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// ListSummaries returns a contract's summaries, newest first.
func (h *SummaryHandler) ListSummaries(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	contract, ok := middleware.GetContract(c)
	if !ok {
		apierrors.InternalError(c, "Contract not found in context")
		return
	}

	summaries, err := h.summaryService.List(userID, contract.ID)
	if err != nil {
		respondSummaryError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// DeleteSummary removes a summary.
func (h *SummaryHandler) DeleteSummary(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	contract, ok := middleware.GetContract(c)
	if !ok {
		apierrors.InternalError(c, "Contract not found in context")
		return
	}

	summaryID, err := strconv.ParseUint(c.Param("sid"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Summary not found")
		return
	}

	if err := h.summaryService.Delete(userID, contract.ID, summaryID); err != nil {
		respondSummaryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Summary deleted"})
}

func respondSummaryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOriginalTextRequired):
		apierrors.MissingField(c, "Original text is required")
	case errors.Is(err, services.ErrContractNotFound):
		apierrors.NotFound(c, "Contract not found")
	case errors.Is(err, services.ErrSummaryNotFound):
		apierrors.NotFound(c, "Summary not found")
	case errors.Is(err, services.ErrAINoText):
		apierrors.BadGateway(c, "AI did not return any text")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
