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

// AnnotationHandler coordinates annotation CRUD under a contract.
type AnnotationHandler struct {
	annotationService *services.AnnotationService
}

// NewAnnotationHandler creates a new AnnotationHandler.
func NewAnnotationHandler(annotationService *services.AnnotationService) *AnnotationHandler {
	return &AnnotationHandler{
		annotationService: annotationService,
	}
}

// annotationRequest is the body for both create and update. Offsets use
// pointers so zero offsets survive required-field binding.
type annotationRequest struct {
	StartOffset *int   `json:"startOffset" binding:"required"`
	EndOffset   *int   `json:"endOffset" binding:"required"`
	Comment     string `json:"comment"`
}

// CreateAnnotation attaches an annotation to an owned contract.
func (h *AnnotationHandler) CreateAnnotation(c *gin.Context) {
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

	var req annotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	annotation, err := h.annotationService.Create(services.CreateAnnotationInput{
		ContractID:  contract.ID,
		UserID:      userID,
		StartOffset: *req.StartOffset,
		EndOffset:   *req.EndOffset,
		Comment:     req.Comment,
	})
	if err != nil {
		respondAnnotationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, annotation)
}

// ListAnnotations returns a contract's annotations, oldest first.
func (h *AnnotationHandler) ListAnnotations(c *gin.Context) {
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

	annotations, err := h.annotationService.List(userID, contract.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch annotations")
		return
	}

	c.JSON(http.StatusOK, annotations)
}

// UpdateAnnotation replaces the offsets and comment of an annotation.
func (h *AnnotationHandler) UpdateAnnotation(c *gin.Context) {
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

	annotationID, err := strconv.ParseUint(c.Param("aid"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Annotation not found")
		return
	}

	var req annotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err = h.annotationService.Update(userID, contract.ID, annotationID, services.UpdateAnnotationInput{
		StartOffset: *req.StartOffset,
		EndOffset:   *req.EndOffset,
		Comment:     req.Comment,
	})
	if err != nil {
		respondAnnotationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Annotation updated"})
}

// DeleteAnnotation removes an annotation.
func (h *AnnotationHandler) DeleteAnnotation(c *gin.Context) {
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

	annotationID, err := strconv.ParseUint(c.Param("aid"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Annotation not found")
		return
	}

	if err := h.annotationService.Delete(userID, contract.ID, annotationID); err != nil {
		respondAnnotationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Annotation deleted"})
}

func respondAnnotationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrContractNotFound):
		apierrors.NotFound(c, "Contract not found")
	case errors.Is(err, services.ErrAnnotationNotFound):
		apierrors.NotFound(c, "Annotation not found")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
