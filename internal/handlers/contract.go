package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clauselens/contract-review-api/internal/dto"
	apierrors "github.com/clauselens/contract-review-api/internal/errors"
	"github.com/clauselens/contract-review-api/internal/middleware"
	"github.com/clauselens/contract-review-api/internal/services"
)

// ContractHandler coordinates contract CRUD, search, and file upload.
type ContractHandler struct {
	contractService *services.ContractService
}

// NewContractHandler creates a new ContractHandler.
func NewContractHandler(contractService *services.ContractService) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// CreateContract creates a new contract owned by the caller.
func (h *ContractHandler) CreateContract(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateContractRequest struct {
		Title  string `json:"title" binding:"required"`
		Text   string `json:"text"`
		Status string `json:"status"`
	}

	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	contract, err := h.contractService.Create(services.CreateContractInput{
		Title:  req.Title,
		Text:   req.Text,
		Status: req.Status,
		UserID: userID,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to create contract")
		return
	}

	c.JSON(http.StatusCreated, contract)
}

// ListContracts returns the caller's contracts, newest first.
func (h *ContractHandler) ListContracts(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	contracts, err := h.contractService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch contracts")
		return
	}

	c.JSON(http.StatusOK, contracts)
}

// GetContract returns one contract. The ownership check already ran in
// RequireContractAccess, which also loaded the row.
func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, ok := middleware.GetContract(c)
	if !ok {
		apierrors.InternalError(c, "Contract not found in context")
		return
	}

	c.JSON(http.StatusOK, contract)
}

// UpdateContract applies a partial field update to an owned contract.
func (h *ContractHandler) UpdateContract(c *gin.Context) {
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

	type UpdateContractRequest struct {
		Title  *string `json:"title"`
		Text   *string `json:"text"`
		Status *string `json:"status"`
	}

	var req UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.contractService.Update(userID, contract.ID, services.UpdateContractInput{
		Title:  req.Title,
		Text:   req.Text,
		Status: req.Status,
	})
	if err != nil {
		respondContractError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Updated"})
}

// DeleteContract removes an owned contract and everything attached to it.
func (h *ContractHandler) DeleteContract(c *gin.Context) {
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

	if err := h.contractService.Delete(userID, contract.ID); err != nil {
		respondContractError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}

// SearchContracts runs full-text search over the caller's contracts.
func (h *ContractHandler) SearchContracts(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	results, err := h.contractService.Search(userID, c.Query("query"))
	if err != nil {
		if errors.Is(err, services.ErrQueryRequired) {
			apierrors.MissingField(c, "Query parameter required")
			return
		}
		apierrors.InternalError(c, "Failed to search contracts")
		return
	}

	c.JSON(http.StatusOK, results)
}

// UploadContractFile stores a multipart file for an owned contract and
// records its URL.
func (h *ContractHandler) UploadContractFile(c *gin.Context) {
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

	file, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "No file provided")
		return
	}

	url, err := h.contractService.AttachFile(c.Request.Context(), userID, contract.ID, file)
	if err != nil {
		if errors.Is(err, services.ErrNoFileProvided) {
			apierrors.BadRequest(c, "No file provided")
			return
		}
		respondContractError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{URL: url})
}

func respondContractError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrContractNotFound) {
		apierrors.NotFound(c, "Contract not found")
		return
	}
	apierrors.InternalError(c, "Internal server error")
}
