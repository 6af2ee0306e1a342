package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clauselens/contract-review-api/internal/constants"
	"github.com/clauselens/contract-review-api/internal/database"
	apierrors "github.com/clauselens/contract-review-api/internal/errors"
	"github.com/clauselens/contract-review-api/internal/models"
)

// RequireContractAccess checks that the contract in the :id parameter
// belongs to the caller. A contract that does not exist and a contract
// owned by someone else produce the same 404, so non-owners cannot probe
// for existence.
func RequireContractAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		contractID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.NotFound(c, "Contract not found")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var contract models.Contract
		err = database.GetDB().
			Scopes(database.OwnedBy(userID)).
			First(&contract, contractID).Error
		if err != nil {
			apierrors.NotFound(c, "Contract not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyContract, contract)
		c.Next()
	}
}

// GetContract retrieves the contract loaded by RequireContractAccess.
func GetContract(c *gin.Context) (models.Contract, bool) {
	value, exists := c.Get(constants.ContextKeyContract)
	if !exists {
		return models.Contract{}, false
	}

	contract, ok := value.(models.Contract)
	return contract, ok
}
