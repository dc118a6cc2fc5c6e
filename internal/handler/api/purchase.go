package api

import (
	"errors"
	"net/http"

	reqdto "brewpoints/internal/handler/dto/request"
	resdto "brewpoints/internal/handler/dto/response"
	"brewpoints/internal/handler/middleware"
	"brewpoints/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	purchaseUseCase commands.PurchaseCommands
}

func NewPurchaseHandler(purchaseUseCase commands.PurchaseCommands) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUseCase: purchaseUseCase,
	}
}

// @Summary Purchase a product
// @Description Record a purchase and settle the loyalty ledger atomically
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /purchases [post]
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.purchaseUseCase.Purchase(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "User not authenticated",
			})
		case errors.Is(err, commands.ErrProductUnavailable):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not available",
			})
		case errors.Is(err, commands.ErrInvalidInput):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid purchase input",
			})
		case errors.Is(err, commands.ErrStorageUnavailable):
			// Nothing committed; the client may safely retry.
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable, please retry",
			})
		case errors.Is(err, commands.ErrLedgerIntegrity):
			// The order committed. A retry would double-charge, so this is
			// deliberately not presented as retryable.
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Order recorded but points could not be updated",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPurchaseResult(result))
}
