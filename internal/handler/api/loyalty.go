package api

import (
	"net/http"

	resdto "brewpoints/internal/handler/dto/response"
	"brewpoints/internal/handler/middleware"
	"brewpoints/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	loyaltyQueries queries.LoyaltyQueries
	orderQueries   queries.OrderQueries
}

func NewLoyaltyHandler(loyaltyQueries queries.LoyaltyQueries, orderQueries queries.OrderQueries) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyQueries: loyaltyQueries,
		orderQueries:   orderQueries,
	}
}

// @Summary Get loyalty ledger
// @Description Get the current customer's points and reward progress
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.LedgerResponse
// @Failure 401 {object} map[string]string
// @Router /loyalty [get]
func (h *LoyaltyHandler) GetLedger(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	view, err := h.loyaltyQueries.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromLedgerView(view))
}

// @Summary List my orders
// @Description List the current customer's past orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *LoyaltyHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	views, err := h.orderQueries.ListByUser(c.Request.Context(), userID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}
