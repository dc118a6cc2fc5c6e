package api

import (
	"net/http"

	"brewpoints/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccountHandler struct {
	userQueries  queries.UserQueries
	orderQueries queries.OrderQueries
}

func NewAccountHandler(userQueries queries.UserQueries, orderQueries queries.OrderQueries) *AccountHandler {
	return &AccountHandler{
		userQueries:  userQueries,
		orderQueries: orderQueries,
	}
}

// @Summary List customer accounts
// @Description List every customer profile with its loyalty balance (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CustomerAccountView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	views, err := h.userQueries.ListAccounts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary List a customer's orders
// @Description List a specific customer's order history (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {array} queries.OrderView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/accounts/{id}/orders [get]
func (h *AccountHandler) ListOrders(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	views, err := h.orderQueries.ListByUser(c.Request.Context(), id, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
