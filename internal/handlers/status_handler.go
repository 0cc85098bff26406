package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaskita/payment-service/internal/service"
)

type StatusHandler struct {
	payments *service.Payments
}

func NewStatusHandler(payments *service.Payments) *StatusHandler {
	return &StatusHandler{payments: payments}
}

// GetTransactionStatus returns the latest known status for an order. The
// ledger client polls this after redirecting the user to the Snap page.
func (h *StatusHandler) GetTransactionStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	status, err := h.payments.GetStatus(c.Request.Context(), orderID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transaction status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": orderID,
		"status":   status,
	})
}
