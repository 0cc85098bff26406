package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaskita/payment-service/internal/models"
	"github.com/kaskita/payment-service/internal/service"
	"github.com/kaskita/payment-service/internal/telemetry"
)

type WebhookHandler struct {
	payments *service.Payments
}

func NewWebhookHandler(payments *service.Payments) *WebhookHandler {
	return &WebhookHandler{payments: payments}
}

// HandleNotification receives an asynchronous status notification from
// Midtrans and persists the resolved status. An order id that matches no row
// still answers 200: Midtrans retries anything else.
func (h *WebhookHandler) HandleNotification(c *gin.Context) {
	var notification models.PaymentNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		telemetry.Logger.Error("Error decoding Midtrans notification", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.payments.ApplyNotification(c.Request.Context(), notification); err != nil {
		telemetry.Logger.Error("Error applying notification",
			zap.String("order_id", notification.OrderID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}
