package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaskita/payment-service/internal/models"
	"github.com/kaskita/payment-service/internal/service"
	"github.com/kaskita/payment-service/internal/telemetry"
)

type PaymentHandler struct {
	payments *service.Payments
}

func NewPaymentHandler(payments *service.Payments) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreatePayment requests a Snap session from Midtrans and relays the gateway
// body to the caller unchanged. Every failure collapses to 400 {error}: the
// mobile client only distinguishes "got a session" from "did not".
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		telemetry.Logger.Error("Error decoding payment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body, err := h.payments.CreateSession(c.Request.Context(), req)
	if err != nil {
		telemetry.Logger.Error("Error creating payment session",
			zap.String("order_id", req.OrderID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
