package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/kaskita/payment-service/internal/interfaces"
	"github.com/kaskita/payment-service/internal/models"
	"github.com/kaskita/payment-service/internal/telemetry"
)

// Payments wires the Snap gateway and the transaction store together. The
// cache and publisher are optional; a nil value disables that side effect.
type Payments struct {
	gateway   interfaces.SnapGateway
	repo      interfaces.TransactionRepository
	cache     interfaces.StatusCache
	publisher interfaces.EventPublisher
}

func NewPayments(
	gateway interfaces.SnapGateway,
	repo interfaces.TransactionRepository,
	cache interfaces.StatusCache,
	publisher interfaces.EventPublisher,
) *Payments {
	return &Payments{
		gateway:   gateway,
		repo:      repo,
		cache:     cache,
		publisher: publisher,
	}
}

// CreateSession asks the gateway for a Snap session (token + redirect URL)
// for the given order. The gateway body is returned verbatim so the caller
// receives exactly what Midtrans produced.
func (p *Payments) CreateSession(ctx context.Context, req models.PaymentRequest) (json.RawMessage, error) {
	snapReq := models.SnapRequest{
		TransactionDetails: models.SnapTransactionDetails{
			OrderID:     req.OrderID,
			GrossAmount: req.GrossAmount,
		},
		CreditCard: models.SnapCreditCard{Secure: true},
	}

	body, err := p.gateway.CreateTransaction(ctx, snapReq)
	if err != nil {
		return nil, err
	}

	telemetry.Logger.Info("Payment session created",
		zap.String("order_id", req.OrderID),
		zap.Int64("gross_amount", req.GrossAmount),
	)
	return body, nil
}

// ApplyNotification resolves the notification to an internal status and
// writes it to the store. Cache refresh and event publication are best
// effort: their failures are logged, never returned.
func (p *Payments) ApplyNotification(ctx context.Context, n models.PaymentNotification) (models.TransactionStatus, error) {
	status := models.ResolveStatus(n.TransactionStatus, n.FraudStatus)

	if err := p.repo.UpdateStatus(ctx, n.OrderID, status); err != nil {
		return "", err
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, n.OrderID, status); err != nil {
			telemetry.Logger.Warn("Failed to refresh status cache",
				zap.String("order_id", n.OrderID),
				zap.Error(err),
			)
		}
	}

	if p.publisher != nil {
		event := models.StatusChangedEvent{
			OrderID:           n.OrderID,
			Status:            status,
			TransactionStatus: n.TransactionStatus,
			FraudStatus:       n.FraudStatus,
		}
		eventJSON, _ := json.Marshal(event)
		if err := p.publisher.Publish(ctx, []byte(n.OrderID), eventJSON); err != nil {
			telemetry.Logger.Warn("Failed to publish status change event",
				zap.String("order_id", n.OrderID),
				zap.Error(err),
			)
		}
	}

	telemetry.Logger.Info("Transaction status updated",
		zap.String("order_id", n.OrderID),
		zap.String("status", string(status)),
	)
	return status, nil
}

// GetStatus reads the status for an order, preferring the cache and falling
// back to the store. A store hit backfills the cache.
func (p *Payments) GetStatus(ctx context.Context, orderID string) (models.TransactionStatus, error) {
	if p.cache != nil {
		status, ok, err := p.cache.Get(ctx, orderID)
		if err != nil {
			telemetry.Logger.Warn("Status cache read failed",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		} else if ok {
			return status, nil
		}
	}

	status, err := p.repo.GetStatus(ctx, orderID)
	if err != nil {
		return "", err
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, orderID, status); err != nil {
			telemetry.Logger.Warn("Failed to backfill status cache",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
	}
	return status, nil
}
