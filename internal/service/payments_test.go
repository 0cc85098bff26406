package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaskita/payment-service/internal/models"
	"github.com/kaskita/payment-service/internal/telemetry"
)

func TestMain(m *testing.M) {
	telemetry.Logger = zap.NewNop()
	m.Run()
}

type stubGateway struct {
	gotReq models.SnapRequest
	body   json.RawMessage
	err    error
	calls  int
}

func (g *stubGateway) CreateTransaction(_ context.Context, req models.SnapRequest) (json.RawMessage, error) {
	g.calls++
	g.gotReq = req
	return g.body, g.err
}

type stubRepo struct {
	updates  []struct {
		OrderID string
		Status  models.TransactionStatus
	}
	updateErr error
	status    models.TransactionStatus
	getErr    error
	getCalls  int
}

func (r *stubRepo) UpdateStatus(_ context.Context, orderID string, status models.TransactionStatus) error {
	r.updates = append(r.updates, struct {
		OrderID string
		Status  models.TransactionStatus
	}{orderID, status})
	return r.updateErr
}

func (r *stubRepo) GetStatus(_ context.Context, orderID string) (models.TransactionStatus, error) {
	r.getCalls++
	if r.getErr != nil {
		return "", r.getErr
	}
	return r.status, nil
}

type stubCache struct {
	values map[string]models.TransactionStatus
	getErr error
	setErr error
}

func newStubCache() *stubCache {
	return &stubCache{values: map[string]models.TransactionStatus{}}
}

func (c *stubCache) Get(_ context.Context, orderID string) (models.TransactionStatus, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}
	status, ok := c.values[orderID]
	return status, ok, nil
}

func (c *stubCache) Set(_ context.Context, orderID string, status models.TransactionStatus) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.values[orderID] = status
	return nil
}

type stubPublisher struct {
	keys   []string
	values [][]byte
	err    error
}

func (p *stubPublisher) Publish(_ context.Context, key, value []byte) error {
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, string(key))
	p.values = append(p.values, value)
	return nil
}

func TestCreateSession_BuildsSnapRequest(t *testing.T) {
	gw := &stubGateway{body: json.RawMessage(`{"token":"t","redirect_url":"u"}`)}
	payments := NewPayments(gw, &stubRepo{}, nil, nil)

	body, err := payments.CreateSession(context.Background(), models.PaymentRequest{
		OrderID:     "A1",
		GrossAmount: 50000,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"token":"t","redirect_url":"u"}`, string(body))
	assert.Equal(t, "A1", gw.gotReq.TransactionDetails.OrderID)
	assert.Equal(t, int64(50000), gw.gotReq.TransactionDetails.GrossAmount)
	assert.True(t, gw.gotReq.CreditCard.Secure)
}

func TestCreateSession_GatewayError(t *testing.T) {
	gw := &stubGateway{err: errors.New(`{"error_messages":["bad key"]}`)}
	payments := NewPayments(gw, &stubRepo{}, nil, nil)

	_, err := payments.CreateSession(context.Background(), models.PaymentRequest{OrderID: "A1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestApplyNotification_UpdatesStoreAndPublishes(t *testing.T) {
	repo := &stubRepo{}
	cache := newStubCache()
	pub := &stubPublisher{}
	payments := NewPayments(&stubGateway{}, repo, cache, pub)

	status, err := payments.ApplyNotification(context.Background(), models.PaymentNotification{
		OrderID:           "A1",
		TransactionStatus: "settlement",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, status)

	require.Len(t, repo.updates, 1)
	assert.Equal(t, "A1", repo.updates[0].OrderID)
	assert.Equal(t, models.StatusSuccess, repo.updates[0].Status)

	assert.Equal(t, models.StatusSuccess, cache.values["A1"])

	require.Len(t, pub.keys, 1)
	assert.Equal(t, "A1", pub.keys[0])
	var event models.StatusChangedEvent
	require.NoError(t, json.Unmarshal(pub.values[0], &event))
	assert.Equal(t, models.StatusSuccess, event.Status)
	assert.Equal(t, "settlement", event.TransactionStatus)
}

func TestApplyNotification_StoreErrorIsTerminal(t *testing.T) {
	repo := &stubRepo{updateErr: errors.New("connection refused")}
	pub := &stubPublisher{}
	payments := NewPayments(&stubGateway{}, repo, nil, pub)

	_, err := payments.ApplyNotification(context.Background(), models.PaymentNotification{
		OrderID:           "A1",
		TransactionStatus: "settlement",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, pub.keys, "no event published after a failed update")
}

func TestApplyNotification_PublishFailureIsBestEffort(t *testing.T) {
	repo := &stubRepo{}
	pub := &stubPublisher{err: errors.New("broker down")}
	payments := NewPayments(&stubGateway{}, repo, nil, pub)

	status, err := payments.ApplyNotification(context.Background(), models.PaymentNotification{
		OrderID:           "A1",
		TransactionStatus: "capture",
		FraudStatus:       "accept",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, status)
	require.Len(t, repo.updates, 1)
}

func TestApplyNotification_CacheFailureIsBestEffort(t *testing.T) {
	repo := &stubRepo{}
	cache := newStubCache()
	cache.setErr = errors.New("redis down")
	payments := NewPayments(&stubGateway{}, repo, cache, nil)

	_, err := payments.ApplyNotification(context.Background(), models.PaymentNotification{
		OrderID:           "A1",
		TransactionStatus: "pending",
	})
	require.NoError(t, err)
}

func TestApplyNotification_Idempotent(t *testing.T) {
	repo := &stubRepo{}
	payments := NewPayments(&stubGateway{}, repo, nil, nil)
	notification := models.PaymentNotification{
		OrderID:           "A1",
		TransactionStatus: "capture",
		FraudStatus:       "challenge",
	}

	first, err := payments.ApplyNotification(context.Background(), notification)
	require.NoError(t, err)
	second, err := payments.ApplyNotification(context.Background(), notification)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, repo.updates, 2)
	assert.Equal(t, repo.updates[0], repo.updates[1])
}

func TestGetStatus_CacheHitSkipsStore(t *testing.T) {
	repo := &stubRepo{status: models.StatusPending}
	cache := newStubCache()
	cache.values["A1"] = models.StatusSuccess
	payments := NewPayments(&stubGateway{}, repo, cache, nil)

	status, err := payments.GetStatus(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, status)
	assert.Zero(t, repo.getCalls)
}

func TestGetStatus_CacheMissBackfills(t *testing.T) {
	repo := &stubRepo{status: models.StatusFailed}
	cache := newStubCache()
	payments := NewPayments(&stubGateway{}, repo, cache, nil)

	status, err := payments.GetStatus(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, status)
	assert.Equal(t, 1, repo.getCalls)
	assert.Equal(t, models.StatusFailed, cache.values["A1"])
}

func TestGetStatus_UnknownOrder(t *testing.T) {
	repo := &stubRepo{getErr: sql.ErrNoRows}
	payments := NewPayments(&stubGateway{}, repo, nil, nil)

	_, err := payments.GetStatus(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
