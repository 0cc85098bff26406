package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/kaskita/payment-service/internal/models"
)

// SnapClient calls the Midtrans Snap create-transaction API.
type SnapClient struct {
	url       string
	serverKey string
	client    *http.Client
}

func NewSnapClient(url, serverKey string) *SnapClient {
	return &SnapClient{
		url:       url,
		serverKey: serverKey,
		client:    http.DefaultClient,
	}
}

// CreateTransaction posts a Snap request and returns the gateway's response
// body verbatim. A non-2xx response turns the whole body into the error, per
// the Midtrans convention of returning error_messages in the payload.
func (s *SnapClient) CreateTransaction(ctx context.Context, req models.SnapRequest) (json.RawMessage, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+s.basicAuth())

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s", body)
	}

	return body, nil
}

// basicAuth encodes "<server_key>:" — Midtrans uses the server key as the
// username with an empty password.
func (s *SnapClient) basicAuth() string {
	return base64.StdEncoding.EncodeToString([]byte(s.serverKey + ":"))
}
