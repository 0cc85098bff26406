package models

// TransactionStatus is the status stored on a kas transaction record.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusSuccess   TransactionStatus = "SUCCESS"
	StatusFailed    TransactionStatus = "FAILED"
	StatusChallenge TransactionStatus = "CHALLENGE"
)

// PaymentRequest is the body the client sends to create a payment session.
type PaymentRequest struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

// SnapTransactionDetails mirrors the transaction_details object of the
// Midtrans Snap create-transaction API.
type SnapTransactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

// SnapCreditCard mirrors the credit_card object of the Snap API.
type SnapCreditCard struct {
	Secure bool `json:"secure"`
}

// SnapRequest is the payload sent to the Snap create-transaction endpoint.
type SnapRequest struct {
	TransactionDetails SnapTransactionDetails `json:"transaction_details"`
	CreditCard         SnapCreditCard         `json:"credit_card"`
}

// SnapResponse covers the subset of the Snap response this service inspects.
// The full gateway body is relayed to the caller verbatim; these fields exist
// for logging and tests only.
type SnapResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// PaymentNotification is the subset of a Midtrans webhook notification this
// service consumes. Midtrans sends many more fields; they are ignored.
type PaymentNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// StatusChangedEvent is published to Kafka after a webhook update succeeds.
type StatusChangedEvent struct {
	OrderID           string            `json:"order_id"`
	Status            TransactionStatus `json:"status"`
	TransactionStatus string            `json:"transaction_status"`
	FraudStatus       string            `json:"fraud_status,omitempty"`
}

// ResolveStatus maps a Midtrans (transaction_status, fraud_status) pair to the
// internal transaction status. The mapping is pure and total: unknown inputs
// resolve to PENDING, which is also the initial status of every transaction.
//
// A capture whose fraud_status is neither "accept" nor "challenge" falls
// through to PENDING, matching the upstream behavior this replaces.
func ResolveStatus(transactionStatus, fraudStatus string) TransactionStatus {
	switch transactionStatus {
	case "capture":
		switch fraudStatus {
		case "challenge":
			return StatusChallenge
		case "accept":
			return StatusSuccess
		}
		return StatusPending
	case "settlement":
		return StatusSuccess
	case "cancel", "deny", "expire":
		return StatusFailed
	case "pending":
		return StatusPending
	}
	return StatusPending
}
