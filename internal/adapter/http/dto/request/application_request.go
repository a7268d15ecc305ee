package request

// SubmitApplicationRequest is the customer's submission payload. Photos
// carry the raw image bytes (Base64 over JSON, as encoding/json does for
// byte slices); the service re-encodes them through the attachment codec
// before they reach the store. IdempotencyKey is optional: a retried
// submit with the same key lands on the same record.
type SubmitApplicationRequest struct {
	Category       string   `json:"category" binding:"required"`
	Comment        string   `json:"comment" binding:"required"`
	Photos         [][]byte `json:"photos"`
	IdempotencyKey string   `json:"idempotency_key"`
}

// PriceApplicationRequest is the administrator's offer: both fields are
// required together.
type PriceApplicationRequest struct {
	Price        float64 `json:"price" binding:"required"`
	AdminComment string  `json:"admin_comment" binding:"required"`
}

// ConfirmApplicationRequest is the customer's acceptance of the offer,
// with the payout contact record.
type ConfirmApplicationRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}
