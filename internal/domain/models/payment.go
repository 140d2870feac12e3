package models

// Payment statuses follow the admin validation flow.
const (
	PaymentStatusPending   = "Menunggu Validasi"
	PaymentStatusConfirmed = "Lunas"
)

type Payment struct {
	ID      int64  `json:"id"`
	OrderID int64  `json:"order_id"`
	Amount  int64  `json:"amount"`
	Method  string `json:"method,omitempty"`
	Status  string `json:"status"`
}
