package domain

import "time"

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

type PaymentInfo struct {
	Method    string `json:"method"` // "offline", "test" or "razorpay"
	Status    string `json:"status"` // "unpaid" or "paid"
	OrderID   string `json:"payment_order_id,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`
}

// Order is built once at submission time and never mutated after.
// Items is a copy of the cart lines, not a live reference.
type Order struct {
	ID        string      `json:"id"`
	Customer  Customer    `json:"customer"`
	Items     []CartItem  `json:"cart"`
	Total     float64     `json:"total"`
	Payment   PaymentInfo `json:"payment"`
	CreatedAt time.Time   `json:"created_at"`
}
