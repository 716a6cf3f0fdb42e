package models

import "time"

type OrderStatus string

const (
	StatusPaid             OrderStatus = "paid"
	StatusPreparing        OrderStatus = "preparing"
	StatusReadyForDelivery OrderStatus = "ready_for_delivery"
	StatusOutForDelivery   OrderStatus = "out_for_delivery"
	StatusDelivered        OrderStatus = "delivered"
)

// StatusSteps is the fixed ladder the tracking page walks through, in order.
var StatusSteps = []OrderStatus{
	StatusPaid,
	StatusPreparing,
	StatusReadyForDelivery,
	StatusOutForDelivery,
	StatusDelivered,
}

// StatusIndex returns the position of status in the ladder, or -1 when the
// value is not a known status.
func StatusIndex(status OrderStatus) int {
	for i, s := range StatusSteps {
		if s == status {
			return i
		}
	}
	return -1
}

// NextStatus returns the status following the given one. Delivered is
// terminal and returns itself.
func NextStatus(status OrderStatus) OrderStatus {
	idx := StatusIndex(status)
	if idx < 0 || idx == len(StatusSteps)-1 {
		return status
	}
	return StatusSteps[idx+1]
}

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentPix        PaymentMethod = "pix"
)

type OrderAddress struct {
	Street     string `json:"street" firestore:"street"`
	Number     string `json:"number" firestore:"number"`
	Complement string `json:"complement,omitempty" firestore:"complement,omitempty"`
	District   string `json:"district" firestore:"district"`
	City       string `json:"city" firestore:"city"`
	State      string `json:"state" firestore:"state"`
	ZipCode    string `json:"zip_code" firestore:"zipCode"`
}

type Order struct {
	ID            string        `json:"id" firestore:"id"`
	UserID        string        `json:"user_id" firestore:"userId"`
	Items         []CartItem    `json:"items" firestore:"items"`
	Subtotal      float64       `json:"subtotal" firestore:"subtotal"`
	DeliveryFee   float64       `json:"delivery_fee" firestore:"deliveryFee"`
	Total         float64       `json:"total" firestore:"total"`
	Status        OrderStatus   `json:"status" firestore:"status"`
	PaymentMethod PaymentMethod `json:"payment_method" firestore:"paymentMethod"`
	Address       *OrderAddress `json:"address,omitempty" firestore:"address,omitempty"`
	EstimatedTime int           `json:"estimated_time" firestore:"estimatedTime"`
	CreatedAt     time.Time     `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time     `json:"updated_at" firestore:"updatedAt"`
}
