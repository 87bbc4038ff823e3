package models

import "time"

// Ticket is a purchase of Qt seats for one session.
type Ticket struct {
	ID              string     `bson:"id" json:"id"`
	CustomerID      string     `bson:"customerId" json:"customerId"`
	MovieSessionID  string     `bson:"movieSessionId" json:"movieSessionId"`
	Qt              int        `bson:"qt" json:"qt"`
	Amount          int        `bson:"amount" json:"amount"`
	PaymentIntentID string     `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	RemindedAt      *time.Time `bson:"remindedAt,omitempty" json:"remindedAt,omitempty"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
}

// TicketRequest is the purchase payload. Qt defaults to one seat.
type TicketRequest struct {
	MovieSessionID string `json:"movieSessionId" binding:"required"`
	Qt             int    `json:"qt" binding:"omitempty,gte=0,lte=32767"`
}

// PurchaseReceipt is returned to the buyer.
type PurchaseReceipt struct {
	Ticket       Ticket `json:"ticket"`
	MoneySpent   int    `json:"moneySpent"`
	ClientSecret string `json:"clientSecret,omitempty"`
	Message      string `json:"message"`
}
