package models

import "time"

// Customer is a registered account. Admins manage halls and sessions; everyone else buys tickets.
type Customer struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	IsAdmin      bool      `bson:"isAdmin" json:"isAdmin"`
	MoneySpent   int       `bson:"moneySpent" json:"moneySpent"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RegistrationRequest is the payload for creating a customer.
type RegistrationRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

// LoginRequest is the payload for obtaining a token.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	Token             string `json:"token"`
	UserID            string `json:"userId"`
	TimeToLiveSeconds int    `json:"timeToLiveSeconds"`
}
