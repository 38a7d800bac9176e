package models

import "time"

// OneTimeCode is stored at otp_codes/{email}. Only the latest issuance survives.
// Attempts counts wrong guesses against this code.
type OneTimeCode struct {
	Email     string    `json:"email" firestore:"-"`
	Code      string    `json:"code" firestore:"code"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt" firestore:"expiresAt"`
	Attempts  int       `json:"attempts" firestore:"attempts"`
}

// IsExpired reports whether the code can no longer be redeemed at t.
func (c *OneTimeCode) IsExpired(t time.Time) bool {
	return t.After(c.ExpiresAt)
}
