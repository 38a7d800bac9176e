package models

import "encoding/json"

// Code API types
type RequestCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// Notification API types
type SendNotificationRequest struct {
	UserID string `json:"userId" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
}

type VerifyCodeResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// StoreEvent is the body pushed to /events/{collection} when a document is created.
// Data is accepted for compatibility with event sources that inline the document,
// but the stored document is what gets dispatched.
type StoreEvent struct {
	DocumentID string          `json:"id" validate:"required"`
	Data       json.RawMessage `json:"data,omitempty"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
