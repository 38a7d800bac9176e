package models

import "time"

// NotificationType discriminates notification records and push payloads.
type NotificationType string

const (
	NotificationProductLike NotificationType = "product_like"

	// Comment notifications are produced by another part of the platform;
	// the constants exist so stored records can still be decoded.
	NotificationProductComment NotificationType = "product_comment"
	NotificationPostComment    NotificationType = "post_comment"
)

// IsValid reports whether t is one of the known notification kinds.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationProductLike, NotificationProductComment, NotificationPostComment:
		return true
	}
	return false
}

// LikeRelation is the document written by the app when a user likes a product.
type LikeRelation struct {
	ProductID string `json:"productId" firestore:"productId"`
	UserID    string `json:"userId" firestore:"userId"`
}

// NotificationRecord is appended to the notifications collection.
// Timestamp is filled in by Firestore when left zero.
type NotificationRecord struct {
	ID             string           `json:"id" firestore:"-"`
	RecipientUID   string           `json:"recipientUid" firestore:"recipientUid"`
	SenderUID      string           `json:"senderUid" firestore:"senderUid"`
	SenderName     string           `json:"senderName" firestore:"senderName"`
	SenderImageURL string           `json:"senderImageUrl" firestore:"senderImageUrl"`
	Type           NotificationType `json:"type" firestore:"type"`
	ProductID      string           `json:"productId" firestore:"productId"`
	ProductName    string           `json:"productName" firestore:"productName"`
	Timestamp      time.Time        `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	Message        string           `json:"message" firestore:"message"`
	Read           bool             `json:"read" firestore:"read"`
}

// PushMessage is a single push addressed to one device token.
// Data is optional and carries client-side routing hints.
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}
