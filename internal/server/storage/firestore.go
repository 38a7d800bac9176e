package storage

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names shared with the mobile app.
const (
	CollectionOTPCodes        = "otp_codes"
	CollectionUsers           = "users"
	CollectionProducts        = "products"
	CollectionNotifications   = "notifications"
	CollectionProductLikes    = "product_likes"
	CollectionProductComments = "product_comments"
	CollectionPostComments    = "post_comments"
)

type DB struct {
	*firestore.Client
}

func NewDB(client *firestore.Client) *DB {
	return &DB{client}
}

func (db *DB) Close() error {
	return db.Client.Close()
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
