package models

// UserProfile mirrors a document in the users collection.
// FCMToken is empty when the user never registered a device.
type UserProfile struct {
	ID              string `json:"id" firestore:"-"`
	Name            string `json:"name" firestore:"name"`
	ProfileImageURL string `json:"profileImageUrl" firestore:"profileImageUrl"`
	FCMToken        string `json:"fcmToken,omitempty" firestore:"fcmToken,omitempty"`
}

// HasDeviceToken reports whether push delivery is possible for this user.
func (u *UserProfile) HasDeviceToken() bool {
	return u != nil && u.FCMToken != ""
}

// Product is read-only from the server's point of view.
type Product struct {
	ID        string `json:"id" firestore:"-"`
	Name      string `json:"name" firestore:"name"`
	CreatedBy string `json:"createdBy" firestore:"createdBy"`
}
