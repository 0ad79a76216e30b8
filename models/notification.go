package models

// NotificationType classifies what event a notification describes.
type NotificationType string

const (
	NotifyBookingRequest NotificationType = "booking_request"
	NotifyBookingUpdate  NotificationType = "booking_update"
	NotifyMessage        NotificationType = "message"
	NotifyMatch          NotificationType = "match"
)

// Notification is a store-persisted, one-way message to a user. It is never
// deleted by the flows that create it, only marked read by its recipient.
type Notification struct {
	ID        string           `bson:"id" json:"id"`
	UserID    string           `bson:"userId" json:"userId"` // Recipient
	Title     string           `bson:"title" json:"title"`
	Message   string           `bson:"message" json:"message"`
	Type      NotificationType `bson:"type" json:"type"`
	RelatedID string           `bson:"relatedId,omitempty" json:"relatedId,omitempty"` // Booking, match or message id
	Read      bool             `bson:"read" json:"read"`
	CreatedAt string           `bson:"createdAt" json:"createdAt"`
}
