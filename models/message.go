package models

// Message is a direct message between two matched travelers.
type Message struct {
	ID         string `bson:"id" json:"id"`
	SenderID   string `bson:"senderId" json:"senderId"`
	ReceiverID string `bson:"receiverId" json:"receiverId"`
	Content    string `bson:"content" json:"content"`
	Read       bool   `bson:"read" json:"read"`
	CreatedAt  string `bson:"createdAt" json:"createdAt"`
}

// ConversationID derives the stable conversation ID for a pair of users:
// the sorted pair joined with "_".
func ConversationID(user1ID, user2ID string) string {
	if user2ID < user1ID {
		user1ID, user2ID = user2ID, user1ID
	}
	return user1ID + "_" + user2ID
}

// Conversation is the denormalized thread header for a pair of users. Its ID
// is the sorted participant pair joined with "_", so a pair always maps to
// the same document.
type Conversation struct {
	ID           string   `bson:"id" json:"id"`
	Participants []string `bson:"participants" json:"participants"` // Sorted pair
	LastMessage  *Message `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	UnreadCount  int      `bson:"unreadCount" json:"unreadCount"`
	CreatedAt    string   `bson:"createdAt" json:"createdAt"`
	UpdatedAt    string   `bson:"updatedAt" json:"updatedAt"`
}
