package models

// User is an account record. PasswordHash never leaves the server.
type User struct {
	ID           string `bson:"id" json:"id"`
	Email        string `bson:"email" json:"email"`
	Name         string `bson:"name" json:"name"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	CreatedAt    string `bson:"createdAt" json:"createdAt"`
}

// Profile is a user's public travel profile shown on swipe cards.
type Profile struct {
	UserID       string   `bson:"userId" json:"userId"`
	Bio          string   `bson:"bio,omitempty" json:"bio,omitempty"`
	City         string   `bson:"city,omitempty" json:"city,omitempty"`
	Country      string   `bson:"country,omitempty" json:"country,omitempty"`
	Age          int      `bson:"age,omitempty" json:"age,omitempty"`
	Interests    []string `bson:"interests,omitempty" json:"interests,omitempty"`
	Languages    []string `bson:"languages,omitempty" json:"languages,omitempty"`
	TravelGoals  []string `bson:"travelGoals,omitempty" json:"travelGoals,omitempty"`
	ProfileImage string   `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	TripCount    int      `bson:"tripCount,omitempty" json:"tripCount,omitempty"`
	CreatedAt    string   `bson:"createdAt" json:"createdAt"`
	UpdatedAt    string   `bson:"updatedAt" json:"updatedAt"`
}
