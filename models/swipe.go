package models

// SwipeAction is the decision a user makes on another traveler's profile.
type SwipeAction string

const (
	SwipeLike  SwipeAction = "like"
	SwipePass  SwipeAction = "pass"
	SwipeSuper SwipeAction = "super"
)

// Valid reports whether a is a known swipe action.
func (a SwipeAction) Valid() bool {
	return a == SwipeLike || a == SwipePass || a == SwipeSuper
}

// Positive reports whether the action counts towards a mutual match.
func (a SwipeAction) Positive() bool {
	return a == SwipeLike || a == SwipeSuper
}

// Swipe records one user's decision on another user's profile.
type Swipe struct {
	ID        string      `bson:"id" json:"id"`
	SwiperID  string      `bson:"swiperId" json:"swiperId"`
	SwipedID  string      `bson:"swipedId" json:"swipedId"`
	Action    SwipeAction `bson:"action" json:"action"`
	CreatedAt string      `bson:"createdAt" json:"createdAt"`
}

// Match links two users who liked each other.
type Match struct {
	ID        string `bson:"id" json:"id"`
	User1ID   string `bson:"user1Id" json:"user1Id"`
	User2ID   string `bson:"user2Id" json:"user2Id"`
	CreatedAt string `bson:"createdAt" json:"createdAt"`
}
