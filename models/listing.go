package models

// Listing is a bookable offering: a homestay, a ride, a guided tour or a
// group trip. Bookings reference listings by ID and copy Title/Location at
// creation time.
type Listing struct {
	ID           string      `bson:"id" json:"id"`
	OwnerID      string      `bson:"ownerId" json:"ownerId"`
	Type         ServiceType `bson:"type" json:"type"`
	Title        string      `bson:"title" json:"title"`
	Description  string      `bson:"description,omitempty" json:"description,omitempty"`
	Location     string      `bson:"location" json:"location"`
	PricePerUnit float64     `bson:"pricePerUnit" json:"pricePerUnit"` // Per night, seat, hour or person
	Capacity     int         `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Images       []string    `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt    string      `bson:"createdAt" json:"createdAt"`
}
