package models

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Valid reports whether the status is one of the known booking states.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingRejected, BookingCancelled, BookingCompleted:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transitions are allowed out of s.
func (s BookingStatus) Terminal() bool {
	return s == BookingRejected || s == BookingCancelled || s == BookingCompleted
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
// Cancellation is only legal while a booking is still pending.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingRejected || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCompleted
	default:
		return false
	}
}

func (s BookingStatus) String() string {
	return string(s)
}

// ServiceType classifies the listing a booking refers to.
type ServiceType string

const (
	ServiceRide  ServiceType = "ride"
	ServiceStay  ServiceType = "stay"
	ServiceTour  ServiceType = "tour"
	ServiceGroup ServiceType = "group"
)

// Valid reports whether t is a known service type.
func (t ServiceType) Valid() bool {
	switch t {
	case ServiceRide, ServiceStay, ServiceTour, ServiceGroup:
		return true
	default:
		return false
	}
}

// Booking represents a request for a service slot between a requester and an owner.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	UserID      string        `bson:"userId" json:"userId"`   // Requester who initiated the booking
	OwnerID     string        `bson:"ownerId" json:"ownerId"` // Owner of the booked service
	ServiceID   string        `bson:"serviceId" json:"serviceId"`
	ServiceType ServiceType   `bson:"serviceType" json:"serviceType"`
	Status      BookingStatus `bson:"status" json:"status"`
	StartDate   string        `bson:"startDate,omitempty" json:"startDate,omitempty"` // "YYYY-MM-DD"
	EndDate     string        `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Quantity    int           `bson:"quantity,omitempty" json:"quantity,omitempty"`
	TotalPrice  float64       `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
	Message     string        `bson:"message,omitempty" json:"message,omitempty"`
	// Denormalized at creation time so lists render without joins.
	ServiceTitle    string `bson:"serviceTitle,omitempty" json:"serviceTitle,omitempty"`
	ServiceLocation string `bson:"serviceLocation,omitempty" json:"serviceLocation,omitempty"`
	CreatedAt       string `bson:"createdAt" json:"createdAt"` // RFC 3339, server-set, immutable
	UpdatedAt       string `bson:"updatedAt" json:"updatedAt"` // RFC 3339, rewritten on every mutation
}
