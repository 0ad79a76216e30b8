package handlers

// HandlerBundle aggregates all HTTP handlers for route registration.
type HandlerBundle struct {
	Users         *UserHandler
	Listings      *ListingHandler
	Bookings      *BookingHandler
	Notifications *NotificationHandler
	Social        *SocialHandler
	Messaging     *MessagingHandler
}
