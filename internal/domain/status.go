package domain

// Contact submission statuses.
const (
	ContactStatusNew       = "new"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
	ContactStatusClosed    = "closed"
)

// ContactSourceWebsite marks submissions coming through the public site.
const ContactSourceWebsite = "website"
