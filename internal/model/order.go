package model

// Order statuses understood by the external order system.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusOnHold     = "on-hold"
)

// ContactInfo is one address block of an order. Fields missing on the order
// (e.g. no shipping email) arrive as empty strings, never as errors.
type ContactInfo struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	AddressLine1 string `json:"addressLine1"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// OrderContact is a read-only projection of an order supplied by the
// external order system.
type OrderContact struct {
	ID       string      `json:"id"`
	Billing  ContactInfo `json:"billing"`
	Shipping ContactInfo `json:"shipping"`
}
