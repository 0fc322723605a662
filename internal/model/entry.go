package model

import "time"

// Entry is a single watchlist record. The match engine compares an order's
// contact fields against FirstName/LastName, StreetAddress, Email and Phone;
// Status is an informational label and is never read during matching.
type Entry struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	FirstName     string `json:"firstName" bson:"firstName"`
	LastName      string `json:"lastName" bson:"lastName"`
	StreetAddress string `json:"streetAddress" bson:"streetAddress"`
	Email         string `json:"email" bson:"email"`
	Phone         string `json:"phone" bson:"phone"`
	Status        string `json:"status" bson:"status"`
	// Disabled suppresses the entry from matching without deleting it.
	// Records persisted before the flag existed decode to false, so they
	// keep participating in matching.
	Disabled  bool      `json:"disabled" bson:"disabled"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
