package entity

import (
	"time"
)

// Registration is one seminar-signup record. Optional fields are pointers so
// an absent value serializes as null rather than an empty string.
type Registration struct {
	ID              int64     `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	Expectations    *string   `json:"expectations"`
	NewsletterOptIn bool      `json:"newsletterOptIn"`
	RegisteredAt    time.Time `json:"registeredAt"`
}

// RegistrationInput is the candidate payload before the store assigns
// ID and RegisteredAt.
type RegistrationInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           *string
	Expectations    *string
	NewsletterOptIn bool
}
