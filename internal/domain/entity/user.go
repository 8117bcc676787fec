package entity

// User exists for interface symmetry with the registration store; no route
// consumes it today. Passwords are stored as bcrypt hashes.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// UserInput carries the plain-text password; stores hash before persisting.
type UserInput struct {
	Username string
	Password string
}
