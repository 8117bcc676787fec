package repository

import (
	"context"

	"github.com/oksasatya/seminar-registration-api/internal/domain/entity"
)

// RegistrationStore defines the capability set shared by the ephemeral
// in-memory store and the Google Sheets-backed store. Callers depend only on
// this interface, never on which backing store is active.
type RegistrationStore interface {
	// CreateRegistration assigns ID and RegisteredAt, persists the record and
	// returns it as stored. Absent optional fields stay nil.
	CreateRegistration(ctx context.Context, in entity.RegistrationInput) (*entity.Registration, error)
	// GetAllRegistrations returns every known record. Order is backend-defined:
	// insertion order for the in-memory store, sheet order for the remote one.
	GetAllRegistrations(ctx context.Context) ([]*entity.Registration, error)
	// GetRegistrationByEmail is an exact-match lookup; entity.ErrNotFound when absent.
	GetRegistrationByEmail(ctx context.Context, email string) (*entity.Registration, error)

	GetUser(ctx context.Context, id int64) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, in entity.UserInput) (*entity.User, error)
}
