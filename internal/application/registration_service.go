package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/seminar-registration-api/internal/domain/entity"
	"github.com/oksasatya/seminar-registration-api/internal/domain/repository"
)

// RegistrationService enforces the one-registration-per-email rule and
// delegates persistence to the store. Shape validation happens upstream at
// the binding layer.
type RegistrationService struct {
	Store  repository.RegistrationStore
	Logger *logrus.Logger
}

func NewRegistrationService(store repository.RegistrationStore, logger *logrus.Logger) *RegistrationService {
	return &RegistrationService{Store: store, Logger: logger}
}

// Register creates a registration for a previously unseen email and echoes
// the stored record back. A known email fails with entity.ErrDuplicateEmail
// and performs no write.
//
// The pre-check and the create are only atomic when the store itself enforces
// uniqueness (the in-memory variant does); the sheets variant keeps the
// check-then-append window.
func (s *RegistrationService) Register(ctx context.Context, in entity.RegistrationInput) (*entity.Registration, error) {
	existing, err := s.Store.GetRegistrationByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrDuplicateEmail
	}

	reg, err := s.Store.CreateRegistration(ctx, in)
	if err != nil {
		if !errors.Is(err, entity.ErrDuplicateEmail) && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", in.Email).Error("create registration failed")
		}
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"id": reg.ID, "email": reg.Email}).Info("registration created")
	}
	return reg, nil
}

// List returns every registration in store order.
func (s *RegistrationService) List(ctx context.Context) ([]*entity.Registration, error) {
	return s.Store.GetAllRegistrations(ctx)
}
