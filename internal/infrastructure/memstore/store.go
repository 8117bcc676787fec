package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/oksasatya/seminar-registration-api/internal/domain/entity"
	"github.com/oksasatya/seminar-registration-api/internal/domain/repository"
	"github.com/oksasatya/seminar-registration-api/pkg/helpers"
)

// Store is the ephemeral in-process backend. Records live in maps guarded by
// a single RWMutex, so the email uniqueness check and the insert happen under
// one write lock. Data is lost on restart; there is no size bound.
type Store struct {
	mu sync.RWMutex

	registrations map[int64]*entity.Registration
	regOrder      []int64
	byEmail       map[string]int64
	nextRegID     int64

	users      map[int64]*entity.User
	byUsername map[string]int64
	nextUserID int64
}

func New() *Store {
	return &Store{
		registrations: make(map[int64]*entity.Registration),
		byEmail:       make(map[string]int64),
		nextRegID:     1,
		users:         make(map[int64]*entity.User),
		byUsername:    make(map[string]int64),
		nextUserID:    1,
	}
}

func (s *Store) CreateRegistration(ctx context.Context, in entity.RegistrationInput) (*entity.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[in.Email]; ok {
		return nil, entity.ErrDuplicateEmail
	}

	reg := &entity.Registration{
		ID:              s.nextRegID,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		Expectations:    in.Expectations,
		NewsletterOptIn: in.NewsletterOptIn,
		RegisteredAt:    time.Now().UTC(),
	}
	s.nextRegID++

	s.registrations[reg.ID] = reg
	s.regOrder = append(s.regOrder, reg.ID)
	s.byEmail[reg.Email] = reg.ID

	return copyRegistration(reg), nil
}

func (s *Store) GetAllRegistrations(ctx context.Context) ([]*entity.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Registration, 0, len(s.regOrder))
	for _, id := range s.regOrder {
		out = append(out, copyRegistration(s.registrations[id]))
	}
	return out, nil
}

func (s *Store) GetRegistrationByEmail(ctx context.Context, email string) (*entity.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return copyRegistration(s.registrations[id]), nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *s.users[id]
	return &cp, nil
}

func (s *Store) CreateUser(ctx context.Context, in entity.UserInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := &entity.User{
		ID:       s.nextUserID,
		Username: in.Username,
		Password: hash,
	}
	s.nextUserID++
	s.users[u.ID] = u
	s.byUsername[u.Username] = u.ID

	cp := *u
	return &cp, nil
}

// copyRegistration returns a defensive copy so callers cannot mutate stored state.
func copyRegistration(r *entity.Registration) *entity.Registration {
	cp := *r
	return &cp
}

var _ repository.RegistrationStore = (*Store)(nil)
