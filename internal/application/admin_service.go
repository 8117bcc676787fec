package application

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/seminar-registration-api/internal/domain/entity"
	"github.com/oksasatya/seminar-registration-api/pkg/helpers"
	"github.com/oksasatya/seminar-registration-api/pkg/session"
)

// AdminService gates the dashboard behind a single operator credential pair.
// A successful login creates a server-side session record and returns a
// signed cookie token; everything else leaves the session untouched.
type AdminService struct {
	Sessions session.Store
	Tokens   *helpers.TokenManager
	Logger   *logrus.Logger

	Username     string
	Password     string // plain compare, only when no hash is configured
	PasswordHash string // bcrypt, takes precedence
	SessionTTL   time.Duration
}

func NewAdminService(sessions session.Store, tokens *helpers.TokenManager, logger *logrus.Logger, username, password, passwordHash string, ttl time.Duration) *AdminService {
	return &AdminService{
		Sessions:     sessions,
		Tokens:       tokens,
		Logger:       logger,
		Username:     username,
		Password:     password,
		PasswordHash: passwordHash,
		SessionTTL:   ttl,
	}
}

// Login validates the credential pair and, on success, creates an
// authenticated session and returns its signed cookie token with expiry.
// A mismatch fails with entity.ErrInvalidCredentials.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if !s.credentialsMatch(username, password) {
		return "", time.Time{}, entity.ErrInvalidCredentials
	}

	sess := &session.Session{
		ID:              uuid.NewString(),
		Username:        username,
		IsAuthenticated: true,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Sessions.Create(ctx, sess, s.SessionTTL); err != nil {
		return "", time.Time{}, fmt.Errorf("create session: %w", err)
	}

	token, exp, err := s.Tokens.GenerateSessionToken(sess.ID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithField("username", username).Info("operator logged in")
	}
	return token, exp, nil
}

// Logout destroys the session record. Destroy failures surface to the caller.
func (s *AdminService) Logout(ctx context.Context, sid string) error {
	return s.Sessions.Destroy(ctx, sid)
}

// Status reports the session flag and username; it never fails. An absent or
// expired session reads as anonymous.
func (s *AdminService) Status(ctx context.Context, sid string) (bool, string) {
	if sid == "" {
		return false, ""
	}
	sess, err := s.Sessions.Get(ctx, sid)
	if err != nil || !sess.IsAuthenticated {
		return false, ""
	}
	return true, sess.Username
}

func (s *AdminService) credentialsMatch(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.Username)) != 1 {
		return false
	}
	if s.PasswordHash != "" {
		return helpers.CompareHashAndPassword(s.PasswordHash, password)
	}
	if s.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.Password)) == 1
}
