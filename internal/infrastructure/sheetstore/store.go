package sheetstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/oksasatya/seminar-registration-api/internal/domain/entity"
	"github.com/oksasatya/seminar-registration-api/internal/domain/repository"
)

// Column headers in sheet order (row 1, columns A-H).
var headerRow = []string{
	"ID",
	"First Name",
	"Last Name",
	"Email",
	"Phone",
	"Expectations",
	"Newsletter Opt-in",
	"Registration Date",
}

// Store proxies every operation to a Google Sheets spreadsheet. Rows 2+ are
// data; row 1 is the header. Reads resolve columns by header name rather than
// position, so a reordered sheet still maps correctly. Timestamps are RFC3339
// UTC in both directions.
//
// The header-ensure step is check-then-write, not transactional: two cold
// concurrent creates can double-write the header row.
type Store struct {
	svc       *sheets.Service
	sheetID   string
	worksheet string
	timeout   time.Duration
	logger    *logrus.Logger
}

// New builds a Sheets-backed store. If credsPath is empty, apiKey is used.
func New(ctx context.Context, sheetID, worksheet, credsPath, apiKey string, timeout time.Duration, logger *logrus.Logger) (*Store, error) {
	if sheetID == "" {
		return nil, fmt.Errorf("sheetstore: sheet id is required")
	}
	var opts []option.ClientOption
	if credsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credsPath))
	} else if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheetstore: init client: %w", err)
	}
	if worksheet == "" {
		worksheet = "Sheet1"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Store{svc: svc, sheetID: sheetID, worksheet: worksheet, timeout: timeout, logger: logger}, nil
}

func (s *Store) CreateRegistration(ctx context.Context, in entity.RegistrationInput) (*entity.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.ensureHeaders(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reg := &entity.Registration{
		ID:              now.UnixMilli(),
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		Expectations:    in.Expectations,
		NewsletterOptIn: in.NewsletterOptIn,
		RegisteredAt:    now,
	}

	row := []interface{}{
		strconv.FormatInt(reg.ID, 10),
		reg.FirstName,
		reg.LastName,
		reg.Email,
		stringOrEmpty(reg.Phone),
		stringOrEmpty(reg.Expectations),
		yesNo(reg.NewsletterOptIn),
		reg.RegisteredAt.Format(time.RFC3339),
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Append(s.sheetID, s.worksheet, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: append row: %v", entity.ErrStoreUnavailable, err)
	}
	return reg, nil
}

// GetAllRegistrations fails open: a transport error is logged and an empty
// slice is returned so the dashboard keeps rendering.
func (s *Store) GetAllRegistrations(ctx context.Context) ([]*entity.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, s.worksheet).Context(ctx).Do()
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("sheet_id", s.sheetID).Warn("sheet read failed, returning empty list")
		}
		return []*entity.Registration{}, nil
	}
	if len(resp.Values) < 2 {
		return []*entity.Registration{}, nil
	}

	cols := columnIndex(resp.Values[0])
	out := make([]*entity.Registration, 0, len(resp.Values)-1)
	for i, row := range resp.Values[1:] {
		out = append(out, rowToRegistration(row, cols, int64(i+1)))
	}
	return out, nil
}

func (s *Store) GetRegistrationByEmail(ctx context.Context, email string) (*entity.Registration, error) {
	regs, err := s.GetAllRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range regs {
		if r.Email == email {
			return r, nil
		}
	}
	return nil, entity.ErrNotFound
}

// User operations are not backed by the spreadsheet.
func (s *Store) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	return nil, entity.ErrNotFound
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, entity.ErrNotFound
}

func (s *Store) CreateUser(ctx context.Context, in entity.UserInput) (*entity.User, error) {
	return nil, entity.ErrNotSupported
}

// ensureHeaders writes the header row when A1:H1 is empty or does not match.
func (s *Store) ensureHeaders(ctx context.Context) error {
	rng := s.worksheet + "!A1:H1"
	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, rng).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: read header: %v", entity.ErrStoreUnavailable, err)
	}
	if len(resp.Values) > 0 && headerMatches(resp.Values[0]) {
		return nil
	}

	row := make([]interface{}, len(headerRow))
	for i, h := range headerRow {
		row[i] = h
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err = s.svc.Spreadsheets.Values.Update(s.sheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: write header: %v", entity.ErrStoreUnavailable, err)
	}
	return nil
}

var _ repository.RegistrationStore = (*Store)(nil)
