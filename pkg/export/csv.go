package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/oksasatya/seminar-registration-api/internal/domain/entity"
)

// Header is the fixed CSV column order; it matches the spreadsheet layout.
var Header = []string{
	"ID",
	"First Name",
	"Last Name",
	"Email",
	"Phone",
	"Expectations",
	"Newsletter Opt-in",
	"Registration Date",
}

// CSV renders the full registration list as one CSV document, header first,
// rows in store order. Embedded quotes are doubled per RFC 4180, booleans
// render as Yes/No, absent optionals as empty cells, timestamps as RFC3339.
func CSV(regs []*entity.Registration) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return "", err
	}
	for _, r := range regs {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.FirstName,
			r.LastName,
			r.Email,
			deref(r.Phone),
			deref(r.Expectations),
			yesNo(r.NewsletterOptIn),
			formatTime(r.RegisteredAt),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Filename builds the attachment name for an export taken at the given time.
func Filename(now time.Time) string {
	return "seminar-registrations-" + now.UTC().Format("2006-01-02") + ".csv"
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
