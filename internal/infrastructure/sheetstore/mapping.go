package sheetstore

import (
	"strconv"
	"time"

	"github.com/oksasatya/seminar-registration-api/internal/domain/entity"
)

// columnIndex maps header cell text to its column position. Unknown headers
// are kept too; lookups for missing names simply miss.
func columnIndex(header []interface{}) map[string]int {
	idx := make(map[string]int, len(header))
	for i, cell := range header {
		if s, ok := cell.(string); ok && s != "" {
			idx[s] = i
		}
	}
	return idx
}

// rowToRegistration maps one sheet row into a record. A malformed or missing
// cell degrades to the field's zero value instead of failing the whole read.
func rowToRegistration(row []interface{}, cols map[string]int, fallbackID int64) *entity.Registration {
	id, err := strconv.ParseInt(cellString(row, cols, "ID"), 10, 64)
	if err != nil || id == 0 {
		id = fallbackID
	}

	var registeredAt time.Time
	if raw := cellString(row, cols, "Registration Date"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			registeredAt = t
		}
	}

	return &entity.Registration{
		ID:              id,
		FirstName:       cellString(row, cols, "First Name"),
		LastName:        cellString(row, cols, "Last Name"),
		Email:           cellString(row, cols, "Email"),
		Phone:           optional(cellString(row, cols, "Phone")),
		Expectations:    optional(cellString(row, cols, "Expectations")),
		NewsletterOptIn: cellString(row, cols, "Newsletter Opt-in") == "Yes",
		RegisteredAt:    registeredAt,
	}
}

func headerMatches(row []interface{}) bool {
	if len(row) < len(headerRow) {
		return false
	}
	for i, want := range headerRow {
		got, ok := row[i].(string)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func cellString(row []interface{}, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringOrEmpty(p *string) string {
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
