package sheetstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header() []interface{} {
	row := make([]interface{}, len(headerRow))
	for i, h := range headerRow {
		row[i] = h
	}
	return row
}

func TestRowToRegistration(t *testing.T) {
	cols := columnIndex(header())

	t.Run("maps a full row", func(t *testing.T) {
		row := []interface{}{"1756600000000", "Ann", "Lee", "ann@example.com", "+15551234567", "curious", "Yes", "2026-08-30T10:00:00Z"}
		reg := rowToRegistration(row, cols, 1)

		assert.Equal(t, int64(1756600000000), reg.ID)
		assert.Equal(t, "Ann", reg.FirstName)
		assert.Equal(t, "Lee", reg.LastName)
		assert.Equal(t, "ann@example.com", reg.Email)
		require.NotNil(t, reg.Phone)
		assert.Equal(t, "+15551234567", *reg.Phone)
		require.NotNil(t, reg.Expectations)
		assert.Equal(t, "curious", *reg.Expectations)
		assert.True(t, reg.NewsletterOptIn)
		assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), reg.RegisteredAt.UTC())
	})

	t.Run("degrades malformed cells to zero values", func(t *testing.T) {
		row := []interface{}{"not-a-number", "Ann", "Lee", "ann@example.com", "", "", "nope", "yesterday"}
		reg := rowToRegistration(row, cols, 7)

		assert.Equal(t, int64(7), reg.ID) // fallback id
		assert.Nil(t, reg.Phone)
		assert.Nil(t, reg.Expectations)
		assert.False(t, reg.NewsletterOptIn)
		assert.True(t, reg.RegisteredAt.IsZero())
	})

	t.Run("short rows do not panic", func(t *testing.T) {
		reg := rowToRegistration([]interface{}{"3", "Ann"}, cols, 1)
		assert.Equal(t, int64(3), reg.ID)
		assert.Equal(t, "Ann", reg.FirstName)
		assert.Empty(t, reg.Email)
	})

	t.Run("columns resolve by name, not position", func(t *testing.T) {
		reordered := []interface{}{"Email", "ID", "First Name"}
		c := columnIndex(reordered)
		reg := rowToRegistration([]interface{}{"ann@example.com", "5", "Ann"}, c, 1)

		assert.Equal(t, int64(5), reg.ID)
		assert.Equal(t, "ann@example.com", reg.Email)
		assert.Equal(t, "Ann", reg.FirstName)
	})
}

func TestHeaderMatches(t *testing.T) {
	assert.True(t, headerMatches(header()))
	assert.False(t, headerMatches([]interface{}{"ID", "First Name"}))
	assert.False(t, headerMatches([]interface{}{"id", "first", "last", "email", "phone", "exp", "news", "date"}))

	extra := append(header(), "Extra")
	assert.True(t, headerMatches(extra))
}
