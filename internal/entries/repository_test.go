package entries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	rows [][]any
	pos  int
}

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.rows) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	row := f.rows[f.pos-1]
	for i, d := range dest {
		switch v := d.(type) {
		case *string:
			*v = row[i].(string)
		case **string:
			if row[i] == nil {
				*v = nil
			} else {
				s := row[i].(string)
				*v = &s
			}
		case *time.Time:
			*v = row[i].(time.Time)
		}
	}
	return nil
}

func (f *fakeRows) Err() error { return nil }

func TestScanEntries(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	rows := &fakeRows{rows: [][]any{
		{"e1", "u1", at, "2024-06-01", "tr123", "Daylight", "Harry Styles", "great morning"},
		{"e2", "u1", at, "2024-06-01", nil, "Vampire", "Olivia Rodrigo", nil},
	}}

	entries, err := scanEntries(rows)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "e1", entries[0].ID)
	assert.Equal(t, "tr123", entries[0].Song.TrackID)
	assert.Equal(t, "great morning", entries[0].Notes)
	assert.Equal(t, "2024-06-01", string(entries[0].LocalDate))

	// NULL track_id and notes scan to zero values.
	assert.Empty(t, entries[1].Song.TrackID)
	assert.Empty(t, entries[1].Notes)
}

func TestYearBounds(t *testing.T) {
	from, to := yearBounds(2024)
	assert.Equal(t, "2024-01-01", from)
	assert.Equal(t, "2024-12-31", to)

	from, to = yearBounds(987)
	assert.Equal(t, "0987-01-01", from)
	assert.Equal(t, "0987-12-31", to)
}
