package entries

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/songbird/backend/internal/contracts"
)

// Repository reads journal entries for the analytics engine.
// SSOT: entry persistence lives here only.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new entry repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetLocalDates retrieves the distinct local dates an owner has logged
// on, newest first. This is the input to the streak calculator.
func (r *Repository) GetLocalDates(ctx context.Context, ownerID string) ([]contracts.DayKey, error) {
	query := `
		SELECT DISTINCT local_date
		FROM entries
		WHERE owner_id = $1
		ORDER BY local_date DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []contracts.DayKey
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, contracts.DayKey(date))
	}
	return dates, rows.Err()
}

// CountByOwner counts all entries an owner has ever logged.
func (r *Repository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT COUNT(*) FROM entries WHERE owner_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// GetByDay retrieves every owner's entries for one local date. Feeds
// the daily leaderboard.
func (r *Repository) GetByDay(ctx context.Context, date contracts.DayKey) ([]contracts.Entry, error) {
	query := `
		SELECT id, owner_id, logged_at, local_date, track_id, title, artist, notes
		FROM entries
		WHERE local_date = $1
		ORDER BY logged_at ASC
	`

	rows, err := r.pool.Query(ctx, query, string(date))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	return r.attachPeople(ctx, entries)
}

// GetByOwnerAndYear retrieves one owner's entries for a calendar year,
// people tags included. Feeds the wrapped summarizer.
func (r *Repository) GetByOwnerAndYear(ctx context.Context, ownerID string, year int) ([]contracts.Entry, error) {
	query := `
		SELECT id, owner_id, logged_at, local_date, track_id, title, artist, notes
		FROM entries
		WHERE owner_id = $1
		  AND local_date >= $2 AND local_date <= $3
		ORDER BY logged_at ASC
	`

	from, to := yearBounds(year)
	rows, err := r.pool.Query(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	return r.attachPeople(ctx, entries)
}

// ListYears retrieves the distinct calendar years an owner has logged
// in, newest first.
func (r *Repository) ListYears(ctx context.Context, ownerID string) ([]int, error) {
	query := `
		SELECT DISTINCT CAST(LEFT(local_date, 4) AS INTEGER) AS year
		FROM entries
		WHERE owner_id = $1
		ORDER BY year DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	return years, rows.Err()
}

// GetLyrics retrieves stored lyric texts for a set of song keys. Songs
// without stored lyrics are simply absent from the result.
func (r *Repository) GetLyrics(ctx context.Context, songKeys []string) (map[string]string, error) {
	if len(songKeys) == 0 {
		return map[string]string{}, nil
	}

	query := `
		SELECT song_key, lyrics
		FROM song_lyrics
		WHERE song_key = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, songKeys)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lyrics := make(map[string]string)
	for rows.Next() {
		var key, text string
		if err := rows.Scan(&key, &text); err != nil {
			return nil, err
		}
		lyrics[key] = text
	}
	return lyrics, rows.Err()
}

// attachPeople loads the people tagged on each entry in one query.
func (r *Repository) attachPeople(ctx context.Context, entries []contracts.Entry) ([]contracts.Entry, error) {
	if len(entries) == 0 {
		return entries, nil
	}

	ids := make([]string, 0, len(entries))
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		ids = append(ids, e.ID)
		index[e.ID] = i
	}

	query := `
		SELECT entry_id, person_name
		FROM entry_people
		WHERE entry_id = ANY($1)
		ORDER BY person_name ASC
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryID, name string
		if err := rows.Scan(&entryID, &name); err != nil {
			return nil, err
		}
		if i, ok := index[entryID]; ok {
			entries[i].People = append(entries[i].People, contracts.PersonRef{Name: name})
		}
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows rowScanner) ([]contracts.Entry, error) {
	var entries []contracts.Entry
	for rows.Next() {
		var e contracts.Entry
		var localDate string
		var trackID, notes *string
		if err := rows.Scan(
			&e.ID, &e.OwnerID, &e.LoggedAt, &localDate, &trackID,
			&e.Song.Title, &e.Song.Artist, &notes,
		); err != nil {
			return nil, err
		}
		e.LocalDate = contracts.DayKey(localDate)
		if trackID != nil {
			e.Song.TrackID = *trackID
		}
		if notes != nil {
			e.Notes = *notes
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// yearBounds returns the inclusive first and last day keys of a year.
func yearBounds(year int) (string, string) {
	return fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year)
}
