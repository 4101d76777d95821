package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thumbert/bust-sub001/internal/analysis"
)

var ErrRunNotFound = errors.New("run not found")

// Run is one stored batch of hour counts.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Source    string    `json:"source"`
	Items     []RunItem `json:"items"`
}

type RunItem struct {
	Bucket    string `json:"bucket"`
	Term      string `json:"term"`
	Zone      string `json:"zone"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Hours     int    `json:"hours"`
}

type RunSummary struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Source    string    `json:"source"`
	Items     int       `json:"items"`
}

// NewRun snapshots counts under a fresh run id.
func NewRun(source string, counts []analysis.Count, now time.Time) Run {
	r := Run{
		ID:        uuid.NewString(),
		CreatedAt: now.UTC(),
		Source:    source,
		Items:     make([]RunItem, 0, len(counts)),
	}
	for _, c := range counts {
		r.Items = append(r.Items, RunItem{
			Bucket:    c.Bucket.String(),
			Term:      c.Term.Term.String(),
			Zone:      c.Term.Loc.String(),
			StartDate: c.Term.Term.Start.String(),
			EndDate:   c.Term.Term.End.String(),
			Hours:     c.Hours,
		})
	}
	return r
}

func SaveRun(db *sql.DB, r Run) error {
	if _, err := uuid.Parse(r.ID); err != nil {
		return fmt.Errorf("run id %q: %w", r.ID, err)
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO count_run(id, created_utc, source) VALUES (?, ?, ?)
	`, r.ID, fixedRFC3339Nano(r.CreatedAt), r.Source); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO count_run_item(run_id, seq, bucket, term, zone, start_date, end_date, hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, it := range r.Items {
		if _, err := stmt.Exec(r.ID, i, it.Bucket, it.Term, it.Zone, it.StartDate, it.EndDate, it.Hours); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func LoadRun(db *sql.DB, id string) (Run, error) {
	var (
		r       Run
		created string
	)
	err := db.QueryRow(`
		SELECT id, created_utc, source FROM count_run WHERE id = ?
	`, id).Scan(&r.ID, &created, &r.Source)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrRunNotFound
	}
	if err != nil {
		return Run{}, err
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Run{}, err
	}

	rows, err := db.Query(`
		SELECT bucket, term, zone, start_date, end_date, hours
		FROM count_run_item
		WHERE run_id = ?
		ORDER BY seq
	`, id)
	if err != nil {
		return Run{}, err
	}
	defer rows.Close()

	r.Items = []RunItem{}
	for rows.Next() {
		var it RunItem
		if err := rows.Scan(&it.Bucket, &it.Term, &it.Zone, &it.StartDate, &it.EndDate, &it.Hours); err != nil {
			return Run{}, err
		}
		r.Items = append(r.Items, it)
	}
	if err := rows.Err(); err != nil {
		return Run{}, err
	}
	return r, nil
}

// ListRuns returns the most recent runs first.
func ListRuns(db *sql.DB, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT r.id, r.created_utc, r.source, COUNT(i.seq)
		FROM count_run r
		LEFT JOIN count_run_item i ON i.run_id = r.id
		GROUP BY r.id, r.created_utc, r.source
		ORDER BY r.created_utc DESC, r.id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RunSummary, 0, limit)
	for rows.Next() {
		var (
			s       RunSummary
			created string
		)
		if err := rows.Scan(&s.ID, &created, &s.Source, &s.Items); err != nil {
			return nil, err
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// fixedRFC3339Nano is fixed width so TEXT ordering matches time ordering.
func fixedRFC3339Nano(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
}
