package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// Postgres implements Store over a single jsonb-backed table. It tolerates a
// nil *sql.DB: reads return empty results and writes fail with ErrUnavailable,
// so the API stays live when the database is absent.
type Postgres struct {
	db *sql.DB
}

// NewPostgres creates a new Postgres document store over db, which may be nil.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

var _ Store = (*Postgres)(nil)

// Insert marshals doc to JSON and stores it; the id is assigned by the database.
func (s *Postgres) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if s.db == nil {
		return "", ErrUnavailable
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	const q = `INSERT INTO documents (collection, data) VALUES ($1, $2) RETURNING id::text`
	var id string
	if err := s.db.QueryRowContext(ctx, q, collection, payload).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// FindAll returns all documents of a collection with their ids injected.
func (s *Postgres) FindAll(ctx context.Context, collection string) ([]map[string]any, error) {
	if s.db == nil {
		return []map[string]any{}, nil
	}

	const q = `SELECT id::text, data FROM documents WHERE collection = $1`
	rows, err := s.db.QueryContext(ctx, q, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]map[string]any, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByID fetches a single document.
func (s *Postgres) FindByID(ctx context.Context, collection, id string) (map[string]any, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	const q = `SELECT id::text, data FROM documents WHERE collection = $1 AND id = $2::uuid`
	doc, err := scanDocument(s.db.QueryRowContext(ctx, q, collection, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// FindFirst returns the first document matching f.
func (s *Postgres) FindFirst(ctx context.Context, collection string, f Filter) (map[string]any, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	where, args := filterSQL(f, 2)
	q := `SELECT id::text, data FROM documents WHERE collection = $1` + where + ` LIMIT 1`
	doc, err := scanDocument(s.db.QueryRowContext(ctx, q, append([]any{collection}, args...)...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Count returns the number of documents matching f.
func (s *Postgres) Count(ctx context.Context, collection string, f Filter) (int, error) {
	if s.db == nil {
		return 0, nil
	}

	where, args := filterSQL(f, 2)
	q := `SELECT COUNT(*) FROM documents WHERE collection = $1` + where
	var n int
	if err := s.db.QueryRowContext(ctx, q, append([]any{collection}, args...)...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// SetFields merges fields into the document payload via jsonb concatenation.
func (s *Postgres) SetFields(ctx context.Context, collection, id string, fields map[string]any) error {
	if s.db == nil {
		return ErrUnavailable
	}
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal patch: %w", err)
	}

	const q = `UPDATE documents SET data = data || $3 WHERE collection = $1 AND id = $2::uuid`
	res, err := s.db.ExecContext(ctx, q, collection, id, patch)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Collections lists distinct collection names holding at least one document.
func (s *Postgres) Collections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return []string{}, nil
	}

	const q = `SELECT DISTINCT collection FROM documents ORDER BY collection`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (map[string]any, error) {
	var (
		id   string
		data []byte
	)
	if err := row.Scan(&id, &data); err != nil {
		return nil, err
	}
	doc := make(map[string]any)
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document %s: %w", id, err)
	}
	doc["id"] = id
	return doc, nil
}

// filterSQL renders f as an AND clause with placeholders starting at startIdx.
// f.Field comes from code constants, never from request input; values are
// always parameterized. Documents missing the field are excluded by In and
// included by NotIn.
func filterSQL(f Filter, startIdx int) (string, []any) {
	values := f.In
	if len(f.In) == 0 {
		values = f.NotIn
	}
	if f.Field == "" || len(values) == 0 {
		return "", nil
	}

	placeholders := make([]string, len(values))
	args := make([]any, len(values))
	for i, v := range values {
		placeholders[i] = fmt.Sprintf("$%d", startIdx+i)
		args[i] = v
	}
	in := strings.Join(placeholders, ", ")

	if len(f.In) > 0 {
		return fmt.Sprintf(" AND data->>'%s' IN (%s)", f.Field, in), args
	}
	return fmt.Sprintf(" AND COALESCE(data->>'%s', '') NOT IN (%s)", f.Field, in), args
}
