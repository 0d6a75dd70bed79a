// Package sqlite implements the persistent storage on top of SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const schema = `
CREATE TABLE IF NOT EXISTS packages (
	repository TEXT NOT NULL,
	architecture TEXT NOT NULL,
	base TEXT NOT NULL,
	data TEXT NOT NULL,
	PRIMARY KEY (repository, architecture, base)
);
CREATE TABLE IF NOT EXISTS build_queue (
	repository TEXT NOT NULL,
	architecture TEXT NOT NULL,
	base TEXT NOT NULL,
	data TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (repository, architecture, base)
);
CREATE TABLE IF NOT EXISTS workers (
	identifier TEXT PRIMARY KEY,
	address TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	repository TEXT NOT NULL,
	architecture TEXT NOT NULL,
	event TEXT NOT NULL,
	object_id TEXT NOT NULL,
	message TEXT,
	created_at INTEGER NOT NULL,
	data TEXT
);
CREATE INDEX IF NOT EXISTS idx_events_lookup ON events(repository, architecture, event, object_id);
`

// Storage implements ports.Storage using SQLite.
type Storage struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens the database at path and creates the schema if needed.
// Use ":memory:" for an in-memory database.
func Open(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open database"), "path", path)
	}
	// an in-memory database only lives as long as its connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to initialize schema"), "path", path)
	}
	return &Storage{db: db}, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// BuildQueueInsert adds pkg to the build queue, replacing an existing entry.
func (s *Storage) BuildQueueInsert(ctx context.Context, repository domain.RepositoryID, pkg *domain.Package) error {
	data, err := json.Marshal(pkg)
	if err != nil {
		return zerr.Wrap(err, "failed to encode package")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO build_queue (repository, architecture, base, data, created_at) VALUES (?, ?, ?, ?, ?)`,
		repository.Name, repository.Architecture, pkg.Base, string(data), time.Now().UnixNano(),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to insert into build queue"), "base", pkg.Base)
	}
	return nil
}

// BuildQueueGet returns the queued packages in insertion order.
func (s *Storage) BuildQueueGet(ctx context.Context, repository domain.RepositoryID) ([]domain.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM build_queue WHERE repository = ? AND architecture = ? ORDER BY created_at, base`,
		repository.Name, repository.Architecture,
	)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query build queue")
	}
	defer func() { _ = rows.Close() }()

	return scanPackages(rows)
}

// BuildQueueClear removes base from the queue, or every entry when base is empty.
func (s *Storage) BuildQueueClear(ctx context.Context, repository domain.RepositoryID, base string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `DELETE FROM build_queue WHERE repository = ? AND architecture = ?`
	args := []any{repository.Name, repository.Architecture}
	if base != "" {
		query += ` AND base = ?`
		args = append(args, base)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return zerr.Wrap(err, "failed to clear build queue")
	}
	return nil
}

// WorkersGet returns the persisted workers sorted by identifier.
func (s *Storage) WorkersGet(ctx context.Context) ([]domain.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT address, identifier FROM workers ORDER BY identifier`)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query workers")
	}
	defer func() { _ = rows.Close() }()

	var workers []domain.Worker
	for rows.Next() {
		var w domain.Worker
		if err := rows.Scan(&w.Address, &w.Identifier); err != nil {
			return nil, zerr.Wrap(err, "failed to scan worker")
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to iterate workers")
	}
	return workers, nil
}

// WorkersInsert stores worker, replacing one with the same identifier.
func (s *Storage) WorkersInsert(ctx context.Context, worker domain.Worker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO workers (identifier, address) VALUES (?, ?)`,
		worker.Identifier, worker.Address,
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to insert worker"), "worker", worker.Identifier)
	}
	return nil
}

// WorkersRemove deletes the worker with identifier, or all workers when it is empty.
func (s *Storage) WorkersRemove(ctx context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if identifier == "" {
		_, err = s.db.ExecContext(ctx, `DELETE FROM workers`)
	} else {
		_, err = s.db.ExecContext(ctx, `DELETE FROM workers WHERE identifier = ?`, identifier)
	}
	if err != nil {
		return zerr.Wrap(err, "failed to remove workers")
	}
	return nil
}

// EventInsert records event. A zero CreatedAt is set to the current time.
func (s *Storage) EventInsert(ctx context.Context, repository domain.RepositoryID, event *domain.Event) error {
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var data []byte
	if len(event.Data) > 0 {
		var err error
		if data, err = json.Marshal(event.Data); err != nil {
			return zerr.Wrap(err, "failed to encode event data")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (repository, architecture, event, object_id, message, created_at, data) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		repository.Name, repository.Architecture, event.Event, event.ObjectID, event.Message, createdAt.UnixNano(), string(data),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to insert event"), "event", event.Event)
	}
	return nil
}

// EventGet lists events newest first, filtered by event and objectID when set.
func (s *Storage) EventGet(
	ctx context.Context,
	repository domain.RepositoryID,
	event, objectID string,
	limit int,
) ([]domain.Event, error) {
	var query strings.Builder
	query.WriteString(`SELECT event, object_id, message, created_at, data FROM events WHERE repository = ? AND architecture = ?`)
	args := []any{repository.Name, repository.Architecture}
	if event != "" {
		query.WriteString(` AND event = ?`)
		args = append(args, event)
	}
	if objectID != "" {
		query.WriteString(` AND object_id = ?`)
		args = append(args, objectID)
	}
	query.WriteString(` ORDER BY created_at DESC, id DESC`)
	if limit > 0 {
		query.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query events")
	}
	defer func() { _ = rows.Close() }()

	var events []domain.Event
	for rows.Next() {
		var (
			e         domain.Event
			message   sql.NullString
			createdAt int64
			data      sql.NullString
		)
		if err := rows.Scan(&e.Event, &e.ObjectID, &message, &createdAt, &data); err != nil {
			return nil, zerr.Wrap(err, "failed to scan event")
		}
		e.Message = message.String
		e.CreatedAt = time.Unix(0, createdAt)
		if data.String != "" {
			if err := json.Unmarshal([]byte(data.String), &e.Data); err != nil {
				return nil, zerr.Wrap(err, "failed to decode event data")
			}
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to iterate events")
	}
	return events, nil
}

// PackageGet returns the requested packages sorted by base, or the whole
// catalog when no base is given. Unknown bases are skipped.
func (s *Storage) PackageGet(ctx context.Context, repository domain.RepositoryID, bases ...string) ([]domain.Package, error) {
	query := `SELECT data FROM packages WHERE repository = ? AND architecture = ?`
	args := []any{repository.Name, repository.Architecture}
	if len(bases) > 0 {
		query += ` AND base IN (?` + strings.Repeat(`, ?`, len(bases)-1) + `)`
		for _, base := range bases {
			args = append(args, base)
		}
	}
	query += ` ORDER BY base`

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query packages")
	}
	defer func() { _ = rows.Close() }()

	return scanPackages(rows)
}

// PackageUpdate inserts or replaces pkg in the catalog.
func (s *Storage) PackageUpdate(ctx context.Context, repository domain.RepositoryID, pkg *domain.Package) error {
	data, err := json.Marshal(pkg)
	if err != nil {
		return zerr.Wrap(err, "failed to encode package")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO packages (repository, architecture, base, data) VALUES (?, ?, ?, ?)`,
		repository.Name, repository.Architecture, pkg.Base, string(data),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to update package"), "base", pkg.Base)
	}
	return nil
}

func scanPackages(rows *sql.Rows) ([]domain.Package, error) {
	var packages []domain.Package
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, zerr.Wrap(err, "failed to scan package")
		}
		var pkg domain.Package
		if err := json.Unmarshal([]byte(data), &pkg); err != nil {
			return nil, zerr.Wrap(err, "failed to decode package")
		}
		packages = append(packages, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to iterate packages")
	}
	return packages, nil
}
