// Package dbtest provides an in-memory database.DB for repository and
// seeder tests.
package dbtest

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"skillpath/internal/database"
)

type ExecCall struct {
	Query string
	Args  []any
	InTx  bool
}

// DB answers Query calls from canned rows keyed by a query substring and
// records every Exec.
type DB struct {
	mu sync.Mutex

	Rows     map[string][][]any
	QueryErr error
	ExecErr  error
	ExecFail string

	Execs      []ExecCall
	Committed  bool
	RolledBack bool
}

func New() *DB {
	return &DB{Rows: map[string][][]any{}}
}

func (d *DB) Close() error { return nil }

func (d *DB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	return d.exec(query, args, false)
}

func (d *DB) exec(query string, args []any, inTx bool) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ExecErr != nil && (d.ExecFail == "" || strings.Contains(query, d.ExecFail)) {
		return 0, d.ExecErr
	}
	d.Execs = append(d.Execs, ExecCall{Query: query, Args: args, InTx: inTx})
	return 1, nil
}

func (d *DB) Query(_ context.Context, query string, _ ...any) (database.Rows, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.QueryErr != nil {
		return nil, d.QueryErr
	}
	for key, rows := range d.Rows {
		if strings.Contains(query, key) {
			return &rowSet{rows: rows, idx: -1}, nil
		}
	}
	return &rowSet{idx: -1}, nil
}

func (d *DB) Begin(context.Context) (database.Tx, error) {
	return &tx{db: d}, nil
}

func (d *DB) ExecsMatching(substr string) []ExecCall {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []ExecCall
	for _, e := range d.Execs {
		if strings.Contains(e.Query, substr) {
			out = append(out, e)
		}
	}
	return out
}

type tx struct {
	db   *DB
	done bool
}

func (t *tx) Exec(_ context.Context, query string, args ...any) (int64, error) {
	return t.db.exec(query, args, true)
}

func (t *tx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, query, args...)
}

func (t *tx) Commit(context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	t.done = true
	t.db.Committed = true
	return nil
}

func (t *tx) Rollback(context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	if t.done {
		return nil
	}
	t.done = true
	t.db.RolledBack = true
	return nil
}

type rowSet struct {
	rows [][]any
	idx  int
}

func (r *rowSet) Close() {}

func (r *rowSet) Next() bool {
	r.idx++
	return r.idx < len(r.rows)
}

func (r *rowSet) Err() error { return nil }

// Scan assigns each column value to the matching destination pointer.
func (r *rowSet) Scan(dest ...any) error {
	if r.idx < 0 || r.idx >= len(r.rows) {
		return fmt.Errorf("scan outside result set")
	}
	row := r.rows[r.idx]
	if len(row) != len(dest) {
		return fmt.Errorf("scan: have %d columns, want %d", len(row), len(dest))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("scan: destination %d is not a pointer", i)
		}
		if row[i] == nil {
			dv.Elem().Set(reflect.Zero(dv.Elem().Type()))
			continue
		}
		sv := reflect.ValueOf(row[i])
		if !sv.Type().AssignableTo(dv.Elem().Type()) {
			if !sv.Type().ConvertibleTo(dv.Elem().Type()) {
				return fmt.Errorf("scan: column %d: cannot assign %s to %s", i, sv.Type(), dv.Elem().Type())
			}
			sv = sv.Convert(dv.Elem().Type())
		}
		dv.Elem().Set(sv)
	}
	return nil
}
