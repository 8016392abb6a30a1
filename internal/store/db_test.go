package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// fakeDB stubs DBTX by substring-matching SQL. Stubs are consumed in order,
// so repeated identical queries can answer differently across calls.
type fakeDB struct {
	rowStubs   []stub
	queryStubs []stub
	execStubs  []stub

	execLog  []string
	queryLog []string
}

type stub struct {
	match string
	vals  []any   // single-row result
	rows  [][]any // multi-row result
	tag   pgconn.CommandTag
	err   error
}

func (db *fakeDB) take(stubs *[]stub, sqlText string) (stub, bool) {
	for i, st := range *stubs {
		if strings.Contains(sqlText, st.match) {
			*stubs = append((*stubs)[:i], (*stubs)[i+1:]...)
			return st, true
		}
	}
	return stub{}, false
}

func (db *fakeDB) Exec(_ context.Context, sqlText string, _ ...any) (pgconn.CommandTag, error) {
	db.execLog = append(db.execLog, sqlText)
	if st, ok := db.take(&db.execStubs, sqlText); ok {
		return st.tag, st.err
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (db *fakeDB) Query(_ context.Context, sqlText string, _ ...any) (pgx.Rows, error) {
	db.queryLog = append(db.queryLog, sqlText)
	if st, ok := db.take(&db.queryStubs, sqlText); ok {
		if st.err != nil {
			return nil, st.err
		}
		return &fakeRows{rows: st.rows}, nil
	}
	return &fakeRows{}, nil
}

func (db *fakeDB) QueryRow(_ context.Context, sqlText string, _ ...any) pgx.Row {
	db.queryLog = append(db.queryLog, sqlText)
	if st, ok := db.take(&db.rowStubs, sqlText); ok {
		return fakeRow{vals: st.vals, err: st.err}
	}
	return fakeRow{err: pgx.ErrNoRows}
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignAll(dest, r.vals)
}

type fakeRows struct {
	rows [][]any
	pos  int
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assignAll(dest, r.rows[r.pos-1])
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func assignAll(dest, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("fake scan: %d destinations for %d values", len(dest), len(vals))
	}
	for i := range dest {
		if err := assign(dest[i], vals[i]); err != nil {
			return fmt.Errorf("fake scan arg %d: %w", i, err)
		}
	}
	return nil
}

func assign(dest, src any) error {
	switch d := dest.(type) {
	case *string:
		*d = src.(string)
	case *int:
		*d = src.(int)
	case *bool:
		*d = src.(bool)
	case *time.Time:
		*d = src.(time.Time)
	case *sql.NullString:
		if src == nil {
			*d = sql.NullString{}
		} else {
			*d = sql.NullString{String: src.(string), Valid: true}
		}
	case *sql.NullBool:
		if src == nil {
			*d = sql.NullBool{}
		} else {
			*d = sql.NullBool{Bool: src.(bool), Valid: true}
		}
	case *sql.NullTime:
		if src == nil {
			*d = sql.NullTime{}
		} else {
			*d = sql.NullTime{Time: src.(time.Time), Valid: true}
		}
	case *pq.StringArray:
		if src == nil {
			*d = nil
		} else {
			*d = pq.StringArray(src.([]string))
		}
	case *json.RawMessage:
		if src == nil {
			*d = nil
		} else {
			*d = json.RawMessage(src.([]byte))
		}
	default:
		return fmt.Errorf("unsupported destination %T", dest)
	}
	return nil
}
