//go:build unit || e2e

package dbtest

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// StubRow is a pgx.Row that scans fixed values, or fails with Err.
// Values must have the exact type of the matching destination.
type StubRow struct {
	Values []any
	Err    error
}

func (r StubRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(r.Values, dest)
}

// NoRows mimics QueryRow on an empty result.
func NoRows() StubRow {
	return StubRow{Err: pgx.ErrNoRows}
}

func assign(values, dest []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("stub row: scan %d columns, have %d", len(dest), len(values))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i])
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("stub row: destination %d is %T", i, dest[i])
		}
		elem := target.Elem()
		if v == nil {
			elem.SetZero()
			continue
		}
		value := reflect.ValueOf(v)
		if !value.Type().AssignableTo(elem.Type()) {
			return fmt.Errorf("stub row: cannot scan %T into %T", v, dest[i])
		}
		elem.Set(value)
	}
	return nil
}

// StubRows is a pgx.Rows over fixed rows. RowsErr is reported by Err after the last row.
type StubRows struct {
	Rows    [][]any
	RowsErr error

	pos    int
	closed bool
}

var _ pgx.Rows = (*StubRows)(nil)

func NewStubRows(rows ...[]any) *StubRows {
	return &StubRows{Rows: rows}
}

func (r *StubRows) Close() { r.closed = true }

func (r *StubRows) Err() error {
	if !r.closed {
		return nil
	}
	return r.RowsErr
}

func (r *StubRows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(r.Rows)))
}

func (r *StubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *StubRows) Next() bool {
	if r.closed {
		return false
	}
	r.pos++
	if r.pos > len(r.Rows) {
		r.closed = true
		return false
	}
	return true
}

func (r *StubRows) Scan(dest ...any) error {
	if r.pos == 0 || r.pos > len(r.Rows) {
		return fmt.Errorf("stub rows: scan outside of a row")
	}
	return assign(r.Rows[r.pos-1], dest)
}

func (r *StubRows) Values() ([]any, error) {
	if r.pos == 0 || r.pos > len(r.Rows) {
		return nil, fmt.Errorf("stub rows: no current row")
	}
	return r.Rows[r.pos-1], nil
}

func (r *StubRows) RawValues() [][]byte { return nil }

func (r *StubRows) Conn() *pgx.Conn { return nil }
