package repo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type sqlCall struct {
	query string
	args  []any
}

// scriptedSQL answers each query constant with canned values.
type scriptedSQL struct {
	calls []sqlCall

	row     map[string][]any
	rows    map[string][][]any
	tag     map[string]string
	failing map[string]error
}

func (s *scriptedSQL) record(query string, args []any) {
	s.calls = append(s.calls, sqlCall{query: query, args: args})
}

func (s *scriptedSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	s.record(query, args)
	if err := s.failing[query]; err != nil {
		return pgconn.CommandTag{}, err
	}
	return pgconn.NewCommandTag(s.tag[query]), nil
}

func (s *scriptedSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	s.record(query, args)
	if err := s.failing[query]; err != nil {
		return valueRow{err: err}
	}
	values, ok := s.row[query]
	if !ok {
		return valueRow{err: pgx.ErrNoRows}
	}
	return valueRow{values: values}
}

func (s *scriptedSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	s.record(query, args)
	if err := s.failing[query]; err != nil {
		return nil, err
	}
	return &valueRows{rows: s.rows[query]}, nil
}

func (s *scriptedSQL) lastCall(t interface{ Fatalf(string, ...any) }) sqlCall {
	if len(s.calls) == 0 {
		t.Fatalf("no SQL was executed")
	}
	return s.calls[len(s.calls)-1]
}

type valueRow struct {
	values []any
	err    error
}

func (r valueRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

type valueRows struct {
	testRowsBase
	rows [][]any
	idx  int
}

func (r *valueRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *valueRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.rows) {
		return pgx.ErrNoRows
	}
	return assign(dest, r.rows[r.idx-1])
}

func (r *valueRows) Err() error { return nil }

func (r *valueRows) Close() {}

type testRowsBase struct{}

func (testRowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (testRowsBase) Conn() *pgx.Conn { return nil }

func (testRowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (testRowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (testRowsBase) RawValues() [][]byte { return nil }

func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("unexpected scan args: got %d want %d", len(dest), len(values))
	}
	for i := range dest {
		target := reflect.ValueOf(dest[i])
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("scan target %d is not a pointer", i)
		}
		elem := target.Elem()
		if values[i] == nil {
			elem.Set(reflect.Zero(elem.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		switch {
		case v.Type().AssignableTo(elem.Type()):
			elem.Set(v)
		case v.Type().ConvertibleTo(elem.Type()):
			elem.Set(v.Convert(elem.Type()))
		default:
			return fmt.Errorf("scan target %d: cannot assign %s to %s", i, v.Type(), elem.Type())
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }
