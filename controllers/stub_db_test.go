package controllers

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// stubStep is one scripted query result. Steps are served in order; any
// exec (insert/update/delete) simply succeeds with one row affected.
type stubStep struct {
	columns []string
	rows    [][]driver.Value
}

type stubState struct {
	mu    sync.Mutex
	steps []stubStep
}

func (s *stubState) next(query string) (stubStep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.steps) == 0 {
		return stubStep{}, fmt.Errorf("unexpected query: %s", query)
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	return step, nil
}

type stubDriver struct {
	state *stubState
}

func (d *stubDriver) Open(string) (driver.Conn, error) {
	return &stubConn{state: d.state}, nil
}

type stubConn struct {
	state *stubState
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) { return stubTx{}, nil }

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func (c *stubConn) Query(query string, args []driver.Value) (driver.Rows, error) {
	step, err := c.state.next(query)
	if err != nil {
		return nil, err
	}
	return &stubRows{columns: step.columns, rows: step.rows}, nil
}

func (c *stubConn) Exec(string, []driver.Value) (driver.Result, error) {
	return stubResult{}, nil
}

type stubResult struct{}

func (stubResult) LastInsertId() (int64, error) { return 0, nil }
func (stubResult) RowsAffected() (int64, error) { return 1, nil }

type stubRows struct {
	columns []string
	rows    [][]driver.Value
	idx     int
}

func (r *stubRows) Columns() []string { return r.columns }

func (r *stubRows) Close() error { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	row := r.rows[r.idx]
	for i := range dest {
		dest[i] = nil
	}
	for i := range row {
		dest[i] = row[i]
	}
	r.idx++
	return nil
}

func newStubGormDB(t *testing.T, steps []stubStep) *gorm.DB {
	t.Helper()
	state := &stubState{steps: steps}
	driverName := fmt.Sprintf("stub_controllers_%d", time.Now().UnixNano())
	sql.Register(driverName, &stubDriver{state: state})

	sqlDB, err := sql.Open(driverName, "")
	if err != nil {
		t.Fatalf("failed to open sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create gorm db: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return gormDB
}
