package dal

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"gorm.io/gorm"

	"gamegroove/utils"
)

// Row is one generic tabular result row keyed by column name. A missing key
// and a NULL cell are treated identically by the mappers.
type Row map[string]interface{}

// operation names one stored operation and the order of its named parameters.
// The operation name, parameter names and result column names are the
// compatibility surface of the GAMEGROOVE schema and must not change.
type operation struct {
	Name   string
	Params []string
}

// callSQL renders the operation as a CALL statement for writes.
func (op operation) callSQL() string {
	return "CALL " + op.Name + "(" + op.placeholders() + ")"
}

// querySQL renders the operation as a row-returning invocation for reads.
func (op operation) querySQL() string {
	return "SELECT * FROM " + op.Name + "(" + op.placeholders() + ")"
}

func (op operation) placeholders() string {
	names := make([]string, len(op.Params))
	for i, p := range op.Params {
		names[i] = "@" + p
	}
	return strings.Join(names, ", ")
}

// DefaultTimeout bounds every store call unless the Store is configured
// otherwise.
const DefaultTimeout = 60 * time.Second

// Store executes named stored operations against the GAMEGROOVE database.
// Each call acquires its own connection from the pool, runs exactly one
// operation bounded by the configured timeout, and never retries. Failures
// are logged through the injected logger and returned unchanged. A Store is
// stateless beyond its configuration and safe to share across requests.
type Store struct {
	db      *gorm.DB
	log     *utils.Logger
	timeout time.Duration
}

func NewStore(db *gorm.DB, log *utils.Logger, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Store{db: db, log: log, timeout: timeout}
}

// exec runs a write operation and reports how many rows it affected.
func (s *Store) exec(ctx context.Context, component string, op operation, args map[string]interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx := s.db.WithContext(ctx).Exec(op.callSQL(), bind(op, args)...)
	if tx.Error != nil {
		s.log.ErrorLog(component, op.Name, tx.Error)
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// queryRows runs a read operation and maps the full result set.
func (s *Store) queryRows(ctx context.Context, component string, op operation, args map[string]interface{}) ([]Row, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.db.WithContext(ctx).Raw(op.querySQL(), bind(op, args)...).Rows()
	if err != nil {
		s.log.ErrorLog(component, op.Name, err)
		return nil, err
	}
	defer rows.Close()

	collected, err := collectRows(rows)
	if err != nil {
		s.log.ErrorLog(component, op.Name, err)
		return nil, err
	}
	return collected, nil
}

// queryRow runs a read operation and returns its first row, or nil when the
// operation matched nothing. Callers map nil to a zero-value record.
func (s *Store) queryRow(ctx context.Context, component string, op operation, args map[string]interface{}) (Row, error) {
	rows, err := s.queryRows(ctx, component, op, args)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// bind pairs the operation's parameter names with the supplied arguments in
// declared order.
func bind(op operation, args map[string]interface{}) []interface{} {
	bound := make([]interface{}, 0, len(op.Params))
	for _, p := range op.Params {
		bound = append(bound, sql.Named(p, args[p]))
	}
	return bound
}

func collectRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		values := make([]interface{}, len(cols))
		pointers := make([]interface{}, len(cols))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
