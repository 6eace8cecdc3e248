package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kina524/sql-data-analyzy-app/internal/models"
)

// Field names an updatable users column. The fixed set keeps column names out
// of operator-controlled input.
type Field string

const (
	FieldBenchPress Field = "bench_press"
	FieldIQ         Field = "iq"
	FieldAge        Field = "age"
	FieldName       Field = "name"
)

var updateSQL = map[Field]string{
	FieldBenchPress: `UPDATE users SET bench_press = ? WHERE id = ?`,
	FieldIQ:         `UPDATE users SET iq = ? WHERE id = ?`,
	FieldAge:        `UPDATE users SET age = ? WHERE id = ?`,
	FieldName:       `UPDATE users SET name = ? WHERE id = ?`,
}

// InsertUser adds one row and returns the assigned id.
func (s *Store) InsertUser(ctx context.Context, u models.User) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert: %w", err)
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO users (name, age, iq, bench_press) VALUES (?, ?, ?, ?)`,
		u.Name, u.Age, u.IQ, u.BenchPress,
	)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert: %w", err)
	}
	return id, nil
}

// DeleteUser removes the row with the given id.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// UpdateUserField sets a single column on the row with the given id.
func (s *Store) UpdateUserField(ctx context.Context, id int64, field Field, value any) error {
	stmt, ok := updateSQL[field]
	if !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}
	if _, err := tx.ExecContext(ctx, stmt, value, id); err != nil {
		tx.Rollback()
		return fmt.Errorf("update %s for user %d: %w", field, id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update: %w", err)
	}
	return nil
}

// UserExists reports whether a row with the given id is present.
func (s *Store) UserExists(ctx context.Context, id int64) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count user %d: %w", id, err)
	}
	return n > 0, nil
}

// ListUsers returns every row in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, age, iq, bench_press FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		var age, iq, bench sql.NullInt64
		if err := rows.Scan(&u.ID, &u.Name, &age, &iq, &bench); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Age = int(age.Int64)
		u.IQ = int(iq.Int64)
		u.BenchPress = int(bench.Int64)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
