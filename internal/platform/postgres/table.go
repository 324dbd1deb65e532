package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	model "marketplace/internal/models"
)

type scanner interface {
	Scan(dest ...any) error
}

// table is the CRUD client shared by the entity stores. Entity-specific reads
// go through query with their own WHERE clause.
type table[T any, P interface {
	*T
	model.Entity
}] struct {
	db     *sql.DB
	entity string
	name   string
	scan   func(row scanner) (T, error)
	values func(rec *T) []any

	selectSQL string
	insertSQL string
	upsertSQL string
	deleteSQL string
}

func newTable[T any, P interface {
	*T
	model.Entity
}](db *sql.DB, entity, name string, columns []string, scan func(scanner) (T, error), values func(*T) []any) table[T, P] {
	placeholders := make([]string, len(columns))
	updates := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		updates[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}
	cols := strings.Join(columns, ", ")
	seq := fmt.Sprintf("pg_get_serial_sequence('%s', 'id')", name)

	return table[T, P]{
		db:     db,
		entity: entity,
		name:   name,
		scan:   scan,
		values: values,

		selectSQL: fmt.Sprintf("SELECT id, %s FROM %s", cols, name),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
			name, cols, strings.Join(placeholders, ", ")),
		// The identity sequence is moved past client-chosen ids so later inserts do not collide.
		upsertSQL: fmt.Sprintf(`WITH saved AS (
	INSERT INTO %s (id, %s) VALUES ($%d, %s)
	ON CONFLICT (id) DO UPDATE SET %s
	RETURNING id
)
SELECT setval(%s, GREATEST(saved.id, COALESCE(pg_sequence_last_value(%s::regclass), 0))) FROM saved`,
			name, cols, len(columns)+1, strings.Join(placeholders, ", "),
			strings.Join(updates, ", "), seq, seq),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE id = $1", name),
	}
}

// query runs selectSQL with an optional clause and returns the rows ordered by id
func (t table[T, P]) query(ctx context.Context, where string, args ...any) ([]T, error) {
	q := t.selectSQL
	if where != "" {
		q += " WHERE " + where
	}
	q += " ORDER BY id"

	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: query %s: %w", t.name, MapError(err))
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		rec, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan %s: %w", t.entity, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate %s: %w", t.name, MapError(err))
	}
	return out, nil
}

func (t table[T, P]) FindAll(ctx context.Context) ([]T, error) {
	return t.query(ctx, "")
}

func (t table[T, P]) FindByID(ctx context.Context, id int64) (T, error) {
	rec, err := t.scan(t.db.QueryRowContext(ctx, t.selectSQL+" WHERE id = $1", id))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("postgres: find %s %d: %w", t.entity, id, MapError(err))
	}
	return rec, nil
}

func (t table[T, P]) Save(ctx context.Context, rec *T) error {
	p := P(rec)
	values := t.values(rec)

	if p.Identity() == 0 {
		var id int64
		if err := t.db.QueryRowContext(ctx, t.insertSQL, values...).Scan(&id); err != nil {
			return fmt.Errorf("postgres: insert %s: %w", t.entity, MapError(err))
		}
		p.SetIdentity(id)
		return nil
	}

	args := append(values, p.Identity())
	var seq int64
	if err := t.db.QueryRowContext(ctx, t.upsertSQL, args...).Scan(&seq); err != nil {
		return fmt.Errorf("postgres: save %s %d: %w", t.entity, p.Identity(), MapError(err))
	}
	return nil
}

func (t table[T, P]) DeleteByID(ctx context.Context, id int64) error {
	res, err := t.db.ExecContext(ctx, t.deleteSQL, id)
	if err != nil {
		return fmt.Errorf("postgres: delete %s %d: %w", t.entity, id, MapError(err))
	}
	if err := checkRowsAffected(res, t.entity, id); err != nil {
		return fmt.Errorf("postgres: delete: %w", err)
	}
	return nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func nullableInt(v *int32) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *v, Valid: true}
}

func idFromNull(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func intFromNull(n sql.NullInt32) *int32 {
	if !n.Valid {
		return nil
	}
	v := n.Int32
	return &v
}
