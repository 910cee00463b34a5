package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/hbomb79/Videomania/internal/database"
)

var (
	ErrNotFound = errors.New("document not found")

	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
)

// Collection provides the basic document operations against a single
// table. Every document is addressed by its ID *and* its partition key;
// a read or delete which supplies the wrong partition key behaves exactly
// as if the document does not exist.
type Collection[M any] struct {
	table           string
	partitionColumn string
	columns         []string
}

func newCollection[M any](table string, partitionColumn string, columns ...string) Collection[M] {
	return Collection[M]{table: table, partitionColumn: partitionColumn, columns: columns}
}

func (c Collection[M]) Name() string { return c.table }

// Add inserts a new document. The model must carry `db` tags for every
// column of the collection.
func (c Collection[M]) Add(ctx context.Context, db database.Queryable, model *M) error {
	placeholders := make([]string, len(c.columns))
	for i, col := range c.columns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf(`INSERT INTO %s(%s) VALUES (%s)`, c.table, strings.Join(c.columns, ", "), strings.Join(placeholders, ", "))
	if _, err := db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to insert in to %s: %w", c.table, err)
	}

	return nil
}

// Get fetches the document with the ID and partition key given. ErrNotFound
// is returned when no such document exists.
func (c Collection[M]) Get(ctx context.Context, db database.Queryable, id string, partitionKey string) (*M, error) {
	return c.get(ctx, db, c.selectBuilder(), id, partitionKey)
}

// GetForUpdate behaves like Get, however the row is locked (SELECT .. FOR UPDATE)
// until the surrounding transaction completes.
func (c Collection[M]) GetForUpdate(ctx context.Context, db database.Queryable, id string, partitionKey string) (*M, error) {
	return c.get(ctx, db, c.selectBuilder().Suffix("FOR UPDATE"), id, partitionKey)
}

func (c Collection[M]) get(ctx context.Context, db database.Queryable, builder squirrel.SelectBuilder, id string, partitionKey string) (*M, error) {
	query, args, err := builder.
		Where(squirrel.Eq{"id": id, c.partitionColumn: partitionKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct get query for %s: %w", c.table, err)
	}

	var result M
	if err := db.GetContext(ctx, &result, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get %s from %s: %w", id, c.table, err)
	}

	return &result, nil
}

// Query returns every document matching the filter provided, in the order
// specified. A nil filter matches all documents.
func (c Collection[M]) Query(ctx context.Context, db database.Queryable, filter squirrel.Sqlizer, orderBy ...string) ([]M, error) {
	builder := c.selectBuilder().OrderBy(orderBy...)
	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct query for %s: %w", c.table, err)
	}

	results := make([]M, 0)
	if err := db.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.table, err)
	}

	return results, nil
}

// Delete removes the document with the ID and partition key given. If no
// document matches both values then ErrNotFound is returned and nothing
// is deleted.
func (c Collection[M]) Delete(ctx context.Context, db database.Queryable, id string, partitionKey string) error {
	query, args, err := psql.Delete(c.table).
		Where(squirrel.Eq{"id": id, c.partitionColumn: partitionKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to construct delete query for %s: %w", c.table, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete %s from %s: %w", id, c.table, err)
	}

	if affected, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to confirm deletion of %s from %s: %w", id, c.table, err)
	} else if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (c Collection[M]) selectBuilder() squirrel.SelectBuilder {
	return psql.Select(c.columns...).From(c.table)
}
