package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"file-wrangler/internal/app/model"
	"file-wrangler/internal/app/repository"
)

// Ensure OperationDB implements OperationDAO
var _ repository.OperationDAO = (*OperationDB)(nil)

// OperationDB stores bulk operation reports in PostgreSQL.
type OperationDB struct {
	db *sql.DB
}

// Open connects to PostgreSQL and ensures the history schema exists.
func Open(connectionString string) (*OperationDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS operations (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		root TEXT NOT NULL DEFAULT '',
		destination TEXT NOT NULL DEFAULT '',
		total INTEGER NOT NULL DEFAULT 0,
		succeeded INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0,
		skipped INTEGER NOT NULL DEFAULT 0,
		started_at TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS operation_items (
		id BIGSERIAL PRIMARY KEY,
		operation_id TEXT NOT NULL REFERENCES operations(id),
		path TEXT NOT NULL,
		target TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		error_kind TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_operation_items_operation_id ON operation_items(operation_id);
	CREATE INDEX IF NOT EXISTS idx_operations_started_at ON operations(started_at);`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &OperationDB{db: db}, nil
}

// NewOperationDB wraps an existing connection, used by unit tests.
func NewOperationDB(db *sql.DB) *OperationDB {
	return &OperationDB{db: db}
}

func (odb *OperationDB) Close() error {
	return odb.db.Close()
}

func (odb *OperationDB) RecordReport(report *model.Report) error {
	tx, err := odb.db.Begin()
	if err != nil {
		return fmt.Errorf("begin failed: %w", err)
	}
	defer tx.Rollback()

	insertOp := `INSERT INTO operations (id, kind, root, destination, total, succeeded, failed, skipped, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.Exec(insertOp,
		report.ID, string(report.Kind), report.Root, report.Destination,
		report.Total, report.Succeeded, report.Failed, report.Skipped,
		report.Started, report.Finished)
	if err != nil {
		return fmt.Errorf("failed to insert operation: %w", err)
	}

	insertItem := `INSERT INTO operation_items (operation_id, path, target, status, error_kind, message)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, item := range report.Items {
		_, err = tx.Exec(insertItem,
			report.ID, item.Path, item.Target, string(item.Status), item.ErrorKind, item.Message)
		if err != nil {
			return fmt.Errorf("failed to insert operation item: %w", err)
		}
	}

	return tx.Commit()
}

func (odb *OperationDB) GetRecent(limit, offset int, kind string) ([]repository.Operation, error) {
	query := `
		SELECT id, kind, root, destination, total, succeeded, failed, skipped, started_at, finished_at
		FROM operations
		WHERE ($3 = '' OR kind = $3)
		ORDER BY started_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := odb.db.Query(query, limit, offset, kind)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var operations []repository.Operation
	for rows.Next() {
		var op repository.Operation
		err = rows.Scan(&op.ID, &op.Kind, &op.Root, &op.Destination,
			&op.Total, &op.Succeeded, &op.Failed, &op.Skipped,
			&op.StartedAt, &op.FinishedAt)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		operations = append(operations, op)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return operations, nil
}

func (odb *OperationDB) GetByID(id string) (*repository.Operation, []repository.OperationItem, error) {
	query := `
		SELECT id, kind, root, destination, total, succeeded, failed, skipped, started_at, finished_at
		FROM operations
		WHERE id = $1`

	var op repository.Operation
	err := odb.db.QueryRow(query, id).Scan(&op.ID, &op.Kind, &op.Root, &op.Destination,
		&op.Total, &op.Succeeded, &op.Failed, &op.Skipped,
		&op.StartedAt, &op.FinishedAt)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("query failed: %w", err)
	}

	itemQuery := `
		SELECT id, operation_id, path, target, status, error_kind, message
		FROM operation_items
		WHERE operation_id = $1
		ORDER BY id`

	rows, err := odb.db.Query(itemQuery, id)
	if err != nil {
		return nil, nil, fmt.Errorf("item query failed: %w", err)
	}
	defer rows.Close()

	var items []repository.OperationItem
	for rows.Next() {
		var item repository.OperationItem
		err = rows.Scan(&item.ID, &item.OperationID, &item.Path, &item.Target,
			&item.Status, &item.ErrorKind, &item.Message)
		if err != nil {
			return nil, nil, fmt.Errorf("item scan failed: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return &op, items, nil
}

func (odb *OperationDB) Count(kind string) (int, error) {
	var count int
	err := odb.db.QueryRow(`SELECT COUNT(*) FROM operations WHERE ($1 = '' OR kind = $1)`, kind).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return count, nil
}
