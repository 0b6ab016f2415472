package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"file-wrangler/internal/app/model"
	"file-wrangler/internal/app/repository"
)

// Ensure OperationDB implements OperationDAO
var _ repository.OperationDAO = (*OperationDB)(nil)

// OperationDB stores bulk operation reports in SQLite.
type OperationDB struct {
	db *sql.DB
}

func (odb *OperationDB) Close() error {
	return odb.db.Close()
}

// RecordReport writes the operation row and its per-entry items in one
// transaction.
func (odb *OperationDB) RecordReport(report *model.Report) error {
	tx, err := odb.db.Begin()
	if err != nil {
		return fmt.Errorf("begin failed: %w", err)
	}
	defer tx.Rollback()

	insertOp := `INSERT INTO operations (id, kind, root, destination, total, succeeded, failed, skipped, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.Exec(insertOp,
		report.ID, string(report.Kind), report.Root, report.Destination,
		report.Total, report.Succeeded, report.Failed, report.Skipped,
		report.Started, report.Finished)
	if err != nil {
		return fmt.Errorf("failed to insert operation: %w", err)
	}

	insertItem := `INSERT INTO operation_items (operation_id, path, target, status, error_kind, message)
		VALUES (?, ?, ?, ?, ?, ?)`
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
		WHERE (? = '' OR kind = ?)
		ORDER BY started_at DESC
		LIMIT ? OFFSET ?`

	rows, err := odb.db.Query(query, kind, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	operations := make([]repository.Operation, 0)
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
	return operations, rows.Err()
}

func (odb *OperationDB) GetByID(id string) (*repository.Operation, []repository.OperationItem, error) {
	query := `
		SELECT id, kind, root, destination, total, succeeded, failed, skipped, started_at, finished_at
		FROM operations
		WHERE id = ?`

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
		WHERE operation_id = ?
		ORDER BY id`

	rows, err := odb.db.Query(itemQuery, id)
	if err != nil {
		return nil, nil, fmt.Errorf("item query failed: %w", err)
	}
	defer rows.Close()

	items := make([]repository.OperationItem, 0)
	for rows.Next() {
		var item repository.OperationItem
		err = rows.Scan(&item.ID, &item.OperationID, &item.Path, &item.Target,
			&item.Status, &item.ErrorKind, &item.Message)
		if err != nil {
			return nil, nil, fmt.Errorf("item scan failed: %w", err)
		}
		items = append(items, item)
	}
	return &op, items, rows.Err()
}

func (odb *OperationDB) Count(kind string) (int, error) {
	var count int
	err := odb.db.QueryRow(`SELECT COUNT(*) FROM operations WHERE (? = '' OR kind = ?)`, kind, kind).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return count, nil
}
