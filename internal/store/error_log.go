// File: internal/store/error_log.go
package store

import (
	"context"
	"fmt"

	"eduai-api/internal/database"
	"eduai-api/internal/model"
)

func ListErrorLogs(ctx context.Context, db database.DB) ([]model.ErrorLog, error) {
	rows, err := db.Query(ctx,
		`SELECT id, message, source, stack, created_at
		 FROM error_logs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListErrorLogs: %w", err)
	}
	defer rows.Close()

	var out []model.ErrorLog
	for rows.Next() {
		var l model.ErrorLog
		if err := rows.Scan(&l.ID, &l.Message, &l.Source, &l.Stack, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListErrorLogs: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListErrorLogs: %w", err)
	}
	return out, nil
}

func GetErrorLogByID(ctx context.Context, db database.DB, id int) (*model.ErrorLog, error) {
	row := db.QueryRow(ctx,
		`SELECT id, message, source, stack, created_at
		 FROM error_logs WHERE id = $1`,
		id,
	)
	l := &model.ErrorLog{}
	if err := row.Scan(&l.ID, &l.Message, &l.Source, &l.Stack, &l.CreatedAt); err != nil {
		return nil, fmt.Errorf("GetErrorLogByID: %w", err)
	}
	return l, nil
}

func CreateErrorLog(ctx context.Context, db database.DB, l *model.ErrorLog) (*model.ErrorLog, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO error_logs (message, source, stack)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		l.Message,
		l.Source,
		l.Stack,
	)
	if err := row.Scan(&l.ID, &l.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateErrorLog: %w", err)
	}
	return l, nil
}

func DeleteErrorLog(ctx context.Context, db database.DB, id int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM error_logs WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteErrorLog: %w", err)
	}
	return nil
}
