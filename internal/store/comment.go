// File: internal/store/comment.go
package store

import (
	"context"
	"fmt"

	"eduai-api/internal/database"
	"eduai-api/internal/model"
)

func ListComments(ctx context.Context, db database.DB) ([]model.Comment, error) {
	rows, err := db.Query(ctx,
		`SELECT id, author, content, page, created_at
		 FROM comments ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListComments: %w", err)
	}
	defer rows.Close()

	var out []model.Comment
	for rows.Next() {
		var cm model.Comment
		if err := rows.Scan(&cm.ID, &cm.Author, &cm.Content, &cm.Page, &cm.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListComments: %w", err)
		}
		out = append(out, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListComments: %w", err)
	}
	return out, nil
}

func GetCommentByID(ctx context.Context, db database.DB, id int) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`SELECT id, author, content, page, created_at
		 FROM comments WHERE id = $1`,
		id,
	)
	cm := &model.Comment{}
	if err := row.Scan(&cm.ID, &cm.Author, &cm.Content, &cm.Page, &cm.CreatedAt); err != nil {
		return nil, fmt.Errorf("GetCommentByID: %w", err)
	}
	return cm, nil
}

func CreateComment(ctx context.Context, db database.DB, cm *model.Comment) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO comments (author, content, page)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		cm.Author,
		cm.Content,
		cm.Page,
	)
	if err := row.Scan(&cm.ID, &cm.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateComment: %w", err)
	}
	return cm, nil
}

func UpdateComment(ctx context.Context, db database.DB, cm *model.Comment) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`UPDATE comments SET author = $1, content = $2, page = $3
		 WHERE id = $4
		 RETURNING created_at`,
		cm.Author,
		cm.Content,
		cm.Page,
		cm.ID,
	)
	if err := row.Scan(&cm.CreatedAt); err != nil {
		return nil, fmt.Errorf("UpdateComment: %w", err)
	}
	return cm, nil
}

func DeleteComment(ctx context.Context, db database.DB, id int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM comments WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteComment: %w", err)
	}
	return nil
}
