// File: internal/model/comment.go
package model

import "time"

type Comment struct {
	ID        int       `db:"id" json:"id"`
	Author    string    `db:"author" json:"author"`
	Content   string    `db:"content" json:"content"`
	Page      string    `db:"page" json:"page"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
