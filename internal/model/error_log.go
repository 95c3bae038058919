// File: internal/model/error_log.go
package model

import "time"

type ErrorLog struct {
	ID        int       `db:"id" json:"id"`
	Message   string    `db:"message" json:"message"`
	Source    string    `db:"source" json:"source"`
	Stack     string    `db:"stack" json:"stack"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
