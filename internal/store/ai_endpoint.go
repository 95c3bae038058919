// File: internal/store/ai_endpoint.go
package store

import (
	"context"
	"fmt"

	"eduai-api/internal/database"
	"eduai-api/internal/model"
)

func ListAIEndpoints(ctx context.Context, db database.DB) ([]model.AIEndpoint, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, url, model, api_key, active, created_at
		 FROM ai_endpoints ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAIEndpoints: %w", err)
	}
	defer rows.Close()

	var out []model.AIEndpoint
	for rows.Next() {
		var e model.AIEndpoint
		if err := rows.Scan(&e.ID, &e.Name, &e.URL, &e.Model, &e.APIKey, &e.Active, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListAIEndpoints: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAIEndpoints: %w", err)
	}
	return out, nil
}

func GetAIEndpointByID(ctx context.Context, db database.DB, id int) (*model.AIEndpoint, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, url, model, api_key, active, created_at
		 FROM ai_endpoints WHERE id = $1`,
		id,
	)
	e := &model.AIEndpoint{}
	if err := row.Scan(&e.ID, &e.Name, &e.URL, &e.Model, &e.APIKey, &e.Active, &e.CreatedAt); err != nil {
		return nil, fmt.Errorf("GetAIEndpointByID: %w", err)
	}
	return e, nil
}

func CreateAIEndpoint(ctx context.Context, db database.DB, e *model.AIEndpoint) (*model.AIEndpoint, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO ai_endpoints (name, url, model, api_key, active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		e.Name,
		e.URL,
		e.Model,
		e.APIKey,
		e.Active,
	)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateAIEndpoint: %w", err)
	}
	return e, nil
}

// UpdateAIEndpoint updates by id. The RETURNING scan surfaces pgx.ErrNoRows
// when the row does not exist.
func UpdateAIEndpoint(ctx context.Context, db database.DB, e *model.AIEndpoint) (*model.AIEndpoint, error) {
	row := db.QueryRow(ctx,
		`UPDATE ai_endpoints
		 SET name = $1, url = $2, model = $3, api_key = $4, active = $5
		 WHERE id = $6
		 RETURNING created_at`,
		e.Name,
		e.URL,
		e.Model,
		e.APIKey,
		e.Active,
		e.ID,
	)
	if err := row.Scan(&e.CreatedAt); err != nil {
		return nil, fmt.Errorf("UpdateAIEndpoint: %w", err)
	}
	return e, nil
}

func DeleteAIEndpoint(ctx context.Context, db database.DB, id int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM ai_endpoints WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteAIEndpoint: %w", err)
	}
	return nil
}
