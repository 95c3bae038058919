// File: internal/handler/crud/ai_endpoints.go
package crud

import (
	"context"

	"eduai-api/internal/api"
	"eduai-api/internal/database"
	"eduai-api/internal/model"
	"eduai-api/internal/store"
)

func aiEndpointResponse(e *model.AIEndpoint) *api.AIEndpointResponse {
	return &api.AIEndpointResponse{
		ID:        e.ID,
		Name:      e.Name,
		URL:       e.URL,
		Model:     e.Model,
		APIKey:    e.APIKey,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
	}
}

// AIEndpoints configures the /ai-endpoints resource.
func AIEndpoints() *Resource[api.AIEndpointRequest, api.AIEndpointResponse] {
	return &Resource[api.AIEndpointRequest, api.AIEndpointResponse]{
		Name: "endpoint",
		List: func(ctx context.Context, db database.DB) ([]api.AIEndpointResponse, error) {
			items, err := store.ListAIEndpoints(ctx, db)
			if err != nil {
				return nil, err
			}
			out := make([]api.AIEndpointResponse, len(items))
			for i := range items {
				out[i] = *aiEndpointResponse(&items[i])
			}
			return out, nil
		},
		Get: func(ctx context.Context, db database.DB, id int) (*api.AIEndpointResponse, error) {
			e, err := store.GetAIEndpointByID(ctx, db, id)
			if err != nil {
				return nil, err
			}
			return aiEndpointResponse(e), nil
		},
		Create: func(ctx context.Context, db database.DB, req *api.AIEndpointRequest) (*api.AIEndpointResponse, error) {
			e, err := store.CreateAIEndpoint(ctx, db, &model.AIEndpoint{
				Name:   req.Name,
				URL:    req.URL,
				Model:  req.Model,
				APIKey: req.APIKey,
				Active: req.Active,
			})
			if err != nil {
				return nil, err
			}
			return aiEndpointResponse(e), nil
		},
		Update: func(ctx context.Context, db database.DB, id int, req *api.AIEndpointRequest) (*api.AIEndpointResponse, error) {
			e, err := store.UpdateAIEndpoint(ctx, db, &model.AIEndpoint{
				ID:     id,
				Name:   req.Name,
				URL:    req.URL,
				Model:  req.Model,
				APIKey: req.APIKey,
				Active: req.Active,
			})
			if err != nil {
				return nil, err
			}
			return aiEndpointResponse(e), nil
		},
		Delete: store.DeleteAIEndpoint,
	}
}
