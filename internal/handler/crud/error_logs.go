// File: internal/handler/crud/error_logs.go
package crud

import (
	"context"

	"eduai-api/internal/api"
	"eduai-api/internal/database"
	"eduai-api/internal/model"
	"eduai-api/internal/store"
)

func errorLogResponse(l *model.ErrorLog) *api.ErrorLogResponse {
	return &api.ErrorLogResponse{
		ID:        l.ID,
		Message:   l.Message,
		Source:    l.Source,
		Stack:     l.Stack,
		CreatedAt: l.CreatedAt,
	}
}

// ErrorLogs configures the /error-logs resource. Error logs are
// append-only from the API's point of view: there is no update route.
func ErrorLogs() *Resource[api.ErrorLogRequest, api.ErrorLogResponse] {
	return &Resource[api.ErrorLogRequest, api.ErrorLogResponse]{
		Name: "error log",
		List: func(ctx context.Context, db database.DB) ([]api.ErrorLogResponse, error) {
			items, err := store.ListErrorLogs(ctx, db)
			if err != nil {
				return nil, err
			}
			out := make([]api.ErrorLogResponse, len(items))
			for i := range items {
				out[i] = *errorLogResponse(&items[i])
			}
			return out, nil
		},
		Get: func(ctx context.Context, db database.DB, id int) (*api.ErrorLogResponse, error) {
			l, err := store.GetErrorLogByID(ctx, db, id)
			if err != nil {
				return nil, err
			}
			return errorLogResponse(l), nil
		},
		Create: func(ctx context.Context, db database.DB, req *api.ErrorLogRequest) (*api.ErrorLogResponse, error) {
			l, err := store.CreateErrorLog(ctx, db, &model.ErrorLog{
				Message: req.Message,
				Source:  req.Source,
				Stack:   req.Stack,
			})
			if err != nil {
				return nil, err
			}
			return errorLogResponse(l), nil
		},
		Delete: store.DeleteErrorLog,
	}
}
