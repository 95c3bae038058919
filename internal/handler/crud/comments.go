// File: internal/handler/crud/comments.go
package crud

import (
	"context"

	"eduai-api/internal/api"
	"eduai-api/internal/database"
	"eduai-api/internal/model"
	"eduai-api/internal/store"
)

func commentResponse(cm *model.Comment) *api.CommentResponse {
	return &api.CommentResponse{
		ID:        cm.ID,
		Author:    cm.Author,
		Content:   cm.Content,
		Page:      cm.Page,
		CreatedAt: cm.CreatedAt,
	}
}

// Comments configures the /comments resource.
func Comments() *Resource[api.CommentRequest, api.CommentResponse] {
	return &Resource[api.CommentRequest, api.CommentResponse]{
		Name: "comment",
		List: func(ctx context.Context, db database.DB) ([]api.CommentResponse, error) {
			items, err := store.ListComments(ctx, db)
			if err != nil {
				return nil, err
			}
			out := make([]api.CommentResponse, len(items))
			for i := range items {
				out[i] = *commentResponse(&items[i])
			}
			return out, nil
		},
		Get: func(ctx context.Context, db database.DB, id int) (*api.CommentResponse, error) {
			cm, err := store.GetCommentByID(ctx, db, id)
			if err != nil {
				return nil, err
			}
			return commentResponse(cm), nil
		},
		Create: func(ctx context.Context, db database.DB, req *api.CommentRequest) (*api.CommentResponse, error) {
			cm, err := store.CreateComment(ctx, db, &model.Comment{
				Author:  req.Author,
				Content: req.Content,
				Page:    req.Page,
			})
			if err != nil {
				return nil, err
			}
			return commentResponse(cm), nil
		},
		Update: func(ctx context.Context, db database.DB, id int, req *api.CommentRequest) (*api.CommentResponse, error) {
			cm, err := store.UpdateComment(ctx, db, &model.Comment{
				ID:      id,
				Author:  req.Author,
				Content: req.Content,
				Page:    req.Page,
			})
			if err != nil {
				return nil, err
			}
			return commentResponse(cm), nil
		},
		Delete: store.DeleteComment,
	}
}
