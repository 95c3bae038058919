// File: internal/handler/crud/crud.go

// Package crud provides the one generic REST resource handler shared by
// every flat collection (AI endpoints, comments, error logs). Each
// resource supplies its store accessors and request validation tags; the
// bind/validate/status-mapping contract lives here exactly once.
package crud

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"eduai-api/internal/api"
	"eduai-api/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// Resource wires a request type Req (validated by go-playground tags) and
// a response type Resp to store accessors. Nil accessors simply do not get
// a route.
type Resource[Req any, Resp any] struct {
	// Name is the lowercase singular used in error messages ("endpoint",
	// "comment", "error log").
	Name string

	List   func(ctx context.Context, db database.DB) ([]Resp, error)
	Get    func(ctx context.Context, db database.DB, id int) (*Resp, error)
	Create func(ctx context.Context, db database.DB, req *Req) (*Resp, error)
	Update func(ctx context.Context, db database.DB, id int, req *Req) (*Resp, error)
	Delete func(ctx context.Context, db database.DB, id int) error
}

// Register mounts the configured routes on g. The guard middleware, if
// any, is applied to mutating routes only.
func (r *Resource[Req, Resp]) Register(g *echo.Group, db database.DB, guard ...echo.MiddlewareFunc) {
	if r.List != nil {
		g.GET("", r.ListHandler(db))
	}
	if r.Get != nil {
		g.GET("/:id", r.GetHandler(db))
	}
	if r.Create != nil {
		g.POST("", r.CreateHandler(db), guard...)
	}
	if r.Update != nil {
		g.PUT("/:id", r.UpdateHandler(db), guard...)
	}
	if r.Delete != nil {
		g.DELETE("/:id", r.DeleteHandler(db), guard...)
	}
}

func (r *Resource[Req, Resp]) ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := r.List(c.Request().Context(), db)
		if err != nil {
			return r.internalError(c)
		}
		if items == nil {
			items = []Resp{}
		}
		return c.JSON(http.StatusOK, items)
	}
}

func (r *Resource[Req, Resp]) GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := r.pathID(c)
		if !ok {
			return r.invalidID(c)
		}
		item, err := r.Get(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return r.notFound(c)
			}
			return r.internalError(c)
		}
		return c.JSON(http.StatusOK, item)
	}
}

func (r *Resource[Req, Resp]) CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := r.bind(c)
		if req == nil {
			return err
		}
		item, err := r.Create(c.Request().Context(), db, req)
		if err != nil {
			return r.internalError(c)
		}
		return c.JSON(http.StatusCreated, item)
	}
}

func (r *Resource[Req, Resp]) UpdateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := r.pathID(c)
		if !ok {
			return r.invalidID(c)
		}
		req, err := r.bind(c)
		if req == nil {
			return err
		}
		item, err := r.Update(c.Request().Context(), db, id, req)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return r.notFound(c)
			}
			return r.internalError(c)
		}
		return c.JSON(http.StatusOK, item)
	}
}

func (r *Resource[Req, Resp]) DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := r.pathID(c)
		if !ok {
			return r.invalidID(c)
		}
		if err := r.Delete(c.Request().Context(), db, id); err != nil {
			return r.internalError(c)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// bind decodes and validates the request body. On failure it writes the
// 400 itself and returns a nil request; callers check the request, not the
// error, since c.JSON usually succeeds.
func (r *Resource[Req, Resp]) bind(c echo.Context) (*Req, error) {
	req := new(Req)
	if err := c.Bind(req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	}
	return req, nil
}

func (r *Resource[Req, Resp]) pathID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func (r *Resource[Req, Resp]) invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: fmt.Sprintf("Invalid %s ID", r.Name)})
}

func (r *Resource[Req, Resp]) notFound(c echo.Context) error {
	name := strings.ToUpper(r.Name[:1]) + r.Name[1:]
	return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: fmt.Sprintf("%s not found", name)})
}

// internalError deliberately hides store failure detail from callers.
func (r *Resource[Req, Resp]) internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
}
