package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/services"
	"hotel-admin/utils"
)

// Reader is the read side of a resource service.
type Reader[T any] interface {
	Name() string
	List(ctx context.Context, q utils.PageQuery) (utils.Page[T], error)
	Get(ctx context.Context, id string) (*T, error)
}

// Writer is a resource service that also accepts writes.
type Writer[T any] interface {
	Reader[T]
	Create(ctx context.Context, m *T) (*T, error)
	Update(ctx context.Context, id string, m *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Payload is a request body that turns into a model once it validated.
type Payload[T any] interface {
	Model() *T
}

type ReadController[T any] struct {
	svc Reader[T]
}

func NewReadController[T any](svc Reader[T]) *ReadController[T] {
	return &ReadController[T]{svc: svc}
}

// ----------------------------------------------------
// GET /api/<resource>?page=&limit=&search=&sort_by=&sort_order=
// ----------------------------------------------------

func (ctl *ReadController[T]) List(c *gin.Context) {
	page, err := ctl.svc.List(c.Request.Context(), utils.ParsePageQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, ctl.svc.Name()+" list retrieved", page)
}

// ----------------------------------------------------
// GET /api/<resource>/:id
// ----------------------------------------------------

func (ctl *ReadController[T]) Get(c *gin.Context) {
	m, err := ctl.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, ctl.svc.Name()+" retrieved", m)
}

// ResourceController serves the full CRUD surface of one resource. P is the
// request body type bound on create and update.
type ResourceController[T any, P Payload[T]] struct {
	ReadController[T]
	svc Writer[T]
}

func NewResourceController[T any, P Payload[T]](svc Writer[T]) *ResourceController[T, P] {
	return &ResourceController[T, P]{
		ReadController: ReadController[T]{svc: svc},
		svc:            svc,
	}
}

// ----------------------------------------------------
// POST /api/<resource>
// ----------------------------------------------------

func (ctl *ResourceController[T, P]) Create(c *gin.Context) {
	m, err := ctl.bind(c)
	if err != nil {
		respondError(c, err)
		return
	}
	created, err := ctl.svc.Create(c.Request.Context(), m)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, ctl.svc.Name()+" created", created)
}

// ----------------------------------------------------
// PUT /api/<resource>/:id
// ----------------------------------------------------

func (ctl *ResourceController[T, P]) Update(c *gin.Context) {
	m, err := ctl.bind(c)
	if err != nil {
		respondError(c, err)
		return
	}
	updated, err := ctl.svc.Update(c.Request.Context(), c.Param("id"), m)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, ctl.svc.Name()+" updated", updated)
}

// ----------------------------------------------------
// DELETE /api/<resource>/:id
// ----------------------------------------------------

func (ctl *ResourceController[T, P]) Delete(c *gin.Context) {
	if err := ctl.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, ctl.svc.Name()+" deleted", nil)
}

func (ctl *ResourceController[T, P]) bind(c *gin.Context) (*T, error) {
	var p P
	if err := c.ShouldBindJSON(&p); err != nil {
		return nil, badBody(err)
	}
	utils.TrimStrings(&p)
	if msgs := utils.ValidateStruct(p); len(msgs) > 0 {
		return nil, services.Validation("Invalid request body", msgs...)
	}
	return p.Model(), nil
}
