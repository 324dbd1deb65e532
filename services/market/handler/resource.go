package handler

import (
	"context"
	"net/http"

	"marketplace/services/market/helpers"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

// crudService is the part of every resource service the shared handlers need
type crudService[T any] interface {
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id int64) error
}

// resource implements get, create, update and delete for one entity type.
// Handler names in logs are prefixed with the entity, e.g. "user.CreateHandler".
type resource[T any] struct {
	service crudService[T]
	entity  string
}

// GetByIDHandler handles GET /<resource>/:id
func (r resource[T]) GetByIDHandler(c *gin.Context) {
	name := r.entity + ".GetByIDHandler"

	id, ok := helpers.ParseID(c, name, "id")
	if !ok {
		return
	}

	rec, err := r.service.Get(c.Request.Context(), id)
	if err != nil {
		helpers.HandleServiceError(c, name, err, map[string]any{"id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, rec)
	helpers.LogSuccess(name, r.entity+" retrieved successfully", map[string]any{"id": id})
}

// CreateHandler handles POST /<resource>
func (r resource[T]) CreateHandler(c *gin.Context) {
	name := r.entity + ".CreateHandler"

	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		helpers.HandleBindError(c, name, err)
		return
	}

	if err := r.service.Create(c.Request.Context(), &rec); err != nil {
		helpers.HandleServiceError(c, name, err, nil)
		return
	}

	utils.EmptyResponse(c, http.StatusCreated)
	helpers.LogSuccess(name, r.entity+" created successfully", map[string]any{"record": rec})
}

// UpdateHandler handles PUT /<resource>. The body carries the id of the record to replace.
func (r resource[T]) UpdateHandler(c *gin.Context) {
	name := r.entity + ".UpdateHandler"

	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		helpers.HandleBindError(c, name, err)
		return
	}

	if err := r.service.Update(c.Request.Context(), &rec); err != nil {
		helpers.HandleServiceError(c, name, err, nil)
		return
	}

	utils.EmptyResponse(c, http.StatusOK)
	helpers.LogSuccess(name, r.entity+" updated successfully", map[string]any{"record": rec})
}

// DeleteHandler handles DELETE /<resource>/:id
func (r resource[T]) DeleteHandler(c *gin.Context) {
	name := r.entity + ".DeleteHandler"

	id, ok := helpers.ParseID(c, name, "id")
	if !ok {
		return
	}

	if err := r.service.Delete(c.Request.Context(), id); err != nil {
		helpers.HandleServiceError(c, name, err, map[string]any{"id": id})
		return
	}

	utils.EmptyResponse(c, http.StatusOK)
	helpers.LogSuccess(name, r.entity+" deleted successfully", map[string]any{"id": id})
}

// respondList writes a list result, logging the count on success
func respondList[T any](c *gin.Context, name string, recs []T, err error, ctx map[string]any) {
	if err != nil {
		helpers.HandleServiceError(c, name, err, ctx)
		return
	}
	if recs == nil {
		recs = []T{}
	}

	utils.JSONResponse(c, http.StatusOK, recs)

	fields := map[string]any{"count": len(recs)}
	for k, v := range ctx {
		fields[k] = v
	}
	helpers.LogSuccess(name, "records retrieved successfully", fields)
}
