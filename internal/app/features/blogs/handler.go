// Package blogs provides the blog post CRUD API.
//
// Endpoints (mounted under /api):
//   - GET    /blogs      - list posts, optional status/category filters
//   - POST   /blog/new   - create a post
//   - GET    /blog/{id}  - fetch one post
//   - PUT    /blog/{id}  - update a post
//   - DELETE /blog/{id}  - delete a post
package blogs

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	blogstore "github.com/inkpost/inkpost/internal/app/store/blogs"
	"github.com/inkpost/inkpost/internal/app/system/jsonutil"
	"github.com/inkpost/inkpost/internal/app/system/normalize"
	"github.com/inkpost/inkpost/internal/app/system/timeouts"
	"github.com/inkpost/inkpost/internal/domain/models"
)

// Handler handles blog post API requests.
type Handler struct {
	store  *blogstore.Store
	logger *zap.Logger
}

// NewHandler creates a new blogs handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		store:  blogstore.New(db),
		logger: logger,
	}
}

// List handles GET /api/blogs. Absent query filters impose no constraint;
// an empty result set is a success with count 0.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := blogstore.Filter{
		Status:   normalize.Status(q.Get("status")),
		Category: normalize.QueryParam(q.Get("category")),
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	posts, err := h.store.List(ctx, filter)
	if err != nil {
		h.logger.Error("failed to list blogs", zap.Error(err))
		jsonutil.Fail(w, http.StatusInternalServerError, "failed to fetch blogs")
		return
	}

	jsonutil.List(w, len(posts), posts)
}

// Get handles GET /api/blog/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	post, err := h.store.GetByID(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, id, err)
		return
	}

	jsonutil.Data(w, http.StatusOK, post)
}

// Create handles POST /api/blog/new. All five fields must be present and
// status must be a known value before the store is touched; remaining field
// constraints are the store's responsibility.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if missing := in.missingFields(); len(missing) > 0 {
		jsonutil.Fail(w, http.StatusBadRequest,
			"missing required fields: "+strings.Join(missing, ", "))
		return
	}
	if !models.IsValidStatus(in.Status) {
		jsonutil.Fail(w, http.StatusBadRequest, "status must be either published or draft")
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	post, err := h.store.Create(ctx, models.BlogPost{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Status:      in.Status,
	})
	if err != nil {
		h.writeStoreError(w, r, "", err)
		return
	}

	h.logger.Info("blog created",
		zap.String("id", post.ID.Hex()),
		zap.String("title", post.Title))

	jsonutil.Data(w, http.StatusCreated, post)
}

// Update handles PUT /api/blog/{id}. Only the fields present in the body are
// touched; each touched field is re-validated by the store.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in updateInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	post, err := h.store.Update(ctx, id, blogstore.Patch{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Status:      in.Status,
	})
	if err != nil {
		h.writeStoreError(w, r, id, err)
		return
	}

	h.logger.Info("blog updated", zap.String("id", id))

	jsonutil.Data(w, http.StatusOK, post)
}

// Delete handles DELETE /api/blog/{id}. Hard delete; a repeat delete of the
// same id reports not found.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if err := h.store.Delete(ctx, id); err != nil {
		h.writeStoreError(w, r, id, err)
		return
	}

	h.logger.Info("blog deleted", zap.String("id", id))

	jsonutil.Data(w, http.StatusOK, struct{}{})
}

// writeStoreError translates store errors into the response envelope.
// Malformed identifiers and absent records are reported distinctly.
func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, id string, err error) {
	var ve *blogstore.ValidationError

	switch {
	case errors.Is(err, blogstore.ErrInvalidID):
		jsonutil.Fail(w, http.StatusBadRequest, "invalid blog id")
	case errors.Is(err, blogstore.ErrNotFound):
		jsonutil.Fail(w, http.StatusNotFound, "blog not found")
	case errors.As(err, &ve):
		jsonutil.FailMessages(w, "validation failed", ve.Messages())
	default:
		h.logger.Error("blog store operation failed",
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.String("id", id))
		jsonutil.Fail(w, http.StatusInternalServerError, "internal server error")
	}
}
