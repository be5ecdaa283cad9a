package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/bloglist-be/internal/auth"
	"github.com/isdelr/bloglist-be/internal/models"
	"github.com/isdelr/bloglist-be/internal/services"
	"github.com/rs/zerolog/log"
)

// BlogHandler handles HTTP requests related to blogs.
type BlogHandler struct {
	service services.BlogServiceProvider
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service services.BlogServiceProvider) *BlogHandler {
	return &BlogHandler{service: service}
}

// GetAll handles the request to get all blogs.
func (h *BlogHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.GetAllBlogs()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve blogs")
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

// Get handles the request to get a single blog by its ID.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	blog, err := h.service.GetBlogByID(id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

// Create handles the request to create a new blog. The caller must carry a
// resolved identity; the new blog is owned by that caller.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := auth.UserFromContext(r.Context())
	if caller == nil {
		respondError(w, models.ErrTokenMissing)
		return
	}

	var payload BlogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := checkPayload(payload); err != nil {
		respondError(w, err)
		return
	}

	blog, err := h.service.CreateBlog(caller.ID, models.Blog{
		Title:  payload.Title,
		Author: payload.Author,
		URL:    payload.URL,
		Likes:  payload.Likes,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", caller.ID).Msg("Failed to create blog")
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, blog)
}

// Update handles the request to update an existing blog. No identity is
// required for updates.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload BlogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := checkPayload(payload); err != nil {
		respondError(w, err)
		return
	}

	blog, err := h.service.UpdateBlog(id, models.Blog{
		Title:  payload.Title,
		Author: payload.Author,
		URL:    payload.URL,
		Likes:  payload.Likes,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

// Delete handles the request to delete a blog. Only the owner may delete;
// deleting an absent id succeeds with no effect.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := auth.UserFromContext(r.Context())
	if caller == nil {
		respondError(w, models.ErrTokenMissing)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.DeleteBlog(id, caller.ID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
