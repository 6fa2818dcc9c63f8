package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/wisbaq/webfolio-be/internal/models"
	"github.com/wisbaq/webfolio-be/internal/services"
)

// MetaTagHandler handles HTTP requests for meta tags. Unlike blog
// mutations, this entire surface is unauthenticated; the router keeps
// it outside the bearer gate.
type MetaTagHandler struct {
	service services.MetaTagServiceProvider
}

// NewMetaTagHandler creates a new MetaTagHandler.
func NewMetaTagHandler(service services.MetaTagServiceProvider) *MetaTagHandler {
	return &MetaTagHandler{service: service}
}

// MetaTagPayload defines the structure for meta tag create/update
// requests. SelectedValue is ignored on update.
type MetaTagPayload struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	SelectedValue string `json:"selectedValue"`
}

// GetAll handles the request to get all meta tags.
func (h *MetaTagHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.GetAllMetaTags(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve meta tags")
		http.Error(w, "Error retrieving meta tags", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// Get handles the request to get a single meta tag by its ID.
func (h *MetaTagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Meta tag not found", http.StatusNotFound)
		return
	}

	tag, err := h.service.GetMetaTagByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Meta tag not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("tag_id", id).Msg("Failed to retrieve meta tag")
		http.Error(w, "Error retrieving meta tag", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

// Create handles insertion of a new meta tag. Responds 200 rather than
// 201, which the admin frontend expects.
func (h *MetaTagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload MetaTagPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.CreateMetaTag(r.Context(), payload.Title, payload.Description, payload.SelectedValue); err != nil {
		log.Error().Err(err).Msg("Failed to create meta tag")
		http.Error(w, "Error inserting new meta tag", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("New meta tag added successfully"))
}

// Update handles rewriting a meta tag's title and description.
func (h *MetaTagHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Meta tag not found", http.StatusNotFound)
		return
	}

	var payload MetaTagPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tag, err := h.service.UpdateMetaTag(r.Context(), id, payload.Title, payload.Description)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Meta tag not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("tag_id", id).Msg("Failed to update meta tag")
		http.Error(w, "Error updating meta tag", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

// Delete handles removal of a meta tag.
func (h *MetaTagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Meta tag not found", http.StatusNotFound)
		return
	}

	if err := h.service.DeleteMetaTag(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Meta tag not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("tag_id", id).Msg("Failed to delete meta tag")
		http.Error(w, "Error deleting meta tag", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Meta tag deleted successfully"))
}
