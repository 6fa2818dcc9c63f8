package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/wisbaq/webfolio-be/internal/models"
	"github.com/wisbaq/webfolio-be/internal/services"
	"github.com/wisbaq/webfolio-be/internal/storage"
)

// maxUploadSize caps multipart request memory for image uploads.
const maxUploadSize = 10 << 20 // 10MB

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	service services.BlogServiceProvider
	uploads *storage.Store
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service services.BlogServiceProvider, uploads *storage.Store) *BlogHandler {
	return &BlogHandler{service: service, uploads: uploads}
}

// GetAll handles the request to get all blog posts.
func (h *BlogHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.GetAllBlogs(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve blogs")
		http.Error(w, "Error retrieving blogs", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

// Get handles the request to get a single blog post by its ID.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Blog not found", http.StatusNotFound)
		return
	}

	blog, err := h.service.GetBlogByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Blog not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("blog_id", id).Msg("Failed to retrieve blog")
		http.Error(w, "Error retrieving blog", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

// parseForm caps the request body at maxUploadSize and parses the
// multipart form. ParseMultipartForm's own argument is only a memory
// threshold, so the hard limit comes from MaxBytesReader. Returns
// false with a 400 already written when the body is oversize or
// malformed.
func (h *BlogHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "Uploaded file too large", http.StatusBadRequest)
		} else {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
		}
		return false
	}
	return true
}

// Create handles authorized creation of a blog post from a multipart
// form. When an image part is present it is persisted first and its
// path reference stored with the row.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	image, ok := h.saveUpload(w, r)
	if !ok {
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")

	blog, err := h.service.CreateBlog(r.Context(), title, description, image)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create blog")
		http.Error(w, "Error adding blog", http.StatusInternalServerError)
		return
	}

	log.Info().Int64("blog_id", blog.ID).Str("image", blog.Image).Msg("Blog created")
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Blog added successfully"})
}

// Update handles authorized update of a blog post. A new image part
// replaces the stored reference; otherwise the client-supplied
// imageUrl field is stored verbatim.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Blog not found", http.StatusNotFound)
		return
	}

	if !h.parseForm(w, r) {
		return
	}

	image, ok := h.saveUpload(w, r)
	if !ok {
		return
	}
	if image == "" {
		image = r.FormValue("imageUrl")
	}

	title := r.FormValue("title")
	description := r.FormValue("description")

	if err := h.service.UpdateBlog(r.Context(), id, title, description, image); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Blog not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("blog_id", id).Msg("Failed to update blog")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to update blog"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Blog updated successfully"})
}

// Delete handles authorized deletion of a blog post. The uploaded
// image file stays on disk.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Blog not found", http.StatusNotFound)
		return
	}

	if err := h.service.DeleteBlog(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Blog not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("blog_id", id).Msg("Failed to delete blog")
		http.Error(w, "Error deleting blog", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Blog deleted successfully"))
}

// saveUpload persists the "image" part of an already-parsed multipart
// form, if one was sent. Returns the stored path reference ("" when no
// part is present) and whether the caller should proceed; on failure a
// 500 has already been written.
func (h *BlogHandler) saveUpload(w http.ResponseWriter, r *http.Request) (string, bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", true
		}
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return "", false
	}
	defer file.Close()

	path, err := h.uploads.Save(header.Filename, file)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to save upload")
		http.Error(w, "Error saving uploaded file", http.StatusInternalServerError)
		return "", false
	}
	return path, true
}
