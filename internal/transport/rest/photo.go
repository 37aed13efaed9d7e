package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
	"github.com/heartmarshall/photo-curation-backend/internal/service/photo"
)

// Response messages for photo endpoints.
const (
	MsgPhotoSaved            = "Photo saved successfully"
	MsgTagsAdded             = "Tags added successfully"
	MsgProviderNotConfigured = "Unsplash API key is not configured in the environment variables"
	MsgInvalidPhotoID        = "Invalid photoId"
	MsgInvalidUserID         = domain.MsgInvalidUserID
)

type photoService interface {
	SearchProvider(ctx context.Context, query string) ([]domain.ProviderPhoto, error)
	SavePhoto(ctx context.Context, input photo.SavePhotoInput) (*domain.Photo, error)
	AddTags(ctx context.Context, input photo.AddTagsInput) ([]domain.Tag, error)
	SearchByTag(ctx context.Context, input photo.SearchByTagInput) ([]domain.Photo, error)
}

// PhotoHandler serves the /api/photos endpoints.
type PhotoHandler struct {
	svc photoService
	log *slog.Logger
}

// NewPhotoHandler creates a PhotoHandler.
func NewPhotoHandler(svc photoService, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{svc: svc, log: logger.With("handler", "photo")}
}

type savePhotoRequest struct {
	ImageURL       string   `json:"imageUrl"`
	Description    *string  `json:"description"`
	AltDescription *string  `json:"altDescription"`
	Tags           []string `json:"tags"`
	UserID         *string  `json:"userId"`
}

type addTagsRequest struct {
	Tags []string `json:"tags"`
}

type providerPhotoResponse struct {
	ImageURL       string  `json:"imageUrl"`
	Description    *string `json:"description"`
	AltDescription *string `json:"altDescription"`
}

type taggedPhotoResponse struct {
	ImageURL    string    `json:"imageUrl"`
	Description *string   `json:"description"`
	DateSaved   time.Time `json:"dateSaved"`
	Tags        []string  `json:"tags"`
}

type providerSearchResponse struct {
	Photos []providerPhotoResponse `json:"photos"`
}

type tagSearchResponse struct {
	Photos []taggedPhotoResponse `json:"photos"`
}

// SearchProvider handles GET /api/photos/search?query=.
func (h *PhotoHandler) SearchProvider(w http.ResponseWriter, r *http.Request) {
	photos, err := h.svc.SearchProvider(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			writeError(w, http.StatusBadRequest, domain.MsgQueryRequired)
		case errors.Is(err, domain.ErrProviderNotConfigured):
			writeError(w, http.StatusInternalServerError, MsgProviderNotConfigured)
		default:
			handleError(r.Context(), h.log, w, err, "Failed to search the images")
		}
		return
	}

	resp := providerSearchResponse{Photos: make([]providerPhotoResponse, len(photos))}
	for i, p := range photos {
		resp.Photos[i] = providerPhotoResponse{
			ImageURL:       p.ImageURL,
			Description:    p.Description,
			AltDescription: p.AltDescription,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// SavePhoto handles POST /api/photos.
func (h *PhotoHandler) SavePhoto(w http.ResponseWriter, r *http.Request) {
	var req savePhotoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := photo.SavePhotoInput{
		ImageURL:       req.ImageURL,
		Description:    req.Description,
		AltDescription: req.AltDescription,
		Tags:           req.Tags,
	}
	if req.UserID != nil && *req.UserID != "" {
		id, err := uuid.Parse(*req.UserID)
		if err != nil {
			writeError(w, http.StatusBadRequest, MsgInvalidUserID)
			return
		}
		input.UserID = &id
	}

	if _, err := h.svc.SavePhoto(r.Context(), input); err != nil {
		h.handleSaveError(w, r, err, "Failed to save the photo")
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: MsgPhotoSaved})
}

// AddTags handles POST /api/photos/{photoId}/tags.
func (h *PhotoHandler) AddTags(w http.ResponseWriter, r *http.Request) {
	photoID, err := uuid.Parse(r.PathValue("photoId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidPhotoID)
		return
	}

	var req addTagsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.svc.AddTags(r.Context(), photo.AddTagsInput{PhotoID: photoID, Tags: req.Tags}); err != nil {
		h.handleSaveError(w, r, err, "Failed to add tags to the photo")
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: MsgTagsAdded})
}

// SearchByTag handles GET /api/photos/tag/search?tags=&sort=&userId=.
func (h *PhotoHandler) SearchByTag(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Repeated tags parameters are not a single tag.
	if len(q["tags"]) > 1 {
		writeError(w, http.StatusBadRequest, domain.MsgInvalidTagQuery)
		return
	}

	input := photo.SearchByTagInput{
		Tag:  q.Get("tags"),
		Sort: q.Get("sort"),
	}
	if raw := q.Get("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, MsgInvalidUserID)
			return
		}
		input.UserID = &id
	}

	photos, err := h.svc.SearchByTag(r.Context(), input)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) && len(ve.Errors) == 1 {
			writeError(w, http.StatusBadRequest, ve.Errors[0].Message)
			return
		}
		handleError(r.Context(), h.log, w, err, "Failed to search photos")
		return
	}

	resp := tagSearchResponse{Photos: make([]taggedPhotoResponse, len(photos))}
	for i := range photos {
		resp.Photos[i] = taggedPhotoResponse{
			ImageURL:    photos[i].ImageURL,
			Description: photos[i].Description,
			DateSaved:   photos[i].DateSaved,
			Tags:        photos[i].TagNames(),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleSaveError answers single-rule rejections (untrusted URL, tag cap,
// unknown owner) with {"error"} and tag shape errors with {"errors"}.
func (h *PhotoHandler) handleSaveError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) == 1 {
		switch ve.Errors[0].Message {
		case domain.MsgInvalidImageURL, domain.MsgTagLimitExceeded, domain.MsgInvalidUserID:
			writeError(w, http.StatusBadRequest, ve.Errors[0].Message)
			return
		}
	}
	handleError(r.Context(), h.log, w, err, failure)
}
