package adaptor

import (
	"encoding/json"
	"net/http"

	"rental-admin/internal/dto/request"
	"rental-admin/internal/usecase"
	"rental-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Multipart uploads are capped well above any realistic gallery size.
const maxUploadBytes = 32 << 20

type ApartmentHandler struct {
	service usecase.ApartmentService
	log     *zap.Logger
}

func NewApartmentHandler(service usecase.ApartmentService, log *zap.Logger) *ApartmentHandler {
	return &ApartmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "apartment")),
	}
}

// ListApartments handles GET /api/apartments
func (h *ApartmentHandler) ListApartments(w http.ResponseWriter, r *http.Request) {
	apartments, err := h.service.ListApartments(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list apartments")
		return
	}

	utils.ResponseSuccess(w, "success", apartments)
}

// GetApartment handles GET /api/apartments/{id}
func (h *ApartmentHandler) GetApartment(w http.ResponseWriter, r *http.Request) {
	apartmentID := chi.URLParam(r, "id")
	if apartmentID == "" {
		utils.ResponseBadRequest(w, "Apartment ID is required", nil)
		return
	}

	apartment, err := h.service.GetApartment(r.Context(), apartmentID)
	if err != nil {
		handleServiceError(h.log, w, err, "get apartment")
		return
	}

	utils.ResponseSuccess(w, "success", apartment)
}

// CreateApartment handles POST /api/apartments
func (h *ApartmentHandler) CreateApartment(w http.ResponseWriter, r *http.Request) {
	var req request.ApartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	apartment, err := h.service.CreateApartment(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create apartment")
		return
	}

	utils.ResponseCreated(w, "success", apartment)
}

// UpdateApartment handles PUT /api/apartments/{id}
func (h *ApartmentHandler) UpdateApartment(w http.ResponseWriter, r *http.Request) {
	apartmentID := chi.URLParam(r, "id")
	if apartmentID == "" {
		utils.ResponseBadRequest(w, "Apartment ID is required", nil)
		return
	}

	var req request.ApartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	apartment, err := h.service.UpdateApartment(r.Context(), apartmentID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update apartment")
		return
	}

	utils.ResponseSuccess(w, "success", apartment)
}

// DeleteApartment handles DELETE /api/apartments/{id}
func (h *ApartmentHandler) DeleteApartment(w http.ResponseWriter, r *http.Request) {
	apartmentID := chi.URLParam(r, "id")
	if apartmentID == "" {
		utils.ResponseBadRequest(w, "Apartment ID is required", nil)
		return
	}

	if err := h.service.DeleteApartment(r.Context(), apartmentID); err != nil {
		handleServiceError(h.log, w, err, "delete apartment")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// UpsertDetails handles PUT /api/apartments/{id}/details
func (h *ApartmentHandler) UpsertDetails(w http.ResponseWriter, r *http.Request) {
	apartmentID := chi.URLParam(r, "id")
	if apartmentID == "" {
		utils.ResponseBadRequest(w, "Apartment ID is required", nil)
		return
	}

	var req request.ApartmentDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	details, err := h.service.UpsertDetails(r.Context(), apartmentID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "save apartment details")
		return
	}

	utils.ResponseSuccess(w, "success", details)
}

// UploadImages handles POST /api/apartments/{id}/images. Gallery files
// arrive under the "images" field; an optional "cover" file replaces
// the cover image.
func (h *ApartmentHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	apartmentID := chi.URLParam(r, "id")
	if apartmentID == "" {
		utils.ResponseBadRequest(w, "Apartment ID is required", nil)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart body", nil)
		return
	}

	var uploads []usecase.ImageUpload

	if covers := r.MultipartForm.File["cover"]; len(covers) > 0 {
		file, err := covers[0].Open()
		if err != nil {
			utils.ResponseBadRequest(w, "Unreadable cover file", nil)
			return
		}
		defer file.Close()

		uploads = append(uploads, usecase.ImageUpload{
			Filename:    covers[0].Filename,
			ContentType: covers[0].Header.Get("Content-Type"),
			Body:        file,
			IsCover:     true,
		})
	}

	for _, header := range r.MultipartForm.File["images"] {
		file, err := header.Open()
		if err != nil {
			utils.ResponseBadRequest(w, "Unreadable image file: "+header.Filename, nil)
			return
		}
		defer file.Close()

		uploads = append(uploads, usecase.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		})
	}

	if len(uploads) == 0 {
		utils.ResponseBadRequest(w, "No files provided", nil)
		return
	}

	result, err := h.service.UploadImages(r.Context(), apartmentID, uploads)
	if err != nil {
		handleServiceError(h.log, w, err, "upload apartment images")
		return
	}

	utils.ResponseCreated(w, "success", result)
}
