package wire

import (
	"rental-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireApartment(r chi.Router, apartmentHandler *adaptor.ApartmentHandler) {
	r.Route("/api/apartments", func(r chi.Router) {
		// GET /api/apartments - list all units
		r.Get("/", apartmentHandler.ListApartments)

		// POST /api/apartments - create unit
		r.Post("/", apartmentHandler.CreateApartment)

		// GET /api/apartments/{id} - unit with details record
		r.Get("/{id}", apartmentHandler.GetApartment)

		// PUT /api/apartments/{id} - edit unit
		r.Put("/{id}", apartmentHandler.UpdateApartment)

		// DELETE /api/apartments/{id} - delete unit and its details
		r.Delete("/{id}", apartmentHandler.DeleteApartment)

		// PUT /api/apartments/{id}/details - create or replace details
		r.Put("/{id}/details", apartmentHandler.UpsertDetails)

		// POST /api/apartments/{id}/images - multipart image upload
		r.Post("/{id}/images", apartmentHandler.UploadImages)
	})
}
