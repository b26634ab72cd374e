package wire

import (
	"net/http"

	"rental-admin/internal/adaptor"
	"rental-admin/internal/data/repository"
	"rental-admin/internal/usecase"
	"rental-admin/pkg/middleware"
	"rental-admin/pkg/storage"
	"rental-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring connects repositories, services and handlers into a router.
func Wiring(repo *repository.Repository, store storage.ImageStore, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, store, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	wireBooking(r, handler.Booking)
	wireApartment(r, handler.Apartment)
	wireCalendar(r, handler.Calendar)
	wireDashboard(r, handler.Dashboard)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
