package wire

import (
	"rental-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler) {
	// GET /api/dashboard - summary statistics
	r.Get("/api/dashboard", dashboardHandler.GetStats)
}
