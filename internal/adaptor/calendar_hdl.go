package adaptor

import (
	"net/http"
	"time"

	"rental-admin/internal/usecase"
	"rental-admin/pkg/utils"

	"go.uber.org/zap"
)

type CalendarHandler struct {
	service usecase.CalendarService
	log     *zap.Logger
}

func NewCalendarHandler(service usecase.CalendarService, log *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		log:     log.With(zap.String("handler", "calendar")),
	}
}

// GetMonth handles GET /api/calendar?month=YYYY-MM, defaulting to the
// current month.
func (h *CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	calendar, err := h.service.GetMonth(r.Context(), month)
	if err != nil {
		handleServiceError(h.log, w, err, "get calendar month")
		return
	}

	utils.ResponseSuccess(w, "success", calendar)
}
