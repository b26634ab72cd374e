package response

// DashboardResponse mirrors the dashboard summary cards: counts by
// status, revenue over non-cancelled bookings, the five most recent
// bookings and the next five confirmed check-ins.
type DashboardResponse struct {
	TotalBookings     int               `json:"totalBookings"`
	ConfirmedBookings int               `json:"confirmedBookings"`
	PendingBookings   int               `json:"pendingBookings"`
	TotalRevenue      float64           `json:"totalRevenue"`
	RecentBookings    []BookingResponse `json:"recentBookings"`
	UpcomingCheckIns  []BookingResponse `json:"upcomingCheckIns"`
}
