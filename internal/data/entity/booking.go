package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type Booking struct {
	Base
	GuestName   string        `db:"guest_name"`
	GuestEmail  string        `db:"guest_email"`
	GuestPhone  string        `db:"guest_phone"`
	CheckIn     time.Time     `db:"check_in"`
	CheckOut    time.Time     `db:"check_out"`
	ApartmentID uuid.UUID     `db:"apartment_id"`
	Status      BookingStatus `db:"status"`
	TotalAmount float64       `db:"total_amount"`
	Guests      int           `db:"guests"`
	Notes       *string       `db:"notes"`
}

// NormalizeDate reduces a timestamp to its calendar day, anchored at
// UTC midnight. All stay-date comparisons go through this so that
// neither time-of-day nor the zone a value was scanned or observed in
// influences the result: a date column read as UTC midnight and a
// host-local clock on the same calendar day normalize to the same
// instant.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DeriveStatuses returns a same-length copy of bookings where every
// confirmed booking whose check-out date is strictly before today is
// rewritten to completed. A check-out on today itself does not qualify.
// Pending, cancelled and already-completed bookings pass through
// unchanged, so applying the function twice gives the same result as
// applying it once. The input slice and its elements are not modified.
func DeriveStatuses(bookings []*Booking, today time.Time) []*Booking {
	ref := NormalizeDate(today)

	out := make([]*Booking, len(bookings))
	for i, b := range bookings {
		derived := *b
		if derived.Status == BookingStatusConfirmed && NormalizeDate(derived.CheckOut).Before(ref) {
			derived.Status = BookingStatusCompleted
		}
		out[i] = &derived
	}

	return out
}

// ContainsDate reports whether day falls within the booking's stay
// interval, inclusive of both check-in and check-out.
func (b *Booking) ContainsDate(day time.Time) bool {
	d := NormalizeDate(day)
	in := NormalizeDate(b.CheckIn)
	out := NormalizeDate(b.CheckOut)
	return !d.Before(in) && !d.After(out)
}

// BookingsForDate filters bookings down to those whose stay interval
// contains day, preserving input order.
func BookingsForDate(bookings []*Booking, day time.Time) []*Booking {
	var matched []*Booking
	for _, b := range bookings {
		if b.ContainsDate(day) {
			matched = append(matched, b)
		}
	}
	return matched
}
