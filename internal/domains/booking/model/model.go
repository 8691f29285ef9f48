package model

import (
	"time"
)

const (
	EntityName = "booking"
)

const (
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked-in"
	StatusCheckedOut = "checked-out"
	StatusCancelled  = "cancelled"
)

// Statuses lists every status a booking may carry, in lifecycle order.
var Statuses = []string{StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}

func ValidStatus(status string) bool {
	for _, known := range Statuses {
		if status == known {
			return true
		}
	}

	return false
}

// RoomSelection is one line of a booking: a room category, how many units of
// it, and the nightly rate locked in at booking time.
type RoomSelection struct {
	TypeID   string  `json:"type_id"`
	TypeName string  `json:"type_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// BookingRecord is one entry in the booking ledger. The whole ledger is
// persisted as a single JSON document, so every field must round-trip
// through encoding/json.
type BookingRecord struct {
	ID              string          `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	CheckIn         time.Time       `json:"check_in"`
	CheckOut        time.Time       `json:"check_out"`
	Nights          int             `json:"nights"`
	Adults          int             `json:"adults"`
	Children        int             `json:"children"`
	Elders          int             `json:"elders"`
	Infants         int             `json:"infants"`
	TotalGuests     int             `json:"total_guests"`
	TotalRooms      int             `json:"total_rooms"`
	SelectedRooms   []RoomSelection `json:"selected_rooms"`
	TotalAmount     float64         `json:"total_amount"`
	Status          string          `json:"status"`
	SpecialRequests string          `json:"special_requests,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	BookingSource   string          `json:"booking_source,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (b *BookingRecord) GuestName() string {
	return b.FirstName + " " + b.LastName
}

// RoomTypeLabel names the booking's room category for reports: the category
// itself when the booking holds a single one, "Mixed" otherwise.
func (b *BookingRecord) RoomTypeLabel() string {
	if len(b.SelectedRooms) == 1 {
		return b.SelectedRooms[0].TypeName
	}

	return "Mixed"
}

// Clone returns a deep copy so callers can hand records out of the ledger
// without sharing the backing selection slice.
func (b *BookingRecord) Clone() BookingRecord {
	clone := *b
	if b.SelectedRooms != nil {
		clone.SelectedRooms = make([]RoomSelection, len(b.SelectedRooms))
		copy(clone.SelectedRooms, b.SelectedRooms)
	}

	return clone
}

func CloneAll(records []BookingRecord) []BookingRecord {
	clones := make([]BookingRecord, len(records))
	for i := range records {
		clones[i] = records[i].Clone()
	}

	return clones
}
