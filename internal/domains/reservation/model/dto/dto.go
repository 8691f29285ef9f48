package dto

import (
	bookingModel "nirvanica/internal/domains/booking/model"
)

// RoomSelectionRequest is one requested room line, referencing a catalog
// type by id.
type RoomSelectionRequest struct {
	TypeID   string `json:"type_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// ReservationRequest is the full booking form payload. Field-format rules
// live in the validate tags; cross-field rules (dates, room caps, terms) are
// checked by the reservation service so every violation can be reported in
// one pass.
type ReservationRequest struct {
	FirstName       string                 `json:"first_name" validate:"required,max=100"`
	LastName        string                 `json:"last_name" validate:"required,max=100"`
	Email           string                 `json:"email" validate:"required,email"`
	Phone           string                 `json:"phone" validate:"required,phone"`
	CheckIn         string                 `json:"check_in" validate:"required"`
	CheckOut        string                 `json:"check_out" validate:"required"`
	Adults          int                    `json:"adults" validate:"gte=1,lte=10"`
	Children        int                    `json:"children" validate:"gte=0,lte=8"`
	Elders          int                    `json:"elders" validate:"gte=0,lte=6"`
	Infants         int                    `json:"infants" validate:"gte=0,lte=4"`
	TotalRooms      int                    `json:"total_rooms" validate:"gte=1,lte=12"`
	SelectedRooms   []RoomSelectionRequest `json:"selected_rooms" validate:"dive"`
	SpecialRequests string                 `json:"special_requests" validate:"omitempty,max=1000"`
	TermsAccepted   bool                   `json:"terms_accepted"`
}

// QuoteRequest carries just enough to price a stay: the date range and the
// requested rooms.
type QuoteRequest struct {
	CheckIn       string                 `json:"check_in" validate:"required"`
	CheckOut      string                 `json:"check_out" validate:"required"`
	SelectedRooms []RoomSelectionRequest `json:"selected_rooms" validate:"dive"`
}

type QuoteLine struct {
	TypeID      string  `json:"type_id"`
	TypeName    string  `json:"type_name"`
	Quantity    int     `json:"quantity"`
	NightlyRate float64 `json:"nightly_rate"`
	Subtotal    float64 `json:"subtotal"`
}

type QuoteResponse struct {
	Nights      int         `json:"nights"`
	Lines       []QuoteLine `json:"lines"`
	TotalAmount float64     `json:"total_amount"`
}

// PreviewResponse is the read-only summary shown before confirming. The
// provisional reference is generated with the same algorithm as committed
// booking ids but is never persisted; the committed id is only known after
// Confirm.
type PreviewResponse struct {
	ProvisionalReference string                       `json:"provisional_reference"`
	GuestName            string                       `json:"guest_name"`
	Email                string                       `json:"email"`
	Phone                string                       `json:"phone"`
	CheckIn              string                       `json:"check_in"`
	CheckOut             string                       `json:"check_out"`
	Nights               int                          `json:"nights"`
	TotalGuests          int                          `json:"total_guests"`
	TotalRooms           int                          `json:"total_rooms"`
	SelectedRooms        []bookingModel.RoomSelection `json:"selected_rooms"`
	TotalAmount          float64                      `json:"total_amount"`
}
