package dto

import (
	"nirvanica/shared/constant"
	"nirvanica/shared/timezone"

	"nirvanica/internal/domains/booking/model"
)

// UpdateBookingRequest patches contact details on an existing booking. Only
// the fields present in the payload are touched; stay, room and amount
// fields are immutable once booked.
type UpdateBookingRequest struct {
	FirstName       *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName        *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,phone"`
	SpecialRequests *string `json:"special_requests,omitempty" validate:"omitempty,max=1000"`
	PaymentMethod   *string `json:"payment_method,omitempty" validate:"omitempty,max=100"`
	BookingSource   *string `json:"booking_source,omitempty" validate:"omitempty,max=100"`
}

// Apply merges the patch into the record, leaving absent fields untouched.
func (u *UpdateBookingRequest) Apply(record *model.BookingRecord) {
	if u.FirstName != nil {
		record.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		record.LastName = *u.LastName
	}
	if u.Email != nil {
		record.Email = *u.Email
	}
	if u.Phone != nil {
		record.Phone = *u.Phone
	}
	if u.SpecialRequests != nil {
		record.SpecialRequests = *u.SpecialRequests
	}
	if u.PaymentMethod != nil {
		record.PaymentMethod = *u.PaymentMethod
	}
	if u.BookingSource != nil {
		record.BookingSource = *u.BookingSource
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed checked-in checked-out cancelled"`
}

type BookingResponse struct {
	ID              string                `json:"id"`
	GuestName       string                `json:"guest_name"`
	FirstName       string                `json:"first_name"`
	LastName        string                `json:"last_name"`
	Email           string                `json:"email"`
	Phone           string                `json:"phone"`
	CheckIn         string                `json:"check_in"`
	CheckOut        string                `json:"check_out"`
	Nights          int                   `json:"nights"`
	Adults          int                   `json:"adults"`
	Children        int                   `json:"children"`
	Elders          int                   `json:"elders"`
	Infants         int                   `json:"infants"`
	TotalGuests     int                   `json:"total_guests"`
	TotalRooms      int                   `json:"total_rooms"`
	SelectedRooms   []model.RoomSelection `json:"selected_rooms"`
	RoomType        string                `json:"room_type"`
	TotalAmount     float64               `json:"total_amount"`
	Status          string                `json:"status"`
	SpecialRequests string                `json:"special_requests,omitempty"`
	PaymentMethod   string                `json:"payment_method,omitempty"`
	BookingSource   string                `json:"booking_source,omitempty"`
	CreatedAt       string                `json:"created_at"`
	UpdatedAt       string                `json:"updated_at"`
}

func (b *BookingResponse) FromModel(record model.BookingRecord) {
	b.ID = record.ID
	b.GuestName = record.GuestName()
	b.FirstName = record.FirstName
	b.LastName = record.LastName
	b.Email = record.Email
	b.Phone = record.Phone
	b.CheckIn = timezone.Format(record.CheckIn, constant.CalendarFormat)
	b.CheckOut = timezone.Format(record.CheckOut, constant.CalendarFormat)
	b.Nights = record.Nights
	b.Adults = record.Adults
	b.Children = record.Children
	b.Elders = record.Elders
	b.Infants = record.Infants
	b.TotalGuests = record.TotalGuests
	b.TotalRooms = record.TotalRooms
	b.SelectedRooms = record.SelectedRooms
	b.RoomType = record.RoomTypeLabel()
	b.TotalAmount = record.TotalAmount
	b.Status = record.Status
	b.SpecialRequests = record.SpecialRequests
	b.PaymentMethod = record.PaymentMethod
	b.BookingSource = record.BookingSource
	b.CreatedAt = timezone.Format(record.CreatedAt, constant.DateFormat)
	b.UpdatedAt = timezone.Format(record.UpdatedAt, constant.DateFormat)
}

func FromModels(records []model.BookingRecord) []BookingResponse {
	responses := make([]BookingResponse, len(records))
	for i := range records {
		responses[i].FromModel(records[i])
	}

	return responses
}

// DashboardStats is the at-a-glance figure set for the admin dashboard,
// recomputed from the full ledger on every read.
type DashboardStats struct {
	TotalBookings    int     `json:"total_bookings"`
	TodayArrivals    int     `json:"today_arrivals"`
	TodayCheckouts   int     `json:"today_checkouts"`
	CurrentGuests    int     `json:"current_guests"`
	TotalRooms       int     `json:"total_rooms"`
	OccupancyPercent int     `json:"occupancy_percent"`
	TodayRevenue     float64 `json:"today_revenue"`
}

// CSVExport is a rendered ledger export ready to be sent as an attachment.
type CSVExport struct {
	FileName string `json:"file_name"`
	Content  []byte `json:"-"`
}
