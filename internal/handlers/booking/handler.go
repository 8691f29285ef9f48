package booking

import (
	"net/http"
	"nirvanica/infras/otel"
	"nirvanica/internal/domains/booking/model"
	"nirvanica/internal/domains/booking/model/dto"
	"nirvanica/internal/domains/booking/service"
	"nirvanica/shared/constant"
	"nirvanica/shared/failure"
	"nirvanica/shared/validator"
	"nirvanica/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	viewArrivals  = "arrivals"
	viewCheckouts = "checkouts"
	viewCurrent   = "current"
)

type Handler struct {
	ledger service.Ledger
	otel   otel.Otel
}

func New(ledger service.Ledger, otel otel.Otel) Handler {
	return Handler{
		ledger: ledger,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/stats", handler.GetDashboardStats)
		routerGroup.Get("/export", handler.ExportBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// GetBookings lists ledger entries, optionally narrowed to a status or a
// derived day view.
// @Summary List bookings
// @Description List all bookings, filtered by status or by a day view (arrivals, checkouts, current).
// @Tags Booking
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (confirmed, checked-in, checked-out, cancelled)"
// @Param view query string false "Derived view (arrivals, checkouts, current)"
// @Success 200 {object} response.Data[[]dto.BookingResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	status := r.URL.Query().Get(constant.RequestParamStatus)
	view := r.URL.Query().Get(constant.RequestParamView)

	var records []model.BookingRecord

	switch {
	case view == viewArrivals:
		records = handler.ledger.TodayArrivals(ctx)
	case view == viewCheckouts:
		records = handler.ledger.TodayCheckouts(ctx)
	case view == viewCurrent:
		records = handler.ledger.CurrentGuests(ctx)
	case view != "":
		err := failure.BadRequestFromString("unknown view: " + view)
		scope.TraceError(err)

		response.WithError(w, err)

		return
	case status != "":
		records = handler.ledger.ListByStatus(ctx, status)
	default:
		records = handler.ledger.ListAll(ctx)
	}

	response.WithJSON(w, http.StatusOK, dto.FromModels(records))
}

// GetDashboardStats returns the dashboard figures derived from the ledger.
// @Summary Dashboard statistics
// @Description Today's arrivals, checkouts, revenue, current guests and occupancy.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardStats] "Dashboard statistics"
// @Router /v1/bookings/stats [get]
func (handler *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboardStats")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.ledger.DashboardStats(ctx))
}

// ExportBookings streams the full ledger as a CSV attachment.
// @Summary Export bookings as CSV
// @Description Download the full booking ledger as a CSV file named after today's date.
// @Tags Booking
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Router /v1/bookings/export [get]
func (handler *Handler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	export := handler.ledger.ExportCSV(ctx)

	scope.AddEvent("Bookings exported as " + export.FileName)

	response.WithCSV(w, export.FileName, export.Content)
}

// GetBookingByID retrieves a booking by its reference.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its reference.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking reference"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	record := handler.ledger.Get(ctx, id)
	if record == nil {
		response.WithError(w, failure.NotFound(model.EntityName))

		return
	}

	body := dto.BookingResponse{}
	body.FromModel(*record)

	response.WithJSON(w, http.StatusOK, body)
}

// UpdateBooking patches contact fields on an existing booking.
// @Summary Update a booking
// @Description Patch contact details on an existing booking; absent fields are left untouched.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking reference"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [patch]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	record := handler.ledger.Update(ctx, id, req)
	if record == nil {
		response.WithError(w, failure.NotFound(model.EntityName))

		return
	}

	scope.AddEvent("Booking " + id + " updated")

	body := dto.BookingResponse{}
	body.FromModel(*record)

	response.WithJSON(w, http.StatusOK, body)
}

// UpdateBookingStatus moves a booking through its lifecycle.
// @Summary Update a booking's status
// @Description Set the booking status to confirmed, checked-in, checked-out or cancelled.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking reference"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	record, err := handler.ledger.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	if record == nil {
		response.WithError(w, failure.NotFound(model.EntityName))

		return
	}

	scope.AddEvent("Booking " + id + " moved to " + req.Status)

	body := dto.BookingResponse{}
	body.FromModel(*record)

	response.WithJSON(w, http.StatusOK, body)
}

// DeleteBooking removes a booking from the ledger.
// @Summary Delete a booking
// @Description Remove a booking by its reference.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking reference"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	removed := handler.ledger.Delete(ctx, id)
	if removed == nil {
		response.WithError(w, failure.NotFound(model.EntityName))

		return
	}

	scope.AddEvent("Booking " + id + " deleted")

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
