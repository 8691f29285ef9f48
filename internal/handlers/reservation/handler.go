package reservation

import (
	"net/http"
	"nirvanica/infras/otel"
	"nirvanica/internal/domains/reservation/model/dto"
	"nirvanica/internal/domains/reservation/service"
	"nirvanica/shared/constant"
	"nirvanica/shared/validator"
	"nirvanica/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.ConfirmReservation)
		routerGroup.Post("/quote", handler.QuoteReservation)
		routerGroup.Post("/preview", handler.PreviewReservation)
	})
}

// QuoteReservation prices a stay without validating guest identity.
// @Summary Quote a stay
// @Description Price a date range and room selection without creating anything.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Price quote"
// @Failure 400 {object} response.Error
// @Router /v1/reservations/quote [post]
func (handler *Handler) QuoteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuoteReservation")
	defer scope.End()

	req := dto.QuoteRequest{}
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}

// PreviewReservation validates the full form and returns the read-only
// summary without persisting.
// @Summary Preview a reservation
// @Description Validate the booking form and return a summary with a provisional reference; nothing is stored.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.ReservationRequest true "Reservation Request"
// @Success 200 {object} response.Data[dto.PreviewResponse] "Reservation preview"
// @Failure 400 {object} response.Error
// @Router /v1/reservations/preview [post]
func (handler *Handler) PreviewReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreviewReservation")
	defer scope.End()

	req := dto.ReservationRequest{}
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	preview, err := handler.service.Preview(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to preview reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, preview)
}

// ConfirmReservation validates the form and commits the booking.
// @Summary Confirm a reservation
// @Description Validate the booking form, commit it to the ledger and return the stored booking with its reference.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.ReservationRequest true "Reservation Request"
// @Success 201 {object} response.Data[bookingDto.BookingResponse] "Confirmed booking"
// @Failure 400 {object} response.Error
// @Router /v1/reservations [post]
func (handler *Handler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmReservation")
	defer scope.End()

	req := dto.ReservationRequest{}
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Confirm(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation confirmed as " + booking.ID)

	response.WithJSON(w, http.StatusCreated, booking)
}
