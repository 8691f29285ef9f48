package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nirvanica/config"
	"nirvanica/infras/otel"
	bookingModel "nirvanica/internal/domains/booking/model"
	bookingDto "nirvanica/internal/domains/booking/model/dto"
	"nirvanica/internal/domains/booking/reference"
	bookingService "nirvanica/internal/domains/booking/service"
	"nirvanica/internal/domains/reservation/model"
	"nirvanica/internal/domains/reservation/model/dto"
	"nirvanica/internal/domains/room/catalog"
	"nirvanica/shared/constant"
	"nirvanica/shared/failure"
	"nirvanica/shared/timezone"
	"nirvanica/shared/validator"
)

// Reservation turns form payloads into ledger entries. Preview and Confirm
// run the identical validate-and-assemble sequence; the only difference is
// that Confirm hands the assembled record to the ledger while Preview stops
// at a summary with a provisional reference.
type Reservation interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Preview(ctx context.Context, req dto.ReservationRequest) (dto.PreviewResponse, error)
	Confirm(ctx context.Context, req dto.ReservationRequest) (bookingDto.BookingResponse, error)
}

type reservationImpl struct {
	config  *config.Config
	catalog catalog.Catalog
	ledger  bookingService.Ledger
	refs    reference.Generator
	otel    otel.Otel
}

func New(
	config *config.Config,
	cat catalog.Catalog,
	ledger bookingService.Ledger,
	refs reference.Generator,
	ot otel.Otel,
) Reservation {
	return &reservationImpl{
		config:  config,
		catalog: cat,
		ledger:  ledger,
		refs:    refs,
		otel:    ot,
	}
}

const scopeName = constant.OtelServiceScopeName

// Quote prices a stay without touching identity fields or the ledger.
func (s *reservationImpl) Quote(ctx context.Context, req dto.QuoteRequest) (quote dto.QuoteResponse, err error) {
	_, scope := s.otel.NewScope(ctx, scopeName, scopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	violations := validator.Collect(&req)

	form := model.NewForm(s.catalog.RoomTypes(), s.catalog.TotalRooms())
	violations = append(violations, s.applyDates(form, req.CheckIn, req.CheckOut)...)

	// A quote may cover fewer rooms than the cap allows, so price against
	// the full inventory.
	_ = form.SetTotalRooms(s.catalog.TotalRooms())
	violations = append(violations, s.applyRooms(form, req.SelectedRooms)...)

	if len(violations) > 0 {
		return dto.QuoteResponse{}, failure.Validation(violations) //nolint:wrapcheck
	}

	nights := form.Nights()
	quote = dto.QuoteResponse{
		Nights:      nights,
		Lines:       []dto.QuoteLine{},
		TotalAmount: form.TotalAmount(),
	}

	for _, selection := range form.SelectedRooms() {
		quote.Lines = append(quote.Lines, dto.QuoteLine{
			TypeID:      selection.TypeID,
			TypeName:    selection.TypeName,
			Quantity:    selection.Quantity,
			NightlyRate: selection.Price,
			Subtotal:    selection.Price * float64(selection.Quantity) * float64(nights),
		})
	}

	return quote, nil
}

// Preview validates the full payload and returns the read-only summary. The
// provisional reference is minted with the committed-id algorithm but
// nothing is persisted.
func (s *reservationImpl) Preview(ctx context.Context, req dto.ReservationRequest) (preview dto.PreviewResponse, err error) {
	_, scope := s.otel.NewScope(ctx, scopeName, scopeName+".Preview")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.assemble(req)
	if err != nil {
		return dto.PreviewResponse{}, err
	}

	return dto.PreviewResponse{
		ProvisionalReference: s.refs.NewReference(),
		GuestName:            record.GuestName(),
		Email:                record.Email,
		Phone:                record.Phone,
		CheckIn:              timezone.Format(record.CheckIn, constant.CalendarFormat),
		CheckOut:             timezone.Format(record.CheckOut, constant.CalendarFormat),
		Nights:               record.Nights,
		TotalGuests:          record.TotalGuests,
		TotalRooms:           record.TotalRooms,
		SelectedRooms:        record.SelectedRooms,
		TotalAmount:          record.TotalAmount,
	}, nil
}

// Confirm validates, assembles and commits the booking. Direct submission
// and the preview modal's confirm button both land here, so the two flows
// cannot diverge on ordering.
func (s *reservationImpl) Confirm(ctx context.Context, req dto.ReservationRequest) (response bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, scopeName, scopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.assemble(req)
	if err != nil {
		return bookingDto.BookingResponse{}, err
	}

	stored := s.ledger.Add(ctx, record)
	response.FromModel(stored)

	return response, nil
}

// assemble runs batch validation and, when everything holds, builds the
// booking draft by driving the form state machine so the stepper rules
// cannot be bypassed by a raw payload.
func (s *reservationImpl) assemble(req dto.ReservationRequest) (bookingModel.BookingRecord, error) {
	violations := validator.Collect(&req)

	form := model.NewForm(s.catalog.RoomTypes(), s.catalog.TotalRooms())
	violations = append(violations, s.applyDates(form, req.CheckIn, req.CheckOut)...)

	// Counter bounds are already reported by the tag validation; applying
	// them to the form just mirrors the accepted values.
	for kind, count := range map[model.GuestKind]int{
		model.GuestAdults:   req.Adults,
		model.GuestChildren: req.Children,
		model.GuestElders:   req.Elders,
		model.GuestInfants:  req.Infants,
	} {
		_ = form.SetGuestCount(kind, count)
	}
	_ = form.SetTotalRooms(req.TotalRooms)

	violations = append(violations, s.applyRooms(form, req.SelectedRooms)...)

	if form.SelectedRoomCount() == 0 {
		violations = append(violations, failure.Field{
			Field:   "selected_rooms",
			Message: "at least one room must be selected",
		})
	}

	if !req.TermsAccepted {
		violations = append(violations, failure.Field{
			Field:   "terms_accepted",
			Message: "the terms and conditions must be accepted",
		})
	}

	if len(violations) > 0 {
		return bookingModel.BookingRecord{}, failure.Validation(violations) //nolint:wrapcheck
	}

	return bookingModel.BookingRecord{
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		CheckIn:         form.CheckIn(),
		CheckOut:        form.CheckOut(),
		Nights:          form.Nights(),
		Adults:          req.Adults,
		Children:        req.Children,
		Elders:          req.Elders,
		Infants:         req.Infants,
		TotalGuests:     form.TotalGuests(),
		TotalRooms:      req.TotalRooms,
		SelectedRooms:   form.SelectedRooms(),
		TotalAmount:     form.TotalAmount(),
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	}, nil
}

func (s *reservationImpl) applyDates(form *model.Form, checkIn, checkOut string) []failure.Field {
	violations := []failure.Field{}

	if checkIn != "" {
		date, err := timezone.Parse(constant.CalendarFormat, checkIn)
		if err != nil {
			violations = append(violations, failure.Field{Field: "check_in", Message: "check_in must be a calendar date in YYYY-MM-DD format"})
		} else if err = form.SetCheckIn(date); err != nil {
			violations = append(violations, failure.Field{Field: "check_in", Message: err.Error()})
		}
	}

	if checkOut != "" {
		date, err := timezone.Parse(constant.CalendarFormat, checkOut)
		if err != nil {
			violations = append(violations, failure.Field{Field: "check_out", Message: "check_out must be a calendar date in YYYY-MM-DD format"})
		} else if err = form.SetCheckOut(date); err != nil {
			violations = append(violations, failure.Field{Field: "check_out", Message: err.Error()})
		}
	}

	return violations
}

// applyRooms replays the requested quantities through the form steppers so
// type caps and the total-room constraint are enforced by one code path.
func (s *reservationImpl) applyRooms(form *model.Form, selections []dto.RoomSelectionRequest) []failure.Field {
	violations := []failure.Field{}

	for _, selection := range selections {
		for i := 0; i < selection.Quantity; i++ {
			err := form.IncrementRoom(selection.TypeID)
			if err == nil {
				continue
			}

			violations = append(violations, failure.Field{
				Field:   "selected_rooms",
				Message: s.roomViolationMessage(err, selection.TypeID),
			})

			break
		}
	}

	return violations
}

func (s *reservationImpl) roomViolationMessage(err error, typeID string) string {
	var limitErr *model.RoomLimitError
	switch {
	case errors.Is(err, model.ErrUnknownRoomType):
		return "unknown room type: " + typeID
	case errors.As(err, &limitErr):
		return limitErr.Error()
	case errors.Is(err, model.ErrCounterOutOfBounds):
		if roomType, ok := s.catalog.Find(typeID); ok {
			return fmt.Sprintf("only %d %s room%s available", roomType.MaxQuantity, roomType.Name, pluralIsAre(roomType.MaxQuantity))
		}
	}

	return err.Error()
}

func pluralIsAre(count int) string {
	if count == 1 {
		return " is"
	}

	return "s are"
}
