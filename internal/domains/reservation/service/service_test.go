package service_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nirvanica/config"
	"nirvanica/infras/otel/mocks"
	s3Mocks "nirvanica/infras/s3/mocks"
	notifierMocks "nirvanica/internal/domains/booking/notifier/mocks"
	"nirvanica/internal/domains/booking/reference"
	bookingService "nirvanica/internal/domains/booking/service"
	"nirvanica/internal/domains/booking/store"
	"nirvanica/internal/domains/reservation/model/dto"
	"nirvanica/internal/domains/reservation/service"
	"nirvanica/internal/domains/room/catalog"
	"nirvanica/shared/failure"
	"nirvanica/shared/timezone"
)

var referencePattern = regexp.MustCompile(`^NIR[0-9]{8}[0-9A-Z]{4}$`)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Ledger.ReferencePrefix = "NIR"
	cfg.Ledger.TotalRooms = 12

	return cfg
}

type fixture struct {
	svc      service.Reservation
	ledger   bookingService.Ledger
	notifier *notifierMocks.MockNotifier
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()

	cfg := newTestConfig()
	cat := catalog.New(cfg)
	refs := reference.New(cfg)
	notifier := notifierMocks.NewMockNotifier(ctrl)

	ledger := bookingService.New(
		cfg,
		store.NewMemoryStore(),
		notifier,
		refs,
		cat,
		s3Mocks.NewMockS3(ctrl),
		mocks.NewOtel(),
	)

	return &fixture{
		svc:      service.New(cfg, cat, ledger, refs, mocks.NewOtel()),
		ledger:   ledger,
		notifier: notifier,
	}
}

func validRequest() dto.ReservationRequest {
	checkIn := timezone.Today().AddDate(0, 0, 7)

	return dto.ReservationRequest{
		FirstName:     "Asha",
		LastName:      "Rao",
		Email:         "asha.rao@example.com",
		Phone:         "+91 98765 43210",
		CheckIn:       timezone.Format(checkIn, "2006-01-02"),
		CheckOut:      timezone.Format(checkIn.AddDate(0, 0, 2), "2006-01-02"),
		Adults:        2,
		TotalRooms:    2,
		SelectedRooms: []dto.RoomSelectionRequest{{TypeID: catalog.TypeGroundFloor, Quantity: 2}},
		TermsAccepted: true,
	}
}

func fieldNames(err error) []string {
	names := []string{}
	for _, field := range failure.GetFields(err) {
		names = append(names, field.Field)
	}

	return names
}

func TestReservation_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.notifier.EXPECT().BookingCreated(gomock.Any(), gomock.Any())

	response, err := f.svc.Confirm(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.True(t, referencePattern.MatchString(response.ID))
	assert.Equal(t, "Asha Rao", response.GuestName)
	assert.Equal(t, 2, response.Nights)
	assert.Equal(t, float64(5000), response.TotalAmount)
	assert.Equal(t, "confirmed", response.Status)
	assert.Equal(t, "Ground Floor", response.RoomType)
	assert.Equal(t, "On Property", response.PaymentMethod)
	assert.Equal(t, "Website", response.BookingSource)

	// The stored amount must be recomputable from the record's own lines.
	recomputed := 0.0
	for _, line := range response.SelectedRooms {
		recomputed += line.Price * float64(line.Quantity) * float64(response.Nights)
	}
	assert.Equal(t, recomputed, response.TotalAmount)

	assert.Len(t, f.ledger.ListAll(context.Background()), 1)
}

func TestReservation_ConfirmCollectsEveryViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	req := dto.ReservationRequest{
		Email:      "not-an-email",
		Phone:      "12345",
		CheckIn:    "soon",
		CheckOut:   "later",
		Adults:     2,
		TotalRooms: 1,
	}

	_, err := f.svc.Confirm(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))

	names := fieldNames(err)
	for _, expected := range []string{
		"first_name", "last_name", "email", "phone",
		"check_in", "check_out", "selected_rooms", "terms_accepted",
	} {
		assert.Contains(t, names, expected)
	}

	assert.Empty(t, f.ledger.ListAll(context.Background()))
}

func TestReservation_ConfirmRejectsRoomOverflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	req := validRequest()
	req.SelectedRooms = append(req.SelectedRooms, dto.RoomSelectionRequest{TypeID: catalog.TypeFirstFloor, Quantity: 1})

	_, err := f.svc.Confirm(context.Background(), req)

	assert.Error(t, err)

	fields := failure.GetFields(err)
	assert.Len(t, fields, 1)
	assert.Equal(t, "selected_rooms", fields[0].Field)
	assert.Contains(t, fields[0].Message, "2 rooms")
	assert.Empty(t, f.ledger.ListAll(context.Background()))
}

func TestReservation_ConfirmRejectsPastCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	req := validRequest()
	req.CheckIn = timezone.Format(timezone.Today().AddDate(0, 0, -1), "2006-01-02")

	_, err := f.svc.Confirm(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, fieldNames(err), "check_in")
}

func TestReservation_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	preview, err := f.svc.Preview(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.True(t, referencePattern.MatchString(preview.ProvisionalReference))
	assert.Equal(t, "Asha Rao", preview.GuestName)
	assert.Equal(t, 2, preview.Nights)
	assert.Equal(t, 2, preview.TotalGuests)
	assert.Equal(t, float64(5000), preview.TotalAmount)

	// Preview never persists.
	assert.Empty(t, f.ledger.ListAll(context.Background()))
}

func TestReservation_PreviewReferenceIsNeverCommitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.notifier.EXPECT().BookingCreated(gomock.Any(), gomock.Any())

	preview, err := f.svc.Preview(context.Background(), validRequest())
	assert.NoError(t, err)

	response, err := f.svc.Confirm(context.Background(), validRequest())
	assert.NoError(t, err)

	assert.NotEqual(t, preview.ProvisionalReference, response.ID)
	assert.Nil(t, f.ledger.Get(context.Background(), preview.ProvisionalReference))
}

func TestReservation_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	checkIn := timezone.Today().AddDate(0, 0, 7)

	t.Run("PricesSelectedLines", func(t *testing.T) {
		quote, err := f.svc.Quote(context.Background(), dto.QuoteRequest{
			CheckIn:  timezone.Format(checkIn, "2006-01-02"),
			CheckOut: timezone.Format(checkIn.AddDate(0, 0, 3), "2006-01-02"),
			SelectedRooms: []dto.RoomSelectionRequest{
				{TypeID: catalog.TypeGroundFloor, Quantity: 1},
				{TypeID: catalog.TypeDormitory, Quantity: 1},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, quote.Nights)
		assert.Len(t, quote.Lines, 2)
		assert.Equal(t, float64(3750), quote.Lines[0].Subtotal)
		assert.Equal(t, float64(7500), quote.TotalAmount)
	})

	t.Run("RejectsMalformedDates", func(t *testing.T) {
		_, err := f.svc.Quote(context.Background(), dto.QuoteRequest{
			CheckIn:  "next tuesday",
			CheckOut: timezone.Format(checkIn, "2006-01-02"),
		})

		assert.Error(t, err)
		assert.Contains(t, fieldNames(err), "check_in")
	})
}
