package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nirvanica/config"
	"nirvanica/infras/otel/mocks"
	s3Mocks "nirvanica/infras/s3/mocks"
	"nirvanica/internal/domains/booking/model"
	"nirvanica/internal/domains/booking/model/dto"
	notifierMocks "nirvanica/internal/domains/booking/notifier/mocks"
	"nirvanica/internal/domains/booking/reference"
	"nirvanica/internal/domains/booking/service"
	"nirvanica/internal/domains/booking/store"
	storeMocks "nirvanica/internal/domains/booking/store/mocks"
	"nirvanica/internal/domains/room/catalog"
	"nirvanica/shared/failure"
	"nirvanica/shared/timezone"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Ledger.ReferencePrefix = "NIR"
	cfg.Ledger.TotalRooms = 12

	return cfg
}

type ledgerFixture struct {
	cfg      *config.Config
	store    *storeMocks.MockDocumentStore
	notifier *notifierMocks.MockNotifier
	s3       *s3Mocks.MockS3
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *ledgerFixture {
	t.Helper()

	return &ledgerFixture{
		cfg:      newTestConfig(),
		store:    storeMocks.NewMockDocumentStore(ctrl),
		notifier: notifierMocks.NewMockNotifier(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}
}

func (f *ledgerFixture) newLedger() service.Ledger {
	return service.New(
		f.cfg,
		f.store,
		f.notifier,
		reference.New(f.cfg),
		catalog.New(f.cfg),
		f.s3,
		mocks.NewOtel(),
	)
}

func stayRecord(status string, checkIn, checkOut time.Time, guests int, amount float64) model.BookingRecord {
	return model.BookingRecord{
		FirstName:   "Asha",
		LastName:    "Rao",
		Email:       "asha.rao@example.com",
		Phone:       "+91 98765 43210",
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Nights:      int(checkOut.Sub(checkIn).Hours() / 24),
		Adults:      guests,
		TotalGuests: guests,
		TotalRooms:  1,
		SelectedRooms: []model.RoomSelection{
			{TypeID: catalog.TypeGroundFloor, TypeName: "Ground Floor", Quantity: 1, Price: 1250},
		},
		TotalAmount: amount,
		Status:      status,
	}
}

func TestLedger_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.store.EXPECT().Load(gomock.Any()).Return([]model.BookingRecord{}, nil)

	ledger := f.newLedger()

	today := timezone.Today()
	draft := stayRecord("", today, today.AddDate(0, 0, 2), 2, 5000)
	draft.Status = ""

	f.store.EXPECT().Save(gomock.Any(), gomock.Len(1)).Return(nil)
	f.notifier.EXPECT().BookingCreated(gomock.Any(), gomock.Any())

	record := ledger.Add(context.Background(), draft)

	assert.True(t, strings.HasPrefix(record.ID, "NIR"))
	assert.Len(t, record.ID, 15)
	assert.Equal(t, model.StatusConfirmed, record.Status)
	assert.Equal(t, "On Property", record.PaymentMethod)
	assert.Equal(t, "Website", record.BookingSource)
	assert.False(t, record.CreatedAt.IsZero())

	stored := ledger.Get(context.Background(), record.ID)
	assert.NotNil(t, stored)
	assert.Equal(t, record.ID, stored.ID)
}

func TestLedger_StartsEmptyOnCorruptDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.store.EXPECT().Load(gomock.Any()).Return(nil, errors.New("invalid character 'x'"))

	ledger := f.newLedger()

	assert.Empty(t, ledger.ListAll(context.Background()))
}

func TestLedger_GetUnknownIDReturnsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.store.EXPECT().Load(gomock.Any()).Return([]model.BookingRecord{}, nil)

	ledger := f.newLedger()

	assert.Nil(t, ledger.Get(context.Background(), "NIR00000000XXXX"))
}

func TestLedger_DeleteUnknownIDIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.store.EXPECT().Load(gomock.Any()).Return([]model.BookingRecord{}, nil)

	ledger := f.newLedger()

	// No Save and no announcement may happen for an unknown id.
	removed := ledger.Delete(context.Background(), "NIR00000000XXXX")

	assert.Nil(t, removed)
}

func TestLedger_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.store.EXPECT().Load(gomock.Any()).Return([]model.BookingRecord{}, nil)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().BookingCreated(gomock.Any(), gomock.Any())
	f.notifier.EXPECT().BookingUpdated(gomock.Any(), gomock.Any())

	ledger := f.newLedger()

	today := timezone.Today()
	record := ledger.Add(context.Background(), stayRecord("", today, today.AddDate(0, 0, 1), 2, 1250))

	t.Run("ValidTransition", func(t *testing.T) {
		updated, err := ledger.UpdateStatus(context.Background(), record.ID, model.StatusCheckedIn)

		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, model.StatusCheckedIn, updated.Status)
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		updated, err := ledger.UpdateStatus(context.Background(), record.ID, "teleported")

		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("UnknownIDReturnsNilWithoutError", func(t *testing.T) {
		updated, err := ledger.UpdateStatus(context.Background(), "NIR00000000XXXX", model.StatusCancelled)

		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestLedger_UpdatePatchesOnlyProvidedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.store.EXPECT().Load(gomock.Any()).Return([]model.BookingRecord{}, nil)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.notifier.EXPECT().BookingCreated(gomock.Any(), gomock.Any())
	f.notifier.EXPECT().BookingUpdated(gomock.Any(), gomock.Any())

	ledger := f.newLedger()

	today := timezone.Today()
	record := ledger.Add(context.Background(), stayRecord("", today, today.AddDate(0, 0, 1), 2, 1250))

	newPhone := "+91 91234 56789"
	updated := ledger.Update(context.Background(), record.ID, dto.UpdateBookingRequest{Phone: &newPhone})

	assert.NotNil(t, updated)
	assert.Equal(t, newPhone, updated.Phone)
	assert.Equal(t, record.Email, updated.Email)
	assert.Equal(t, record.TotalAmount, updated.TotalAmount)
}

func TestLedger_StatusFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := timezone.Today()

	seeded := []model.BookingRecord{
		stayRecord(model.StatusConfirmed, today, today.AddDate(0, 0, 2), 2, 2500),
		stayRecord(model.StatusCheckedIn, today.AddDate(0, 0, -1), today, 3, 1250),
		stayRecord(model.StatusCheckedOut, today.AddDate(0, 0, -5), today.AddDate(0, 0, -3), 2, 2500),
	}
	for i := range seeded {
		seeded[i].ID = "NIR0000000" + string(rune('0'+i)) + "TEST"
	}

	f := newFixture(t, ctrl)
	f.store.EXPECT().Load(gomock.Any()).Return(seeded, nil)

	ledger := f.newLedger()
	ctx := context.Background()

	assert.Len(t, ledger.ListAll(ctx), 3)
	assert.Len(t, ledger.ListByStatus(ctx, model.StatusConfirmed), 1)
	assert.Empty(t, ledger.ListByStatus(ctx, "unknown"))
	assert.Len(t, ledger.TodayArrivals(ctx), 1)
	assert.Len(t, ledger.TodayCheckouts(ctx), 1)
	assert.Len(t, ledger.CurrentGuests(ctx), 1)
}

func TestLedger_DashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := timezone.Today()

	// Every checked-in booking carries two guests so a guest sum would read
	// 6; CurrentGuests counts the bookings themselves.
	seeded := []model.BookingRecord{
		stayRecord(model.StatusConfirmed, today, today.AddDate(0, 0, 2), 2, 2500),
		stayRecord(model.StatusCheckedIn, today, today.AddDate(0, 0, 1), 2, 1250),
		stayRecord(model.StatusCheckedIn, today.AddDate(0, 0, -1), today, 2, 1250),
		stayRecord(model.StatusCheckedIn, today.AddDate(0, 0, -1), today.AddDate(0, 0, 1), 2, 2500),
		stayRecord(model.StatusCancelled, today, today.AddDate(0, 0, 1), 4, 1250),
	}

	f := newFixture(t, ctrl)
	f.store.EXPECT().Load(gomock.Any()).Return(seeded, nil)

	stats := f.newLedger().DashboardStats(context.Background())

	assert.Equal(t, 5, stats.TotalBookings)
	assert.Equal(t, 2, stats.TodayArrivals)
	assert.Equal(t, 1, stats.TodayCheckouts)
	assert.Equal(t, 3, stats.CurrentGuests)
	assert.Equal(t, 12, stats.TotalRooms)
	assert.Equal(t, 25, stats.OccupancyPercent)
	assert.Equal(t, float64(2500), stats.TodayRevenue)
}

func TestLedger_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := timezone.Today()
	seeded := []model.BookingRecord{
		stayRecord(model.StatusConfirmed, today, today.AddDate(0, 0, 2), 2, 2500),
	}
	seeded[0].ID = "NIR12345678ABCD"
	seeded[0].CreatedAt = today

	f := newFixture(t, ctrl)
	f.store.EXPECT().Load(gomock.Any()).Return(seeded, nil)

	export := f.newLedger().ExportCSV(context.Background())

	assert.Equal(t, "bookings-"+timezone.Format(today, "2006-01-02")+".csv", export.FileName)

	lines := strings.Split(string(export.Content), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Booking ID,Guest Name,Email"))
	assert.Contains(t, lines[1], "NIR12345678ABCD")
	assert.Contains(t, lines[1], `"Asha Rao"`)
	assert.Contains(t, lines[1], "Ground Floor")
	assert.Contains(t, lines[1], "2500")
}

func TestLedger_ExportCSVArchivesToS3WhenEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.cfg.External.S3.Enable = true
	f.cfg.External.S3.ExportDirectory = "exports"
	f.store.EXPECT().Load(gomock.Any()).Return([]model.BookingRecord{}, nil)

	today := timezone.Today()
	yesterdayFile := "bookings-" + timezone.Format(today.AddDate(0, 0, -1), "2006-01-02") + ".csv"

	f.s3.EXPECT().
		UploadBytes(gomock.Any(), "exports", gomock.Any(), "text/csv", gomock.Any()).
		Return("exports/bookings.csv", nil)
	f.s3.EXPECT().
		DeleteObject(gomock.Any(), "exports", yesterdayFile).
		Return(nil)

	f.newLedger().ExportCSV(context.Background())

	time.Sleep(10 * time.Millisecond)
}

func TestLedger_SubscribersNotifiedAfterPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.store.EXPECT().Load(gomock.Any()).Return([]model.BookingRecord{}, nil)
	f.notifier.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).AnyTimes()

	ledger := f.newLedger()
	today := timezone.Today()

	var calls [][]model.BookingRecord
	unsubscribe := ledger.Subscribe(func(records []model.BookingRecord) {
		calls = append(calls, records)
	})

	// A panicking neighbor must not break delivery.
	ledger.Subscribe(func(_ []model.BookingRecord) {
		panic("listener exploded")
	})

	var after []model.BookingRecord
	ledger.Subscribe(func(records []model.BookingRecord) {
		after = records
	})

	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	ledger.Add(context.Background(), stayRecord("", today, today.AddDate(0, 0, 1), 2, 1250))

	assert.Len(t, calls, 1)
	assert.Len(t, calls[0], 1)
	assert.Len(t, after, 1)

	// A failed persist keeps the in-memory state but stays silent.
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
	ledger.Add(context.Background(), stayRecord("", today, today.AddDate(0, 0, 1), 2, 1250))

	assert.Len(t, calls, 1)
	assert.Len(t, ledger.ListAll(context.Background()), 2)

	// After unsubscribing no further snapshots arrive.
	unsubscribe()
	unsubscribe()

	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	ledger.Add(context.Background(), stayRecord("", today, today.AddDate(0, 0, 1), 2, 1250))

	assert.Len(t, calls, 1)
	assert.Len(t, after, 3)
}

func TestLedger_ReloadsFromPersistedDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.notifier.EXPECT().BookingCreated(gomock.Any(), gomock.Any())

	shared := store.NewMemoryStore()
	today := timezone.Today()

	first := service.New(f.cfg, shared, f.notifier, reference.New(f.cfg), catalog.New(f.cfg), f.s3, mocks.NewOtel())
	record := first.Add(context.Background(), stayRecord("", today, today.AddDate(0, 0, 2), 2, 2500))

	second := service.New(f.cfg, shared, f.notifier, reference.New(f.cfg), catalog.New(f.cfg), f.s3, mocks.NewOtel())
	reloaded := second.Get(context.Background(), record.ID)

	assert.NotNil(t, reloaded)
	assert.Equal(t, record.GuestName(), reloaded.GuestName())
	assert.Equal(t, record.TotalAmount, reloaded.TotalAmount)
	assert.Equal(t, record.SelectedRooms, reloaded.SelectedRooms)
}
