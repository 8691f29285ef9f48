package service

import (
	"container/list"
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"nirvanica/config"
	"nirvanica/infras/otel"
	"nirvanica/infras/s3"
	"nirvanica/internal/domains/booking/model"
	"nirvanica/internal/domains/booking/model/dto"
	"nirvanica/internal/domains/booking/notifier"
	"nirvanica/internal/domains/booking/reference"
	"nirvanica/internal/domains/booking/store"
	"nirvanica/internal/domains/room/catalog"
	"nirvanica/shared/constant"
	"nirvanica/shared/failure"
	"nirvanica/shared/timezone"
)

const (
	scopeName = constant.OtelServiceScopeName

	defaultPaymentMethod = "On Property"
	defaultBookingSource = "Website"
)

// Ledger is the authoritative in-memory booking list. Every mutation
// rewrites the whole document through the backing store; a store failure is
// logged and the in-memory state stays authoritative, so mutations never
// fail on persistence.
type Ledger interface {
	Add(ctx context.Context, data model.BookingRecord) model.BookingRecord
	Get(ctx context.Context, id string) *model.BookingRecord
	ListAll(ctx context.Context) []model.BookingRecord
	ListByStatus(ctx context.Context, status string) []model.BookingRecord
	TodayArrivals(ctx context.Context) []model.BookingRecord
	TodayCheckouts(ctx context.Context) []model.BookingRecord
	CurrentGuests(ctx context.Context) []model.BookingRecord
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) *model.BookingRecord
	UpdateStatus(ctx context.Context, id, status string) (*model.BookingRecord, error)
	Delete(ctx context.Context, id string) *model.BookingRecord
	DashboardStats(ctx context.Context) dto.DashboardStats
	ExportCSV(ctx context.Context) dto.CSVExport
	Subscribe(fn func(records []model.BookingRecord)) (unsubscribe func())
}

type ledgerImpl struct {
	mu        sync.RWMutex
	records   []model.BookingRecord
	listeners *list.List

	config   *config.Config
	store    store.DocumentStore
	notifier notifier.Notifier
	refs     reference.Generator
	catalog  catalog.Catalog
	s3       s3.S3
	otel     otel.Otel
}

// New loads the persisted ledger into memory. A load failure, including a
// corrupt document, degrades to an empty ledger rather than refusing to
// start.
func New(
	config *config.Config,
	documents store.DocumentStore,
	notify notifier.Notifier,
	refs reference.Generator,
	cat catalog.Catalog,
	s3Client s3.S3,
	ot otel.Otel,
) Ledger {
	records, err := documents.Load(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("Failed to load booking ledger, starting empty")
		records = []model.BookingRecord{}
	}

	log.Info().Int("bookings", len(records)).Msg("Booking ledger loaded")

	return &ledgerImpl{
		records:   records,
		listeners: list.New(),
		config:    config,
		store:     documents,
		notifier:  notify,
		refs:      refs,
		catalog:   cat,
		s3:        s3Client,
		otel:      ot,
	}
}

// Add stamps identity and lifecycle fields onto the draft and appends it.
// The caller is expected to have validated the draft already.
func (l *ledgerImpl) Add(ctx context.Context, data model.BookingRecord) model.BookingRecord {
	ctx, scope := l.otel.NewScope(ctx, scopeName, scopeName+".Add")
	defer scope.End()

	now := timezone.Now()

	record := data.Clone()
	record.ID = l.refs.NewReference()
	record.Status = model.StatusConfirmed
	record.CreatedAt = now
	record.UpdatedAt = now

	if record.PaymentMethod == "" {
		record.PaymentMethod = defaultPaymentMethod
	}
	if record.BookingSource == "" {
		record.BookingSource = defaultBookingSource
	}

	l.mu.Lock()
	l.records = append(l.records, record)
	snapshot := model.CloneAll(l.records)
	l.mu.Unlock()

	l.persist(ctx, snapshot)
	l.notifier.BookingCreated(ctx, record)

	return record
}

// Get returns the booking with the given id, or nil when it does not exist.
// An unknown id is not an error at this layer.
func (l *ledgerImpl) Get(ctx context.Context, id string) *model.BookingRecord {
	_, scope := l.otel.NewScope(ctx, scopeName, scopeName+".Get")
	defer scope.End()

	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.records {
		if l.records[i].ID == id {
			record := l.records[i].Clone()

			return &record
		}
	}

	return nil
}

func (l *ledgerImpl) ListAll(ctx context.Context) []model.BookingRecord {
	_, scope := l.otel.NewScope(ctx, scopeName, scopeName+".ListAll")
	defer scope.End()

	l.mu.RLock()
	defer l.mu.RUnlock()

	return model.CloneAll(l.records)
}

// ListByStatus filters by exact status. An unknown status simply matches
// nothing.
func (l *ledgerImpl) ListByStatus(ctx context.Context, status string) []model.BookingRecord {
	_, scope := l.otel.NewScope(ctx, scopeName, scopeName+".ListByStatus")
	defer scope.End()

	return l.filter(func(record *model.BookingRecord) bool {
		return record.Status == status
	})
}

// TodayArrivals lists bookings checking in today that are confirmed or
// already checked in.
func (l *ledgerImpl) TodayArrivals(ctx context.Context) []model.BookingRecord {
	_, scope := l.otel.NewScope(ctx, scopeName, scopeName+".TodayArrivals")
	defer scope.End()

	today := timezone.Now()

	return l.filter(func(record *model.BookingRecord) bool {
		arriving := record.Status == model.StatusConfirmed || record.Status == model.StatusCheckedIn

		return arriving && timezone.SameCalendarDay(record.CheckIn, today)
	})
}

// TodayCheckouts lists in-house bookings checking out today.
func (l *ledgerImpl) TodayCheckouts(ctx context.Context) []model.BookingRecord {
	_, scope := l.otel.NewScope(ctx, scopeName, scopeName+".TodayCheckouts")
	defer scope.End()

	today := timezone.Now()

	return l.filter(func(record *model.BookingRecord) bool {
		return record.Status == model.StatusCheckedIn && timezone.SameCalendarDay(record.CheckOut, today)
	})
}

// CurrentGuests lists bookings whose guests are on the property right now.
func (l *ledgerImpl) CurrentGuests(ctx context.Context) []model.BookingRecord {
	_, scope := l.otel.NewScope(ctx, scopeName, scopeName+".CurrentGuests")
	defer scope.End()

	return l.filter(func(record *model.BookingRecord) bool {
		return record.Status == model.StatusCheckedIn
	})
}

// Update patches contact fields on an existing booking. Returns nil when the
// id is unknown; nothing is persisted or announced in that case.
func (l *ledgerImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) *model.BookingRecord {
	ctx, scope := l.otel.NewScope(ctx, scopeName, scopeName+".Update")
	defer scope.End()

	return l.mutate(ctx, id, func(record *model.BookingRecord) {
		req.Apply(record)
	})
}

// UpdateStatus moves a booking through its lifecycle. Unknown statuses are
// rejected, unknown ids return nil without error.
func (l *ledgerImpl) UpdateStatus(ctx context.Context, id, status string) (*model.BookingRecord, error) {
	ctx, scope := l.otel.NewScope(ctx, scopeName, scopeName+".UpdateStatus")
	defer scope.End()

	if !model.ValidStatus(status) {
		return nil, failure.BadRequestFromString("unknown booking status: " + status)
	}

	record := l.mutate(ctx, id, func(record *model.BookingRecord) {
		record.Status = status
	})

	return record, nil
}

// Delete removes a booking and returns the removed record, or nil when the
// id is unknown. Deleting an unknown id is a no-op.
func (l *ledgerImpl) Delete(ctx context.Context, id string) *model.BookingRecord {
	ctx, scope := l.otel.NewScope(ctx, scopeName, scopeName+".Delete")
	defer scope.End()

	l.mu.Lock()

	index := -1
	for i := range l.records {
		if l.records[i].ID == id {
			index = i
			break
		}
	}

	if index < 0 {
		l.mu.Unlock()

		return nil
	}

	removed := l.records[index].Clone()
	l.records = append(l.records[:index], l.records[index+1:]...)
	snapshot := model.CloneAll(l.records)
	l.mu.Unlock()

	l.persist(ctx, snapshot)
	l.notifier.BookingDeleted(ctx, removed)

	return &removed
}

// Subscribe registers a callback invoked with the full record list after
// every successful persist, in registration order. The returned function
// removes the subscription and is safe to call more than once.
func (l *ledgerImpl) Subscribe(fn func(records []model.BookingRecord)) func() {
	l.mu.Lock()
	element := l.listeners.PushBack(fn)
	l.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.listeners.Remove(element)
			l.mu.Unlock()
		})
	}
}

func (l *ledgerImpl) filter(keep func(record *model.BookingRecord) bool) []model.BookingRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	matches := []model.BookingRecord{}
	for i := range l.records {
		if keep(&l.records[i]) {
			matches = append(matches, l.records[i].Clone())
		}
	}

	return matches
}

// mutate applies fn to the record with the given id, restamps UpdatedAt,
// persists and announces. Returns nil when the id is unknown.
func (l *ledgerImpl) mutate(ctx context.Context, id string, fn func(record *model.BookingRecord)) *model.BookingRecord {
	l.mu.Lock()

	index := -1
	for i := range l.records {
		if l.records[i].ID == id {
			index = i
			break
		}
	}

	if index < 0 {
		l.mu.Unlock()

		return nil
	}

	fn(&l.records[index])
	l.records[index].UpdatedAt = timezone.Now()
	updated := l.records[index].Clone()
	snapshot := model.CloneAll(l.records)
	l.mu.Unlock()

	l.persist(ctx, snapshot)
	l.notifier.BookingUpdated(ctx, updated)

	return &updated
}

// persist writes the full document through the store and, only on success,
// fans the snapshot out to subscribers. On failure the in-memory list keeps
// the mutation and the error is logged.
func (l *ledgerImpl) persist(ctx context.Context, snapshot []model.BookingRecord) {
	if err := l.store.Save(ctx, snapshot); err != nil {
		log.Error().Err(err).Int("bookings", len(snapshot)).Msg("Failed to persist booking ledger, in-memory state remains authoritative")

		return
	}

	l.notifyListeners(snapshot)
}

// notifyListeners invokes subscribers in registration order. A panicking
// subscriber is logged and skipped so it cannot take down its neighbors.
func (l *ledgerImpl) notifyListeners(snapshot []model.BookingRecord) {
	l.mu.RLock()
	callbacks := make([]func([]model.BookingRecord), 0, l.listeners.Len())
	for element := l.listeners.Front(); element != nil; element = element.Next() {
		if fn, ok := element.Value.(func(records []model.BookingRecord)); ok {
			callbacks = append(callbacks, fn)
		}
	}
	l.mu.RUnlock()

	for _, fn := range callbacks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error().Any("panic", r).Msg("Booking subscriber panicked")
				}
			}()

			fn(model.CloneAll(snapshot))
		}()
	}
}
