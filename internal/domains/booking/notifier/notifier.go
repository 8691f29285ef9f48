package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nirvanica/config"
	"nirvanica/infras/kafka"
	"nirvanica/internal/domains/booking/model"
	"nirvanica/shared/timezone"
)

const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventBookingDeleted = "booking.deleted"
)

// Event is the envelope published for every ledger mutation.
type Event struct {
	ID         string              `json:"id"`
	Type       string              `json:"type"`
	OccurredAt time.Time           `json:"occurred_at"`
	Booking    model.BookingRecord `json:"booking"`
}

// Notifier announces ledger mutations to the outside world. Announcements
// are fire and forget; a failed announcement never fails the mutation.
type Notifier interface {
	BookingCreated(ctx context.Context, record model.BookingRecord)
	BookingUpdated(ctx context.Context, record model.BookingRecord)
	BookingDeleted(ctx context.Context, record model.BookingRecord)
}

// New assembles the configured notifier chain. The log notifier is always
// on; Kafka is added when enabled.
func New(config *config.Config, client kafka.Client) Notifier {
	notifiers := []Notifier{NewLogNotifier()}

	if config.Kafka.Enable {
		notifiers = append(notifiers, NewKafkaNotifier(config, client))
	}

	return NewMultiNotifier(notifiers...)
}

type multiNotifier struct {
	notifiers []Notifier
}

func NewMultiNotifier(notifiers ...Notifier) Notifier {
	return &multiNotifier{notifiers: notifiers}
}

func (m *multiNotifier) BookingCreated(ctx context.Context, record model.BookingRecord) {
	for _, n := range m.notifiers {
		n.BookingCreated(ctx, record)
	}
}

func (m *multiNotifier) BookingUpdated(ctx context.Context, record model.BookingRecord) {
	for _, n := range m.notifiers {
		n.BookingUpdated(ctx, record)
	}
}

func (m *multiNotifier) BookingDeleted(ctx context.Context, record model.BookingRecord) {
	for _, n := range m.notifiers {
		n.BookingDeleted(ctx, record)
	}
}

// logNotifier is the in-process announcement channel, the structured-log
// equivalent of a front-desk toast.
type logNotifier struct{}

func NewLogNotifier() Notifier {
	return &logNotifier{}
}

func (l *logNotifier) BookingCreated(_ context.Context, record model.BookingRecord) {
	log.Info().
		Str("id", record.ID).
		Str("guest", record.GuestName()).
		Str("checkIn", timezone.Format(record.CheckIn, "2006-01-02")).
		Int("nights", record.Nights).
		Float64("totalAmount", record.TotalAmount).
		Msg("New booking received")
}

func (l *logNotifier) BookingUpdated(_ context.Context, record model.BookingRecord) {
	log.Info().
		Str("id", record.ID).
		Str("guest", record.GuestName()).
		Str("status", record.Status).
		Msg("Booking updated")
}

func (l *logNotifier) BookingDeleted(_ context.Context, record model.BookingRecord) {
	log.Info().
		Str("id", record.ID).
		Str("guest", record.GuestName()).
		Msg("Booking deleted")
}

// kafkaNotifier publishes mutation events to the configured topic, keyed by
// booking id so per-booking ordering survives partitioning.
type kafkaNotifier struct {
	client kafka.Client
	topic  string
}

func NewKafkaNotifier(config *config.Config, client kafka.Client) Notifier {
	return &kafkaNotifier{
		client: client,
		topic:  config.Kafka.Topic,
	}
}

func (k *kafkaNotifier) publish(ctx context.Context, eventType string, record model.BookingRecord) {
	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: timezone.Now(),
		Booking:    record,
	}

	err := k.client.SendMessages(ctx, k.topic, kafka.Message{
		Key:   record.ID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("type", eventType).Str("id", record.ID).Msg("Failed to publish booking event")
	}
}

func (k *kafkaNotifier) BookingCreated(ctx context.Context, record model.BookingRecord) {
	k.publish(ctx, EventBookingCreated, record)
}

func (k *kafkaNotifier) BookingUpdated(ctx context.Context, record model.BookingRecord) {
	k.publish(ctx, EventBookingUpdated, record)
}

func (k *kafkaNotifier) BookingDeleted(ctx context.Context, record model.BookingRecord) {
	k.publish(ctx, EventBookingDeleted, record)
}
