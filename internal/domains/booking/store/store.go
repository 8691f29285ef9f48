package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"nirvanica/config"
	"nirvanica/infras/otel"
	"nirvanica/infras/postgres"
	"nirvanica/internal/domains/booking/model"
)

const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DocumentStore persists the whole booking ledger as one JSON document under
// a single fixed key. Save rewrites the full document every time; there are
// no per-record operations at this layer.
type DocumentStore interface {
	Load(ctx context.Context) ([]model.BookingRecord, error)
	Save(ctx context.Context, records []model.BookingRecord) error
}

// New selects the document store configured by LEDGER_DRIVER.
func New(config *config.Config, redisClient *goRedis.Client, db *postgres.Connection, ot otel.Otel) DocumentStore {
	switch config.Ledger.Driver {
	case DriverPostgres:
		return newPostgresStore(config, db, ot)
	case DriverMemory:
		return NewMemoryStore()
	default:
		if config.Ledger.Driver != DriverRedis {
			log.Warn().
				Str("driver", config.Ledger.Driver).
				Msg("Unknown ledger driver, falling back to redis")
		}

		return newRedisStore(config, redisClient, ot)
	}
}
