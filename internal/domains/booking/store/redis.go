package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"nirvanica/config"
	"nirvanica/infras/otel"
	"nirvanica/internal/domains/booking/model"
	"nirvanica/shared/constant"
)

const otelStorageKeyAttribute = "storage.key"

// redisStore keeps the ledger document in a single redis key with no
// expiry. It is the default driver.
type redisStore struct {
	client *goRedis.Client
	key    string
	otel   otel.Otel
}

func newRedisStore(config *config.Config, client *goRedis.Client, ot otel.Otel) DocumentStore {
	return &redisStore{
		client: client,
		key:    config.Ledger.StorageKey,
		otel:   ot,
	}
}

func (s *redisStore) Load(ctx context.Context) (records []model.BookingRecord, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelStorageKeyAttribute, s.key)

	document, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, goRedis.Nil) {
			return []model.BookingRecord{}, nil
		}

		log.Error().Err(err).Str("key", s.key).Msg("Failed to load ledger document from redis")

		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	if err = json.Unmarshal(document, &records); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("Failed to decode ledger document")

		return nil, fmt.Errorf("failed to decode ledger document: %w", err)
	}

	return records, nil
}

func (s *redisStore) Save(ctx context.Context, records []model.BookingRecord) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelStorageKeyAttribute, s.key)

	document, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode ledger document: %w", err)
	}

	if err = s.client.Set(ctx, s.key, document, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("Failed to save ledger document to redis")

		return fmt.Errorf("failed to save ledger document: %w", err)
	}

	return nil
}
