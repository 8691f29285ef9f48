package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"nirvanica/config"
	"nirvanica/infras/otel"
	"nirvanica/infras/postgres"
	"nirvanica/internal/domains/booking/model"
	"nirvanica/shared/constant"
)

const (
	queryLoadDocument = `SELECT document FROM ledger_documents WHERE storage_key = $1`
	querySaveDocument = `
		INSERT INTO ledger_documents (storage_key, document, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (storage_key)
		DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()`
)

// postgresStore keeps the ledger document in a single jsonb row keyed by the
// configured storage key.
type postgresStore struct {
	db   *postgres.Connection
	key  string
	otel otel.Otel
}

func newPostgresStore(config *config.Config, db *postgres.Connection, ot otel.Otel) DocumentStore {
	return &postgresStore{
		db:   db,
		key:  config.Ledger.StorageKey,
		otel: ot,
	}
}

func (s *postgresStore) Load(ctx context.Context) (records []model.BookingRecord, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryLoadDocument)

	var document []byte
	err = s.db.Read.GetContext(ctx, &document, queryLoadDocument, s.key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []model.BookingRecord{}, nil
		}

		log.Error().Err(err).Str("key", s.key).Msg("Failed to load ledger document from postgres")

		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	if err = json.Unmarshal(document, &records); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("Failed to decode ledger document")

		return nil, fmt.Errorf("failed to decode ledger document: %w", err)
	}

	return records, nil
}

func (s *postgresStore) Save(ctx context.Context, records []model.BookingRecord) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySaveDocument)

	document, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode ledger document: %w", err)
	}

	if _, err = s.db.Write.ExecContext(ctx, querySaveDocument, s.key, document); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("Failed to save ledger document to postgres")

		return fmt.Errorf("failed to save ledger document: %w", err)
	}

	return nil
}
