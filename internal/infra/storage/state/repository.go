package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/harutok/SchoolReserve-Service/internal/domain"
	"github.com/harutok/SchoolReserve-Service/pkg/psqlbuilder"
)

const tableStateRecords = "state_records"

// Repository репозиторий сохраненного состояния движка бронирования.
// Хранит две именованные записи (слоты и бронирования) в таблице ключ-значение,
// каждая запись — JSON-конверт с версией схемы.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория состояния
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу состояния, если её еще нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS state_records (
			record_key TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// LoadSlots загружает сохраненную коллекцию слотов.
// Возвращает ErrRecordNotFound, если состояние еще не сохранялось.
func (r *Repository) LoadSlots(ctx context.Context) ([]*domain.TimeSlot, error) {
	payload, err := r.loadRecord(ctx, RecordKeySlots)
	if err != nil {
		return nil, err
	}

	var slots []*domain.TimeSlot
	if err := decodeEnvelope(payload, &slots); err != nil {
		return nil, err
	}

	return slots, nil
}

// LoadReservations загружает сохраненную коллекцию бронирований.
// Возвращает ErrRecordNotFound, если состояние еще не сохранялось.
func (r *Repository) LoadReservations(ctx context.Context) ([]*domain.Reservation, error) {
	payload, err := r.loadRecord(ctx, RecordKeyReservations)
	if err != nil {
		return nil, err
	}

	var reservations []*domain.Reservation
	if err := decodeEnvelope(payload, &reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// SaveState сохраняет обе коллекции в одной транзакции.
// Частичная запись (слоты без бронирований или наоборот) невозможна:
// либо фиксируются обе записи, либо ни одна.
func (r *Repository) SaveState(ctx context.Context, slots []*domain.TimeSlot, reservations []*domain.Reservation) error {
	slotsPayload, err := encodeEnvelope(slots)
	if err != nil {
		return err
	}

	reservationsPayload, err := encodeEnvelope(reservations)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: SaveState - begin: %v", ErrTransaction, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := upsertRecord(ctx, tx, RecordKeySlots, slotsPayload); err != nil {
		return err
	}
	if err := upsertRecord(ctx, tx, RecordKeyReservations, reservationsPayload); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: SaveState - commit: %v", ErrTransaction, err)
	}

	return nil
}

// loadRecord читает сериализованную запись по ключу
func (r *Repository) loadRecord(ctx context.Context, key string) (string, error) {
	query, args, err := psqlbuilder.Select("payload").
		From(tableStateRecords).
		Where(squirrel.Eq{"record_key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: loadRecord - build select query: %v", ErrBuildQuery, err)
	}

	var payload string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrRecordNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: loadRecord - execute select: %v", ErrExecQuery, err)
	}

	return payload, nil
}

// upsertRecord вставляет или обновляет запись по ключу внутри транзакции
func upsertRecord(ctx context.Context, tx *sql.Tx, key, payload string) error {
	query, args, err := psqlbuilder.Insert(tableStateRecords).
		Columns("record_key", "payload").
		Values(key, payload).
		Suffix("ON CONFLICT (record_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: upsertRecord - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsertRecord - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
