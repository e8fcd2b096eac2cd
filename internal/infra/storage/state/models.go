package state

import (
	"encoding/json"
	"fmt"
)

// Ключи записей состояния. Имена унаследованы от первой версии системы,
// менять их нельзя — иначе потеряется уже сохраненное состояние.
const (
	RecordKeySlots        = "school_reserve_slots"
	RecordKeyReservations = "school_reserve_reservations"
)

// SchemaVersion текущая версия схемы сериализованного состояния
const SchemaVersion = 1

// envelope конверт сериализованной коллекции: версия схемы + записи
type envelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Records       json.RawMessage `json:"records"`
}

// encodeEnvelope сериализует коллекцию в конверт с текущей версией схемы
func encodeEnvelope(records interface{}) (string, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("%w: marshal records: %v", ErrEncode, err)
	}

	payload, err := json.Marshal(envelope{
		SchemaVersion: SchemaVersion,
		Records:       raw,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal envelope: %v", ErrEncode, err)
	}

	return string(payload), nil
}

// decodeEnvelope разбирает конверт и десериализует записи в dst.
// Неизвестная версия схемы считается ошибкой декодирования.
func decodeEnvelope(payload string, dst interface{}) error {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return fmt.Errorf("%w: unmarshal envelope: %v", ErrDecode, err)
	}

	if env.SchemaVersion != SchemaVersion {
		return fmt.Errorf("%w: unsupported schema version %d", ErrDecode, env.SchemaVersion)
	}

	if err := json.Unmarshal(env.Records, dst); err != nil {
		return fmt.Errorf("%w: unmarshal records: %v", ErrDecode, err)
	}

	return nil
}
