package recordstore

import (
	"encoding/json"

	"github.com/google/uuid"
)

// recordIDs - оба имени поля идентификатора, которые встречаются во входных данных
type recordIDs struct {
	ID       uuid.UUID `json:"id"`
	LegacyID uuid.UUID `json:"_id"`
}

// decodeRecord декодирует запись и сводит "_id" к каноническому id.
// Дальше адаптера запись уходит только с одним идентификатором.
func decodeRecord[T any](raw []byte, setID func(*T, uuid.UUID)) (T, error) {
	var record T
	if err := json.Unmarshal(raw, &record); err != nil {
		return record, err
	}

	var ids recordIDs
	if err := json.Unmarshal(raw, &ids); err != nil {
		return record, err
	}
	if ids.ID == uuid.Nil && ids.LegacyID != uuid.Nil {
		setID(&record, ids.LegacyID)
	}
	return record, nil
}
