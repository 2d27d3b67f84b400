package storage

import (
	"encoding/json"
	"fmt"

	"github.com/rotinasync/rotina/internal/models"
)

// HistoryLog is the append-only record of finalized sessions, stored
// most-recent-first as a single JSON document.
type HistoryLog struct {
	kv KV
}

func NewHistoryLog(kv KV) *HistoryLog {
	return &HistoryLog{kv: kv}
}

// Load returns the full history, newest first. An absent payload is an empty
// log; a payload that fails to decode is an error, because a finalize in
// flight must not clobber history it could not read.
func (h *HistoryLog) Load() ([]models.HistoryRecord, error) {
	raw, ok, err := h.kv.Get(KeyHistory)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.HistoryRecord{}, nil
	}

	var records []models.HistoryRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return records, nil
}

// SaveAll replaces the entire log in a single write.
func (h *HistoryLog) SaveAll(records []models.HistoryRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	return h.kv.Set(KeyHistory, string(data))
}
