package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamAddressImport     = "stream:address:import"
	StreamAddressImportDone = "stream:address:import:done"
)

// ImportStatus - статус задания на импорт
type ImportStatus string

const (
	ImportStatusQueued    ImportStatus = "queued"
	ImportStatusCompleted ImportStatus = "completed"
	ImportStatusFailed    ImportStatus = "failed"
)

// ImportJob - входящее событие на импорт форматов, подразделений и переводов.
// Пустой CountryCodes означает все страны набора данных.
type ImportJob struct {
	JobID        uuid.UUID `json:"job_id"`
	CountryCodes []string  `json:"country_codes,omitempty"`
	Langcodes    []string  `json:"langcodes,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
}

// IsFullImport - импорт всех стран
func (j *ImportJob) IsFullImport() bool {
	return len(j.CountryCodes) == 0
}

// ImportResult - итог импорта
type ImportResult struct {
	Formats      int `json:"formats"`
	Translations int `json:"translations"`
	Subdivisions int `json:"subdivisions"`
}

// ImportDoneEvent - результат обработки задания
type ImportDoneEvent struct {
	JobID  uuid.UUID     `json:"job_id"`
	Status ImportStatus  `json:"status"`
	Result *ImportResult `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
