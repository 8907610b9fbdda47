package models

import (
	"time"

	"github.com/google/uuid"
)

// CriticalMortalityRate - порог смертности (в процентах), выше которого стадо считается критическим
const CriticalMortalityRate = 30.0

type Livestock struct {
	ID            uuid.UUID `json:"id"`
	VillageID     uuid.UUID `json:"village_id"`
	Species       string    `json:"species"`
	TotalCount    int       `json:"total_count"`
	MortalityRate float64   `json:"mortality_rate"`
	LastUpdated   time.Time `json:"last_updated"`
}

// IsCritical сообщает, превышает ли смертность в стаде критический порог
func (l Livestock) IsCritical() bool {
	return l.MortalityRate > CriticalMortalityRate
}
