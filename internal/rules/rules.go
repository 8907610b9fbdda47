// Package rules содержит чистые правила порождения оповещений.
// Правило получает прежнее и новое состояние сущности и возвращает
// не более одного намерения создать Alert. Ввода-вывода здесь нет.
package rules

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shenikar/drought_response_system/internal/models"
)

// DefaultMortalityThreshold - порог смертности скота для правила MortalityThreshold
const DefaultMortalityThreshold = models.CriticalMortalityRate

// Intent - намерение создать оповещение
type Intent struct {
	VillageID uuid.UUID
	Type      models.AlertType
	Severity  models.AlertSeverity
	Message   string
}

// Alert превращает намерение в payload для создания записи
func (i Intent) Alert() models.Alert {
	return models.Alert{
		VillageID: i.VillageID,
		Type:      i.Type,
		Severity:  i.Severity,
		Message:   i.Message,
	}
}

// Rule - правило над сущностью T. prev равен nil, если прежнее состояние неизвестно
type Rule[T any] func(prev *T, next T) *Intent

// WaterPointDegradation срабатывает на каждую запись статуса, выставляющую IsFunctional = false
func WaterPointDegradation(_ *models.WaterPoint, next models.WaterPoint) *Intent {
	if next.IsFunctional {
		return nil
	}
	return &Intent{
		VillageID: next.VillageID,
		Type:      models.AlertWater,
		Severity:  models.SeverityHigh,
		Message:   fmt.Sprintf("Water point %s marked non-functional.", next.Type),
	}
}

// MortalityThreshold возвращает правило, срабатывающее при переходе смертности через порог
func MortalityThreshold(threshold float64) Rule[models.Livestock] {
	return func(prev *models.Livestock, next models.Livestock) *Intent {
		if next.MortalityRate <= threshold {
			return nil
		}
		if prev != nil && prev.MortalityRate > threshold {
			return nil
		}
		return &Intent{
			VillageID: next.VillageID,
			Type:      models.AlertLivestock,
			Severity:  models.SeverityCritical,
			Message: fmt.Sprintf("Livestock mortality for %s reached %s%%.",
				next.Species, strconv.FormatFloat(next.MortalityRate, 'f', -1, 64)),
		}
	}
}
