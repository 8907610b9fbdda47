package models

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertWater     AlertType = "water"
	AlertLivestock AlertType = "livestock"
	AlertDisease   AlertType = "disease"
	AlertConflict  AlertType = "conflict"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// Alert - системное оповещение. После IsResolved = true обратного перехода нет
type Alert struct {
	ID         uuid.UUID     `json:"id"`
	VillageID  uuid.UUID     `json:"village_id"`
	Type       AlertType     `json:"type"`
	Severity   AlertSeverity `json:"severity"`
	Message    string        `json:"message"`
	IsResolved bool          `json:"is_resolved"`
	CreatedAt  time.Time     `json:"created_at"`
}
