package models

import (
	"time"

	"github.com/google/uuid"
)

type WaterPointType string

const (
	WaterPointBorehole WaterPointType = "borehole"
	WaterPointBerkad   WaterPointType = "berkad"
	WaterPointWell     WaterPointType = "well"
	WaterPointDam      WaterPointType = "dam"
)

// WaterPoint - источник воды. Status - свободный текст (functional, damaged, dry, empty),
// IsFunctional задается независимо от него
type WaterPoint struct {
	ID                  uuid.UUID      `json:"id"`
	VillageID           uuid.UUID      `json:"village_id"`
	Type                WaterPointType `json:"type"`
	Status              string         `json:"status"`
	CapacityM3          float64        `json:"capacity_m3"`
	IsFunctional        bool           `json:"is_functional"`
	LastMaintenanceDate *time.Time     `json:"last_maintenance_date,omitempty"`
}
