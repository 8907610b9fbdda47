package models

import (
	"time"

	"github.com/google/uuid"
)

type WaterAccessLevel string

const (
	WaterAccessHigh     WaterAccessLevel = "High"
	WaterAccessMedium   WaterAccessLevel = "Medium"
	WaterAccessLow      WaterAccessLevel = "Low"
	WaterAccessCritical WaterAccessLevel = "Critical"
)

// Village - населенный пункт, на который ссылаются все остальные сущности.
// IsCovered хранится как есть и не считается источником истины: покрытие
// вычисляется по текущим мероприятиям НКО (см. views.IsVillageCovered).
type Village struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	District           string           `json:"district"`
	Region             string           `json:"region"`
	Population         int              `json:"population"`
	LivestockCount     int              `json:"livestock_count"`
	DistanceToWaterKm  float64          `json:"distance_to_water_km"`
	WaterAccessLevel   WaterAccessLevel `json:"water_access_level"`
	VulnerabilityScore float64          `json:"vulnerability_score"`
	IsCovered          bool             `json:"is_covered"`
	LastUpdated        time.Time        `json:"last_updated"`
}
