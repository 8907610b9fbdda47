package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateVillageRequest DTO для создания деревни
// @Description DTO для создания деревни
type CreateVillageRequest struct {
	Name               string  `json:"name" validate:"required,min=2,max=255"`
	District           string  `json:"district" validate:"required,max=255"`
	Region             string  `json:"region,omitempty" validate:"max=255"`
	Population         int     `json:"population" validate:"gte=0"`
	LivestockCount     int     `json:"livestock_count" validate:"gte=0"`
	DistanceToWaterKm  float64 `json:"distance_to_water_km" validate:"gte=0"`
	WaterAccessLevel   string  `json:"water_access_level,omitempty" validate:"omitempty,oneof=High Medium Low Critical"`
	VulnerabilityScore float64 `json:"vulnerability_score" validate:"gte=0,lte=100"`
	IsCovered          bool    `json:"is_covered"`
}

// CreateWaterPointRequest DTO для создания точки водоснабжения
// @Description DTO для создания точки водоснабжения. is_functional по умолчанию true
type CreateWaterPointRequest struct {
	VillageID           uuid.UUID  `json:"village_id" validate:"required"`
	Type                string     `json:"type" validate:"required,oneof=borehole berkad well dam"`
	Status              string     `json:"status,omitempty" validate:"max=64"`
	CapacityM3          float64    `json:"capacity_m3" validate:"gte=0"`
	IsFunctional        *bool      `json:"is_functional,omitempty"`
	LastMaintenanceDate *time.Time `json:"last_maintenance_date,omitempty"`
}

// CreateLivestockRequest DTO для создания записи о стаде
// @Description DTO для создания записи о стаде
type CreateLivestockRequest struct {
	VillageID     uuid.UUID `json:"village_id" validate:"required"`
	Species       string    `json:"species" validate:"required,max=64"`
	TotalCount    int       `json:"total_count" validate:"gte=0"`
	MortalityRate float64   `json:"mortality_rate" validate:"gte=0,lte=100"`
}

// CoordinatesRequest - координаты мероприятия
type CoordinatesRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// CreateNGOActivityRequest DTO для создания мероприятия НКО
// @Description DTO для создания мероприятия НКО. end_date не раньше start_date
type CreateNGOActivityRequest struct {
	VillageID    uuid.UUID          `json:"village_id" validate:"required"`
	NGOName      string             `json:"ngo_name" validate:"required,max=255"`
	ActivityType string             `json:"activity_type" validate:"required,max=255"`
	Sector       string             `json:"sector,omitempty" validate:"omitempty,oneof=WASH 'Food Security' Health Shelter Cash"`
	Status       string             `json:"status,omitempty" validate:"omitempty,oneof=planned ongoing completed"`
	StartDate    time.Time          `json:"start_date" validate:"required"`
	EndDate      time.Time          `json:"end_date" validate:"required,gtefield=StartDate"`
	Coordinates  CoordinatesRequest `json:"coordinates"`
}

// CreateAlertRequest DTO для создания оповещения
// @Description DTO для создания оповещения
type CreateAlertRequest struct {
	VillageID uuid.UUID `json:"village_id" validate:"required"`
	Type      string    `json:"type" validate:"required,oneof=water livestock disease conflict"`
	Severity  string    `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Message   string    `json:"message" validate:"required,max=1000"`
}

// UpdateWaterPointStatusRequest DTO для смены статуса точки водоснабжения
// @Description DTO для смены статуса точки водоснабжения
type UpdateWaterPointStatusRequest struct {
	Status       string `json:"status" validate:"required,max=64"`
	IsFunctional *bool  `json:"is_functional" validate:"required"`
}

// UpdateLivestockRequest DTO для обновления численности и смертности
// @Description DTO для обновления численности и смертности
type UpdateLivestockRequest struct {
	TotalCount    *int     `json:"total_count" validate:"required,gte=0"`
	MortalityRate *float64 `json:"mortality_rate" validate:"required,gte=0,lte=100"`
}

// UpdateNGOActivityStatusRequest DTO для смены статуса мероприятия
// @Description DTO для смены статуса мероприятия
type UpdateNGOActivityStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=planned ongoing completed"`
}

// LoginRequest DTO для проверки учетных данных
// @Description DTO для проверки учетных данных
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
