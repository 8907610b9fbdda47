package models

import (
	"time"

	"github.com/google/uuid"
)

type Sector string

const (
	SectorWASH         Sector = "WASH"
	SectorFoodSecurity Sector = "Food Security"
	SectorHealth       Sector = "Health"
	SectorShelter      Sector = "Shelter"
	SectorCash         Sector = "Cash"
)

// Sectors в порядке отображения
var Sectors = []Sector{SectorWASH, SectorFoodSecurity, SectorHealth, SectorShelter, SectorCash}

type ActivityStatus string

const (
	ActivityPlanned   ActivityStatus = "planned"
	ActivityOngoing   ActivityStatus = "ongoing"
	ActivityCompleted ActivityStatus = "completed"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type NGOActivity struct {
	ID           uuid.UUID      `json:"id"`
	VillageID    uuid.UUID      `json:"village_id"`
	NGOName      string         `json:"ngo_name"`
	ActivityType string         `json:"activity_type"`
	Sector       Sector         `json:"sector"`
	Status       ActivityStatus `json:"status"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
	Coordinates  Coordinates    `json:"coordinates"`
}
