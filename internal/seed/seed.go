// Package seed заполняет пустое хранилище демонстрационными данными
// по округам Гедо и Нижняя Джуба.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/shenikar/drought_response_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Result - сколько записей создано в каждой коллекции
type Result struct {
	Villages      int
	WaterPoints   int
	Livestock     int
	NGOActivities int
	Alerts        int
}

// Run пишет данные напрямую через репозиторий, минуя публикацию событий.
// Если деревни уже есть, ничего не делает.
func Run(ctx context.Context, repo service.RecordRepository, logger *logrus.Logger) (Result, error) {
	log := logger.WithFields(logrus.Fields{"component": "seed", "method": "Run"})

	existing, err := repo.ListVillages(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("seed: could not list villages: %w", err)
	}
	if len(existing) > 0 {
		log.WithField("villages", len(existing)).Info("Store already has data, skipping seed")
		return Result{}, nil
	}

	var res Result
	villages := demoVillages()
	for i := range villages {
		if err := repo.CreateVillage(ctx, &villages[i]); err != nil {
			return res, fmt.Errorf("seed: could not create village %s: %w", villages[i].Name, err)
		}
		res.Villages++
	}
	ceelWaaq, luuq, afmadow, badhaadhe := villages[0], villages[2], villages[5], villages[7]

	points := []models.WaterPoint{
		{VillageID: ceelWaaq.ID, Type: models.WaterPointBorehole, Status: "functional", CapacityM3: 500, IsFunctional: true},
		{VillageID: ceelWaaq.ID, Type: models.WaterPointBerkad, Status: "empty", CapacityM3: 100, IsFunctional: true},
		{VillageID: afmadow.ID, Type: models.WaterPointBorehole, Status: "damaged", CapacityM3: 600, IsFunctional: false},
		{VillageID: badhaadhe.ID, Type: models.WaterPointWell, Status: "dry", CapacityM3: 50, IsFunctional: true},
	}
	for i := range points {
		if err := repo.CreateWaterPoint(ctx, &points[i]); err != nil {
			return res, fmt.Errorf("seed: could not create water point: %w", err)
		}
		res.WaterPoints++
	}

	herds := []models.Livestock{
		{VillageID: ceelWaaq.ID, Species: "Camel", TotalCount: 4000, MortalityRate: 15},
		{VillageID: ceelWaaq.ID, Species: "Goat", TotalCount: 8000, MortalityRate: 18},
		{VillageID: afmadow.ID, Species: "Camel", TotalCount: 6000, MortalityRate: 35},
		{VillageID: afmadow.ID, Species: "Cattle", TotalCount: 2000, MortalityRate: 40},
		{VillageID: badhaadhe.ID, Species: "Goat", TotalCount: 5000, MortalityRate: 28},
	}
	for i := range herds {
		if err := repo.CreateLivestock(ctx, &herds[i]); err != nil {
			return res, fmt.Errorf("seed: could not create livestock: %w", err)
		}
		res.Livestock++
	}

	activities := []models.NGOActivity{
		{
			VillageID: afmadow.ID, NGOName: "Save the Children", ActivityType: "Water Trucking",
			Sector: models.SectorWASH, Status: models.ActivityOngoing,
			StartDate: date(2025, time.March, 1), EndDate: date(2025, time.April, 1),
			Coordinates: models.Coordinates{Lat: 0.5, Lng: 42.5},
		},
		{
			VillageID: luuq.ID, NGOName: "WFP", ActivityType: "Cash Relief",
			Sector: models.SectorCash, Status: models.ActivityOngoing,
			StartDate: date(2025, time.February, 15), EndDate: date(2025, time.June, 15),
			Coordinates: models.Coordinates{Lat: 3.8, Lng: 42.5},
		},
	}
	for i := range activities {
		if err := repo.CreateNGOActivity(ctx, &activities[i]); err != nil {
			return res, fmt.Errorf("seed: could not create ngo activity: %w", err)
		}
		res.NGOActivities++
	}

	alerts := []models.Alert{
		{VillageID: afmadow.ID, Type: models.AlertLivestock, Severity: models.SeverityCritical, Message: "Mortality rate > 30% reported in Afmadow"},
		{VillageID: badhaadhe.ID, Type: models.AlertWater, Severity: models.SeverityHigh, Message: "Critical water shortage in Badhaadhe"},
	}
	for i := range alerts {
		if err := repo.CreateAlert(ctx, &alerts[i]); err != nil {
			return res, fmt.Errorf("seed: could not create alert: %w", err)
		}
		res.Alerts++
	}

	for _, kind := range models.Kinds {
		if err := repo.InvalidateCollectionCache(ctx, kind); err != nil {
			log.WithError(err).WithField("collection", kind).Warn("Failed to invalidate cache after seed")
		}
	}

	log.WithFields(logrus.Fields{
		"villages":       res.Villages,
		"water_points":   res.WaterPoints,
		"livestock":      res.Livestock,
		"ngo_activities": res.NGOActivities,
		"alerts":         res.Alerts,
	}).Info("Seed data created")
	return res, nil
}

func demoVillages() []models.Village {
	return []models.Village{
		{Name: "Ceel Waaq", District: "El Wak", Region: "Gedo", Population: 4500, LivestockCount: 12000, DistanceToWaterKm: 12, WaterAccessLevel: models.WaterAccessLow, VulnerabilityScore: 78},
		{Name: "Doolow", District: "Doolow", Region: "Gedo", Population: 12000, LivestockCount: 8000, DistanceToWaterKm: 2, WaterAccessLevel: models.WaterAccessHigh, VulnerabilityScore: 25, IsCovered: true},
		{Name: "Luuq", District: "Luuq", Region: "Gedo", Population: 8500, LivestockCount: 15000, DistanceToWaterKm: 0.5, WaterAccessLevel: models.WaterAccessMedium, VulnerabilityScore: 45, IsCovered: true},
		{Name: "Garbahaarrey", District: "Garbahaarrey", Region: "Gedo", Population: 6200, LivestockCount: 9500, DistanceToWaterKm: 8, WaterAccessLevel: models.WaterAccessLow, VulnerabilityScore: 65},
		{Name: "Baardheere", District: "Baardheere", Region: "Gedo", Population: 15000, LivestockCount: 22000, DistanceToWaterKm: 1, WaterAccessLevel: models.WaterAccessHigh, VulnerabilityScore: 30, IsCovered: true},
		{Name: "Afmadow", District: "Afmadow", Region: "Lower Juba", Population: 7800, LivestockCount: 18000, DistanceToWaterKm: 15, WaterAccessLevel: models.WaterAccessCritical, VulnerabilityScore: 92},
		{Name: "Kismayo (Rural)", District: "Kismayo", Region: "Lower Juba", Population: 3500, LivestockCount: 6000, DistanceToWaterKm: 5, WaterAccessLevel: models.WaterAccessMedium, VulnerabilityScore: 50, IsCovered: true},
		{Name: "Badhaadhe", District: "Badhaadhe", Region: "Lower Juba", Population: 4200, LivestockCount: 8500, DistanceToWaterKm: 22, WaterAccessLevel: models.WaterAccessCritical, VulnerabilityScore: 88},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
