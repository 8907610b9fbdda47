package v1

import "github.com/shenikar/drought_response_system/internal/models"

// DTOToVillageModel преобразует DTO создания в доменную модель
func DTOToVillageModel(dto CreateVillageRequest) *models.Village {
	return &models.Village{
		Name:               dto.Name,
		District:           dto.District,
		Region:             dto.Region,
		Population:         dto.Population,
		LivestockCount:     dto.LivestockCount,
		DistanceToWaterKm:  dto.DistanceToWaterKm,
		WaterAccessLevel:   models.WaterAccessLevel(dto.WaterAccessLevel),
		VulnerabilityScore: dto.VulnerabilityScore,
		IsCovered:          dto.IsCovered,
	}
}

// DTOToWaterPointModel преобразует DTO в модель. Без is_functional точка считается исправной
func DTOToWaterPointModel(dto CreateWaterPointRequest) *models.WaterPoint {
	isFunctional := true
	if dto.IsFunctional != nil {
		isFunctional = *dto.IsFunctional
	}
	return &models.WaterPoint{
		VillageID:           dto.VillageID,
		Type:                models.WaterPointType(dto.Type),
		Status:              dto.Status,
		CapacityM3:          dto.CapacityM3,
		IsFunctional:        isFunctional,
		LastMaintenanceDate: dto.LastMaintenanceDate,
	}
}

func DTOToLivestockModel(dto CreateLivestockRequest) *models.Livestock {
	return &models.Livestock{
		VillageID:     dto.VillageID,
		Species:       dto.Species,
		TotalCount:    dto.TotalCount,
		MortalityRate: dto.MortalityRate,
	}
}

func DTOToNGOActivityModel(dto CreateNGOActivityRequest) *models.NGOActivity {
	return &models.NGOActivity{
		VillageID:    dto.VillageID,
		NGOName:      dto.NGOName,
		ActivityType: dto.ActivityType,
		Sector:       models.Sector(dto.Sector),
		Status:       models.ActivityStatus(dto.Status),
		StartDate:    dto.StartDate,
		EndDate:      dto.EndDate,
		Coordinates: models.Coordinates{
			Lat: dto.Coordinates.Lat,
			Lng: dto.Coordinates.Lng,
		},
	}
}

func DTOToAlertModel(dto CreateAlertRequest) *models.Alert {
	return &models.Alert{
		VillageID: dto.VillageID,
		Type:      models.AlertType(dto.Type),
		Severity:  models.AlertSeverity(dto.Severity),
		Message:   dto.Message,
	}
}
