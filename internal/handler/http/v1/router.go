package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Чтение открыто, запись только по API-ключу
	writeAuth := APIKeyAuthMiddleware(h.cfg, h.logger)

	villages := api.Group("/villages")
	{
		villages.GET("", h.listVillages)
		villages.GET("/:id", h.getVillage)
		villages.POST("", writeAuth, h.createVillage)
	}

	waterPoints := api.Group("/water-points")
	{
		waterPoints.GET("", h.listWaterPoints)
		waterPoints.GET("/:id", h.getWaterPoint)
		waterPoints.POST("", writeAuth, h.createWaterPoint)
		waterPoints.PATCH("/:id/status", writeAuth, h.updateWaterPointStatus)
	}

	livestock := api.Group("/livestock")
	{
		livestock.GET("", h.listLivestock)
		livestock.GET("/:id", h.getLivestock)
		livestock.POST("", writeAuth, h.createLivestock)
		livestock.PATCH("/:id", writeAuth, h.updateLivestock)
	}

	activities := api.Group("/ngo-activities")
	{
		activities.GET("", h.listNGOActivities)
		activities.GET("/:id", h.getNGOActivity)
		activities.POST("", writeAuth, h.createNGOActivity)
		activities.PATCH("/:id/status", writeAuth, h.updateNGOActivityStatus)
	}

	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/:id", h.getAlert)
		alerts.POST("", writeAuth, h.createAlert)
		alerts.PUT("/:id/resolve", writeAuth, h.resolveAlert)
	}

	// Проверка учетных данных для дашборда
	api.POST("/login", h.login)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
