package dashboard

import "github.com/gin-gonic/gin"

// RegisterRoutes регистрирует маршруты дашборда
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/stats", h.stats)
	api.GET("/villages", h.listVillages)
	api.GET("/villages/:id", h.villageProfile)
	api.GET("/water-points", h.listWaterPoints)
	api.GET("/water-points/supply", h.waterSupply)
	api.GET("/livestock", h.listLivestock)
	api.GET("/ngo-activities", h.listNGOActivities)
	api.GET("/alerts", h.listAlerts)

	// Сессия
	api.GET("/session", h.session)
	api.POST("/login", h.login)

	// Поток изменений для клиентов
	api.GET("/events", h.events)

	// Записи доступны только клиенту с токеном входа
	write := api.Group("", h.requireSession)
	{
		write.POST("/logout", h.logout)
		write.POST("/sync", h.sync)
		write.POST("/villages", h.createVillage)
		write.POST("/water-points", h.createWaterPoint)
		write.PATCH("/water-points/:id/status", h.updateWaterPointStatus)
		write.POST("/livestock", h.createLivestock)
		write.PATCH("/livestock/:id", h.updateLivestock)
		write.POST("/ngo-activities", h.createNGOActivity)
		write.PATCH("/ngo-activities/:id/status", h.updateNGOActivityStatus)
		write.POST("/alerts", h.createAlert)
		write.PUT("/alerts/:id/resolve", h.resolveAlert)
	}
}
