package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/drought_response_system/internal/auth"
	"github.com/shenikar/drought_response_system/internal/config"
	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/shenikar/drought_response_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Authenticator проверяет учетные данные для /login
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

type Handler struct {
	recordService service.RecordService
	authenticator Authenticator
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(recordService service.RecordService, authenticator Authenticator, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		recordService: recordService,
		authenticator: authenticator,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary List villages
// @Description Get all villages.
// @Tags Villages
// @Produce json
// @Success 200 {array} models.Village
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /villages [get]
func (h *Handler) listVillages(c *gin.Context) {
	respondList(c, h, "listVillages", h.recordService.ListVillages)
}

// @Summary Get village by ID
// @Tags Villages
// @Produce json
// @Param id path string true "Village ID"
// @Success 200 {object} models.Village
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /villages/{id} [get]
func (h *Handler) getVillage(c *gin.Context) {
	respondGet(c, h, "getVillage", h.recordService.GetVillage)
}

// @Summary Create a village
// @Description Create a new village. Requires API key.
// @Tags Villages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param village body CreateVillageRequest true "Village creation request"
// @Success 201 {object} models.Village
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /villages [post]
func (h *Handler) createVillage(c *gin.Context) {
	respondCreate(c, h, "createVillage", DTOToVillageModel, h.recordService.CreateVillage)
}

// @Summary List water points
// @Tags WaterPoints
// @Produce json
// @Success 200 {array} models.WaterPoint
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /water-points [get]
func (h *Handler) listWaterPoints(c *gin.Context) {
	respondList(c, h, "listWaterPoints", h.recordService.ListWaterPoints)
}

// @Summary Get water point by ID
// @Tags WaterPoints
// @Produce json
// @Param id path string true "Water point ID"
// @Success 200 {object} models.WaterPoint
// @Failure 404 {object} map[string]string "Record not found"
// @Router /water-points/{id} [get]
func (h *Handler) getWaterPoint(c *gin.Context) {
	respondGet(c, h, "getWaterPoint", h.recordService.GetWaterPoint)
}

// @Summary Create a water point
// @Description Create a new water point. Requires API key.
// @Tags WaterPoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param point body CreateWaterPointRequest true "Water point creation request"
// @Success 201 {object} models.WaterPoint
// @Failure 400 {object} map[string]string "Invalid request body, validation error or unknown village"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /water-points [post]
func (h *Handler) createWaterPoint(c *gin.Context) {
	respondCreate(c, h, "createWaterPoint", DTOToWaterPointModel, h.recordService.CreateWaterPoint)
}

// @Summary Update water point status
// @Description Set status and functional flag; stamps the maintenance date. Requires API key.
// @Tags WaterPoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Water point ID"
// @Param status body UpdateWaterPointStatusRequest true "Status update"
// @Success 200 {object} models.WaterPoint
// @Failure 400 {object} map[string]string "Invalid ID or request body"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /water-points/{id}/status [patch]
func (h *Handler) updateWaterPointStatus(c *gin.Context) {
	var input UpdateWaterPointStatusRequest
	id, log, ok := h.bindUpdate(c, "updateWaterPointStatus", &input)
	if !ok {
		return
	}

	point, err := h.recordService.UpdateWaterPointStatus(c.Request.Context(), id, input.Status, *input.IsFunctional)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, point)
}

// @Summary List livestock
// @Tags Livestock
// @Produce json
// @Success 200 {array} models.Livestock
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /livestock [get]
func (h *Handler) listLivestock(c *gin.Context) {
	respondList(c, h, "listLivestock", h.recordService.ListLivestock)
}

// @Summary Get livestock record by ID
// @Tags Livestock
// @Produce json
// @Param id path string true "Livestock ID"
// @Success 200 {object} models.Livestock
// @Failure 404 {object} map[string]string "Record not found"
// @Router /livestock/{id} [get]
func (h *Handler) getLivestock(c *gin.Context) {
	respondGet(c, h, "getLivestock", h.recordService.GetLivestock)
}

// @Summary Create a livestock record
// @Tags Livestock
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param herd body CreateLivestockRequest true "Livestock creation request"
// @Success 201 {object} models.Livestock
// @Failure 400 {object} map[string]string "Invalid request body, validation error or unknown village"
// @Router /livestock [post]
func (h *Handler) createLivestock(c *gin.Context) {
	respondCreate(c, h, "createLivestock", DTOToLivestockModel, h.recordService.CreateLivestock)
}

// @Summary Update livestock counts
// @Description Set total count and mortality rate. Requires API key.
// @Tags Livestock
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Livestock ID"
// @Param update body UpdateLivestockRequest true "Counts update"
// @Success 200 {object} models.Livestock
// @Failure 404 {object} map[string]string "Record not found"
// @Router /livestock/{id} [patch]
func (h *Handler) updateLivestock(c *gin.Context) {
	var input UpdateLivestockRequest
	id, log, ok := h.bindUpdate(c, "updateLivestock", &input)
	if !ok {
		return
	}

	herd, err := h.recordService.UpdateLivestock(c.Request.Context(), id, *input.TotalCount, *input.MortalityRate)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, herd)
}

// @Summary List NGO activities
// @Tags NGOActivities
// @Produce json
// @Success 200 {array} models.NGOActivity
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ngo-activities [get]
func (h *Handler) listNGOActivities(c *gin.Context) {
	respondList(c, h, "listNGOActivities", h.recordService.ListNGOActivities)
}

// @Summary Get NGO activity by ID
// @Tags NGOActivities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} models.NGOActivity
// @Failure 404 {object} map[string]string "Record not found"
// @Router /ngo-activities/{id} [get]
func (h *Handler) getNGOActivity(c *gin.Context) {
	respondGet(c, h, "getNGOActivity", h.recordService.GetNGOActivity)
}

// @Summary Create an NGO activity
// @Tags NGOActivities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param activity body CreateNGOActivityRequest true "Activity creation request"
// @Success 201 {object} models.NGOActivity
// @Failure 400 {object} map[string]string "Invalid request body, validation error or unknown village"
// @Router /ngo-activities [post]
func (h *Handler) createNGOActivity(c *gin.Context) {
	respondCreate(c, h, "createNGOActivity", DTOToNGOActivityModel, h.recordService.CreateNGOActivity)
}

// @Summary Update NGO activity status
// @Tags NGOActivities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Activity ID"
// @Param status body UpdateNGOActivityStatusRequest true "Status update"
// @Success 200 {object} models.NGOActivity
// @Failure 404 {object} map[string]string "Record not found"
// @Router /ngo-activities/{id}/status [patch]
func (h *Handler) updateNGOActivityStatus(c *gin.Context) {
	var input UpdateNGOActivityStatusRequest
	id, log, ok := h.bindUpdate(c, "updateNGOActivityStatus", &input)
	if !ok {
		return
	}

	activity, err := h.recordService.UpdateNGOActivityStatus(c.Request.Context(), id, models.ActivityStatus(input.Status))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

// @Summary List alerts
// @Description Get all alerts, newest first.
// @Tags Alerts
// @Produce json
// @Success 200 {array} models.Alert
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	respondList(c, h, "listAlerts", h.recordService.ListAlerts)
}

// @Summary Get alert by ID
// @Tags Alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} models.Alert
// @Failure 404 {object} map[string]string "Record not found"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	respondGet(c, h, "getAlert", h.recordService.GetAlert)
}

// @Summary Create an alert
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} models.Alert
// @Failure 400 {object} map[string]string "Invalid request body, validation error or unknown village"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	respondCreate(c, h, "createAlert", DTOToAlertModel, h.recordService.CreateAlert)
}

// @Summary Resolve an alert
// @Description Mark an alert as resolved. Resolving twice is not an error. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} models.Alert
// @Failure 404 {object} map[string]string "Record not found"
// @Router /alerts/{id}/resolve [put]
func (h *Handler) resolveAlert(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "resolveAlert").WithField("id", id)

	alert, err := h.recordService.ResolveAlert(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// @Summary Check credentials
// @Description Verify username and password and return the user's role. No session is created.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authenticator.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.WithField("username", input.Username).Warn("Invalid credentials")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.WithError(err).Error("Failed to check credentials")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	log.WithFields(logrus.Fields{"username": user.Username, "role": user.Role}).Info("Credentials accepted")
	c.JSON(http.StatusOK, user)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError переводит ошибки сервиса в коды ответа
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Record not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, service.ErrInvalidReference):
		log.WithError(err).Warn("Unknown village reference")
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidReference.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		log.WithError(err).Warn("Record rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Failed to process request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindUpdate разбирает id и тело запроса на обновление
func (h *Handler) bindUpdate(c *gin.Context, method string, input any) (uuid.UUID, *logrus.Entry, bool) {
	id, ok := parseID(c)
	if !ok {
		return uuid.Nil, nil, false
	}
	log := h.logger.WithField("method", method).WithField("id", id)

	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return uuid.Nil, nil, false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return uuid.Nil, nil, false
	}
	return id, log, true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

func respondList[T any](c *gin.Context, h *Handler, method string, fetch func(context.Context) ([]T, error)) {
	log := h.logger.WithField("method", method)

	items, err := fetch(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func respondGet[T any](c *gin.Context, h *Handler, method string, fetch func(context.Context, uuid.UUID) (*T, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", method).WithField("id", id)

	record, err := fetch(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func respondCreate[Req any, T any](c *gin.Context, h *Handler, method string, toModel func(Req) *T, insert func(context.Context, *T) error) {
	var input Req
	log := h.logger.WithField("method", method)

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := toModel(input)
	if err := insert(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, model)
}
