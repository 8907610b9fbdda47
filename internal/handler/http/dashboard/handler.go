// Package dashboard - HTTP-поверхность дашборда поверх кэша синхронизации.
// Чтения обслуживаются из зеркала и не ходят в сеть, записи проходят через кэш.
package dashboard

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/drought_response_system/internal/cache"
	v1 "github.com/shenikar/drought_response_system/internal/handler/http/v1"
	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/shenikar/drought_response_system/internal/views"
)

type Handler struct {
	cache    *cache.Cache
	sessions *sessionStore
	logger   *logrus.Logger
	validate *validator.Validate
}

func NewHandler(c *cache.Cache, logger *logrus.Logger) *Handler {
	return &Handler{
		cache:    c,
		sessions: newSessionStore(),
		logger:   logger,
		validate: validator.New(),
	}
}

type statsResponse struct {
	views.DashboardStats
	WaterPoints   views.WaterPointStats `json:"water_points"`
	CriticalHerds int                   `json:"critical_herds"`
	Sectors       []views.SectorShare   `json:"sectors"`
	SyncedAt      time.Time             `json:"synced_at"`
}

// alertView - оповещение с именем деревни для списка
type alertView struct {
	models.Alert
	VillageName string `json:"village_name"`
}

type sessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	Session       *models.Session `json:"session,omitempty"`
	Token         string          `json:"token,omitempty"`
	Navigation    []views.NavLink `json:"navigation"`
}

// writeResponse - результат обновления с порожденным оповещением.
// Warning заполняется, если оповещение создать не удалось.
type writeResponse[T any] struct {
	Record  T             `json:"record"`
	Alert   *models.Alert `json:"alert,omitempty"`
	Warning string        `json:"warning,omitempty"`
}

func (h *Handler) stats(c *gin.Context) {
	s := h.cache.Snapshot()
	c.JSON(http.StatusOK, statsResponse{
		DashboardStats: views.Dashboard(s),
		WaterPoints:    views.WaterPointCounts(s),
		CriticalHerds:  views.CriticalHerdCount(s),
		Sectors:        views.SectorShares(s),
		SyncedAt:       h.cache.SyncedAt(),
	})
}

func (h *Handler) listVillages(c *gin.Context) {
	filter := views.VillageFilter(c.DefaultQuery("filter", string(views.FilterAll)))
	switch filter {
	case views.FilterAll, views.FilterCritical, views.FilterNoNGO:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown filter"})
		return
	}
	c.JSON(http.StatusOK, views.FilterVillages(h.cache.Snapshot(), c.Query("search"), filter))
}

func (h *Handler) villageProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	profile, found := views.VillageProfile(h.cache.Snapshot(), id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "village not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) listWaterPoints(c *gin.Context) {
	c.JSON(http.StatusOK, h.cache.WaterPoints())
}

type supplyQuery struct {
	Population *int     `form:"population" validate:"required"`
	CapacityM3 *float64 `form:"capacity" validate:"required,gte=0"`
}

type supplyResponse struct {
	Population int     `json:"population"`
	CapacityM3 float64 `json:"capacity_m3"`
	Days       int     `json:"days"`
	Critical   bool    `json:"critical"`
}

// waterSupply - калькулятор запаса воды по норме 15 л на человека в сутки
func (h *Handler) waterSupply(c *gin.Context) {
	var query supplyQuery
	log := h.logger.WithField("method", "waterSupply")
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days := views.SupplyDays(*query.CapacityM3, *query.Population)
	c.JSON(http.StatusOK, supplyResponse{
		Population: *query.Population,
		CapacityM3: *query.CapacityM3,
		Days:       days,
		Critical:   days < views.ShortSupplyDays,
	})
}

func (h *Handler) listLivestock(c *gin.Context) {
	c.JSON(http.StatusOK, h.cache.Livestock())
}

func (h *Handler) listNGOActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.cache.NGOActivities())
}

func (h *Handler) listAlerts(c *gin.Context) {
	unresolved, _ := strconv.ParseBool(c.DefaultQuery("unresolved", "false"))
	s := h.cache.Snapshot()
	alerts := views.FilterAlerts(s, unresolved)

	out := make([]alertView, len(alerts))
	for i, a := range alerts {
		out[i] = alertView{Alert: a, VillageName: views.VillageName(s, a.VillageID)}
	}
	c.JSON(http.StatusOK, out)
}

// session описывает вход клиента, предъявившего токен
func (h *Handler) session(c *gin.Context) {
	resp := sessionResponse{Navigation: views.NavigationFor("")}
	if session, ok := h.sessions.lookup(requestToken(c)); ok {
		resp.Authenticated = true
		resp.Session = &session
		resp.Navigation = views.NavigationFor(session.User.Role)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) login(c *gin.Context) {
	var input v1.LoginRequest
	log := h.logger.WithField("method", "login")
	if !h.bind(c, log, &input) {
		return
	}

	session, err := h.cache.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	token := h.sessions.issue(session)
	c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Session:       &session,
		Token:         token,
		Navigation:    views.NavigationFor(session.User.Role),
	})
}

// logout отзывает токен клиента. Личность кэша сбрасывается с последним входом.
func (h *Handler) logout(c *gin.Context) {
	if remaining := h.sessions.revoke(requestToken(c)); remaining == 0 {
		h.cache.ClearSession()
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// sync перезагружает зеркало целиком
func (h *Handler) sync(c *gin.Context) {
	log := h.logger.WithField("method", "sync")
	if err := h.cache.LoadAll(c.Request.Context()); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced_at": h.cache.SyncedAt()})
}

func (h *Handler) createVillage(c *gin.Context) {
	var input v1.CreateVillageRequest
	log := h.logger.WithField("method", "createVillage")
	if !h.bind(c, log, &input) {
		return
	}

	village, err := h.cache.CreateVillage(c.Request.Context(), *v1.DTOToVillageModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, village)
}

func (h *Handler) createWaterPoint(c *gin.Context) {
	var input v1.CreateWaterPointRequest
	log := h.logger.WithField("method", "createWaterPoint")
	if !h.bind(c, log, &input) {
		return
	}

	point, err := h.cache.CreateWaterPoint(c.Request.Context(), *v1.DTOToWaterPointModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, point)
}

func (h *Handler) updateWaterPointStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input v1.UpdateWaterPointStatusRequest
	log := h.logger.WithField("method", "updateWaterPointStatus").WithField("id", id)
	if !h.bind(c, log, &input) {
		return
	}

	update, err := h.cache.UpdateWaterPointStatus(c.Request.Context(), id, input.Status, *input.IsFunctional)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toWriteResponse(update))
}

func (h *Handler) updateLivestock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input v1.UpdateLivestockRequest
	log := h.logger.WithField("method", "updateLivestock").WithField("id", id)
	if !h.bind(c, log, &input) {
		return
	}

	update, err := h.cache.UpdateLivestock(c.Request.Context(), id, *input.TotalCount, *input.MortalityRate)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toWriteResponse(update))
}

func (h *Handler) createLivestock(c *gin.Context) {
	var input v1.CreateLivestockRequest
	log := h.logger.WithField("method", "createLivestock")
	if !h.bind(c, log, &input) {
		return
	}

	herd, err := h.cache.CreateLivestock(c.Request.Context(), *v1.DTOToLivestockModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, herd)
}

func (h *Handler) createNGOActivity(c *gin.Context) {
	var input v1.CreateNGOActivityRequest
	log := h.logger.WithField("method", "createNGOActivity")
	if !h.bind(c, log, &input) {
		return
	}

	// Умолчания сектора и статуса подставляет хранилище
	created, err := h.cache.CreateNGOActivity(c.Request.Context(), *v1.DTOToNGOActivityModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateNGOActivityStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input v1.UpdateNGOActivityStatusRequest
	log := h.logger.WithField("method", "updateNGOActivityStatus").WithField("id", id)
	if !h.bind(c, log, &input) {
		return
	}

	activity, err := h.cache.UpdateNGOActivityStatus(c.Request.Context(), id, models.ActivityStatus(input.Status))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

// createAlert - ручное оповещение
func (h *Handler) createAlert(c *gin.Context) {
	var input v1.CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")
	if !h.bind(c, log, &input) {
		return
	}

	alert, err := h.cache.CreateAlert(c.Request.Context(), *v1.DTOToAlertModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

func (h *Handler) resolveAlert(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "resolveAlert").WithField("id", id)

	alert, err := h.cache.ResolveAlert(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// events отдает поток SSE: одно событие change без данных на каждое
// уведомление кэша. Уведомления, пришедшие пока клиент читает, склеиваются.
func (h *Handler) events(c *gin.Context) {
	changes := make(chan struct{}, 1)
	unsubscribe := h.cache.OnChange(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	h.logger.WithField("method", "events").Debug("Change stream opened")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-changes:
			c.SSEvent("change", "")
			return true
		}
	})
}

// requireSession пропускает только клиентов с действующим токеном входа
func (h *Handler) requireSession(c *gin.Context) {
	if _, ok := h.sessions.lookup(requestToken(c)); !ok {
		h.logger.WithField("path", c.FullPath()).Warn("Write attempted without session")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}
	c.Next()
}

// respondError переводит ошибки кэша в коды ответа
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var (
		writeErr *cache.WriteError
		fetchErr *cache.FetchError
		authErr  *cache.AuthError
	)
	switch {
	case errors.As(err, &writeErr):
		switch writeErr.Kind {
		case cache.WriteNotFound:
			log.WithError(err).Warn("Record not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		case cache.WriteUnreachable:
			log.WithError(err).Error("Record store unreachable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "record store unreachable"})
		default:
			log.WithError(err).Warn("Write rejected by record store")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "write rejected by record store"})
		}
	case errors.As(err, &authErr):
		if authErr.Kind == cache.AuthInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.WithError(err).Error("Credential check unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "authentication unavailable"})
	case errors.As(err, &fetchErr):
		log.WithError(err).Error("Failed to sync with record store")
		status := http.StatusBadGateway
		if fetchErr.Kind == cache.FetchUnreachable {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": fetchErr.Error()})
	default:
		log.WithError(err).Error("Unexpected cache error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

func toWriteResponse[T any](u cache.DerivedUpdate[T]) writeResponse[T] {
	resp := writeResponse[T]{Record: u.Record, Alert: u.Alert}
	if u.AlertErr != nil {
		resp.Warning = u.AlertErr.Error()
	}
	return resp
}
