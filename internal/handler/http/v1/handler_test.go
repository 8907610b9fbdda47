package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/drought_response_system/internal/auth"
	"github.com/shenikar/drought_response_system/internal/config"
	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/shenikar/drought_response_system/internal/service"
	"github.com/shenikar/drought_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockRecordService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockRecordService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
		Users: []config.Credential{
			{Username: "gov", Password: "123", Role: models.RoleGovernment},
		},
	}

	handler := NewHandler(mockService, auth.NewStaticChecker(cfg.Users), logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestListVillages_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	villages := []models.Village{
		{ID: uuid.New(), Name: "Bardera", District: "Gedo"},
		{ID: uuid.New(), Name: "Luuq", District: "Gedo"},
	}

	mockService.EXPECT().ListVillages(gomock.Any()).Return(villages, nil).Times(1)

	// Чтение не требует ключа
	w := makeRequest(router, "GET", "/api/v1/villages", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.Village
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "Luuq", resp[1].Name)
}

func TestListAlerts_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListAlerts(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetWaterPoint_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	pointID := uuid.New()
	point := &models.WaterPoint{ID: pointID, Type: models.WaterPointBorehole, Status: "functional", IsFunctional: true}

	mockService.EXPECT().GetWaterPoint(gomock.Any(), pointID).Return(point, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/water-points/%s", pointID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.WaterPoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, pointID, resp.ID)
	assert.True(t, resp.IsFunctional)
}

func TestGetVillage_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetVillage(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/villages/invalid-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid ID")
}

func TestGetAlert_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	alertID := uuid.New()

	mockService.EXPECT().
		GetAlert(gomock.Any(), alertID).
		Return(nil, fmt.Errorf("alert with id %s: %w", alertID, service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/alerts/%s", alertID), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "record not found")
}

func TestCreateVillage_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	villageID := uuid.New()
	reqBody := CreateVillageRequest{
		Name:               "Dolow",
		District:           "Gedo",
		Population:         4200,
		DistanceToWaterKm:  7.5,
		WaterAccessLevel:   "Low",
		VulnerabilityScore: 71,
	}

	mockService.EXPECT().
		CreateVillage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Village) error {
			assert.Equal(t, models.WaterAccessLow, v.WaterAccessLevel)
			v.ID = villageID
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/villages", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.Village
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, villageID, resp.ID)
	assert.Equal(t, "Dolow", resp.Name)
}

func TestCreateVillage_MissingAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateVillage(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/villages", jsonBody(t, CreateVillageRequest{Name: "Dolow", District: "Gedo"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestCreateVillage_InvalidAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateVillage(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/villages",
		jsonBody(t, CreateVillageRequest{Name: "Dolow", District: "Gedo"}),
		map[string]string{"Authorization": "Bearer wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestCreateVillage_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateVillage(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/villages", bytes.NewBufferString(`{"name": "test"`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateVillage_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateVillageRequest{ // Отсутствует Name
		District:           "Gedo",
		VulnerabilityScore: 40,
	}

	mockService.EXPECT().CreateVillage(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/villages", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Name' failed on the 'required' tag")
}

func TestCreateWaterPoint_DefaultsToFunctional(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	villageID := uuid.New()

	mockService.EXPECT().
		CreateWaterPoint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.WaterPoint) error {
			assert.True(t, p.IsFunctional)
			assert.Equal(t, villageID, p.VillageID)
			p.ID = uuid.New()
			return nil
		}).Times(1)

	body := fmt.Sprintf(`{"village_id":"%s","type":"berkad","capacity_m3":120}`, villageID)
	w := makeRequest(router, "POST", "/api/v1/water-points", bytes.NewBufferString(body), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateWaterPoint_UnknownVillage(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CreateWaterPoint(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("failed to create water point: %w", service.ErrInvalidReference)).
		Times(1)

	body := fmt.Sprintf(`{"village_id":"%s","type":"well"}`, uuid.New())
	w := makeRequest(router, "POST", "/api/v1/water-points", bytes.NewBufferString(body), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), service.ErrInvalidReference.Error())
}

func TestCreateNGOActivity_EndBeforeStart(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	reqBody := CreateNGOActivityRequest{
		VillageID:    uuid.New(),
		NGOName:      "Save the Children",
		ActivityType: "Water trucking",
		Sector:       "WASH",
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, -1),
	}

	mockService.EXPECT().CreateNGOActivity(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/ngo-activities", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'EndDate' failed on the 'gtefield' tag")
}

func TestCreateNGOActivity_SectorWithSpace(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	reqBody := CreateNGOActivityRequest{
		VillageID:    uuid.New(),
		NGOName:      "WFP",
		ActivityType: "Food distribution",
		Sector:       "Food Security",
		StartDate:    start,
		EndDate:      start.AddDate(0, 1, 0),
		Coordinates:  CoordinatesRequest{Lat: 3.39, Lng: 42.22},
	}

	mockService.EXPECT().
		CreateNGOActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.NGOActivity) error {
			assert.Equal(t, models.SectorFoodSecurity, a.Sector)
			assert.Equal(t, 42.22, a.Coordinates.Lng)
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/ngo-activities", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateAlert_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateAlertRequest{
		VillageID: uuid.New(),
		Type:      "water",
		Severity:  "high",
		Message:   "Borehole dry",
	}

	mockService.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestUpdateWaterPointStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	pointID := uuid.New()
	updated := &models.WaterPoint{ID: pointID, Status: "dry", IsFunctional: false}

	mockService.EXPECT().UpdateWaterPointStatus(gomock.Any(), pointID, "dry", false).Return(updated, nil).Times(1)

	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/water-points/%s/status", pointID),
		bytes.NewBufferString(`{"status":"dry","is_functional":false}`), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.WaterPoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "dry", resp.Status)
}

func TestUpdateWaterPointStatus_MissingFlag(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateWaterPointStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/water-points/%s/status", uuid.New()),
		bytes.NewBufferString(`{"status":"dry"}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'IsFunctional' failed on the 'required' tag")
}

func TestUpdateLivestock_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	herdID := uuid.New()

	mockService.EXPECT().
		UpdateLivestock(gomock.Any(), herdID, 900, 35.0).
		Return(&models.Livestock{ID: herdID, TotalCount: 900, MortalityRate: 35}, nil).
		Times(1)

	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/livestock/%s", herdID),
		bytes.NewBufferString(`{"total_count":900,"mortality_rate":35}`), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateLivestock_OutOfRange(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateLivestock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/livestock/%s", uuid.New()),
		bytes.NewBufferString(`{"total_count":900,"mortality_rate":140}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateNGOActivityStatus_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	activityID := uuid.New()

	mockService.EXPECT().
		UpdateNGOActivityStatus(gomock.Any(), activityID, models.ActivityCompleted).
		Return(nil, service.ErrNotFound).
		Times(1)

	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/ngo-activities/%s/status", activityID),
		bytes.NewBufferString(`{"status":"completed"}`), apiKeyHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResolveAlert_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	alertID := uuid.New()

	mockService.EXPECT().
		ResolveAlert(gomock.Any(), alertID).
		Return(&models.Alert{ID: alertID, IsResolved: true}, nil).
		Times(1)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/alerts/%s/resolve", alertID), nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsResolved)
}

func TestResolveAlert_RequiresAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ResolveAlert(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/alerts/%s/resolve", uuid.New()), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/login", jsonBody(t, LoginRequest{Username: "gov", Password: "123"}))

	assert.Equal(t, http.StatusOK, w.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, models.RoleGovernment, user.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/login", jsonBody(t, LoginRequest{Username: "gov", Password: "wrong"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, w.Body.String())
}

func TestLogin_ValidationError(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/login", jsonBody(t, LoginRequest{Username: "gov"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Password' failed on the 'required' tag")
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
