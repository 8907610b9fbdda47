package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/drought_response_system/internal/models"
)

const apiPrefix = "/api/v1"

// Client - HTTP-реализация Store и Authenticator поверх API хранилища записей
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient создает клиента. timeout ограничивает каждый HTTP-запрос
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + apiPrefix,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) ListVillages(ctx context.Context) ([]models.Village, error) {
	return list(ctx, c, models.KindVillage, func(v *models.Village, id uuid.UUID) { v.ID = id })
}

func (c *Client) ListWaterPoints(ctx context.Context) ([]models.WaterPoint, error) {
	return list(ctx, c, models.KindWaterPoint, func(v *models.WaterPoint, id uuid.UUID) { v.ID = id })
}

func (c *Client) ListLivestock(ctx context.Context) ([]models.Livestock, error) {
	return list(ctx, c, models.KindLivestock, func(v *models.Livestock, id uuid.UUID) { v.ID = id })
}

func (c *Client) ListNGOActivities(ctx context.Context) ([]models.NGOActivity, error) {
	return list(ctx, c, models.KindNGOActivity, func(v *models.NGOActivity, id uuid.UUID) { v.ID = id })
}

func (c *Client) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	return list(ctx, c, models.KindAlert, func(v *models.Alert, id uuid.UUID) { v.ID = id })
}

func (c *Client) CreateVillage(ctx context.Context, village models.Village) (models.Village, error) {
	return send(ctx, c, http.MethodPost, "/"+models.KindVillage.String(), village,
		func(v *models.Village, id uuid.UUID) { v.ID = id })
}

func (c *Client) CreateWaterPoint(ctx context.Context, point models.WaterPoint) (models.WaterPoint, error) {
	return send(ctx, c, http.MethodPost, "/"+models.KindWaterPoint.String(), point,
		func(v *models.WaterPoint, id uuid.UUID) { v.ID = id })
}

func (c *Client) CreateLivestock(ctx context.Context, herd models.Livestock) (models.Livestock, error) {
	return send(ctx, c, http.MethodPost, "/"+models.KindLivestock.String(), herd,
		func(v *models.Livestock, id uuid.UUID) { v.ID = id })
}

func (c *Client) CreateNGOActivity(ctx context.Context, activity models.NGOActivity) (models.NGOActivity, error) {
	return send(ctx, c, http.MethodPost, "/"+models.KindNGOActivity.String(), activity,
		func(v *models.NGOActivity, id uuid.UUID) { v.ID = id })
}

func (c *Client) CreateAlert(ctx context.Context, alert models.Alert) (models.Alert, error) {
	return send(ctx, c, http.MethodPost, "/"+models.KindAlert.String(), alert,
		func(v *models.Alert, id uuid.UUID) { v.ID = id })
}

func (c *Client) UpdateWaterPointStatus(ctx context.Context, id uuid.UUID, status string, isFunctional bool) (models.WaterPoint, error) {
	body := map[string]any{"status": status, "is_functional": isFunctional}
	return send(ctx, c, http.MethodPatch, fmt.Sprintf("/%s/%s/status", models.KindWaterPoint, id), body,
		func(v *models.WaterPoint, id uuid.UUID) { v.ID = id })
}

func (c *Client) UpdateLivestock(ctx context.Context, id uuid.UUID, totalCount int, mortalityRate float64) (models.Livestock, error) {
	body := map[string]any{"total_count": totalCount, "mortality_rate": mortalityRate}
	return send(ctx, c, http.MethodPatch, fmt.Sprintf("/%s/%s", models.KindLivestock, id), body,
		func(v *models.Livestock, id uuid.UUID) { v.ID = id })
}

func (c *Client) UpdateNGOActivityStatus(ctx context.Context, id uuid.UUID, status models.ActivityStatus) (models.NGOActivity, error) {
	body := map[string]any{"status": status}
	return send(ctx, c, http.MethodPatch, fmt.Sprintf("/%s/%s/status", models.KindNGOActivity, id), body,
		func(v *models.NGOActivity, id uuid.UUID) { v.ID = id })
}

func (c *Client) ResolveAlert(ctx context.Context, id uuid.UUID) (models.Alert, error) {
	return send[models.Alert](ctx, c, http.MethodPut, fmt.Sprintf("/%s/%s/resolve", models.KindAlert, id), nil,
		func(v *models.Alert, id uuid.UUID) { v.ID = id })
}

// Authenticate проверяет логин через POST /login. 401 означает неверные учетные данные
func (c *Client) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	body := map[string]string{"username": username, "password": password}
	raw, err := c.do(ctx, http.MethodPost, "/login", body)
	if err != nil {
		if errors.Is(err, errUnauthorized) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: failed to decode login response: %v", ErrServerFault, err)
	}
	return user, nil
}

var errUnauthorized = errors.New("unauthorized")

// do выполняет запрос и переводит транспортные ошибки и коды ответа в ошибки хранилища
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInvalidPayload, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", ErrInvalidPayload, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnreachable, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	msg := errorMessage(raw)
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, msg)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, msg)
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: %w: %s", ErrServerFault, errUnauthorized, msg)
	case resp.StatusCode == http.StatusBadGateway || resp.StatusCode == http.StatusServiceUnavailable ||
		resp.StatusCode == http.StatusGatewayTimeout:
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnreachable, resp.StatusCode, msg)
	default:
		return nil, fmt.Errorf("%w: status %d: %s", ErrServerFault, resp.StatusCode, msg)
	}
}

func errorMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}

func list[T any](ctx context.Context, c *Client, kind models.Kind, setID func(*T, uuid.UUID)) ([]T, error) {
	raw, err := c.do(ctx, http.MethodGet, "/"+kind.String(), nil)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrServerFault, kind, err)
	}

	records := make([]T, 0, len(items))
	for _, item := range items {
		record, err := decodeRecord(item, setID)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode %s record: %v", ErrServerFault, kind, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func send[T any](ctx context.Context, c *Client, method, path string, body any, setID func(*T, uuid.UUID)) (T, error) {
	var zero T
	raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return zero, err
	}
	record, err := decodeRecord(raw, setID)
	if err != nil {
		return zero, fmt.Errorf("%w: failed to decode response for %s: %v", ErrServerFault, path, err)
	}
	return record, nil
}
