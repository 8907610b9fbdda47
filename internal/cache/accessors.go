package cache

import (
	"github.com/google/uuid"
	"github.com/shenikar/drought_response_system/internal/models"
)

// Аксессоры никогда не ходят в сеть и возвращают копии зеркала.

func (c *Cache) Villages() []models.Village {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clone(c.state.villages)
}

func (c *Cache) WaterPoints() []models.WaterPoint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clone(c.state.waterPoints)
}

func (c *Cache) Livestock() []models.Livestock {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clone(c.state.livestock)
}

func (c *Cache) NGOActivities() []models.NGOActivity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clone(c.state.ngoActivities)
}

func (c *Cache) Alerts() []models.Alert {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clone(c.state.alerts)
}

// ActiveAlerts возвращает нерешенные оповещения
func (c *Cache) ActiveAlerts() []models.Alert {
	c.mu.RLock()
	defer c.mu.RUnlock()
	active := make([]models.Alert, 0, len(c.state.alerts))
	for _, a := range c.state.alerts {
		if !a.IsResolved {
			active = append(active, a)
		}
	}
	return active
}

func (c *Cache) Village(id uuid.UUID) (models.Village, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return find(c.state.villages, id, villageID)
}

func (c *Cache) WaterPoint(id uuid.UUID) (models.WaterPoint, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return find(c.state.waterPoints, id, waterPointID)
}

func (c *Cache) LivestockRecord(id uuid.UUID) (models.Livestock, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return find(c.state.livestock, id, livestockID)
}

func (c *Cache) NGOActivity(id uuid.UUID) (models.NGOActivity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return find(c.state.ngoActivities, id, ngoActivityID)
}

func (c *Cache) Alert(id uuid.UUID) (models.Alert, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return find(c.state.alerts, id, alertID)
}

func villageID(v models.Village) uuid.UUID         { return v.ID }
func waterPointID(v models.WaterPoint) uuid.UUID   { return v.ID }
func livestockID(v models.Livestock) uuid.UUID     { return v.ID }
func ngoActivityID(v models.NGOActivity) uuid.UUID { return v.ID }
func alertID(v models.Alert) uuid.UUID             { return v.ID }

func find[T any](items []T, id uuid.UUID, key func(T) uuid.UUID) (T, bool) {
	for _, item := range items {
		if key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// upsert заменяет запись с тем же id или добавляет ее в конец.
// Возвращает новый срез, чтобы ранее выданные копии не менялись.
func upsert[T any](items []T, record T, key func(T) uuid.UUID) []T {
	out := clone(items)
	id := key(record)
	for i := range out {
		if key(out[i]) == id {
			out[i] = record
			return out
		}
	}
	return append(out, record)
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
