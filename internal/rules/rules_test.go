package rules

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaterPointDegradation_FiresWhenNonFunctional(t *testing.T) {
	villageID := uuid.New()
	prev := &models.WaterPoint{ID: uuid.New(), VillageID: villageID, Type: models.WaterPointBorehole, IsFunctional: true}
	next := *prev
	next.IsFunctional = false
	next.Status = "damaged"

	intent := WaterPointDegradation(prev, next)

	require.NotNil(t, intent)
	assert.Equal(t, models.AlertWater, intent.Type)
	assert.Equal(t, models.SeverityHigh, intent.Severity)
	assert.Equal(t, villageID, intent.VillageID)
	assert.Equal(t, "Water point borehole marked non-functional.", intent.Message)
}

func TestWaterPointDegradation_FiresRegardlessOfPreviousState(t *testing.T) {
	next := models.WaterPoint{VillageID: uuid.New(), Type: models.WaterPointWell, IsFunctional: false}

	assert.NotNil(t, WaterPointDegradation(nil, next))
	assert.NotNil(t, WaterPointDegradation(&models.WaterPoint{IsFunctional: false}, next))
}

func TestWaterPointDegradation_NeverFiresWhenFunctional(t *testing.T) {
	next := models.WaterPoint{VillageID: uuid.New(), Type: models.WaterPointDam, Status: "functional", IsFunctional: true}

	assert.Nil(t, WaterPointDegradation(nil, next))
	assert.Nil(t, WaterPointDegradation(&models.WaterPoint{IsFunctional: false}, next))
}

func TestWaterPointDegradation_Deterministic(t *testing.T) {
	next := models.WaterPoint{VillageID: uuid.New(), Type: models.WaterPointBerkad}

	assert.Equal(t, WaterPointDegradation(nil, next), WaterPointDegradation(nil, next))
}

func TestMortalityThreshold(t *testing.T) {
	rule := MortalityThreshold(DefaultMortalityThreshold)
	villageID := uuid.New()

	tests := []struct {
		name  string
		prev  *models.Livestock
		next  float64
		fires bool
	}{
		{name: "crosses threshold", prev: &models.Livestock{MortalityRate: 20}, next: 35, fires: true},
		{name: "unknown previous", prev: nil, next: 40, fires: true},
		{name: "already above", prev: &models.Livestock{MortalityRate: 35}, next: 45, fires: false},
		{name: "exactly threshold", prev: &models.Livestock{MortalityRate: 10}, next: 30, fires: false},
		{name: "falls below", prev: &models.Livestock{MortalityRate: 40}, next: 12, fires: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := models.Livestock{VillageID: villageID, Species: "Camel", MortalityRate: tt.next}
			intent := rule(tt.prev, next)
			if !tt.fires {
				assert.Nil(t, intent)
				return
			}
			require.NotNil(t, intent)
			assert.Equal(t, models.AlertLivestock, intent.Type)
			assert.Equal(t, models.SeverityCritical, intent.Severity)
			assert.Equal(t, villageID, intent.VillageID)
		})
	}
}

func TestMortalityThreshold_Message(t *testing.T) {
	intent := MortalityThreshold(30)(nil, models.Livestock{Species: "Cattle", MortalityRate: 40.5})

	require.NotNil(t, intent)
	assert.Equal(t, "Livestock mortality for Cattle reached 40.5%.", intent.Message)
}

func TestIntent_Alert(t *testing.T) {
	intent := Intent{VillageID: uuid.New(), Type: models.AlertWater, Severity: models.SeverityHigh, Message: "m"}

	alert := intent.Alert()

	assert.Equal(t, uuid.Nil, alert.ID)
	assert.False(t, alert.IsResolved)
	assert.Equal(t, intent.VillageID, alert.VillageID)
	assert.Equal(t, intent.Message, alert.Message)
}
