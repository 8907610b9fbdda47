package views

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	snap             Snapshot
	ceelWaaq, doolow models.Village
	afmadow          models.Village
}

func newFixture() fixture {
	ceelWaaq := models.Village{ID: uuid.New(), Name: "Ceel Waaq", District: "El Wak", VulnerabilityScore: 78}
	doolow := models.Village{ID: uuid.New(), Name: "Doolow", District: "Doolow", VulnerabilityScore: 25, IsCovered: true}
	afmadow := models.Village{ID: uuid.New(), Name: "Afmadow", District: "Afmadow", Population: 7800, VulnerabilityScore: 92}
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	return fixture{
		ceelWaaq: ceelWaaq,
		doolow:   doolow,
		afmadow:  afmadow,
		snap: Snapshot{
			Villages: []models.Village{ceelWaaq, doolow, afmadow},
			WaterPoints: []models.WaterPoint{
				{ID: uuid.New(), VillageID: ceelWaaq.ID, Type: models.WaterPointBorehole, IsFunctional: true},
				{ID: uuid.New(), VillageID: afmadow.ID, Type: models.WaterPointBorehole, CapacityM3: 600, IsFunctional: false},
				{ID: uuid.New(), VillageID: afmadow.ID, Type: models.WaterPointWell, CapacityM3: 600, IsFunctional: true},
			},
			Livestock: []models.Livestock{
				{ID: uuid.New(), VillageID: ceelWaaq.ID, Species: "Camel", TotalCount: 4000, MortalityRate: 15},
				{ID: uuid.New(), VillageID: afmadow.ID, Species: "Camel", TotalCount: 6000, MortalityRate: 35},
				{ID: uuid.New(), VillageID: afmadow.ID, Species: "Cattle", TotalCount: 2000, MortalityRate: 40},
				{ID: uuid.New(), VillageID: afmadow.ID, Species: "Goat", TotalCount: 500, MortalityRate: 30},
			},
			NGOActivities: []models.NGOActivity{
				{ID: uuid.New(), VillageID: afmadow.ID, Sector: models.SectorWASH, Status: models.ActivityOngoing},
				{ID: uuid.New(), VillageID: afmadow.ID, Sector: models.SectorCash, Status: models.ActivityOngoing},
				{ID: uuid.New(), VillageID: ceelWaaq.ID, Sector: models.SectorWASH, Status: models.ActivityCompleted},
			},
			Alerts: []models.Alert{
				{ID: uuid.New(), VillageID: afmadow.ID, Type: models.AlertLivestock, CreatedAt: now.Add(-2 * time.Hour)},
				{ID: uuid.New(), VillageID: afmadow.ID, Type: models.AlertWater, CreatedAt: now},
				{ID: uuid.New(), VillageID: ceelWaaq.ID, Type: models.AlertWater, IsResolved: true, CreatedAt: now.Add(-time.Hour)},
				{ID: uuid.New(), VillageID: uuid.New(), Type: models.AlertConflict, CreatedAt: now.Add(-48 * time.Hour)},
			},
		},
	}
}

func TestCoverageRatio_DerivedFromOngoingActivities(t *testing.T) {
	f := newFixture()

	// Doolow хранит IsCovered=true, но текущих мероприятий у нее нет
	assert.InDelta(t, 1.0/3.0, CoverageRatio(f.snap), 1e-9)
	assert.True(t, IsVillageCovered(f.snap, f.afmadow.ID))
	assert.False(t, IsVillageCovered(f.snap, f.doolow.ID))
	assert.False(t, IsVillageCovered(f.snap, f.ceelWaaq.ID))
}

func TestCoverageRatio_Empty(t *testing.T) {
	assert.Equal(t, 0.0, CoverageRatio(Snapshot{}))
}

func TestSectorHistogram(t *testing.T) {
	f := newFixture()

	hist := SectorHistogram(f.snap)

	assert.Equal(t, map[models.Sector]int{models.SectorWASH: 2, models.SectorCash: 1}, hist)
}

func TestSectorShares(t *testing.T) {
	f := newFixture()

	shares := SectorShares(f.snap)

	require.Len(t, shares, len(models.Sectors))
	assert.Equal(t, models.SectorWASH, shares[0].Sector)
	assert.Equal(t, 2, shares[0].Count)
	assert.InDelta(t, 66.67, shares[0].Percent, 0.01)
	assert.Equal(t, 0, shares[1].Count)
}

func TestSectorShares_NoActivities(t *testing.T) {
	for _, share := range SectorShares(Snapshot{}) {
		assert.Equal(t, 0.0, share.Percent)
	}
}

func TestCounts(t *testing.T) {
	f := newFixture()

	assert.Equal(t, 2, CriticalHerdCount(f.snap))
	assert.Equal(t, 12500, TotalHead(f.snap))
	assert.Equal(t, 3, ActiveAlertCount(f.snap))
	assert.Equal(t, 1, WaterFailureCount(f.snap))
	assert.Equal(t, 2, ActiveNGOCount(f.snap))
	assert.Equal(t, WaterPointStats{Functional: 2, NonFunctional: 1}, WaterPointCounts(f.snap))
}

func TestDashboard(t *testing.T) {
	f := newFixture()

	stats := Dashboard(f.snap)

	assert.Equal(t, 3, stats.TotalVillages)
	assert.Equal(t, 1, stats.WaterFailures)
	assert.Equal(t, 2, stats.HighRiskLivestock)
	assert.Equal(t, 2, stats.ActiveNGOs)
	assert.Equal(t, 3, stats.ActiveAlerts)
}

func TestVillageName_DanglingReference(t *testing.T) {
	f := newFixture()

	assert.Equal(t, "Afmadow", VillageName(f.snap, f.afmadow.ID))
	assert.Equal(t, UnknownVillage, VillageName(f.snap, uuid.New()))
	assert.Equal(t, UnknownVillage, VillageName(Snapshot{}, uuid.Nil))
}

func TestFilterVillages(t *testing.T) {
	f := newFixture()

	assert.Len(t, FilterVillages(f.snap, "", FilterAll), 3)

	critical := FilterVillages(f.snap, "", FilterCritical)
	require.Len(t, critical, 2)
	assert.Equal(t, f.ceelWaaq.ID, critical[0].ID)
	assert.Equal(t, f.afmadow.ID, critical[1].ID)

	noNGO := FilterVillages(f.snap, "", FilterNoNGO)
	require.Len(t, noNGO, 2)
	assert.Equal(t, f.ceelWaaq.ID, noNGO[0].ID)
	assert.Equal(t, f.doolow.ID, noNGO[1].ID)

	bySearch := FilterVillages(f.snap, "el wak", FilterAll)
	require.Len(t, bySearch, 1)
	assert.Equal(t, f.ceelWaaq.ID, bySearch[0].ID)

	assert.Empty(t, FilterVillages(f.snap, "doolow", FilterCritical))
}

func TestFilterAlerts_NewestFirst(t *testing.T) {
	f := newFixture()

	unresolved := FilterAlerts(f.snap, true)
	require.Len(t, unresolved, 3)
	assert.Equal(t, models.AlertWater, unresolved[0].Type)
	assert.Equal(t, models.AlertLivestock, unresolved[1].Type)
	assert.Equal(t, models.AlertConflict, unresolved[2].Type)

	all := FilterAlerts(f.snap, false)
	require.Len(t, all, 4)
	assert.True(t, all[1].IsResolved)
}

func TestFilterAlerts_DoesNotMutateSnapshot(t *testing.T) {
	f := newFixture()
	first := f.snap.Alerts[0].ID

	FilterAlerts(f.snap, false)

	assert.Equal(t, first, f.snap.Alerts[0].ID)
}

func TestVillageProfile(t *testing.T) {
	f := newFixture()

	p, ok := VillageProfile(f.snap, f.afmadow.ID)

	require.True(t, ok)
	assert.Equal(t, "Afmadow", p.Village.Name)
	assert.True(t, p.IsCovered)
	// Только исправная скважина: 600 м3 на 7800 человек
	assert.Equal(t, 5, p.SupplyDays)
	assert.Len(t, p.WaterPoints, 2)
	assert.Len(t, p.Livestock, 3)
	assert.Len(t, p.NGOActivities, 2)
	require.Len(t, p.Alerts, 2)
	assert.Equal(t, models.AlertWater, p.Alerts[0].Type)

	_, ok = VillageProfile(f.snap, uuid.New())
	assert.False(t, ok)
}

func TestSupplyDays(t *testing.T) {
	cases := []struct {
		name       string
		capacityM3 float64
		population int
		want       int
	}{
		{name: "default calculator", capacityM3: 500, population: 5000, want: 6},
		{name: "rounds down", capacityM3: 600, population: 7800, want: 5},
		{name: "exact week", capacityM3: 105, population: 1000, want: 7},
		{name: "zero population", capacityM3: 500, population: 0, want: 0},
		{name: "negative population", capacityM3: 500, population: -10, want: 0},
		{name: "no capacity", capacityM3: 0, population: 5000, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SupplyDays(tc.capacityM3, tc.population))
		})
	}
}

func TestFunctionalCapacity(t *testing.T) {
	f := newFixture()

	assert.InDelta(t, 600.0, FunctionalCapacity(f.snap, f.afmadow.ID), 1e-9)
	assert.Zero(t, FunctionalCapacity(f.snap, f.doolow.ID))
}

func TestNavigationFor(t *testing.T) {
	labels := func(links []NavLink) []string {
		out := make([]string, len(links))
		for i, l := range links {
			out[i] = l.Label
		}
		return out
	}

	assert.Len(t, NavigationFor(models.RoleGovernment), 8)
	assert.Equal(t,
		[]string{"Dashboard", "Villages", "NGO Activities", "Coverage Map", "Settings"},
		labels(NavigationFor(models.RoleNGO)))
	assert.Equal(t,
		[]string{"Dashboard", "Villages", "Water Resources", "Livestock", "Alerts", "Settings"},
		labels(NavigationFor(models.RoleDistrictOfficer)))
	assert.Len(t, NavigationFor(""), 8)
}
