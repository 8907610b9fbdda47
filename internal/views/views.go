// Package views - производные представления над снимком кэша.
// Все функции чистые: зависят только от переданного Snapshot.
package views

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/drought_response_system/internal/models"
)

// UnknownVillage подставляется вместо имени при висячей ссылке на деревню
const UnknownVillage = "Unknown"

// CriticalVulnerabilityScore - порог уязвимости для фильтра critical
const CriticalVulnerabilityScore = 70.0

type Snapshot struct {
	Villages      []models.Village
	WaterPoints   []models.WaterPoint
	Livestock     []models.Livestock
	NGOActivities []models.NGOActivity
	Alerts        []models.Alert
}

// VillageFilter - фильтр списка деревень
type VillageFilter string

const (
	FilterAll      VillageFilter = "all"
	FilterCritical VillageFilter = "critical"
	FilterNoNGO    VillageFilter = "no-ngo"
)

// IsVillageCovered сообщает, есть ли у деревни хотя бы одно текущее мероприятие НКО.
// Это единственный источник истины о покрытии, поле Village.IsCovered не читается.
func IsVillageCovered(s Snapshot, villageID uuid.UUID) bool {
	for _, a := range s.NGOActivities {
		if a.VillageID == villageID && a.Status == models.ActivityOngoing {
			return true
		}
	}
	return false
}

// CoveredVillageIDs возвращает множество покрытых деревень
func CoveredVillageIDs(s Snapshot) map[uuid.UUID]bool {
	covered := make(map[uuid.UUID]bool)
	for _, a := range s.NGOActivities {
		if a.Status == models.ActivityOngoing {
			covered[a.VillageID] = true
		}
	}
	return covered
}

// CoverageRatio - доля покрытых деревень среди всех; 0 для пустого снимка
func CoverageRatio(s Snapshot) float64 {
	if len(s.Villages) == 0 {
		return 0
	}
	covered := CoveredVillageIDs(s)
	n := 0
	for _, v := range s.Villages {
		if covered[v.ID] {
			n++
		}
	}
	return float64(n) / float64(len(s.Villages))
}

// SectorHistogram считает мероприятия НКО по секторам
func SectorHistogram(s Snapshot) map[models.Sector]int {
	hist := make(map[models.Sector]int)
	for _, a := range s.NGOActivities {
		hist[a.Sector]++
	}
	return hist
}

type SectorShare struct {
	Sector  models.Sector `json:"sector"`
	Count   int           `json:"count"`
	Percent float64       `json:"percent"`
}

// SectorShares раскладывает мероприятия по всем известным секторам в порядке models.Sectors
func SectorShares(s Snapshot) []SectorShare {
	hist := SectorHistogram(s)
	total := len(s.NGOActivities)
	if total == 0 {
		total = 1
	}
	shares := make([]SectorShare, 0, len(models.Sectors))
	for _, sector := range models.Sectors {
		shares = append(shares, SectorShare{
			Sector:  sector,
			Count:   hist[sector],
			Percent: float64(hist[sector]) * 100 / float64(total),
		})
	}
	return shares
}

// CriticalHerdCount - число стад со смертностью выше 30%
func CriticalHerdCount(s Snapshot) int {
	n := 0
	for _, l := range s.Livestock {
		if l.IsCritical() {
			n++
		}
	}
	return n
}

func TotalHead(s Snapshot) int {
	total := 0
	for _, l := range s.Livestock {
		total += l.TotalCount
	}
	return total
}

func ActiveAlertCount(s Snapshot) int {
	n := 0
	for _, a := range s.Alerts {
		if !a.IsResolved {
			n++
		}
	}
	return n
}

// WaterFailureCount - нерешенные оповещения о воде
func WaterFailureCount(s Snapshot) int {
	n := 0
	for _, a := range s.Alerts {
		if a.Type == models.AlertWater && !a.IsResolved {
			n++
		}
	}
	return n
}

func ActiveNGOCount(s Snapshot) int {
	n := 0
	for _, a := range s.NGOActivities {
		if a.Status == models.ActivityOngoing {
			n++
		}
	}
	return n
}

type WaterPointStats struct {
	Functional    int `json:"functional"`
	NonFunctional int `json:"non_functional"`
}

func WaterPointCounts(s Snapshot) WaterPointStats {
	var stats WaterPointStats
	for _, wp := range s.WaterPoints {
		if wp.IsFunctional {
			stats.Functional++
		} else {
			stats.NonFunctional++
		}
	}
	return stats
}

const (
	// LitresPerPersonDay - норма Sphere на человека в сутки
	LitresPerPersonDay = 15
	// ShortSupplyDays - запас меньше этого считается критическим
	ShortSupplyDays = 7
)

// SupplyDays - на сколько полных суток хватит объема capacityM3 для population человек.
// При неположительной численности возвращает 0.
func SupplyDays(capacityM3 float64, population int) int {
	if population <= 0 || capacityM3 <= 0 {
		return 0
	}
	return int(math.Floor(capacityM3 * 1000 / float64(population*LitresPerPersonDay)))
}

// FunctionalCapacity - суммарный объем исправных точек деревни
func FunctionalCapacity(s Snapshot, villageID uuid.UUID) float64 {
	var total float64
	for _, wp := range s.WaterPoints {
		if wp.VillageID == villageID && wp.IsFunctional {
			total += wp.CapacityM3
		}
	}
	return total
}

// DashboardStats - карточки главной страницы
type DashboardStats struct {
	TotalVillages     int     `json:"total_villages"`
	WaterFailures     int     `json:"water_failures"`
	HighRiskLivestock int     `json:"high_risk_livestock"`
	ActiveNGOs        int     `json:"active_ngos"`
	ActiveAlerts      int     `json:"active_alerts"`
	CoverageRatio     float64 `json:"coverage_ratio"`
	TotalHead         int     `json:"total_head"`
}

func Dashboard(s Snapshot) DashboardStats {
	return DashboardStats{
		TotalVillages:     len(s.Villages),
		WaterFailures:     WaterFailureCount(s),
		HighRiskLivestock: CriticalHerdCount(s),
		ActiveNGOs:        ActiveNGOCount(s),
		ActiveAlerts:      ActiveAlertCount(s),
		CoverageRatio:     CoverageRatio(s),
		TotalHead:         TotalHead(s),
	}
}

// VillageName возвращает имя деревни или UnknownVillage для висячей ссылки
func VillageName(s Snapshot, villageID uuid.UUID) string {
	for _, v := range s.Villages {
		if v.ID == villageID {
			return v.Name
		}
	}
	return UnknownVillage
}

// FilterVillages ищет по имени и району без учета регистра и применяет фильтр
func FilterVillages(s Snapshot, search string, filter VillageFilter) []models.Village {
	search = strings.ToLower(strings.TrimSpace(search))
	var covered map[uuid.UUID]bool
	if filter == FilterNoNGO {
		covered = CoveredVillageIDs(s)
	}

	out := make([]models.Village, 0, len(s.Villages))
	for _, v := range s.Villages {
		if search != "" &&
			!strings.Contains(strings.ToLower(v.Name), search) &&
			!strings.Contains(strings.ToLower(v.District), search) {
			continue
		}
		switch filter {
		case FilterCritical:
			if v.VulnerabilityScore <= CriticalVulnerabilityScore {
				continue
			}
		case FilterNoNGO:
			if covered[v.ID] {
				continue
			}
		}
		out = append(out, v)
	}
	return out
}

// FilterAlerts возвращает оповещения от новых к старым
func FilterAlerts(s Snapshot, unresolvedOnly bool) []models.Alert {
	out := make([]models.Alert, 0, len(s.Alerts))
	for _, a := range s.Alerts {
		if unresolvedOnly && a.IsResolved {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Profile - карточка деревни со всеми связанными записями
type Profile struct {
	Village       models.Village       `json:"village"`
	IsCovered     bool                 `json:"is_covered"`
	SupplyDays    int                  `json:"supply_days"`
	WaterPoints   []models.WaterPoint  `json:"water_points"`
	Livestock     []models.Livestock   `json:"livestock"`
	NGOActivities []models.NGOActivity `json:"ngo_activities"`
	Alerts        []models.Alert       `json:"alerts"`
}

func VillageProfile(s Snapshot, villageID uuid.UUID) (Profile, bool) {
	var p Profile
	found := false
	for _, v := range s.Villages {
		if v.ID == villageID {
			p.Village = v
			found = true
			break
		}
	}
	if !found {
		return Profile{}, false
	}

	p.IsCovered = IsVillageCovered(s, villageID)
	p.SupplyDays = SupplyDays(FunctionalCapacity(s, villageID), p.Village.Population)
	p.WaterPoints = make([]models.WaterPoint, 0)
	for _, wp := range s.WaterPoints {
		if wp.VillageID == villageID {
			p.WaterPoints = append(p.WaterPoints, wp)
		}
	}
	p.Livestock = make([]models.Livestock, 0)
	for _, l := range s.Livestock {
		if l.VillageID == villageID {
			p.Livestock = append(p.Livestock, l)
		}
	}
	p.NGOActivities = make([]models.NGOActivity, 0)
	for _, a := range s.NGOActivities {
		if a.VillageID == villageID {
			p.NGOActivities = append(p.NGOActivities, a)
		}
	}
	var alerts []models.Alert
	for _, a := range s.Alerts {
		if a.VillageID == villageID {
			alerts = append(alerts, a)
		}
	}
	p.Alerts = FilterAlerts(Snapshot{Alerts: alerts}, false)
	return p, true
}
