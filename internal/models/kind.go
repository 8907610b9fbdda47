package models

// Kind обозначает одну из коллекций хранилища записей
type Kind string

const (
	KindVillage     Kind = "villages"
	KindWaterPoint  Kind = "water-points"
	KindLivestock   Kind = "livestock"
	KindNGOActivity Kind = "ngo-activities"
	KindAlert       Kind = "alerts"
)

// Kinds перечисляет все коллекции в порядке загрузки
var Kinds = []Kind{KindVillage, KindWaterPoint, KindLivestock, KindNGOActivity, KindAlert}

func (k Kind) String() string {
	return string(k)
}
