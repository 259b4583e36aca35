package assignment_score

import (
	"math"

	"marketplace/internal/entities"
)

const (
	earthRadiusKm = 6371.0

	// штраф за каждую активную доставку у водителя
	loadPenalty = 5.0

	baseScore = 100.0
)

type ScoreFactory struct{}

func New() *ScoreFactory {
	return &ScoreFactory{}
}

// Score считает пригодность кандидата: чем выше, тем лучше.
// База уменьшается на расстояние до магазина (км), штраф за текущую
// загрузку и делится на коэффициент транспорта.
func (f *ScoreFactory) Score(candidate entities.AssignmentCandidate, store entities.GeoPoint) (score, distanceKm float64) {
	distanceKm = f.DistanceKm(candidate.Driver.Location, store)

	score = baseScore
	score -= distanceKm
	score -= float64(candidate.ActiveDeliveries) * loadPenalty
	score /= f.vehicleFactor(candidate.Driver.VehicleType)

	return score, distanceKm
}

// DistanceKm возвращает расстояние по формуле гаверсинусов.
// Водитель без координат считается максимально далёким.
func (f *ScoreFactory) DistanceKm(from *entities.GeoPoint, to entities.GeoPoint) float64 {
	if from == nil {
		return earthRadiusKm * math.Pi // половина окружности Земли
	}

	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLng := (to.Lng - from.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func (f *ScoreFactory) vehicleFactor(transportType entities.DriverVehicleType) float64 {
	switch transportType {
	case entities.Car:
		return 1.0
	case entities.Scooter:
		return 1.2
	case entities.OnFoot:
		return 1.5
	default:
		return 1.5
	}
}
