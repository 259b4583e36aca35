package assignment_score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"marketplace/internal/entities"
	"marketplace/internal/pkg/factory/assignment_score"
)

func TestScoreFactory_DistanceKm(t *testing.T) {
	t.Parallel()

	factory := assignment_score.New()

	tests := []struct {
		name       string
		from       *entities.GeoPoint
		to         entities.GeoPoint
		expectedKm float64
		deltaKm    float64
	}{
		{
			name:       "одна и та же точка",
			from:       &entities.GeoPoint{Lat: 55.7558, Lng: 37.6173},
			to:         entities.GeoPoint{Lat: 55.7558, Lng: 37.6173},
			expectedKm: 0,
			deltaKm:    0.001,
		},
		{
			name:       "Москва - Санкт-Петербург",
			from:       &entities.GeoPoint{Lat: 55.7558, Lng: 37.6173},
			to:         entities.GeoPoint{Lat: 59.9343, Lng: 30.3351},
			expectedKm: 634,
			deltaKm:    5,
		},
		{
			name:       "водитель без координат",
			from:       nil,
			to:         entities.GeoPoint{Lat: 55.7558, Lng: 37.6173},
			expectedKm: 20015, // половина окружности Земли
			deltaKm:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := factory.DistanceKm(tt.from, tt.to)

			assert.InDelta(t, tt.expectedKm, got, tt.deltaKm)
		})
	}
}

func TestScoreFactory_Score(t *testing.T) {
	t.Parallel()

	factory := assignment_score.New()
	store := entities.GeoPoint{Lat: 55.7558, Lng: 37.6173}

	nearFreeCar := entities.AssignmentCandidate{
		Driver: entities.Driver{
			VehicleType: entities.Car,
			Location:    &entities.GeoPoint{Lat: 55.7560, Lng: 37.6175},
		},
		ActiveDeliveries: 0,
	}
	nearBusyCar := entities.AssignmentCandidate{
		Driver: entities.Driver{
			VehicleType: entities.Car,
			Location:    &entities.GeoPoint{Lat: 55.7560, Lng: 37.6175},
		},
		ActiveDeliveries: 3,
	}
	nearFreeWalker := entities.AssignmentCandidate{
		Driver: entities.Driver{
			VehicleType: entities.OnFoot,
			Location:    &entities.GeoPoint{Lat: 55.7560, Lng: 37.6175},
		},
		ActiveDeliveries: 0,
	}

	carScore, carDist := factory.Score(nearFreeCar, store)
	busyScore, _ := factory.Score(nearBusyCar, store)
	walkerScore, _ := factory.Score(nearFreeWalker, store)

	// загрузка снижает score
	assert.Greater(t, carScore, busyScore)

	// при равном расстоянии и загрузке машина предпочтительнее пешехода
	assert.Greater(t, carScore, walkerScore)

	assert.InDelta(t, 0, carDist, 0.1)
}
