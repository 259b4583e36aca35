package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPoint = errors.New("invalid point")

// GeoPoint координаты в том виде, в котором их хранит PostGIS:
// текстовая форма POINT(lng lat), долгота первой.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// String сериализует точку в WKT. FormatFloat с точностью -1 даёт
// минимальное представление, которое ParsePoint читает обратно бит-в-бит.
func (p GeoPoint) String() string {
	return fmt.Sprintf("POINT(%s %s)",
		strconv.FormatFloat(p.Lng, 'f', -1, 64),
		strconv.FormatFloat(p.Lat, 'f', -1, 64),
	)
}

func ParsePoint(s string) (GeoPoint, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "POINT(") || !strings.HasSuffix(trimmed, ")") {
		return GeoPoint{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}

	body := trimmed[len("POINT(") : len(trimmed)-1]
	parts := strings.Fields(body)
	if len(parts) != 2 {
		return GeoPoint{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}

	lng, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return GeoPoint{}, fmt.Errorf("%w: longitude %q", ErrInvalidPoint, parts[0])
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return GeoPoint{}, fmt.Errorf("%w: latitude %q", ErrInvalidPoint, parts[1])
	}

	return GeoPoint{Lat: lat, Lng: lng}, nil
}

func (p GeoPoint) InRange() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}
