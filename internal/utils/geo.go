package utils

import (
	"math"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points using the haversine formula
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180.0
	rLat2 := lat2 * math.Pi / 180.0
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLng := (lng2 - lng1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// DistanceBetween is DistanceKm for two locations
func DistanceBetween(a, b models.Location) float64 {
	return DistanceKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// RoundKm rounds a distance to one decimal place
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

// Area encodes a location as a geohash cell so offers can show a neighbourhood
// without disclosing the exact address. Precision 5 is roughly 5km x 5km.
func Area(location models.Location, precision uint) string {
	if precision == 0 {
		precision = 5
	}
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}
