package domain

import "math"

const earthRadiusKm = 6371.0

const (
	FreeRadiusKm = 25.0
	ProRadiusKm  = 100.0
)

// HaversineKm calculates the great-circle distance between two points.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)
	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// RoundKm rounds a distance to one decimal.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

// DefaultRadiusKm is the discovery radius used when the request has none.
func DefaultRadiusKm(tier Tier) float64 {
	if tier == TierPro {
		return ProRadiusKm
	}
	return FreeRadiusKm
}
