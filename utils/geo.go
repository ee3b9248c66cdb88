package utils

import "math"

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance between two lat/lng
// points in kilometers.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	lat1, lng1, lat2, lng2 = rad(lat1), rad(lng1), rad(lat2), rad(lng2)

	dlat := lat2 - lat1
	dlng := lng2 - lng1
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}
