// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import "math"

const earthRadiusM = 6371000.0

// haversineMeters calculates the great circle distance between two points in meters.
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	// Convert to radians
	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// isValidCoordinate checks if a coordinate is within valid geographic bounds (Earth)
func isValidCoordinate(lat, lng float64) bool {
	// Reject NaN or infinities early
	if math.IsNaN(lat) || math.IsNaN(lng) ||
		math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 &&
		lng >= -180 && lng <= 180
}
