package geo

import "math"

// earthRadiusKm радиус Земли в километрах
const earthRadiusKm = 6371

// Distance возвращает расстояние по дуге большого круга между двумя точками
// (широта/долгота в градусах) в километрах, по формуле гаверсинуса
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)
	lat1Rad := deg2rad(lat1)
	lat2Rad := deg2rad(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
