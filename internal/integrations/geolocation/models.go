package geolocation

// Position координаты клиента
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
