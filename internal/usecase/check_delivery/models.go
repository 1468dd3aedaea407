package check_delivery

// DeliveryConfig настройки проверки доступности забора устройства
type DeliveryConfig struct {
	ShopLat             float64
	ShopLon             float64
	MaxPickUpDistanceKm float64
}

// Request запрос на проверку доступности pick-up
// Если координаты не переданы, позиция запрашивается у сервиса
// геолокации по идентификатору клиента
type Request struct {
	Lat      *float64
	Lon      *float64
	ClientID string
}

// Response результат проверки доступности pick-up
type Response struct {
	Eligible   bool
	Reason     string
	DistanceKm float64
}
