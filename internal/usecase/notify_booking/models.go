package notify_booking

// Request запрос на отправку подтверждения бронирования
type Request struct {
	BookingID string
	Email     string
}

// Response результат отправки подтверждения
type Response struct {
	BookingID string
	Email     string
	Sent      bool
}
