package notifier

// NotifyRequest запрос на отправку уведомления о бронировании
type NotifyRequest struct {
	Email     string `json:"email"`
	BookingID string `json:"bookingId"`
}

// NotifyResponse ответ диспетчера уведомлений
type NotifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
