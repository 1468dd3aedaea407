package domain

// Причины отказа в pick-up доставке
// Строки являются частью контракта API и не локализуются
const (
	ReasonTooFar            = "too far"
	ReasonEnableLocation    = "enable location"
	ReasonCannotGetLocation = "cannot get location"
)

// DeliveryEligibility результат проверки доступности pick-up доставки
// Вычисляется по координатам клиента и никогда не сохраняется
type DeliveryEligibility struct {
	Eligible   bool
	Reason     string  // пустая строка, если Eligible == true
	DistanceKm float64 // 0, если координаты получить не удалось
}
