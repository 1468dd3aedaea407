package domain

// PricingTable статическая таблица цен: модель -> тип ремонта -> цена
// Отсутствие записи означает, что данный ремонт для модели не выполняется.
// Это отличный от нулевой цены случай и блокирует бронирование.
type PricingTable map[string]map[RepairType]float64

// Price возвращает базовую цену ремонта для модели
// Второй результат false, если ремонт для модели не выполняется
func (t PricingTable) Price(model string, repairType RepairType) (float64, bool) {
	repairs, ok := t[model]
	if !ok {
		return 0, false
	}
	price, ok := repairs[repairType]
	return price, ok
}

// PricedRepairs возвращает список типов ремонта, доступных для модели
func (t PricingTable) PricedRepairs(model string) []RepairType {
	repairs := make([]RepairType, 0)
	for _, rt := range RepairTypes {
		if _, ok := t[model][rt]; ok {
			repairs = append(repairs, rt)
		}
	}
	return repairs
}

// TotalPrice вычисляет итоговую цену: базовая цена плюс надбавка за pick-up
func TotalPrice(basePrice float64, deliveryType DeliveryType, pickUpCharge float64) float64 {
	if deliveryType == DeliveryPickUp {
		return basePrice + pickUpCharge
	}
	return basePrice
}
