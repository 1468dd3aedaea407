package catalog

// RepairOption позиция прайс-листа для модели телефона
type RepairOption struct {
	RepairType string  `json:"repairType"`
	Price      float64 `json:"price"`
}

// PhoneModelResponse модель телефона с доступными ремонтами
type PhoneModelResponse struct {
	Model   string         `json:"model"`
	Repairs []RepairOption `json:"repairs"`
}

// CatalogResponse каталог моделей и типов ремонта
type CatalogResponse struct {
	PhoneModels   []PhoneModelResponse `json:"phoneModels"`
	RepairTypes   []string             `json:"repairTypes"`
	ScreenColors  []string             `json:"screenColors"`
	DeliveryTypes []string             `json:"deliveryTypes"`
}
