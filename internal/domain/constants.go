package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default slot generation values (09:00 - 18:00, шаг 1 час)
const (
	DefaultSlotStartHour   = 9
	DefaultSlotEndHour     = 18
	DefaultSlotStepMinutes = 60
)

// Business validation constants
const (
	MinSlotStepMinutes = 5
	MaxSlotStepMinutes = 480 // 8 часов
)

// PhoneModels список обслуживаемых моделей телефонов
// Порядок соответствует порядку выпуска моделей
var PhoneModels = []string{
	"iPhone 6",
	"iPhone 6 Plus",
	"iPhone 6s",
	"iPhone 6s Plus",
	"iPhone 7",
	"iPhone 7 Plus",
	"iPhone 8",
	"iPhone 8 Plus",
	"iPhone X",
	"iPhone XR",
	"iPhone XS",
	"iPhone XS Max",
	"iPhone 11",
	"iPhone 11 Pro",
	"iPhone 11 Pro Max",
	"iPhone 12 mini",
	"iPhone 12",
	"iPhone 12 Pro",
	"iPhone 12 Pro Max",
	"iPhone 13 mini",
	"iPhone 13",
	"iPhone 13 Pro",
	"iPhone 13 Pro Max",
}

// RepairTypes список типов ремонта
var RepairTypes = []RepairType{
	RepairScreen,
	RepairBackCamera,
	RepairFrontCamera,
	RepairBattery,
	RepairBackCameraGlass,
}

// IsKnownPhoneModel проверяет, что модель телефона обслуживается
func IsKnownPhoneModel(model string) bool {
	for _, m := range PhoneModels {
		if m == model {
			return true
		}
	}
	return false
}
