package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricingTable_Price(t *testing.T) {
	table := PricingTable{
		"iPhone 6": {
			RepairScreen:  40,
			RepairBattery: 25,
		},
	}

	price, ok := table.Price("iPhone 6", RepairScreen)
	assert.True(t, ok)
	assert.Equal(t, 40.0, price)

	// Отсутствие записи отличается от нулевой цены
	_, ok = table.Price("iPhone 6", RepairBackCamera)
	assert.False(t, ok)

	_, ok = table.Price("iPhone 13", RepairScreen)
	assert.False(t, ok)
}

func TestPricingTable_ZeroPriceIsValid(t *testing.T) {
	table := PricingTable{
		"iPhone 6": {RepairBattery: 0},
	}

	price, ok := table.Price("iPhone 6", RepairBattery)
	assert.True(t, ok)
	assert.Equal(t, 0.0, price)
}

func TestPricingTable_PricedRepairs(t *testing.T) {
	table := PricingTable{
		"iPhone 6": {
			RepairScreen:  40,
			RepairBattery: 25,
		},
	}

	repairs := table.PricedRepairs("iPhone 6")
	assert.Equal(t, []RepairType{RepairScreen, RepairBattery}, repairs)

	assert.Empty(t, table.PricedRepairs("iPhone 13"))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 45.0, TotalPrice(40, DeliveryPickUp, 5))
	assert.Equal(t, 40.0, TotalPrice(40, DeliveryDropOff, 5))
}
