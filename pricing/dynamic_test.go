package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var viewsConfig = DynamicConfig{
	Min:          1000,
	Max:          10000,
	Step:         100,
	PricePerUnit: 1,
	BaseUnits:    1000,
	UnitName:     "views",
}

func TestDynamicPrice(t *testing.T) {
	// At the base unit count the displayed price is the base plan price.
	assert.Equal(t, 1000.0, viewsConfig.Price(1000, 1000, false))

	// Extra units add pricePerUnit each.
	assert.Equal(t, 3500.0, viewsConfig.Price(1000, 3500, false))
	assert.Equal(t, 10000.0, viewsConfig.Price(1000, 10000, false))

	// Units below baseUnits never reduce the price below the base.
	assert.Equal(t, 1000.0, viewsConfig.Price(1000, 500, false))
}

func TestDynamicPriceWithAddOn(t *testing.T) {
	// The add-on is a flat amount on top of the dynamic price.
	assert.Equal(t, 3500.0+AddOnPrice, viewsConfig.Price(1000, 3500, true))

	// It applies even when the unit count sits at or below the base.
	assert.Equal(t, 1000.0+AddOnPrice, viewsConfig.Price(1000, 1000, true))
	assert.Equal(t, 1000.0+AddOnPrice, viewsConfig.Price(1000, 500, true))
}

func TestDynamicDefaultUnits(t *testing.T) {
	assert.Equal(t, 1000, viewsConfig.DefaultUnits())

	noBase := DynamicConfig{Min: 5000, Max: 100000, Step: 1000, PricePerUnit: 1}
	assert.Equal(t, 5000, noBase.DefaultUnits())
}

func TestItemID(t *testing.T) {
	assert.Equal(t, "whatsapp-status-marketing-5000", ItemID("whatsapp-status-marketing", 5000, false))
	assert.Equal(t, "whatsapp-status-marketing-5000-addon", ItemID("whatsapp-status-marketing", 5000, true))
}

func TestParseItemID(t *testing.T) {
	planID, units, addOn, ok := ParseItemID("growth-plan-2500-addon")
	assert.True(t, ok)
	assert.Equal(t, "growth-plan", planID)
	assert.Equal(t, 2500, units)
	assert.True(t, addOn)

	planID, units, addOn, ok = ParseItemID("growth-plan-2500")
	assert.True(t, ok)
	assert.Equal(t, "growth-plan", planID)
	assert.Equal(t, 2500, units)
	assert.False(t, addOn)

	_, _, _, ok = ParseItemID("garbage")
	assert.False(t, ok)
}
