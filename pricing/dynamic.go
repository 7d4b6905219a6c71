package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// AddOnPrice is the flat Social Media Management add-on, applied after
// the dynamic calculation.
const AddOnPrice float64 = 2500

// DynamicConfig bounds a plan's configurable unit count (a "views"
// slider on the storefront).
type DynamicConfig struct {
	Min          int     `json:"min"`
	Max          int     `json:"max"`
	Step         int     `json:"step"`
	PricePerUnit float64 `json:"pricePerUnit"`
	BaseUnits    int     `json:"baseUnits"`
	UnitName     string  `json:"unitName"`
}

// DefaultUnits is the slider position on first render.
func (c DynamicConfig) DefaultUnits() int {
	if c.BaseUnits > 0 {
		return c.BaseUnits
	}
	return c.Min
}

// Price returns the displayed plan price for the selected unit count.
// Units below BaseUnits never reduce the price below the base plan
// price. An enabled add-on contributes its flat rate after the dynamic
// calculation.
func (c DynamicConfig) Price(basePrice float64, units int, addOn bool) float64 {
	extra := float64(units-c.BaseUnits) * c.PricePerUnit
	if extra < 0 {
		extra = 0
	}
	price := basePrice + extra
	if addOn {
		price += AddOnPrice
	}
	return price
}

// ItemID builds the composite cart item id for a plan selection. The id
// changes whenever the unit count or the add-on flag changes, so a
// toggled selection is a different cart entry.
func ItemID(planID string, units int, addOn bool) string {
	id := fmt.Sprintf("%s-%d", planID, units)
	if addOn {
		id += "-addon"
	}
	return id
}

// ParseItemID splits a composite id back into its parts. Used by tests
// and by the storefront when reconciling stale selections.
func ParseItemID(id string) (planID string, units int, addOn bool, ok bool) {
	rest := id
	if strings.HasSuffix(rest, "-addon") {
		addOn = true
		rest = strings.TrimSuffix(rest, "-addon")
	}
	i := strings.LastIndex(rest, "-")
	if i < 0 {
		return "", 0, false, false
	}
	units, err := strconv.Atoi(rest[i+1:])
	if err != nil {
		return "", 0, false, false
	}
	return rest[:i], units, addOn, true
}
