// Package catalog holds the fixed reference data of the invoice form: shop
// categories with their GST rate, business name presets and payment modes.
// Pure data, no behaviour.
package catalog

import "github.com/shopspring/decimal"

// ShopType is an immutable catalog entry; selecting one copies the value
// into the invoice.
type ShopType struct {
	Name    string
	GSTRate decimal.Decimal // fraction in [0,1], e.g. 0.18 for 18%
}

// ShopTypes, in selector order. GST rates are fixed constants here, not a
// tax-rules engine.
var ShopTypes = []ShopType{
	{Name: "Pharmacy", GSTRate: decimal.RequireFromString("0.12")},
	{Name: "Electronics", GSTRate: decimal.RequireFromString("0.18")},
	{Name: "General Store", GSTRate: decimal.Zero},
	{Name: "Luxury", GSTRate: decimal.RequireFromString("0.28")},
}

// CustomBusinessName is the sentinel last entry of Businesses; selecting it
// makes the invoice use a caller-supplied display name.
const CustomBusinessName = "Custom Business Name"

// Businesses, in selector order, ending with the custom sentinel.
var Businesses = []string{
	"Asmit Electronics",
	"Asmit Pharmacy",
	"Asmit General Store",
	CustomBusinessName,
}

// PaymentModes, in selector order.
var PaymentModes = []string{"Cash", "UPI", "Card", "Bank Transfer"}

// Defaults for a fresh invoice.
var (
	DefaultShopType     = ShopTypes[1] // Electronics, 18%
	DefaultBusinessName = Businesses[0]
	DefaultPaymentMode  = PaymentModes[0]
)

// ShopTypeByName returns the catalog entry with the given name.
func ShopTypeByName(name string) (ShopType, bool) {
	for _, st := range ShopTypes {
		if st.Name == name {
			return st, true
		}
	}
	return ShopType{}, false
}

// IsPresetBusiness reports whether name is one of the non-sentinel presets.
func IsPresetBusiness(name string) bool {
	for _, b := range Businesses {
		if b != CustomBusinessName && b == name {
			return true
		}
	}
	return false
}
