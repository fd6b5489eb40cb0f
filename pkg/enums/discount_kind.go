package enums

import "fmt"

// DiscountKind labels one stacked discount on a quotation.
type DiscountKind string

const (
	DiscountKindHomeBundle   DiscountKind = "home_bundle"
	DiscountKindFamilyPlan   DiscountKind = "family_plan"
	DiscountKindMobileBundle DiscountKind = "mobile_bundle"
	DiscountKindStbPromo     DiscountKind = "stb_promo"
	DiscountKindPrepaid      DiscountKind = "prepaid"
)

// validDiscountKinds is also the order discounts are recorded on a quotation.
var validDiscountKinds = []DiscountKind{
	DiscountKindHomeBundle,
	DiscountKindFamilyPlan,
	DiscountKindMobileBundle,
	DiscountKindStbPromo,
	DiscountKindPrepaid,
}

var discountKindLabels = map[DiscountKind]string{
	DiscountKindHomeBundle:   "결합",
	DiscountKindFamilyPlan:   "패밀리",
	DiscountKindMobileBundle: "휴대폰",
	DiscountKindStbPromo:     "STB할인",
	DiscountKindPrepaid:      "선납권",
}

// String implements fmt.Stringer.
func (d DiscountKind) String() string {
	return string(d)
}

// Label returns the short Korean label shown on the summary bar.
func (d DiscountKind) Label() string {
	return discountKindLabels[d]
}

// IsValid reports whether the value is a known DiscountKind.
func (d DiscountKind) IsValid() bool {
	for _, candidate := range validDiscountKinds {
		if candidate == d {
			return true
		}
	}
	return false
}

// DiscountKinds returns every kind in recording order.
func DiscountKinds() []DiscountKind {
	out := make([]DiscountKind, len(validDiscountKinds))
	copy(out, validDiscountKinds)
	return out
}

// ParseDiscountKind converts raw input into a DiscountKind.
func ParseDiscountKind(value string) (DiscountKind, error) {
	for _, candidate := range validDiscountKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid discount kind %q", value)
}
