package enums

import "fmt"

// LineItemKind identifies the role a priced row plays in a quotation.
type LineItemKind string

const (
	LineItemKindInternet     LineItemKind = "internet"
	LineItemKindAddOn        LineItemKind = "add_on"
	LineItemKindPrimaryTv    LineItemKind = "primary_tv"
	LineItemKindPrimaryStb   LineItemKind = "primary_stb"
	LineItemKindSecondaryTv  LineItemKind = "secondary_tv"
	LineItemKindSecondaryStb LineItemKind = "secondary_stb"
)

var validLineItemKinds = []LineItemKind{
	LineItemKindInternet,
	LineItemKindAddOn,
	LineItemKindPrimaryTv,
	LineItemKindPrimaryStb,
	LineItemKindSecondaryTv,
	LineItemKindSecondaryStb,
}

// String implements fmt.Stringer.
func (k LineItemKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known LineItemKind.
func (k LineItemKind) IsValid() bool {
	for _, candidate := range validLineItemKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseLineItemKind converts raw input into a LineItemKind.
func ParseLineItemKind(value string) (LineItemKind, error) {
	for _, candidate := range validLineItemKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid line item kind %q", value)
}
