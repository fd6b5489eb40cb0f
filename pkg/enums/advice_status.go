package enums

import "fmt"

// AdviceStatus classifies how a proposal compares to the customer's quoted fee.
type AdviceStatus string

const (
	AdviceStatusOK             AdviceStatus = "ok"
	AdviceStatusUpsellPossible AdviceStatus = "upsell_possible"
	AdviceStatusImpossible     AdviceStatus = "impossible"
)

var validAdviceStatuses = []AdviceStatus{
	AdviceStatusOK,
	AdviceStatusUpsellPossible,
	AdviceStatusImpossible,
}

// String implements fmt.Stringer.
func (s AdviceStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known AdviceStatus.
func (s AdviceStatus) IsValid() bool {
	for _, candidate := range validAdviceStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseAdviceStatus converts raw input into an AdviceStatus.
func ParseAdviceStatus(value string) (AdviceStatus, error) {
	for _, candidate := range validAdviceStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid advice status %q", value)
}
