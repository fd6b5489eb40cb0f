package enums

import (
	"fmt"
	"strings"
)

// Family selects which TV and set-top catalog a bundle draws from.
type Family string

const (
	FamilyIPTV Family = "IPTV"
	FamilyCATV Family = "CATV"
)

var validFamilies = []Family{
	FamilyIPTV,
	FamilyCATV,
}

// String implements fmt.Stringer.
func (f Family) String() string {
	return string(f)
}

// IsValid reports whether the value is a known Family.
func (f Family) IsValid() bool {
	for _, candidate := range validFamilies {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFamily converts raw input into a Family. Lower-case input is accepted.
func ParseFamily(value string) (Family, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for _, candidate := range validFamilies {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid family %q", value)
}

// Families lists both families, IPTV first.
func Families() []Family {
	out := make([]Family, len(validFamilies))
	copy(out, validFamilies)
	return out
}
