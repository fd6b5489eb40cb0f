package selection

import (
	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
)

// Selection is the agent's current bundle proposal. It is a value: every edit
// returns a new Selection and leaves the receiver untouched.
type Selection struct {
	Family          enums.Family `json:"family"`
	InternetID      string       `json:"internet_id"`
	TvID            string       `json:"tv_id"`
	SecondaryTvID   string       `json:"secondary_tv_id"`
	StbID           string       `json:"stb_id"`
	AddOnIDs        []string     `json:"add_on_ids"`
	MobileBundled   bool         `json:"mobile_bundled"`
	FamilyPlan      bool         `json:"family_plan"`
	PrepaidInternet int          `json:"prepaid_internet"`
	PrepaidTv1      int          `json:"prepaid_tv1"`
	PrepaidTv2      int          `json:"prepaid_tv2"`
}

// New returns the starting selection: IPTV on the default internet tier with
// the family's default TV and set-top.
func New(c *catalog.Catalog) Selection {
	tvID, stbID := c.Defaults(enums.FamilyIPTV)
	return Selection{
		Family:        enums.FamilyIPTV,
		InternetID:    c.DefaultInternetID(),
		TvID:          tvID,
		SecondaryTvID: catalog.TvNone,
		StbID:         stbID,
		AddOnIDs:      []string{},
	}
}

// HasPrimaryTv reports whether a main TV is selected.
func (s Selection) HasPrimaryTv() bool {
	return s.TvID != "" && s.TvID != catalog.TvNone
}

// HasSecondaryTv reports whether a second TV is selected.
func (s Selection) HasSecondaryTv() bool {
	return s.SecondaryTvID != "" && s.SecondaryTvID != catalog.TvNone
}

// HasAddOn reports whether the add-on is selected.
func (s Selection) HasAddOn(id string) bool {
	for _, existing := range s.AddOnIDs {
		if existing == id {
			return true
		}
	}
	return false
}

// PrepaidTotal sums the three voucher slots.
func (s Selection) PrepaidTotal() int {
	return s.PrepaidInternet + s.PrepaidTv1 + s.PrepaidTv2
}

func (s Selection) clone() Selection {
	out := s
	out.AddOnIDs = append([]string{}, s.AddOnIDs...)
	return out
}

// Equal reports whether two selections describe the same proposal.
func (s Selection) Equal(other Selection) bool {
	if len(s.AddOnIDs) != len(other.AddOnIDs) {
		return false
	}
	for i := range s.AddOnIDs {
		if s.AddOnIDs[i] != other.AddOnIDs[i] {
			return false
		}
	}
	return s.Family == other.Family &&
		s.InternetID == other.InternetID &&
		s.TvID == other.TvID &&
		s.SecondaryTvID == other.SecondaryTvID &&
		s.StbID == other.StbID &&
		s.MobileBundled == other.MobileBundled &&
		s.FamilyPlan == other.FamilyPlan &&
		s.PrepaidInternet == other.PrepaidInternet &&
		s.PrepaidTv1 == other.PrepaidTv1 &&
		s.PrepaidTv2 == other.PrepaidTv2
}
