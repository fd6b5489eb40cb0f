package selection

import (
	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
)

// Normalize repairs a selection received from outside so that every
// cross-field rule holds:
//   - unknown family falls back to IPTV
//   - unknown internet, TV or set-top ids fall back to the defaults
//   - a second TV without a main TV, or one the family lacks, is cleared
//   - family plan wins over mobile bundle
//   - add-ons are deduplicated and unknown ones dropped
//   - vouchers are snapped to the grid
func (s Selection) Normalize(c *catalog.Catalog) Selection {
	out := s.clone()

	if !out.Family.IsValid() {
		out.Family = enums.FamilyIPTV
	}
	defaultTv, defaultStb := c.Defaults(out.Family)

	if _, ok := c.Internet(out.InternetID); !ok {
		out.InternetID = c.DefaultInternetID()
	}

	if out.TvID == "" {
		out.TvID = catalog.TvNone
	}
	if _, res := c.TV(out.TvID, out.Family); res == catalog.NotFound {
		out.TvID = defaultTv
	}

	if _, ok := c.Stb(out.StbID, out.Family); !ok {
		out.StbID = defaultStb
	}

	if !out.HasPrimaryTv() {
		out.SecondaryTvID = catalog.TvNone
	} else if _, res := c.TV(out.SecondaryTvID, out.Family); res != catalog.Found {
		out.SecondaryTvID = catalog.TvNone
	}

	if out.FamilyPlan {
		out.MobileBundled = false
	}

	addOns := make([]string, 0, len(out.AddOnIDs))
	for _, id := range out.AddOnIDs {
		if _, ok := c.AddOn(id); !ok {
			continue
		}
		if containsID(addOns, id) {
			continue
		}
		addOns = append(addOns, id)
	}
	out.AddOnIDs = addOns

	out.PrepaidInternet = SnapPrepaid(out.PrepaidInternet)
	out.PrepaidTv1 = SnapPrepaid(out.PrepaidTv1)
	out.PrepaidTv2 = SnapPrepaid(out.PrepaidTv2)

	return out
}

func containsID(ids []string, target string) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}
