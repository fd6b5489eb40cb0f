package selection

import (
	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
)

// SetFamily switches the TV family and resets TV, second TV and set-top to
// that family's defaults. Selecting the current family is a no-op.
func (s Selection) SetFamily(c *catalog.Catalog, family enums.Family) Selection {
	if s.Family == family || !family.IsValid() {
		return s.clone()
	}
	out := s.clone()
	out.Family = family
	out.TvID, out.StbID = c.Defaults(family)
	out.SecondaryTvID = catalog.TvNone
	return out
}

// SetInternet picks the internet tier.
func (s Selection) SetInternet(id string) Selection {
	out := s.clone()
	out.InternetID = id
	return out
}

// SetTv picks the main TV. Clearing it also clears the second TV.
func (s Selection) SetTv(id string) Selection {
	out := s.clone()
	if id == "" {
		id = catalog.TvNone
	}
	out.TvID = id
	if id == catalog.TvNone {
		out.SecondaryTvID = catalog.TvNone
	}
	return out
}

// SetSecondaryTv picks the second TV. It is ignored while no main TV is selected.
func (s Selection) SetSecondaryTv(id string) Selection {
	out := s.clone()
	if id == "" {
		id = catalog.TvNone
	}
	if !out.HasPrimaryTv() {
		out.SecondaryTvID = catalog.TvNone
		return out
	}
	out.SecondaryTvID = id
	return out
}

// SetStb picks the main set-top.
func (s Selection) SetStb(id string) Selection {
	out := s.clone()
	out.StbID = id
	return out
}

// ToggleAddOn adds the add-on at the end of the list or removes it.
func (s Selection) ToggleAddOn(id string) Selection {
	out := s.clone()
	for i, existing := range out.AddOnIDs {
		if existing == id {
			out.AddOnIDs = append(out.AddOnIDs[:i], out.AddOnIDs[i+1:]...)
			return out
		}
	}
	out.AddOnIDs = append(out.AddOnIDs, id)
	return out
}

// SetMobileBundled toggles the mobile bundle. Turning it on turns the family plan off.
func (s Selection) SetMobileBundled(on bool) Selection {
	out := s.clone()
	out.MobileBundled = on
	if on {
		out.FamilyPlan = false
	}
	return out
}

// SetFamilyPlan toggles the family plan. Turning it on turns the mobile bundle off.
func (s Selection) SetFamilyPlan(on bool) Selection {
	out := s.clone()
	out.FamilyPlan = on
	if on {
		out.MobileBundled = false
	}
	return out
}

// SetPrepaidInternet sets the internet voucher, snapped to the voucher grid.
func (s Selection) SetPrepaidInternet(amount int) Selection {
	out := s.clone()
	out.PrepaidInternet = SnapPrepaid(amount)
	return out
}

// SetPrepaidTv1 sets the main TV voucher, snapped to the voucher grid.
func (s Selection) SetPrepaidTv1(amount int) Selection {
	out := s.clone()
	out.PrepaidTv1 = SnapPrepaid(amount)
	return out
}

// SetPrepaidTv2 sets the second TV voucher, snapped to the voucher grid.
func (s Selection) SetPrepaidTv2(amount int) Selection {
	out := s.clone()
	out.PrepaidTv2 = SnapPrepaid(amount)
	return out
}

// SnapPrepaid clamps a voucher amount to [0, PrepaidMax] and floors it to the step.
func SnapPrepaid(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > catalog.PrepaidMax {
		amount = catalog.PrepaidMax
	}
	return amount - amount%catalog.PrepaidStep
}

// IsPrepaidOption reports whether amount is exactly one of the selectable vouchers.
func IsPrepaidOption(amount int) bool {
	return amount >= 0 && amount <= catalog.PrepaidMax && amount%catalog.PrepaidStep == 0
}
