package sessions

import (
	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/presets"
	"github.com/angelmondragon/skb-upsell-backend/internal/selection"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/skb-upsell-backend/pkg/errors"
)

// Edit is a batch of optional changes. Set fields are applied in declaration
// order so a preset or family switch happens before the finer edits.
type Edit struct {
	Preset          *enums.Preset
	Family          *enums.Family
	InternetID      *string
	TvID            *string
	SecondaryTvID   *string
	StbID           *string
	ToggleAddOns    []string
	MobileBundled   *bool
	FamilyPlan      *bool
	PrepaidInternet *int
	PrepaidTv1      *int
	PrepaidTv2      *int
	QuotedFee       *int
}

// Apply returns the edited selection and quoted fee.
func (e Edit) Apply(c *catalog.Catalog, sel selection.Selection, quotedFee int) (selection.Selection, int, error) {
	if err := e.validate(); err != nil {
		return sel, quotedFee, err
	}

	out := sel
	if e.Preset != nil {
		applied, err := presets.Apply(c, out, *e.Preset)
		if err != nil {
			return sel, quotedFee, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid preset")
		}
		out = applied
	}
	if e.Family != nil {
		out = out.SetFamily(c, *e.Family)
	}
	if e.InternetID != nil {
		out = out.SetInternet(*e.InternetID)
	}
	if e.TvID != nil {
		out = out.SetTv(*e.TvID)
	}
	if e.SecondaryTvID != nil {
		out = out.SetSecondaryTv(*e.SecondaryTvID)
	}
	if e.StbID != nil {
		out = out.SetStb(*e.StbID)
	}
	for _, id := range e.ToggleAddOns {
		out = out.ToggleAddOn(id)
	}
	if e.MobileBundled != nil {
		out = out.SetMobileBundled(*e.MobileBundled)
	}
	if e.FamilyPlan != nil {
		out = out.SetFamilyPlan(*e.FamilyPlan)
	}
	if e.PrepaidInternet != nil {
		out = out.SetPrepaidInternet(*e.PrepaidInternet)
	}
	if e.PrepaidTv1 != nil {
		out = out.SetPrepaidTv1(*e.PrepaidTv1)
	}
	if e.PrepaidTv2 != nil {
		out = out.SetPrepaidTv2(*e.PrepaidTv2)
	}
	if e.QuotedFee != nil {
		quotedFee = *e.QuotedFee
	}
	return out.Normalize(c), quotedFee, nil
}

func (e Edit) validate() error {
	details := map[string]string{}
	if e.Preset != nil && !e.Preset.IsValid() {
		details["preset"] = "unknown preset"
	}
	if e.Family != nil && !e.Family.IsValid() {
		details["family"] = "must be IPTV or CATV"
	}
	for field, amount := range map[string]*int{
		"prepaid_internet": e.PrepaidInternet,
		"prepaid_tv1":      e.PrepaidTv1,
		"prepaid_tv2":      e.PrepaidTv2,
	} {
		if amount != nil && !selection.IsPrepaidOption(*amount) {
			details[field] = "must be a multiple of 1100 between 0 and 8800"
		}
	}
	if e.QuotedFee != nil && *e.QuotedFee < 0 {
		details["quoted_fee"] = "must be zero or greater"
	}
	if len(details) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid session edit").WithDetails(details)
}
