package quotes

import (
	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/presets"
	"github.com/angelmondragon/skb-upsell-backend/internal/selection"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/skb-upsell-backend/pkg/errors"
)

// QuoteRequest is a full selection plus the fee the customer was quoted.
type QuoteRequest struct {
	Preset          *string  `json:"preset" validate:"omitempty,oneof=light_1 light_2 giga_1"`
	Family          string   `json:"family" validate:"omitempty,oneof=IPTV CATV"`
	InternetID      string   `json:"internet_id" validate:"max=64"`
	TvID            string   `json:"tv_id" validate:"max=64"`
	SecondaryTvID   string   `json:"secondary_tv_id" validate:"max=64"`
	StbID           string   `json:"stb_id" validate:"max=64"`
	AddOnIDs        []string `json:"add_on_ids" validate:"max=8,dive,max=64"`
	MobileBundled   bool     `json:"mobile_bundled"`
	FamilyPlan      bool     `json:"family_plan"`
	PrepaidInternet int      `json:"prepaid_internet" validate:"oneof=0 1100 2200 3300 4400 5500 6600 7700 8800"`
	PrepaidTv1      int      `json:"prepaid_tv1" validate:"oneof=0 1100 2200 3300 4400 5500 6600 7700 8800"`
	PrepaidTv2      int      `json:"prepaid_tv2" validate:"oneof=0 1100 2200 3300 4400 5500 6600 7700 8800"`
	QuotedFee       int      `json:"quoted_fee" validate:"min=0"`
}

// toSelection builds the raw selection. A preset overrides the bundle fields
// it owns and keeps the vouchers.
func (r QuoteRequest) toSelection(c *catalog.Catalog) (selection.Selection, error) {
	if r.MobileBundled && r.FamilyPlan {
		return selection.Selection{}, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"family_plan": "cannot be combined with mobile_bundled"})
	}

	family := enums.FamilyIPTV
	if r.Family != "" {
		parsed, err := enums.ParseFamily(r.Family)
		if err != nil {
			return selection.Selection{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid family")
		}
		family = parsed
	}

	addOns := r.AddOnIDs
	if addOns == nil {
		addOns = []string{}
	}
	sel := selection.Selection{
		Family:          family,
		InternetID:      r.InternetID,
		TvID:            r.TvID,
		SecondaryTvID:   r.SecondaryTvID,
		StbID:           r.StbID,
		AddOnIDs:        append([]string{}, addOns...),
		MobileBundled:   r.MobileBundled,
		FamilyPlan:      r.FamilyPlan,
		PrepaidInternet: r.PrepaidInternet,
		PrepaidTv1:      r.PrepaidTv1,
		PrepaidTv2:      r.PrepaidTv2,
	}

	if r.Preset != nil && *r.Preset != "" {
		preset, err := enums.ParsePreset(*r.Preset)
		if err != nil {
			return selection.Selection{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid preset")
		}
		applied, err := presets.Apply(c, sel.Normalize(c), preset)
		if err != nil {
			return selection.Selection{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid preset")
		}
		sel = applied
	}
	return sel, nil
}
