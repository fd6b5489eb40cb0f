package sessions

import (
	sessionsvc "github.com/angelmondragon/skb-upsell-backend/internal/sessions"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
)

// CreateSessionRequest seeds a session. Every field is optional.
type CreateSessionRequest struct {
	Preset    *string `json:"preset" validate:"omitempty,oneof=light_1 light_2 giga_1"`
	Family    *string `json:"family" validate:"omitempty,oneof=IPTV CATV"`
	QuotedFee int     `json:"quoted_fee" validate:"min=0"`
}

// EditSessionRequest is one batch of edits, applied in field order.
type EditSessionRequest struct {
	Preset          *string  `json:"preset" validate:"omitempty,oneof=light_1 light_2 giga_1"`
	Family          *string  `json:"family" validate:"omitempty,oneof=IPTV CATV"`
	InternetID      *string  `json:"internet_id" validate:"omitempty,max=64"`
	TvID            *string  `json:"tv_id" validate:"omitempty,max=64"`
	SecondaryTvID   *string  `json:"secondary_tv_id" validate:"omitempty,max=64"`
	StbID           *string  `json:"stb_id" validate:"omitempty,max=64"`
	ToggleAddOn     []string `json:"toggle_add_on" validate:"max=8,dive,required,max=64"`
	MobileBundled   *bool    `json:"mobile_bundled"`
	FamilyPlan      *bool    `json:"family_plan"`
	PrepaidInternet *int     `json:"prepaid_internet" validate:"omitempty,oneof=0 1100 2200 3300 4400 5500 6600 7700 8800"`
	PrepaidTv1      *int     `json:"prepaid_tv1" validate:"omitempty,oneof=0 1100 2200 3300 4400 5500 6600 7700 8800"`
	PrepaidTv2      *int     `json:"prepaid_tv2" validate:"omitempty,oneof=0 1100 2200 3300 4400 5500 6600 7700 8800"`
	QuotedFee       *int     `json:"quoted_fee" validate:"omitempty,min=0"`
}

func (r CreateSessionRequest) toInput() sessionsvc.CreateInput {
	input := sessionsvc.CreateInput{QuotedFee: r.QuotedFee}
	if r.Preset != nil {
		preset := enums.Preset(*r.Preset)
		input.Preset = &preset
	}
	if r.Family != nil {
		family := enums.Family(*r.Family)
		input.Family = &family
	}
	return input
}

func (r EditSessionRequest) toEdit() sessionsvc.Edit {
	edit := sessionsvc.Edit{
		InternetID:      r.InternetID,
		TvID:            r.TvID,
		SecondaryTvID:   r.SecondaryTvID,
		StbID:           r.StbID,
		ToggleAddOns:    r.ToggleAddOn,
		MobileBundled:   r.MobileBundled,
		FamilyPlan:      r.FamilyPlan,
		PrepaidInternet: r.PrepaidInternet,
		PrepaidTv1:      r.PrepaidTv1,
		PrepaidTv2:      r.PrepaidTv2,
		QuotedFee:       r.QuotedFee,
	}
	if r.Preset != nil {
		preset := enums.Preset(*r.Preset)
		edit.Preset = &preset
	}
	if r.Family != nil {
		family := enums.Family(*r.Family)
		edit.Family = &family
	}
	return edit
}
