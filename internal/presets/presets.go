package presets

import (
	"fmt"

	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/selection"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
)

// Template lists the fields a preset overwrites.
type Template struct {
	Preset     enums.Preset `json:"preset"`
	Label      string       `json:"label"`
	InternetID string       `json:"internet_id"`
	TvID       string       `json:"tv_id"`
	StbID      string       `json:"stb_id"`
	AddOnIDs   []string     `json:"add_on_ids"`
}

var templates = map[enums.Preset]Template{
	enums.PresetLight1: {
		InternetID: catalog.InternetID500M,
		TvID:       catalog.TvAllPlus,
		StbID:      catalog.StbSmart3,
		AddOnIDs:   []string{catalog.AddOnRelief},
	},
	enums.PresetLight2: {
		InternetID: catalog.InternetID500M,
		TvID:       catalog.TvAll,
		StbID:      catalog.StbSmart3,
		AddOnIDs:   []string{catalog.AddOnRelief},
	},
	enums.PresetGiga1: {
		InternetID: catalog.InternetID1G,
		TvID:       catalog.TvAllPlus,
		StbID:      catalog.StbSmart3,
		AddOnIDs:   []string{catalog.AddOnRelief},
	},
}

// Lookup returns the template of a preset.
func Lookup(p enums.Preset) (Template, error) {
	tpl, ok := templates[p]
	if !ok {
		return Template{}, fmt.Errorf("unknown preset %q", p)
	}
	tpl.Preset = p
	tpl.Label = p.Label()
	tpl.AddOnIDs = append([]string{}, tpl.AddOnIDs...)
	return tpl, nil
}

// List returns every template in display order.
func List() []Template {
	out := make([]Template, 0, len(templates))
	for _, p := range enums.Presets() {
		tpl, err := Lookup(p)
		if err != nil {
			continue
		}
		out = append(out, tpl)
	}
	return out
}

// Apply overwrites sel with the preset. Presets are IPTV bundles with a single
// TV and neither mobile bundle nor family plan; vouchers are kept.
func Apply(c *catalog.Catalog, sel selection.Selection, p enums.Preset) (selection.Selection, error) {
	tpl, err := Lookup(p)
	if err != nil {
		return sel, err
	}

	out := sel.SetFamily(c, enums.FamilyIPTV).
		SetInternet(tpl.InternetID).
		SetTv(tpl.TvID).
		SetSecondaryTv(catalog.TvNone).
		SetStb(tpl.StbID).
		SetMobileBundled(false).
		SetFamilyPlan(false)
	out.AddOnIDs = tpl.AddOnIDs
	return out, nil
}

// Match reports which preset sel currently equals, if any.
func Match(sel selection.Selection) (enums.Preset, bool) {
	for _, p := range enums.Presets() {
		tpl := templates[p]
		if sel.Family != enums.FamilyIPTV ||
			sel.InternetID != tpl.InternetID ||
			sel.TvID != tpl.TvID ||
			sel.HasSecondaryTv() ||
			sel.StbID != tpl.StbID ||
			sel.MobileBundled ||
			sel.FamilyPlan ||
			!sameSet(sel.AddOnIDs, tpl.AddOnIDs) {
			continue
		}
		return p, true
	}
	return "", false
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return true
}
