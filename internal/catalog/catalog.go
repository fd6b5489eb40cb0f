package catalog

import (
	"sync"

	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
)

// TvNone is the sentinel id meaning "no TV selected" in either family.
const TvNone = "tv_none"

// InternetPlan is one internet speed tier.
type InternetPlan struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	SpeedLabel  string `json:"speed_label"`
	Description string `json:"description"`
	BasePrice   int    `json:"base_price"`
}

// TvPlan is one channel package of a family.
type TvPlan struct {
	ID           string       `json:"id"`
	DisplayName  string       `json:"display_name"`
	Description  string       `json:"description"`
	ChannelCount int          `json:"channel_count"`
	BasePrice    int          `json:"base_price"`
	Family       enums.Family `json:"family"`
}

// StbOption is a rentable set-top box of a family.
type StbOption struct {
	ID              string       `json:"id"`
	DisplayName     string       `json:"display_name"`
	Description     string       `json:"description"`
	BaseRentalPrice int          `json:"base_rental_price"`
	Family          enums.Family `json:"family"`
}

// AddOn is an internet add-on service.
type AddOn struct {
	ID              string `json:"id"`
	DisplayName     string `json:"display_name"`
	Description     string `json:"description"`
	StandalonePrice int    `json:"standalone_price"`
}

// Resolution is the outcome of a TV lookup.
type Resolution int

const (
	NotFound Resolution = iota
	Found
	NoneSelected
)

type familyTables struct {
	tvs          []TvPlan
	stbs         []StbOption
	secondaryTv  map[string]int
	defaultTvID  string
	defaultStbID string
}

// Catalog holds every purchasable item and every discount table. It is never
// mutated after construction and is safe for concurrent readers.
type Catalog struct {
	internet []InternetPlan
	addOns   []AddOn
	families map[enums.Family]familyTables
	rules    ruleTables
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared production catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = build()
	})
	return defaultCatalog
}

// Internet looks up an internet plan.
func (c *Catalog) Internet(id string) (InternetPlan, bool) {
	for _, plan := range c.internet {
		if plan.ID == id {
			return plan, true
		}
	}
	return InternetPlan{}, false
}

// TV looks up a TV plan inside a family. TvNone resolves to NoneSelected.
func (c *Catalog) TV(id string, family enums.Family) (TvPlan, Resolution) {
	if id == TvNone {
		return TvPlan{}, NoneSelected
	}
	tables, ok := c.families[family]
	if !ok {
		return TvPlan{}, NotFound
	}
	for _, plan := range tables.tvs {
		if plan.ID == id {
			return plan, Found
		}
	}
	return TvPlan{}, NotFound
}

// Stb looks up a set-top box inside a family.
func (c *Catalog) Stb(id string, family enums.Family) (StbOption, bool) {
	tables, ok := c.families[family]
	if !ok {
		return StbOption{}, false
	}
	for _, option := range tables.stbs {
		if option.ID == id {
			return option, true
		}
	}
	return StbOption{}, false
}

// AddOn looks up an add-on service.
func (c *Catalog) AddOn(id string) (AddOn, bool) {
	for _, addOn := range c.addOns {
		if addOn.ID == id {
			return addOn, true
		}
	}
	return AddOn{}, false
}

// SecondaryTvPrice returns the second-TV price of a plan, 0 for TvNone or unknown ids.
func (c *Catalog) SecondaryTvPrice(id string, family enums.Family) int {
	tables, ok := c.families[family]
	if !ok {
		return 0
	}
	return tables.secondaryTv[id]
}

// SecondaryStbPrice is the flat rental of the set-top paired with a second TV.
func (c *Catalog) SecondaryStbPrice() int {
	return secondaryStbFlatPrice
}

// SecondaryStbName names the set-top paired with a second TV.
func (c *Catalog) SecondaryStbName() string {
	return secondaryStbName
}

// CatvStbEffectivePrice returns the CATV set-top rental for the given TV plan.
// Pairs missing from the table fall back to the box's base rental.
func (c *Catalog) CatvStbEffectivePrice(stbID, tvID string) int {
	if byTv, ok := c.rules.catvStb[stbID]; ok {
		if price, ok := byTv[tvID]; ok {
			return price
		}
	}
	option, ok := c.Stb(stbID, enums.FamilyCATV)
	if !ok {
		return 0
	}
	return option.BaseRentalPrice
}

// EffectiveStbPrice returns the rental charged for the primary set-top.
func (c *Catalog) EffectiveStbPrice(family enums.Family, stbID, tvID string) int {
	if family == enums.FamilyCATV {
		return c.CatvStbEffectivePrice(stbID, tvID)
	}
	option, ok := c.Stb(stbID, family)
	if !ok {
		return 0
	}
	return option.BaseRentalPrice
}

// Defaults returns the TV and set-top a family starts with.
func (c *Catalog) Defaults(family enums.Family) (tvID, stbID string) {
	tables, ok := c.families[family]
	if !ok {
		return TvNone, ""
	}
	return tables.defaultTvID, tables.defaultStbID
}

// DefaultInternetID is the internet plan a new selection starts with.
func (c *Catalog) DefaultInternetID() string {
	return defaultInternetID
}

// InternetPlans lists internet plans in display order.
func (c *Catalog) InternetPlans() []InternetPlan {
	return append([]InternetPlan(nil), c.internet...)
}

// TvPlans lists a family's TV plans in display order.
func (c *Catalog) TvPlans(family enums.Family) []TvPlan {
	return append([]TvPlan(nil), c.families[family].tvs...)
}

// StbOptions lists a family's set-tops in display order.
func (c *Catalog) StbOptions(family enums.Family) []StbOption {
	return append([]StbOption(nil), c.families[family].stbs...)
}

// AddOns lists add-on services in display order.
func (c *Catalog) AddOns() []AddOn {
	return append([]AddOn(nil), c.addOns...)
}
