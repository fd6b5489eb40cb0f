package catalog

import "github.com/angelmondragon/skb-upsell-backend/pkg/enums"

const (
	mobileBundleTvDiscount = 1100

	// PrepaidStep is the voucher granularity.
	PrepaidStep = 1100
	// PrepaidMax is the largest voucher an agent may pick for one slot.
	PrepaidMax = 8800
)

type addOnPair struct {
	id    string
	with  string
	price int
}

type ruleTables struct {
	homeBundle     map[string]int
	familyPlan     map[string]int
	mobileInternet map[string]int
	mobileTv       map[enums.Family]int
	stbPromo       map[string]map[string]int
	catvStb        map[string]map[string]int
	addOnPairs     []addOnPair
}

// HomeBundleDiscount is the internet+TV discount for an internet tier.
func (c *Catalog) HomeBundleDiscount(internetID string) int {
	return c.rules.homeBundle[internetID]
}

// FamilyPlanDiscount is the family-plan discount for an internet tier.
func (c *Catalog) FamilyPlanDiscount(internetID string) int {
	return c.rules.familyPlan[internetID]
}

// MobileBundleDiscount is the internet component of the mobile-bundle discount.
func (c *Catalog) MobileBundleDiscount(internetID string) int {
	return c.rules.mobileInternet[internetID]
}

// MobileBundleTvDiscount is the TV component of the mobile-bundle discount.
func (c *Catalog) MobileBundleTvDiscount() int {
	return mobileBundleTvDiscount
}

// MobileBundleTvDiscountFor returns the TV component a family earns; CATV earns none.
func (c *Catalog) MobileBundleTvDiscountFor(family enums.Family) int {
	return c.rules.mobileTv[family]
}

// StbPromoDiscount returns the IPTV set-top promotion for a (stb, tv) pair.
func (c *Catalog) StbPromoDiscount(stbID, tvID string) int {
	return c.rules.stbPromo[stbID][tvID]
}

// AddOnPrice returns what one add-on costs given everything else selected,
// and whether a pairing rebate applied.
func (c *Catalog) AddOnPrice(id string, selected []string) (int, bool) {
	addOn, ok := c.AddOn(id)
	if !ok {
		return 0, false
	}
	for _, pair := range c.rules.addOnPairs {
		if pair.id == id && contains(selected, pair.with) {
			return pair.price, true
		}
	}
	return addOn.StandalonePrice, false
}

// AddOnCombinedPrice sums the selected add-ons with pairing rebates applied.
func (c *Catalog) AddOnCombinedPrice(selected []string) int {
	total := 0
	for _, id := range selected {
		price, _ := c.AddOnPrice(id, selected)
		total += price
	}
	return total
}

// PrepaidOptions lists every voucher amount an agent may pick for one slot.
func PrepaidOptions() []int {
	out := make([]int, 0, PrepaidMax/PrepaidStep+1)
	for amount := 0; amount <= PrepaidMax; amount += PrepaidStep {
		out = append(out, amount)
	}
	return out
}

func contains(ids []string, target string) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}
