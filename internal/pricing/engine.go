package pricing

import (
	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/selection"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
)

// Engine prices selections against a catalog. It holds no mutable state and
// may be shared across goroutines.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine builds an engine. A nil catalog selects the default catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	if c == nil {
		c = catalog.Default()
	}
	return &Engine{catalog: c}
}

// Catalog exposes the tables the engine prices against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Price computes the quotation for sel. It never fails: unknown ids price at
// 0 and cross-field rule violations are priced as given.
func (e *Engine) Price(sel selection.Selection) Quotation {
	q := Quotation{
		HasPrimaryTv:   sel.HasPrimaryTv(),
		HasSecondaryTv: sel.HasSecondaryTv(),
	}

	q.LineItems = e.lineItems(sel, q.HasPrimaryTv, q.HasSecondaryTv)
	for _, item := range q.LineItems {
		q.BasePriceSum += item.Price
	}

	amounts := e.discounts(sel, q.HasPrimaryTv, q.HasSecondaryTv)
	q.Discounts = make([]Discount, 0, len(amounts))
	for _, kind := range enums.DiscountKinds() {
		amount := amounts[kind]
		if amount <= 0 {
			continue
		}
		q.Discounts = append(q.Discounts, Discount{Kind: kind, Label: kind.Label(), Amount: amount})
		q.DiscountTotal += amount
	}

	q.FinalPrice = q.BasePriceSum - q.DiscountTotal
	if q.FinalPrice < 0 {
		q.FinalPrice = 0
	}
	return q
}

func (e *Engine) lineItems(sel selection.Selection, hasPrimary, hasSecondary bool) []LineItem {
	c := e.catalog
	items := make([]LineItem, 0, 4+len(sel.AddOnIDs))

	internet := LineItem{Kind: enums.LineItemKindInternet, ID: sel.InternetID, DisplayName: sel.InternetID}
	if plan, ok := c.Internet(sel.InternetID); ok {
		internet.DisplayName = plan.DisplayName
		internet.Price = plan.BasePrice
	}
	items = append(items, internet)

	for _, id := range sel.AddOnIDs {
		item := LineItem{Kind: enums.LineItemKindAddOn, ID: id, DisplayName: id}
		if addOn, ok := c.AddOn(id); ok {
			item.DisplayName = addOn.DisplayName
		}
		item.Price, item.Rebated = c.AddOnPrice(id, sel.AddOnIDs)
		items = append(items, item)
	}

	if hasPrimary {
		tv := LineItem{Kind: enums.LineItemKindPrimaryTv, ID: sel.TvID, DisplayName: sel.TvID}
		if plan, res := c.TV(sel.TvID, sel.Family); res == catalog.Found {
			tv.DisplayName = plan.DisplayName
			tv.Price = plan.BasePrice
		}
		stb := LineItem{
			Kind:        enums.LineItemKindPrimaryStb,
			ID:          sel.StbID,
			DisplayName: sel.StbID,
			Price:       c.EffectiveStbPrice(sel.Family, sel.StbID, sel.TvID),
		}
		if option, ok := c.Stb(sel.StbID, sel.Family); ok {
			stb.DisplayName = option.DisplayName
		}
		items = append(items, tv, stb)
	}

	if hasSecondary {
		tv := LineItem{
			Kind:        enums.LineItemKindSecondaryTv,
			ID:          sel.SecondaryTvID,
			DisplayName: sel.SecondaryTvID,
			Price:       c.SecondaryTvPrice(sel.SecondaryTvID, sel.Family),
		}
		if plan, res := c.TV(sel.SecondaryTvID, sel.Family); res == catalog.Found {
			tv.DisplayName = plan.DisplayName
		}
		stb := LineItem{
			Kind:        enums.LineItemKindSecondaryStb,
			DisplayName: c.SecondaryStbName(),
			Price:       c.SecondaryStbPrice(),
		}
		items = append(items, tv, stb)
	}

	return items
}

func (e *Engine) discounts(sel selection.Selection, hasPrimary, hasSecondary bool) map[enums.DiscountKind]int {
	c := e.catalog
	out := make(map[enums.DiscountKind]int, 5)

	if sel.FamilyPlan {
		out[enums.DiscountKindFamilyPlan] = c.FamilyPlanDiscount(sel.InternetID)
	}

	if (hasPrimary || hasSecondary) && !sel.MobileBundled && !sel.FamilyPlan {
		out[enums.DiscountKindHomeBundle] = c.HomeBundleDiscount(sel.InternetID)
	}

	if sel.MobileBundled && !sel.FamilyPlan {
		mobile := c.MobileBundleDiscount(sel.InternetID)
		if hasPrimary {
			mobile += c.MobileBundleTvDiscountFor(sel.Family)
		}
		out[enums.DiscountKindMobileBundle] = mobile
	}

	if sel.Family == enums.FamilyIPTV && hasPrimary {
		out[enums.DiscountKindStbPromo] = c.StbPromoDiscount(sel.StbID, sel.TvID)
	}

	out[enums.DiscountKindPrepaid] = nonNegative(sel.PrepaidInternet) +
		nonNegative(sel.PrepaidTv1) +
		nonNegative(sel.PrepaidTv2)

	return out
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
