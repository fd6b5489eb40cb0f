package pricing

import "github.com/angelmondragon/skb-upsell-backend/pkg/enums"

// LineItem is one priced row of a quotation.
type LineItem struct {
	Kind        enums.LineItemKind `json:"kind"`
	ID          string             `json:"id"`
	DisplayName string             `json:"display_name"`
	Price       int                `json:"price"`
	Rebated     bool               `json:"rebated,omitempty"`
}

// Discount is one applied discount. Zero amounts are never recorded.
type Discount struct {
	Kind   enums.DiscountKind `json:"kind"`
	Label  string             `json:"label"`
	Amount int                `json:"amount"`
}

// Quotation is the priced result for a selection.
type Quotation struct {
	LineItems      []LineItem `json:"line_items"`
	Discounts      []Discount `json:"discounts"`
	BasePriceSum   int        `json:"base_price_sum"`
	DiscountTotal  int        `json:"discount_total"`
	FinalPrice     int        `json:"final_price"`
	HasPrimaryTv   bool       `json:"has_primary_tv"`
	HasSecondaryTv bool       `json:"has_secondary_tv"`
}

// DiscountAmount returns the recorded amount for a kind, 0 when absent.
func (q Quotation) DiscountAmount(kind enums.DiscountKind) int {
	for _, d := range q.Discounts {
		if d.Kind == kind {
			return d.Amount
		}
	}
	return 0
}
