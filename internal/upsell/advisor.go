package upsell

import (
	"fmt"

	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/pricing"
	"github.com/angelmondragon/skb-upsell-backend/internal/selection"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
	"github.com/angelmondragon/skb-upsell-backend/pkg/money"
)

// SlotCap is the largest voucher the advisor places in one slot.
const SlotCap = 7700

// Allocation spreads a voucher discount over the internet and TV slots.
type Allocation struct {
	Internet int `json:"internet"`
	Tv1      int `json:"tv1"`
	Tv2      int `json:"tv2"`
}

// Total sums the three slots.
func (a Allocation) Total() int {
	return a.Internet + a.Tv1 + a.Tv2
}

// Advice is the advisor's verdict for one quotation and quoted fee.
type Advice struct {
	Status     enums.AdviceStatus `json:"status"`
	HasQuote   bool               `json:"has_quote"`
	QuotedFee  int                `json:"quoted_fee"`
	Delta      int                `json:"delta"`
	DeltaText  string             `json:"delta_text"`
	SlotCount  int                `json:"slot_count"`
	TotalCap   int                `json:"total_cap"`
	Allocation *Allocation        `json:"allocation"`
}

// Advise compares a quotation with the customer's quoted fee and, when the
// proposal is above it, allocates vouchers greedily internet → tv1 → tv2.
// A quoted fee of zero or less means no quote was entered.
func Advise(q pricing.Quotation, sel selection.Selection, quotedFee int) Advice {
	hasPrimary := sel.HasPrimaryTv()
	hasSecondary := sel.HasSecondaryTv()

	slots := 1
	if hasPrimary {
		slots++
	}
	if hasSecondary {
		slots++
	}

	advice := Advice{
		Status:    enums.AdviceStatusOK,
		SlotCount: slots,
		TotalCap:  SlotCap * slots,
	}
	if quotedFee <= 0 {
		return advice
	}

	advice.HasQuote = true
	advice.QuotedFee = quotedFee
	advice.Delta = q.FinalPrice - quotedFee
	advice.DeltaText = DeltaText(quotedFee, advice.Delta)

	switch {
	case advice.Delta <= 0:
		advice.Status = enums.AdviceStatusOK
	case advice.Delta > advice.TotalCap:
		advice.Status = enums.AdviceStatusImpossible
	default:
		advice.Status = enums.AdviceStatusUpsellPossible
		alloc := allocate(advice.Delta, hasPrimary, hasSecondary)
		advice.Allocation = &alloc
	}
	return advice
}

func allocate(delta int, hasPrimary, hasSecondary bool) Allocation {
	remaining := roundUp(delta, catalog.PrepaidStep)

	var alloc Allocation
	alloc.Internet = min(remaining, SlotCap)
	remaining -= alloc.Internet
	if hasPrimary {
		alloc.Tv1 = min(remaining, SlotCap)
		remaining -= alloc.Tv1
	}
	if hasSecondary {
		alloc.Tv2 = min(remaining, SlotCap)
	}
	return alloc
}

func roundUp(v, step int) int {
	if rem := v % step; rem != 0 {
		return v + step - rem
	}
	return v
}

// DeltaText renders how far the proposal is from the quoted fee.
func DeltaText(quotedFee, delta int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("안내요금 %s 대비 %s 높음", money.Won(quotedFee), money.Won(delta))
	case delta < 0:
		return fmt.Sprintf("안내요금 %s 대비 %s 낮음", money.Won(quotedFee), money.Won(-delta))
	default:
		return fmt.Sprintf("안내요금 %s 동일", money.Won(quotedFee))
	}
}
