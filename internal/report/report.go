package report

import (
	"fmt"
	"strings"

	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/pricing"
	"github.com/angelmondragon/skb-upsell-backend/internal/selection"
	"github.com/angelmondragon/skb-upsell-backend/internal/upsell"
	"github.com/angelmondragon/skb-upsell-backend/pkg/money"
)

const (
	noneText    = "없음"
	noQuoteText = "안내요금 정보없음"
)

// Render builds the plain-text share report agents paste to customers.
func Render(c *catalog.Catalog, sel selection.Selection, q pricing.Quotation, advice upsell.Advice) string {
	var alloc upsell.Allocation
	if advice.Allocation != nil {
		alloc = *advice.Allocation
	}

	deltaLine := noQuoteText
	if advice.HasQuote {
		deltaLine = advice.DeltaText
	}

	lines := []string{
		"[SKB 설계내역]",
		"- 타입: " + sel.Family.String(),
		"- 속도: " + internetText(c, sel.InternetID),
		"- B tv 1: " + tvText(c, sel, sel.TvID),
		"- B tv 2: " + tvText(c, sel, sel.SecondaryTvID),
		"- 부가서비스: " + addOnText(c, sel.AddOnIDs),
		"- 결합: " + bundleText(sel),
		"- " + deltaLine,
		"",
		"[추천 선납권 구성]",
		"- 인터넷 :" + money.Won(alloc.Internet),
		"- B tv 1 :" + money.Won(alloc.Tv1),
		"- B tv 2 :" + money.Won(alloc.Tv2),
		"",
		"- 최종 월 요금: " + money.Won(q.FinalPrice),
	}
	return strings.Join(lines, "\n")
}

func internetText(c *catalog.Catalog, id string) string {
	plan, ok := c.Internet(id)
	if !ok {
		return id
	}
	return fmt.Sprintf("%s (%s)", plan.DisplayName, plan.SpeedLabel)
}

func tvText(c *catalog.Catalog, sel selection.Selection, id string) string {
	plan, res := c.TV(id, sel.Family)
	switch res {
	case catalog.Found:
		return plan.DisplayName
	case catalog.NoneSelected:
		return noneText
	}
	if id == "" {
		return noneText
	}
	return id
}

func addOnText(c *catalog.Catalog, ids []string) string {
	if len(ids) == 0 {
		return noneText
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if addOn, ok := c.AddOn(id); ok {
			names = append(names, addOn.DisplayName)
			continue
		}
		names = append(names, id)
	}
	return strings.Join(names, ", ")
}

func bundleText(sel selection.Selection) string {
	switch {
	case sel.FamilyPlan:
		return "패밀리"
	case sel.MobileBundled:
		return "요즘가족결합"
	default:
		return "기본"
	}
}
