package report

import (
	"testing"

	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/pricing"
	"github.com/angelmondragon/skb-upsell-backend/internal/selection"
	"github.com/angelmondragon/skb-upsell-backend/internal/upsell"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
)

func render(sel selection.Selection, quotedFee int) string {
	c := catalog.Default()
	q := pricing.NewEngine(c).Price(sel)
	return Render(c, sel, q, upsell.Advise(q, sel, quotedFee))
}

func TestRenderWithAllocation(t *testing.T) {
	c := catalog.Default()
	sel := selection.New(c).
		SetTv(catalog.TvAll).
		SetSecondaryTv(catalog.TvLite).
		ToggleAddOn(catalog.AddOnWings).
		ToggleAddOn(catalog.AddOnRelief).
		SetMobileBundled(true)

	// 34,100 + 3,300 + 16,500 + 4,400 + 6,050 + 2,200 = 66,550; mobile 12,100
	want := "[SKB 설계내역]\n" +
		"- 타입: IPTV\n" +
		"- 속도: 인터넷 Giga Lite +WIFI (500M)\n" +
		"- B tv 1: B tv All\n" +
		"- B tv 2: B tv 이코노미\n" +
		"- 부가서비스: 윙즈, 안심서비스\n" +
		"- 결합: 요즘가족결합\n" +
		"- 안내요금 45,000원 대비 9,450원 높음\n" +
		"\n" +
		"[추천 선납권 구성]\n" +
		"- 인터넷 :7,700원\n" +
		"- B tv 1 :2,200원\n" +
		"- B tv 2 :0원\n" +
		"\n" +
		"- 최종 월 요금: 54,450원"

	assert.Equal(t, want, render(sel, 45000))
}

func TestRenderWithoutQuote(t *testing.T) {
	c := catalog.Default()
	sel := selection.New(c).
		SetFamily(c, enums.FamilyCATV).
		SetTv(catalog.TvNone).
		SetFamilyPlan(true)

	want := "[SKB 설계내역]\n" +
		"- 타입: CATV\n" +
		"- 속도: 인터넷 Giga Lite +WIFI (500M)\n" +
		"- B tv 1: 없음\n" +
		"- B tv 2: 없음\n" +
		"- 부가서비스: 없음\n" +
		"- 결합: 패밀리\n" +
		"- 안내요금 정보없음\n" +
		"\n" +
		"[추천 선납권 구성]\n" +
		"- 인터넷 :0원\n" +
		"- B tv 1 :0원\n" +
		"- B tv 2 :0원\n" +
		"\n" +
		"- 최종 월 요금: 23,100원"

	assert.Equal(t, want, render(sel, 0))
}

func TestRenderBelowQuote(t *testing.T) {
	out := render(selection.New(catalog.Default()), 50000)
	assert.Contains(t, out, "- 결합: 기본\n")
	assert.Contains(t, out, "- 안내요금 50,000원 대비 2,700원 낮음\n")
	assert.Contains(t, out, "- 인터넷 :0원\n")
	assert.Contains(t, out, "- 최종 월 요금: 47,300원")
}
